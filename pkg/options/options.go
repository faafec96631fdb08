// Package options provides functional options for building a
// symmetric-delete correction engine, in the familiar
// Option/FuncConfig/WithX shape.
package options

import "github.com/dmitry-maltsev/spelling-corrector/internal/corrector"

// Option mutates a corrector.Config during engine construction.
type Option interface {
	Apply(cfg *corrector.Config)
}

// FuncConfig adapts a plain function to the Option interface.
type FuncConfig struct {
	apply func(cfg *corrector.Config)
}

func (f FuncConfig) Apply(cfg *corrector.Config) { f.apply(cfg) }

// NewFuncOption wraps f as an Option.
func NewFuncOption(f func(cfg *corrector.Config)) *FuncConfig {
	return &FuncConfig{apply: f}
}

// WithBuildMaxEditDistance sets the depth the index is constructed at.
func WithBuildMaxEditDistance(depth int) Option {
	return NewFuncOption(func(cfg *corrector.Config) {
		cfg.BuildMaxEditDistance = depth
	})
}

// WithPrefixLength sets the deletion-neighborhood prefix cap (0 disables
// truncation).
func WithPrefixLength(prefixLength int) Option {
	return NewFuncOption(func(cfg *corrector.Config) {
		cfg.PrefixLength = prefixLength
	})
}

// WithKeyScheme selects "exact" or "fingerprint" posting-list keys.
func WithKeyScheme(scheme string) Option {
	return NewFuncOption(func(cfg *corrector.Config) {
		cfg.KeyScheme = scheme
	})
}

// WithDefaultMaxEditDistance sets the maxEditDistance applied when a
// caller doesn't pass one explicitly.
func WithDefaultMaxEditDistance(depth int) Option {
	return NewFuncOption(func(cfg *corrector.Config) {
		cfg.DefaultMaxEditDistance = depth
	})
}

// WithDefaultTopK sets the topK applied when a caller doesn't pass one
// explicitly.
func WithDefaultTopK(topK int) Option {
	return NewFuncOption(func(cfg *corrector.Config) {
		cfg.DefaultTopK = topK
	})
}

// Apply folds opts onto cfg in order and returns the result.
func Apply(cfg corrector.Config, opts ...Option) corrector.Config {
	for _, o := range opts {
		o.Apply(&cfg)
	}
	return cfg
}
