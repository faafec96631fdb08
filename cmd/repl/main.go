package main

import (
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dmitry-maltsev/spelling-corrector/internal/cliapp"
	"github.com/dmitry-maltsev/spelling-corrector/internal/config"
	"github.com/dmitry-maltsev/spelling-corrector/internal/corrector"
	"github.com/dmitry-maltsev/spelling-corrector/pkg/options"
)

func main() {
	dictPath := flag.String("dict", getenv("DICTIONARY_PATH", "dictionary.txt"), "path to the dictionary file")
	configPath := flag.String("config", getenv("CONFIG_PATH", ""), "path to the engine TOML config file")
	keyScheme := flag.String("key-scheme", "", "override the engine config's key scheme (exact or fingerprint)")
	topK := flag.Int("top-k", -1, "override the engine config's default top-K")
	flag.Parse()

	cfg := config.InitConfig(*configPath)
	engineCfg := cfg.ToCorrectorConfig()

	var overrides []options.Option
	if *keyScheme != "" {
		overrides = append(overrides, options.WithKeyScheme(*keyScheme))
	}
	if *topK >= 0 {
		overrides = append(overrides, options.WithDefaultTopK(*topK))
	}
	engineCfg = options.Apply(engineCfg, overrides...)

	var memBefore runtime.MemStats
	runtime.ReadMemStats(&memBefore)
	start := time.Now()

	engine, err := corrector.LoadDictionary(*dictPath, corrector.WithConfig(engineCfg))
	if err != nil {
		log.Errorf("failed to load dictionary: %v", err)
		os.Exit(1)
	}

	buildTime := time.Since(start)
	var memAfter runtime.MemStats
	runtime.ReadMemStats(&memAfter)

	log.Infof("loaded %d words (%d deletion keys) in %v, heap grew by %d bytes",
		engine.WordsCount(), engine.EntriesCount(), buildTime, memAfter.HeapAlloc-memBefore.HeapAlloc)

	h := cliapp.New(engine, engineCfg.DefaultMaxEditDistance, engineCfg.DefaultTopK)
	if err := h.Run(os.Stdin); err != nil {
		log.Errorf("repl terminated: %v", err)
		os.Exit(1)
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
