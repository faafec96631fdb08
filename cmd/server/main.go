package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"

	"github.com/dmitry-maltsev/spelling-corrector/internal/config"
	"github.com/dmitry-maltsev/spelling-corrector/internal/corrector"
	"github.com/dmitry-maltsev/spelling-corrector/internal/customdict"
)

// service holds the current Engine behind a mutex, since the
// extra-word overlay rebuilds a fresh Corrector on every mutation
// rather than mutating a frozen SymDeleteIndex in place.
type service struct {
	mu       sync.RWMutex
	engine   corrector.Engine
	dictPath string
	cfg      corrector.Config
	overlay  *customdict.Store
}

func newService(dictPath string, cfg corrector.Config, overlay *customdict.Store) (*service, error) {
	s := &service{dictPath: dictPath, cfg: cfg, overlay: overlay}
	if err := s.rebuild(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// rebuild reloads the base dictionary file, merges the overlay's
// words on top (overlay entries win on word collisions), and swaps in
// a freshly built Corrector.
func (s *service) rebuild(ctx context.Context) error {
	base, err := corrector.LoadDictionaryWords(s.dictPath)
	if err != nil {
		return err
	}

	merged := make(map[string]int64, len(base))
	order := make([]string, 0, len(base))
	for _, w := range base {
		merged[w.Word] = w.Frequency
		order = append(order, w.Word)
	}

	if s.overlay != nil {
		extra, err := s.overlay.All(ctx)
		if err != nil {
			log.Warnf("could not load extra-word overlay, continuing with base dictionary: %v", err)
		} else {
			for _, e := range extra {
				if _, exists := merged[e.Word]; !exists {
					order = append(order, e.Word)
				}
				merged[e.Word] = e.Frequency
			}
		}
	}

	words := make([]corrector.Word, 0, len(order))
	for _, w := range order {
		words = append(words, corrector.Word{Word: w, Frequency: merged[w]})
	}

	engine, err := corrector.BuildFromWords(words, corrector.WithConfig(s.cfg))
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.engine = engine
	s.mu.Unlock()
	return nil
}

func (s *service) current() corrector.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine
}

func main() {
	dictPath := getenv("DICTIONARY_PATH", "dictionary.txt")
	configPath := getenv("CONFIG_PATH", "")
	cfg := config.InitConfig(configPath)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     getenv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getEnvInt("REDIS_DB", 0),
	})
	overlay := customdict.New(redisClient, "custom_dict")

	svc, err := newService(dictPath, cfg.ToCorrectorConfig(), overlay)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/correct", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Word            string `json:"word"`
			MaxEditDistance *int   `json:"max_edit_distance"`
			TopK            *int   `json:"top_k"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}

		maxDist := cfg.Engine.DefaultMaxEditDistance
		if req.MaxEditDistance != nil {
			maxDist = *req.MaxEditDistance
		}
		topK := cfg.Engine.DefaultTopK
		if req.TopK != nil {
			topK = *req.TopK
		}

		suggestions, err := svc.current().Correct(req.Word, maxDist, topK)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		if len(suggestions) == 0 {
			log.Warnf("no suggestions for %q", req.Word)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"word":        req.Word,
			"suggestions": suggestions,
		})
	})

	mux.HandleFunc("/api/v1/words", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Word      string `json:"word"`
			Frequency int64  `json:"frequency"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Word) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		if err := overlay.Add(r.Context(), req.Word, req.Frequency); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		if err := svc.rebuild(r.Context()); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/v1/words/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		word := strings.TrimPrefix(r.URL.Path, "/api/v1/words/")
		if word == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "word is required"})
			return
		}
		if err := overlay.Remove(r.Context(), word); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		if err := svc.rebuild(r.Context()); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	addr := getenv("HTTP_ADDR", ":8080")
	log.Infof("listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	return def
}
