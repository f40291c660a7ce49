package main

import (
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"resumechat/internal/app"
	"resumechat/internal/engine"
	"resumechat/internal/profile"
)

type chatRequest struct {
	Question string `json:"question"`
}

func main() {
	_ = godotenv.Load()

	var cfgPath, profilePath, addr string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file")
	flag.StringVar(&profilePath, "profile", "", "Path to profile YAML/JSON (overrides config)")
	flag.StringVar(&addr, "addr", "", "Listen address (overrides config)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := app.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if profilePath != "" {
		cfg.Profile = profilePath
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	p, err := profile.Load(cfg.Profile)
	if err != nil {
		logger.Fatal("failed to load profile", zap.Error(err))
	}

	eng, err := app.BuildEngine(p, cfg, logger)
	if err != nil {
		logger.Fatal("failed to assemble engine", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", handleChat(eng, logger))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", zap.String("addr", cfg.Server.Addr), zap.String("subject", p.Basics.Name))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func handleChat(eng *engine.Engine, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		question := strings.TrimSpace(req.Question)
		if question == "" {
			http.Error(w, "question is required", http.StatusBadRequest)
			return
		}

		start := time.Now()
		ans := eng.AnswerContext(r.Context(), question)
		logger.Info("answered",
			zap.String("question", question),
			zap.Int("sources", len(ans.Sources)),
			zap.Duration("took", time.Since(start)))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(ans); err != nil {
			logger.Warn("response encode failed", zap.Error(err))
		}
	}
}
