package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"resumechat/internal/answer"
	"resumechat/internal/app"
	"resumechat/internal/profile"
	"resumechat/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath, profilePath, docURL string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/resumechat/config.yaml if not provided)")
	flag.StringVar(&profilePath, "profile", "", "Path to profile YAML/JSON (overrides config)")
	flag.StringVar(&docURL, "doc", "", "URL of a plain-text resume document (overrides config)")
	flag.Parse()

	cfg, err := app.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if profilePath != "" {
		cfg.Profile = profilePath
	}
	if docURL != "" {
		cfg.Document.URL = docURL
	}

	p, err := profile.Load(cfg.Profile)
	if err != nil {
		log.Fatalf("failed to load profile: %v", err)
	}

	// The TUI owns the terminal, so logs stay quiet.
	eng, err := app.BuildEngine(p, cfg, zap.NewNop())
	if err != nil {
		log.Fatalf("failed to assemble engine: %v", err)
	}

	m := tui.New(eng, p.Basics.Name, answer.SuggestedQuestions(p))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
