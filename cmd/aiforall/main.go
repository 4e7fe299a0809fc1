package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"aiforall/internal/config"
	"aiforall/internal/corpus"
	"aiforall/internal/corpus/memory"
	"aiforall/internal/domain"
	"aiforall/internal/embedding"
	"aiforall/internal/lstm"
	"aiforall/internal/service"
	"aiforall/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var cfgPath, modeName string
	flag.StringVar(&cfgPath, "config", os.Getenv("AIFORALL_CONFIG"), "Path to YAML config file (optional; uses ~/.config/aiforall/config.yaml if not provided)")
	flag.StringVar(&modeName, "mode", "attention", "Demo to run: attention, multihead, lstm or rag")
	flag.Parse()
	text := strings.Join(flag.Args(), " ")

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	mode, err := tui.ParseMode(modeName)
	if err != nil {
		log.Fatal(err)
	}

	// Assemble components
	var store domain.DocumentStore
	if cfg.Retrieval.CorpusPath == "" {
		store = memory.NewReferenceStorage()
	} else {
		docs, err := corpus.LoadFile(cfg.Retrieval.CorpusPath)
		if err != nil {
			log.Fatalf("failed to load corpus: %v", err)
		}
		store = memory.NewStorage(docs)
	}

	preset, err := lstm.PresetByName(cfg.LSTM.Preset)
	if err != nil {
		log.Fatalf("invalid lstm config: %v", err)
	}
	precision, err := lstm.ParsePrecision(cfg.LSTM.Precision)
	if err != nil {
		log.Fatalf("invalid lstm config: %v", err)
	}

	sim := service.NewSimulator(embedding.NewLexicon(), store, service.Options{
		Heads:      cfg.Attention.Heads,
		Preset:     preset,
		Precision:  precision,
		InitHidden: cfg.LSTM.InitHidden,
		InitCell:   cfg.LSTM.InitCell,
		TopK:       cfg.Retrieval.TopK,
	})

	if text != "" {
		out, err := tui.Render(mode, sim, text, "")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(out)
		return
	}

	m := tui.New(sim, mode)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
