package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *defaultConfig() {
		t.Fatalf("cfg = %+v, want defaults %+v", *cfg, *defaultConfig())
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "lstm:\n  preset: selective\n  init_cell: 0.5\nretrieval:\n  corpus_path: docs.yaml\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LSTM.Preset != "selective" || cfg.LSTM.InitCell != 0.5 {
		t.Errorf("lstm = %+v", cfg.LSTM)
	}
	if cfg.LSTM.Precision != "rounded" || cfg.Attention.Heads != 2 || cfg.Retrieval.TopK != 3 {
		t.Errorf("defaults not applied: %+v", *cfg)
	}
	if cfg.Retrieval.CorpusPath != "docs.yaml" {
		t.Errorf("corpus path = %q", cfg.Retrieval.CorpusPath)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("attention: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")
	want := &AppConfig{
		Attention: AttentionConfig{Heads: 4},
		LSTM:      LSTMConfig{Preset: "forget-fast", Precision: "full", InitHidden: 0.1},
		Retrieval: RetrievalConfig{TopK: 5},
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *want {
		t.Fatalf("got %+v, want %+v", *got, *want)
	}
}

func TestLoadDefaultWritesUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, path, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if want := filepath.Join(home, ".config", "aiforall", "config.yaml"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if *cfg != *defaultConfig() {
		t.Errorf("cfg = %+v, want defaults", *cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("defaults not written: %v", err)
	}
}
