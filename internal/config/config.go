package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AttentionConfig configures the attention demo.
type AttentionConfig struct {
	Heads int `yaml:"heads"`
}

// LSTMConfig selects the gate preset and state handling for the LSTM demo.
type LSTMConfig struct {
	Preset     string  `yaml:"preset"`
	Precision  string  `yaml:"precision"`
	InitHidden float64 `yaml:"init_hidden"`
	InitCell   float64 `yaml:"init_cell"`
}

// RetrievalConfig configures the RAG demo.
type RetrievalConfig struct {
	TopK       int    `yaml:"top_k"`
	CorpusPath string `yaml:"corpus_path,omitempty"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Attention AttentionConfig `yaml:"attention"`
	LSTM      LSTMConfig      `yaml:"lstm"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/aiforall/config.yaml.
// If neither exists, it writes defaults to ~/.config/aiforall/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "aiforall", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Attention: AttentionConfig{Heads: 2},
		LSTM:      LSTMConfig{Preset: "balanced", Precision: "rounded"},
		Retrieval: RetrievalConfig{TopK: 3},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Attention.Heads <= 0 {
		cfg.Attention.Heads = 2
	}
	if cfg.LSTM.Preset == "" {
		cfg.LSTM.Preset = "balanced"
	}
	if cfg.LSTM.Precision == "" {
		cfg.LSTM.Precision = "rounded"
	}
	if cfg.Retrieval.TopK <= 0 {
		cfg.Retrieval.TopK = 3
	}
}
