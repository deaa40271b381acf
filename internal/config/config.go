package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level smp.yaml configuration.
type Config struct {
	Currency   string       `yaml:"currency"`
	DateFormat string       `yaml:"date_format"`
	Data       DataConfig   `yaml:"data"`
	Backup     BackupConfig `yaml:"backup"`
}

// DataConfig locates the local tables.
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// BackupConfig controls git auto-backup of the data directory.
type BackupConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads an smp.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new planner.
func Default(dataDir string) *Config {
	return &Config{
		Currency:   "KRW",
		DateFormat: "2006-01-02",
		Data: DataConfig{
			Dir: dataDir,
		},
		Backup: BackupConfig{
			AutoCommit:  false,
			AuthorName:  "Smart Money Planner",
			AuthorEmail: "planner@localhost",
		},
	}
}
