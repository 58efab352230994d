package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Backend names accepted in Config.Backend.
const (
	BackendMemory  = "memory"
	BackendLevelDB = "leveldb"
	BackendBolt    = "bolt"
)

// Config describes how slotctl opens a host store.
type Config struct {
	Backend string `toml:"Backend"`
	DataDir string `toml:"DataDir"`
	Pointer uint16 `toml:"Pointer"`
}

// Load loads the configuration from the given path, creating a default file
// when none exists.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return createDefault(path)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the backend name and, for persistent backends, that a data
// directory is set.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMemory:
		return nil
	case BackendLevelDB, BackendBolt:
		if c.DataDir == "" {
			return fmt.Errorf("config: backend %q requires DataDir", c.Backend)
		}
		return nil
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
}

func createDefault(path string) (*Config, error) {
	cfg := &Config{
		Backend: BackendLevelDB,
		DataDir: "./store",
		Pointer: 0,
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: write default %s: %w", path, err)
	}
	return cfg, nil
}
