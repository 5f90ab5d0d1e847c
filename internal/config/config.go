package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/sandeepkv93/todo/internal/storage"
)

type RuntimeConfig struct {
	Backend    storage.Backend
	DataDir    string
	StorageKey string
	LogFile    string
	Debug      bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Backend:    storage.BackendFile,
		DataDir:    "~/.todo",
		StorageKey: "todos",
		Debug:      false,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("TODO_BACKEND"); ok {
		cfg.Backend = storage.Backend(strings.ToLower(v))
	}
	if v, ok := getEnvString("TODO_DATA_DIR"); ok {
		cfg.DataDir = v
	}
	if v, ok := getEnvString("TODO_STORAGE_KEY"); ok {
		cfg.StorageKey = v
	}
	if v, ok := getEnvString("TODO_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvBool("TODO_DEBUG"); ok {
		cfg.Debug = v
	}
	return cfg
}

// Resolve expands ~ in paths, fills the default log file and checks the
// backend name.
func (c RuntimeConfig) Resolve() (RuntimeConfig, error) {
	if !c.Backend.IsValid() {
		return c, fmt.Errorf("%w: %q", storage.ErrUnknownBackend, c.Backend)
	}
	dir, err := homedir.Expand(strings.TrimSpace(c.DataDir))
	if err != nil {
		return c, fmt.Errorf("expand data dir: %w", err)
	}
	c.DataDir = dir
	if strings.TrimSpace(c.StorageKey) == "" {
		c.StorageKey = DefaultRuntimeConfig().StorageKey
	}
	if strings.TrimSpace(c.LogFile) == "" {
		c.LogFile = filepath.Join(c.DataDir, "todo.log")
	} else if c.LogFile, err = homedir.Expand(c.LogFile); err != nil {
		return c, fmt.Errorf("expand log file: %w", err)
	}
	return c, nil
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
