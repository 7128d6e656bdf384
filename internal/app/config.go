package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the gateway connection settings resolved at process start.
type Config struct {
	BaseURL string `envconfig:"WAHA_BASE_URL" default:"https://whatsapp.wyvern-vector.ts.net"`
	APIKey  string `envconfig:"WAHA_API_KEY"`
}

// Load reads ~/documents/waha/.env into the environment, then resolves Config
// from the environment. A missing env file is fine; a missing API key is not.
func Load() (Config, error) {
	return loadFrom(envPath())
}

func loadFrom(path string) (Config, error) {
	// godotenv only sets keys absent from the environment, so real env vars win.
	_ = godotenv.Load(path)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	if cfg.APIKey == "" {
		return Config{}, fmt.Errorf("WAHA_API_KEY not set (checked %s)", path)
	}
	return cfg, nil
}

func envPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("documents", "waha", ".env")
	}
	return filepath.Join(home, "documents", "waha", ".env")
}
