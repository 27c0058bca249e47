package config

import (
	"os"
	"path/filepath"
)

// Config trauma-registry runtime configuration.
type Config struct {
	// DataDir is the directory holding one JSON file per patient record.
	DataDir string
	Log     struct {
		Level  string
		Format string
	}
}

// Load reads configuration from environment variables, falling back to
// defaults suited for local single-user use.
func Load() *Config {
	cfg := &Config{}
	cfg.DataDir = getEnv("DATA_DIR", defaultDataDir())
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "console")
	return cfg
}

// defaultDataDir keeps records under the user's home directory.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "TraumaPatientData"
	}
	return filepath.Join(home, "TraumaPatientData")
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
