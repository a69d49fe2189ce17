package config

import (
	"encoding/json"
	"os"
	"time"

	simerrors "github.com/katiapek/CompoundingSimulator/internal/errors"
	"github.com/katiapek/CompoundingSimulator/internal/simulation"
)

type Config struct {
	Environment string
	LogLevel    string

	Server struct {
		ListenAddr      string
		ShutdownTimeout time.Duration
	}
}

func Load() *Config {
	cfg := &Config{
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
	cfg.Server.ListenAddr = getEnv("LISTEN_ADDR", ":8080")
	cfg.Server.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	return cfg
}

// LoadScenario reads simulation parameters from a JSON scenario file.
// Callers layer flag overrides on top of the returned parameters.
func LoadScenario(path string) (simulation.Parameters, error) {
	var params simulation.Parameters

	data, err := os.ReadFile(path)
	if err != nil {
		return params, simerrors.Wrap(err, simerrors.ErrorCategoryConfig, "config", "load_scenario")
	}
	if err := json.Unmarshal(data, &params); err != nil {
		return params, simerrors.Wrap(err, simerrors.ErrorCategoryConfig, "config", "load_scenario")
	}
	return params, nil
}

// SaveScenario writes simulation parameters to a JSON scenario file
func SaveScenario(path string, params simulation.Parameters) error {
	data, err := json.MarshalIndent(params, "", "  ")
	if err != nil {
		return simerrors.Wrap(err, simerrors.ErrorCategoryConfig, "config", "save_scenario")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return simerrors.Wrap(err, simerrors.ErrorCategoryConfig, "config", "save_scenario")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
