package util

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-yaml/yaml"
	"github.com/joho/godotenv"
)

// Config is fellowship base configuration
type Config struct {
	Server Server `yaml:"server"`
}

type Server struct {
	Dsn           string `yaml:"dsn" env:"FELLOWSHIP_DSN"`
	Listen        string `yaml:"listen" env:"FELLOWSHIP_LISTEN"`
	MemcachedAddr string `yaml:"memcachedAddr" env:"FELLOWSHIP_MEMCACHED_ADDR"`
	EnableTrace   bool   `yaml:"enableTrace" env:"FELLOWSHIP_ENABLE_TRACE"`
	TraceEndpoint string `yaml:"traceEndpoint" env:"FELLOWSHIP_TRACE_ENDPOINT"`
}

// DefaultConfig returns the values used when neither the file nor the environment sets them
func DefaultConfig() Config {
	return Config{
		Server: Server{
			Listen:        ":3000",
			MemcachedAddr: "localhost:11211",
		},
	}
}

// Load reads an optional .env, the yaml file at path (if it exists), then applies environment overrides.
func (c *Config) Load(path string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", slog.String("error", err.Error()))
	}

	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(c); err != nil {
			return err
		}
	case errors.Is(err, fs.ErrNotExist):
		slog.Info("configuration file not found, using environment only", slog.String("path", path))
	default:
		return err
	}

	return env.Parse(c)
}
