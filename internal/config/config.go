package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys
const (
	KeyAddr      = "RCSEC_ADDR"
	KeyRateLimit = "RCSEC_RATE_LIMIT"
	KeyRateBurst = "RCSEC_RATE_BURST"
	KeyWorkers   = "RCSEC_WORKERS"
	KeyOutputDir = "RCSEC_OUTPUT_DIR"
	KeyConcrete  = "RCSEC_CONCRETE"
	KeySteel     = "RCSEC_STEEL"
)

// Config holds the settings shared by the CLI commands and the HTTP server
type Config struct {
	Addr      string  // listen address of the API server
	RateLimit float64 // requests per second allowed per client
	RateBurst int
	Workers   int    // batch worker pool size
	OutputDir string // where plots and reports are written
	Concrete  string // default concrete grade label
	Steel     string // default steel grade label
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Addr:      ":8080",
		RateLimit: 5,
		RateBurst: 10,
		Workers:   runtime.NumCPU(),
		OutputDir: ".",
		Concrete:  "M20",
		Steel:     "Fe500",
	}
}

// Load reads the defaults, then the given .env file if it exists, then the environment.
// Later sources override earlier ones. An empty path skips the file.
func Load(path string) (Config, error) {
	values := map[string]string{}
	if path != "" {
		env, err := godotenv.Read(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("reading %s: %w", path, err)
		default:
			values = env
		}
	}
	for _, key := range []string{KeyAddr, KeyRateLimit, KeyRateBurst, KeyWorkers, KeyOutputDir, KeyConcrete, KeySteel} {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}
	return Default().apply(values)
}

func (c Config) apply(values map[string]string) (Config, error) {
	var err error
	if v, ok := values[KeyAddr]; ok && v != "" {
		c.Addr = v
	}
	if v, ok := values[KeyRateLimit]; ok && v != "" {
		if c.RateLimit, err = strconv.ParseFloat(v, 64); err != nil || c.RateLimit <= 0 {
			return c, fmt.Errorf("invalid %s=%q", KeyRateLimit, v)
		}
	}
	if v, ok := values[KeyRateBurst]; ok && v != "" {
		if c.RateBurst, err = strconv.Atoi(v); err != nil || c.RateBurst <= 0 {
			return c, fmt.Errorf("invalid %s=%q", KeyRateBurst, v)
		}
	}
	if v, ok := values[KeyWorkers]; ok && v != "" {
		if c.Workers, err = strconv.Atoi(v); err != nil || c.Workers <= 0 {
			return c, fmt.Errorf("invalid %s=%q", KeyWorkers, v)
		}
	}
	if v, ok := values[KeyOutputDir]; ok && v != "" {
		c.OutputDir = v
	}
	if v, ok := values[KeyConcrete]; ok && v != "" {
		c.Concrete = v
	}
	if v, ok := values[KeySteel]; ok && v != "" {
		c.Steel = v
	}
	return c, nil
}
