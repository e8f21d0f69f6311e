package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"mealdeck/internal/catalog"
	"mealdeck/internal/logging"
)

// Config holds CLI configuration.
type Config struct {
	APIBase    string
	SampleSize int
	Timeout    time.Duration
	LogFile    string
	Debug      bool
	Thumbnails bool
}

const (
	envAPIBase    = "MEALDECK_API_BASE"
	envSampleSize = "MEALDECK_SAMPLE_SIZE"
	envTimeout    = "MEALDECK_TIMEOUT"
	envLogFile    = "MEALDECK_LOG_FILE"
	envDebug      = "MEALDECK_DEBUG"
	envThumbnails = "MEALDECK_THUMBNAILS"
)

const defaultTimeout = 10 * time.Second

// ParseFlags loads .env files, then parses the process arguments and environment.
func ParseFlags() (*Config, error) {
	// Missing files are fine; values already in the environment win.
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs parses args with environment fallbacks taken from environ.
func LoadArgs(args []string, environ []string) (*Config, error) {
	env := parseEnv(environ)

	sampleDefault, err := envInt(env, envSampleSize, catalog.DefaultSampleSize)
	if err != nil {
		return nil, err
	}
	timeoutDefault, err := envDuration(env, envTimeout, defaultTimeout)
	if err != nil {
		return nil, err
	}
	debugDefault, err := envBool(env, envDebug, false)
	if err != nil {
		return nil, err
	}
	thumbsDefault, err := envBool(env, envThumbnails, true)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	fs := flag.NewFlagSet("mealdeck", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	fs.StringVar(&config.APIBase, "api-base", envString(env, envAPIBase, catalog.DefaultBaseURL), "catalog API base URL")
	fs.IntVar(&config.SampleSize, "sample-size", sampleDefault, "number of meals shown on the home screen")
	fs.DurationVar(&config.Timeout, "timeout", timeoutDefault, "per-request timeout")
	fs.StringVar(&config.LogFile, "log-file", envString(env, envLogFile, logging.DefaultLogFile), "path to the log file")
	fs.BoolVar(&config.Debug, "debug", debugDefault, "enable debug logging")
	fs.BoolVar(&config.Thumbnails, "thumbnails", thumbsDefault, "render ASCII thumbnails in the detail view")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the parsed values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIBase) == "" {
		return fmt.Errorf("api-base must not be empty")
	}
	if c.SampleSize <= 0 {
		return fmt.Errorf("sample-size must be > 0 (got %d)", c.SampleSize)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", c.Timeout)
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envString(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func envInt(env map[string]string, key string, fallback int) (int, error) {
	v := envString(env, key, "")
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func envDuration(env map[string]string, key string, fallback time.Duration) (time.Duration, error) {
	v := envString(env, key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func envBool(env map[string]string, key string, fallback bool) (bool, error) {
	v := envString(env, key, "")
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
