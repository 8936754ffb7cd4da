package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds application-level configuration.
type Config struct {
	APIURL           string        `yaml:"apiUrl"`           // e.g. "https://api.tuiter.app"
	ApplicationToken string        `yaml:"applicationToken"` // Sent as Application-Token when set
	SessionPath      string        `yaml:"sessionPath"`      // Login token + email
	StorePath        string        `yaml:"storePath"`        // SQLite file for drafts and favorites
	LogPath          string        `yaml:"logPath"`
	MetricsAddr      string        `yaml:"metricsAddr"` // Empty disables /metrics
	RequestTimeout   time.Duration `yaml:"requestTimeout"`
	RateLimit        float64       `yaml:"rateLimit"` // Requests per second
}

// Default returns the configuration used when nothing overrides it.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
	}
	dir := filepath.Join(home, ".config", "tuiter")
	return Config{
		APIURL:         "http://localhost:4000",
		SessionPath:    filepath.Join(dir, "session.json"),
		StorePath:      filepath.Join(dir, "tuiter.db"),
		LogPath:        filepath.Join(dir, "tuiter.log"),
		RequestTimeout: 15 * time.Second,
		RateLimit:      5,
	}, nil
}

// Load builds the configuration from defaults, an optional .env file,
// an optional YAML file and environment variables, in that order.
//
//	TUITER_CONFIG         YAML config path (default: ~/.config/tuiter/config.yaml)
//	TUITER_API_URL        API base URL
//	TUITER_APP_TOKEN      static Application-Token header
//	TUITER_SESSION        session file path
//	TUITER_STORE          SQLite store path
//	TUITER_LOG            log file path
//	TUITER_METRICS_ADDR   listen address for /metrics
//	TUITER_TIMEOUT        request timeout (Go duration)
//	TUITER_RATE           requests per second
func Load() (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("reading .env: %w", err)
	}

	path := os.Getenv("TUITER_CONFIG")
	explicit := path != ""
	if !explicit {
		path = filepath.Join(filepath.Dir(cfg.SessionPath), "config.yaml")
	}
	if err := loadFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	setString("TUITER_API_URL", &cfg.APIURL)
	setString("TUITER_APP_TOKEN", &cfg.ApplicationToken)
	setString("TUITER_SESSION", &cfg.SessionPath)
	setString("TUITER_STORE", &cfg.StorePath)
	setString("TUITER_LOG", &cfg.LogPath)
	setString("TUITER_METRICS_ADDR", &cfg.MetricsAddr)

	if v := strings.TrimSpace(os.Getenv("TUITER_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TUITER_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if v := strings.TrimSpace(os.Getenv("TUITER_RATE")); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid TUITER_RATE: %w", err)
		}
		cfg.RateLimit = r
	}
	return nil
}

func (c *Config) validate() error {
	parsed, err := url.Parse(c.APIURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid API URL %q: must be an absolute URL", c.APIURL)
	}
	switch parsed.Scheme {
	case "https":
	case "http":
		if !isLoopback(parsed.Hostname()) {
			return fmt.Errorf("invalid API URL %q: plain http is only allowed for localhost", c.APIURL)
		}
	default:
		return fmt.Errorf("invalid API URL %q: unsupported scheme", c.APIURL)
	}
	c.APIURL = strings.TrimRight(parsed.String(), "/")

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}
	return nil
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
