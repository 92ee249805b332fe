// Package config loads the site's configuration from defaults, an optional
// YAML file, a .env file, and the environment, in increasing order of
// precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Site    SiteConfig    `yaml:"site"`
	Log     LogConfig     `yaml:"log"`
	Tracing TracingConfig `yaml:"tracing"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type SiteConfig struct {
	// BaseURL is the public origin canonical links are built from.
	BaseURL string `yaml:"base_url"`
	// TemplateCache keeps parsed templates in memory between requests.
	TemplateCache bool `yaml:"template_cache"`
	// TemplateDir, when set, loads templates from disk instead of the
	// copies embedded in the binary.
	TemplateDir string `yaml:"template_dir"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type TracingConfig struct {
	// Exporter is one of "none", "stdout", or "otlp".
	Exporter    string `yaml:"exporter"`
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Site: SiteConfig{
			TemplateCache: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Tracing: TracingConfig{
			Exporter:    "none",
			ServiceName: "graphul-site",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Load builds the configuration. A .env file in the working directory is
// loaded into the environment if present. If path is not empty, the YAML file
// at path is applied over the defaults; environment variables are applied
// last.
func Load(path string) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}
	cfg := Default()
	if path != "" {
		f, err := os.Open(path) // #nosec G304
		if err != nil {
			return nil, fmt.Errorf("error opening config file: %w", err)
		}
		defer f.Close()
		err = cfg.decodeYAML(f)
		if err != nil {
			return nil, fmt.Errorf("error decoding config file %q: %w", path, err)
		}
	}
	err = cfg.applyEnv(os.LookupEnv)
	if err != nil {
		return nil, err
	}
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeYAML(r io.Reader) error {
	contents, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(contents)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(contents))
	dec.KnownFields(true)
	return dec.Decode(c)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		c.HTTP.Addr = ":" + v
	}
	if v, ok := lookup("GRAPHUL_ADDR"); ok && v != "" {
		c.HTTP.Addr = v
	}
	if v, ok := lookup("GRAPHUL_BASE_URL"); ok {
		c.Site.BaseURL = v
	}
	if v, ok := lookup("GRAPHUL_TEMPLATE_DIR"); ok {
		c.Site.TemplateDir = v
	}
	if v, ok := lookup("GRAPHUL_TEMPLATE_CACHE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: GRAPHUL_TEMPLATE_CACHE: %w", ErrInvalidConfig, err)
		}
		c.Site.TemplateCache = b
	}
	if v, ok := lookup("GRAPHUL_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup("GRAPHUL_LOG_FORMAT"); ok && v != "" {
		c.Log.Format = v
	}
	if v, ok := lookup("GRAPHUL_TRACING_EXPORTER"); ok && v != "" {
		c.Tracing.Exporter = v
	}
	if v, ok := lookup("GRAPHUL_TRACING_ENDPOINT"); ok {
		c.Tracing.Endpoint = v
	}
	if v, ok := lookup("GRAPHUL_METRICS"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: GRAPHUL_METRICS: %w", ErrInvalidConfig, err)
		}
		c.Metrics.Enabled = b
	}
	return nil
}

// Validate reports the first problem with the configuration, wrapped in
// ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.HTTP.Addr == "" {
		return fmt.Errorf("%w: http.addr is required", ErrInvalidConfig)
	}
	if c.HTTP.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: http.shutdown_timeout must not be negative", ErrInvalidConfig)
	}
	if c.Site.BaseURL != "" {
		u, err := url.Parse(c.Site.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: site.base_url %q must be an absolute URL", ErrInvalidConfig, c.Site.BaseURL)
		}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log.format %q", ErrInvalidConfig, c.Log.Format)
	}
	switch strings.ToLower(c.Tracing.Exporter) {
	case "none", "stdout":
	case "otlp":
		if c.Tracing.Endpoint == "" {
			return fmt.Errorf("%w: tracing.endpoint is required for the otlp exporter", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown tracing.exporter %q", ErrInvalidConfig, c.Tracing.Exporter)
	}
	if c.Metrics.Enabled {
		err := validateMetricsPath(c.Metrics.Path)
		if err != nil {
			return err
		}
	}
	return nil
}

// validateMetricsPath rejects metrics paths the server can't route: anything
// overlapping the site's own routes, and anything that isn't a plain, clean
// path.
func validateMetricsPath(p string) error {
	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("%w: metrics.path %q must start with /", ErrInvalidConfig, p)
	}
	if strings.ContainsAny(p, "{}%") || strings.IndexFunc(p, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: metrics.path %q must be a plain path", ErrInvalidConfig, p)
	}
	if clean := path.Clean(p); clean != p && clean+"/" != p {
		return fmt.Errorf("%w: metrics.path %q must be a clean path", ErrInvalidConfig, p)
	}
	if p == "/" || p == "/healthz" || p == "/static" || strings.HasPrefix(p, "/static/") {
		return fmt.Errorf("%w: metrics.path %q is used by the site", ErrInvalidConfig, p)
	}
	return nil
}
