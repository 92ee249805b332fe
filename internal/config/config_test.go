package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(vals map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vals[key]
		return v, ok
	}
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.True(t, cfg.Site.TemplateCache)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "none", cfg.Tracing.Exporter)
}

func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	cfg := Default()
	err := cfg.decodeYAML(strings.NewReader(`
http:
  addr: "127.0.0.1:9000"
  shutdown_timeout: 3s
site:
  base_url: https://graphul.rs
  template_cache: false
log:
  level: debug
  format: json
`))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout, "unset fields keep their defaults")
	assert.Equal(t, "https://graphul.rs", cfg.Site.BaseURL)
	assert.False(t, cfg.Site.TemplateCache)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	require.NoError(t, cfg.Validate())
}

func TestDecodeYAMLUnknownField(t *testing.T) {
	t.Parallel()

	cfg := Default()
	err := cfg.decodeYAML(strings.NewReader("http:\n  adr: \":9000\"\n"))
	require.Error(t, err)
}

func TestDecodeYAMLEmpty(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.decodeYAML(strings.NewReader("\n")))
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	cfg := Default()
	err := cfg.applyEnv(envMap(map[string]string{
		"PORT":                     "3000",
		"GRAPHUL_BASE_URL":         "https://example.com",
		"GRAPHUL_TEMPLATE_CACHE":   "false",
		"GRAPHUL_LOG_LEVEL":        "warn",
		"GRAPHUL_TRACING_EXPORTER": "stdout",
		"GRAPHUL_METRICS":          "0",
	}))
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.HTTP.Addr)
	assert.Equal(t, "https://example.com", cfg.Site.BaseURL)
	assert.False(t, cfg.Site.TemplateCache)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "stdout", cfg.Tracing.Exporter)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestApplyEnvAddrWinsOverPort(t *testing.T) {
	t.Parallel()

	cfg := Default()
	err := cfg.applyEnv(envMap(map[string]string{
		"PORT":         "3000",
		"GRAPHUL_ADDR": "0.0.0.0:4000",
	}))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:4000", cfg.HTTP.Addr)
}

func TestApplyEnvInvalidBool(t *testing.T) {
	t.Parallel()

	cfg := Default()
	err := cfg.applyEnv(envMap(map[string]string{
		"GRAPHUL_METRICS": "sometimes",
	}))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := map[string]func(*Config){
		"empty addr":            func(c *Config) { c.HTTP.Addr = "" },
		"negative shutdown":     func(c *Config) { c.HTTP.ShutdownTimeout = -time.Second },
		"relative base url":     func(c *Config) { c.Site.BaseURL = "graphul.rs" },
		"unknown log level":     func(c *Config) { c.Log.Level = "loud" },
		"unknown log format":    func(c *Config) { c.Log.Format = "xml" },
		"unknown exporter":      func(c *Config) { c.Tracing.Exporter = "jaeger" },
		"otlp without target":   func(c *Config) { c.Tracing.Exporter = "otlp" },
		"relative metrics path": func(c *Config) { c.Metrics.Path = "metrics" },
		"metrics at root":       func(c *Config) { c.Metrics.Path = "/" },
		"metrics at healthz":    func(c *Config) { c.Metrics.Path = "/healthz" },
		"metrics at static":     func(c *Config) { c.Metrics.Path = "/static" },
		"metrics under static":  func(c *Config) { c.Metrics.Path = "/static/" },
		"metrics in static":     func(c *Config) { c.Metrics.Path = "/static/metrics" },
		"metrics wildcard":      func(c *Config) { c.Metrics.Path = "/{bad" },
		"metrics brace":         func(c *Config) { c.Metrics.Path = "/bad}" },
		"metrics whitespace":    func(c *Config) { c.Metrics.Path = "/my metrics" },
		"metrics escape":        func(c *Config) { c.Metrics.Path = "/%zz" },
		"metrics unclean":       func(c *Config) { c.Metrics.Path = "/a/../metrics" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestValidateMetricsPath(t *testing.T) {
	t.Parallel()

	for _, p := range []string{"/metrics", "/internal/metrics", "/metrics/"} {
		cfg := Default()
		cfg.Metrics.Path = p
		assert.NoError(t, cfg.Validate(), p)
	}

	cfg := Default()
	cfg.Metrics.Enabled = false
	cfg.Metrics.Path = "/healthz"
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site:\n  base_url: https://graphul.rs/\nmetrics:\n  path: /internal/metrics\n"), 0o600))
	t.Setenv("GRAPHUL_LOG_FORMAT", "json")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://graphul.rs/", cfg.Site.BaseURL)
	assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
