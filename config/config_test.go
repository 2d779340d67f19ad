package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Environment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STOCKBOOK_DIR", "/var/lib/stockbook")
	t.Setenv("STOCKBOOK_CURRENCY", "usd")
	t.Setenv("STOCKBOOK_LOG_LEVEL", "DEBUG")
	t.Setenv("STOCKBOOK_PRETTY", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{Dir: "/var/lib/stockbook", Currency: "USD", LogLevel: "debug", Pretty: true}, cfg)
}

func TestLoadFile(t *testing.T) {
	t.Setenv("STOCKBOOK_LOG_LEVEL", "error")
	path := filepath.Join(t.TempDir(), "stockbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dir: data\ncurrency: GBP\nlog_level: info\n"), 0644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.Dir)
	assert.Equal(t, "GBP", cfg.Currency)
	// environment wins over the file
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stockbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte("currency: XXY\n"), 0644))

	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "unknown currency")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "default", mutate: func(*Config) {}},
		{name: "empty dir", mutate: func(c *Config) { c.Dir = "" }, wantErr: "dir is required"},
		{name: "bad currency", mutate: func(c *Config) { c.Currency = "EURO" }, wantErr: "unknown currency"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "log_level"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
