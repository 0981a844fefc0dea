package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"base_url":              "http://cfg:9000",
		"resource_prefix":       "/v2/user",
		"request_timeout":       30,
		"online_check_interval": 10,
	})

	t.Run("loads from -config flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJSON(cfg)

		assert.Equal(t, "http://cfg:9000", cfg.BaseURL)
		assert.Equal(t, "/v2/user", cfg.ResourcePrefix)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 10*time.Second, cfg.OnlineCheckInterval)
	})

	t.Run("no config flag leaves values untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{BaseURL: "http://keep:1", RequestTimeout: 42 * time.Second}
		parseJSON(cfg)

		assert.Equal(t, "http://keep:1", cfg.BaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("partial file overrides only present fields", func(t *testing.T) {
		partial := writeTempJSON(t, map[string]any{"base_url": "http://partial:2"})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJSON(cfg)

		assert.Equal(t, "http://partial:2", cfg.BaseURL)
		assert.Equal(t, "/user", cfg.ResourcePrefix)
	})
}

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-a", "http://flag:3", "-p", "api/user", "-t", "3", "-i", "7"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://flag:3", cfg.BaseURL)
	assert.Equal(t, "api/user", cfg.ResourcePrefix)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 7*time.Second, cfg.OnlineCheckInterval)
}
