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

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8080", cfg.EndpointAddr)
	assert.Equal(t, "local", cfg.StorageBackend)
	assert.Equal(t, 3600*time.Second, cfg.MaxLinkTTL)
	assert.NotEmpty(t, cfg.ResponseKeySalt)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("ADDRESS", "localhost:9090")
	t.Setenv("MAX_LINK_TTL_SECONDS", "120")
	t.Setenv("STORAGE_BACKEND", "s3")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "localhost:9090", cfg.EndpointAddr)
	assert.Equal(t, 120*time.Second, cfg.MaxLinkTTL)
	assert.Equal(t, "s3", cfg.StorageBackend)
}

func TestParseEnvIgnoresInvalidTTL(t *testing.T) {
	t.Setenv("MAX_LINK_TTL_SECONDS", "not-a-number")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 3600*time.Second, cfg.MaxLinkTTL)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"server", "-a", "localhost:9191", "-ttl", "60", "-storage=s3"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "localhost:9191", cfg.EndpointAddr)
	assert.Equal(t, 60*time.Second, cfg.MaxLinkTTL)
	assert.Equal(t, "s3", cfg.StorageBackend)
}

func TestParseJson(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	data, err := json.Marshal(&JsonConfig{
		EndpointAddr:      "localhost:7070",
		MaxLinkTTLSeconds: 300,
		S3Bucket:          "uploads",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "localhost:7070", cfg.EndpointAddr)
	assert.Equal(t, 300*time.Second, cfg.MaxLinkTTL)
	assert.Equal(t, "uploads", cfg.S3Bucket)

	// fields absent from the file keep their defaults
	assert.Equal(t, "local", cfg.StorageBackend)
}
