package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/scindn/internal/flagx"
)

// JsonConfig is the DTO read from an optional JSON configuration file,
// selected by the -c/-config flag. Only non-zero fields overlay the
// current Config.
type JsonConfig struct {
	EndpointAddr      string `json:"endpoint_addr"`
	DatabaseDSN       string `json:"database_dsn"`
	SecretKey         string `json:"secret_key"`
	StaticRoot        string `json:"static_root"`
	ResponseKeySalt   string `json:"response_key_salt"`
	MaxLinkTTLSeconds int    `json:"max_link_ttl_seconds"`
	StorageBackend    string `json:"storage_backend"`
	S3RootUser        string `json:"s3_root_user"`
	S3RootPassword    string `json:"s3_root_password"`
	S3Bucket          string `json:"s3_bucket"`
	S3Region          string `json:"s3_region"`
	S3BaseEndpoint    string `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flag, if any. Unreadable or invalid files panic: starting with
// half-applied configuration is worse than not starting.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	applyString(&config.EndpointAddr, c.EndpointAddr)
	applyString(&config.DatabaseDSN, c.DatabaseDSN)
	applyString(&config.SecretKey, c.SecretKey)
	applyString(&config.StaticRoot, c.StaticRoot)
	applyString(&config.ResponseKeySalt, c.ResponseKeySalt)
	if c.MaxLinkTTLSeconds > 0 {
		config.MaxLinkTTL = time.Duration(c.MaxLinkTTLSeconds) * time.Second
	}
	applyString(&config.StorageBackend, c.StorageBackend)
	applyString(&config.S3RootUser, c.S3RootUser)
	applyString(&config.S3RootPassword, c.S3RootPassword)
	applyString(&config.S3Bucket, c.S3Bucket)
	applyString(&config.S3Region, c.S3Region)
	applyString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
}

func applyString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
