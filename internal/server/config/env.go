package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration values from the environment. A .env file
// in the working directory is loaded first when present; real environment
// variables win over it.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	applyEnvString(&config.EndpointAddr, "ADDRESS")
	applyEnvString(&config.DatabaseDSN, "DATABASE_DSN")
	applyEnvString(&config.SecretKey, "SECRET_KEY")
	applyEnvString(&config.StaticRoot, "STATIC_ROOT")
	applyEnvString(&config.ResponseKeySalt, "RESPONSE_KEY_SALT")

	if v, ok := os.LookupEnv("MAX_LINK_TTL_SECONDS"); ok {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			config.MaxLinkTTL = time.Duration(secs) * time.Second
		}
	}

	applyEnvString(&config.StorageBackend, "STORAGE_BACKEND")
	applyEnvString(&config.S3RootUser, "S3_ROOT_USER")
	applyEnvString(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	applyEnvString(&config.S3Bucket, "S3_BUCKET")
	applyEnvString(&config.S3Region, "S3_REGION")
	applyEnvString(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")
}

func applyEnvString(dst *string, name string) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		*dst = v
	}
}
