package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/scindn/internal/flagx"
)

var serverFlags = []string{
	"-a", "-d", "-k", "-static", "-salt", "-ttl", "-storage",
	"-s3-user", "-s3-password", "-s3-bucket", "-s3-region", "-s3-endpoint",
}

// parseFlags overlays configuration values from command-line flags. Flags
// take precedence over both the JSON file and the environment.
func parseFlags(config *Config) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	addr := fs.String("a", "", "address and port to run server")
	dsn := fs.String("d", "", "database connection string")
	key := fs.String("k", "", "secret key for signing access tokens")
	static := fs.String("static", "", "root directory for stored and served files")
	salt := fs.String("salt", "", "salt used to derive response encryption keys")
	ttl := fs.Int("ttl", 0, "maximum upload link lifetime in seconds")
	storage := fs.String("storage", "", "file storage backend (local or s3)")
	s3User := fs.String("s3-user", "", "s3 access key id")
	s3Password := fs.String("s3-password", "", "s3 secret access key")
	s3Bucket := fs.String("s3-bucket", "", "s3 bucket name")
	s3Region := fs.String("s3-region", "", "s3 region")
	s3Endpoint := fs.String("s3-endpoint", "", "s3 base endpoint url")

	args := flagx.FilterArgs(os.Args[1:], serverFlags)
	if err := fs.Parse(args); err != nil {
		return
	}

	applyString(&config.EndpointAddr, *addr)
	applyString(&config.DatabaseDSN, *dsn)
	applyString(&config.SecretKey, *key)
	applyString(&config.StaticRoot, *static)
	applyString(&config.ResponseKeySalt, *salt)
	if *ttl > 0 {
		config.MaxLinkTTL = time.Duration(*ttl) * time.Second
	}
	applyString(&config.StorageBackend, *storage)
	applyString(&config.S3RootUser, *s3User)
	applyString(&config.S3RootPassword, *s3Password)
	applyString(&config.S3Bucket, *s3Bucket)
	applyString(&config.S3Region, *s3Region)
	applyString(&config.S3BaseEndpoint, *s3Endpoint)
}
