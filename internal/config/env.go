package config

import (
	"os"
	"strconv"
)

// parseEnv overlays configuration from environment variables. MONGODB_URI
// takes precedence over the legacy MONGO_URI name.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.HTTPAddr = v
	}
	if v, ok := os.LookupEnv("USE_MONGODB"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			config.UseDocumentStore = b
		}
	}
	if v, ok := os.LookupEnv("MONGO_URI"); ok {
		config.MongoURI = v
	}
	if v, ok := os.LookupEnv("MONGODB_URI"); ok {
		config.MongoURI = v
	}
	if v, ok := os.LookupEnv("MONGODB_DATABASE"); ok {
		config.DatabaseName = v
	}
	if v, ok := os.LookupEnv("S3_ROOT_USER"); ok {
		config.S3RootUser = v
	}
	if v, ok := os.LookupEnv("S3_ROOT_PASSWORD"); ok {
		config.S3RootPassword = v
	}
	if v, ok := os.LookupEnv("S3_BUCKET"); ok {
		config.S3Bucket = v
	}
	if v, ok := os.LookupEnv("S3_REGION"); ok {
		config.S3Region = v
	}
	if v, ok := os.LookupEnv("S3_BASE_ENDPOINT"); ok {
		config.S3BaseEndpoint = v
	}
}
