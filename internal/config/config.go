// Package config handles configuration for the records server, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

// Config holds runtime settings for the records server.
//
// Fields:
//   - HTTPAddr: bind address for the HTTP API.
//   - UseDocumentStore: when true the server connects to MongoDB on startup;
//     a failed connection falls back to the in-memory backend.
//   - MongoURI: MongoDB connection string.
//   - DatabaseName: MongoDB database holding the record collections.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings.
type Config struct {
	HTTPAddr         string
	UseDocumentStore bool
	MongoURI         string
	DatabaseName     string
	S3RootUser       string
	S3RootPassword   string
	S3Bucket         string
	S3Region         string
	S3BaseEndpoint   string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":3000"
	c.UseDocumentStore = false
	c.MongoURI = "mongodb://localhost:27017"
	c.DatabaseName = "police_management"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "geofiles"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
