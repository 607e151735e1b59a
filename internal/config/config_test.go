package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":3000", cfg.HTTPAddr)
	assert.False(t, cfg.UseDocumentStore)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "police_management", cfg.DatabaseName)
	assert.Equal(t, "geofiles", cfg.S3Bucket)
	assert.Equal(t, "us-east-1", cfg.S3Region)
}

func TestLoadConfigFlagsOverrideDefaults(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"server", "-a", ":9090", "-mongo", "-n", "records_test"}

	cfg := LoadConfig()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.True(t, cfg.UseDocumentStore)
	assert.Equal(t, "records_test", cfg.DatabaseName)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("USE_MONGODB", "true")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("MONGODB_DATABASE", "records")
	t.Setenv("ADDRESS", ":8081")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.True(t, cfg.UseDocumentStore)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "records", cfg.DatabaseName)
	assert.Equal(t, ":8081", cfg.HTTPAddr)
}

func TestParseEnvMongoURIPrecedence(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://legacy:27017")
	t.Setenv("MONGODB_URI", "mongodb://primary:27017")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "mongodb://primary:27017", cfg.MongoURI)
}

func TestParseEnvInvalidBoolIgnored(t *testing.T) {
	t.Setenv("USE_MONGODB", "maybe")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.False(t, cfg.UseDocumentStore)
}
