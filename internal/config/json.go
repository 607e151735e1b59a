package config

import (
	"encoding/json"
	"os"

	"policerecords/internal/flagx"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. Pointer fields distinguish "absent" from the zero
// value so partial files leave defaults untouched.
type JsonConfig struct {
	HTTPAddr         *string `json:"http_addr"`
	UseDocumentStore *bool   `json:"use_document_store"`
	MongoURI         *string `json:"mongo_uri"`
	DatabaseName     *string `json:"database_name"`
	S3RootUser       *string `json:"s3_root_user"`
	S3RootPassword   *string `json:"s3_root_password"`
	S3Bucket         *string `json:"s3_bucket"`
	S3Region         *string `json:"s3_region"`
	S3BaseEndpoint   *string `json:"s3_base_endpoint"`
}

// parseJson overlays configuration values from a JSON file named by the
// -c or -config flags. No flag means no file is loaded. An unreadable
// file or invalid JSON panics, misconfiguration should be loud.
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

	if c.HTTPAddr != nil {
		config.HTTPAddr = *c.HTTPAddr
	}
	if c.UseDocumentStore != nil {
		config.UseDocumentStore = *c.UseDocumentStore
	}
	if c.MongoURI != nil {
		config.MongoURI = *c.MongoURI
	}
	if c.DatabaseName != nil {
		config.DatabaseName = *c.DatabaseName
	}
	if c.S3RootUser != nil {
		config.S3RootUser = *c.S3RootUser
	}
	if c.S3RootPassword != nil {
		config.S3RootPassword = *c.S3RootPassword
	}
	if c.S3Bucket != nil {
		config.S3Bucket = *c.S3Bucket
	}
	if c.S3Region != nil {
		config.S3Region = *c.S3Region
	}
	if c.S3BaseEndpoint != nil {
		config.S3BaseEndpoint = *c.S3BaseEndpoint
	}
}
