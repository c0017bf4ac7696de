package storage

import "strings"

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket to store uploads in.
	Bucket string `mapstructure:"bucket" default:"travel"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// PublicURL is the base under which objects are publicly resolvable.
	// Empty means the endpoint itself (http or https per UseSSL).
	PublicURL string `mapstructure:"public_url" default:""`
	// UploadFolder is the object prefix for uploaded images.
	UploadFolder string `mapstructure:"upload_folder" default:"destinations"`
}

// ObjectURL returns the public URL of objectName in the configured bucket.
func (c Config) ObjectURL(objectName string) string {
	base := strings.TrimSuffix(c.PublicURL, "/")
	if base == "" {
		scheme := "http://"
		if c.UseSSL {
			scheme = "https://"
		}
		base = scheme + trimScheme(c.Endpoint)
	}
	return base + "/" + c.Bucket + "/" + strings.TrimPrefix(objectName, "/")
}
