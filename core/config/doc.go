// Package config provides configuration management for the travel admin backend.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Server: HTTP port, API key, body limit
//   - Database: driver (mysql, sqlite) and connection details
//   - Storage: S3/MinIO credentials, bucket, public URL and upload folder
//   - Log: level, format and optional rotating log file
//   - Slug: identifier derivation policy for blogs
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
