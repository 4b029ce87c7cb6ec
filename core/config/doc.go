// Package config provides configuration management for Armory.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Bungie: manifest data source (base URL, API key, language, auxiliary file host)
//   - Database: MySQL connection details for the weapon record store
//   - Storage: S3/MinIO credentials and bucket settings for cached blobs
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Bungie.Language)
package config
