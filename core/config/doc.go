// Package config provides configuration management for record-manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Datasets: locations of the primary and secondary CSV files
//   - Export: chunked export settings and rewrite worker pool size
//   - Log: logging level and format
//   - Storage: optional S3/MinIO mirror for written outputs
//
// There is no global mutable configuration: the loaded Config value is
// passed explicitly into each component at construction.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Datasets.PrimaryPath)
package config
