// Package config provides configuration management for the puzzle solver.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from the `default` struct tags of
// each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Input: where puzzle inputs are read from (file directory or s3)
//   - Storage: S3/MinIO credentials and bucket holding inputs
//   - Log: Logging level and format
//   - Answers: path of the known-answers manifest
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Input.Dir)
package config
