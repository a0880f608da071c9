package main

import "os"

// Config holds environment-based configuration for the MCP server
type Config struct {
	ComputePath string
	StoragePath string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		ComputePath: getEnvOrDefault("COMPUTE_CSV", "aws_resources_compute.csv"),
		StoragePath: getEnvOrDefault("STORAGE_CSV", "aws_resources_s3.csv"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
