package common

import (
	"os"
	"time"
)

// Config holds all application configuration
type Config struct {
	AWS     AWSConfig
	Extract ExtractConfig
}

// AWSConfig holds the settings for the Textract and S3 collaborators.
type AWSConfig struct {
	Region       string
	Bucket       string
	PollInterval time.Duration
	JobTimeout   time.Duration
}

// ExtractConfig holds output-related settings.
type ExtractConfig struct {
	ExportPath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		AWS: AWSConfig{
			Region:       getEnv("AWS_REGION", ""),
			Bucket:       getEnv("INVOICE_S3_BUCKET", ""),
			PollInterval: getEnvAsDuration("TEXTRACT_POLL_INTERVAL", 5*time.Second),
			JobTimeout:   getEnvAsDuration("TEXTRACT_JOB_TIMEOUT", 10*time.Minute),
		},
		Extract: ExtractConfig{
			ExportPath: getEnv("INVOICE_EXPORT_PATH", ""),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.AWS.Bucket == "" {
		return NewAppError("CONFIG_ERROR", "INVOICE_S3_BUCKET is required", ErrInvalidInput)
	}
	if c.AWS.PollInterval <= 0 {
		return NewAppError("CONFIG_ERROR", "TEXTRACT_POLL_INTERVAL must be positive", ErrInvalidInput)
	}
	return nil
}
