package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion   string
	ItemsTable  string
	SNSTopicARN string

	// Photo storage configuration
	PhotoBucket string
	S3Endpoint  string // non-empty for LocalStack/minio style endpoints
	S3AccessKey string
	S3SecretKey string

	// Lambda configuration
	IsLambda bool

	// Logging and features
	LogLevel   string
	EnableCORS bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		ItemsTable:    getEnv("ITEMS_TABLE", getEnv("DYNAMODB_TABLE", "items")),
		SNSTopicARN:   getEnv("SNS_TOPIC_ARN", ""),

		PhotoBucket: getEnv("PHOTO_BUCKET", "shopping-images"),
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3AccessKey: getEnv("AWS_ACCESS_KEY_ID", "test"),
		S3SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", "test"),

		IsLambda: getEnvBool("IS_LAMBDA", os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""),

		LogLevel:   getEnv("LOG_LEVEL", "info"),
		EnableCORS: getEnvBool("ENABLE_CORS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.ItemsTable == "" {
			return fmt.Errorf("ITEMS_TABLE is required")
		}
		if c.SNSTopicARN == "" {
			return fmt.Errorf("SNS_TOPIC_ARN is required")
		}
		if c.PhotoBucket == "" {
			return fmt.Errorf("PHOTO_BUCKET is required")
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}
