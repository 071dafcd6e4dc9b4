package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server      ServerConfig
	Pipeline    PipelineConfig
	OpenAI      OpenAIConfig
	HuggingFace HuggingFaceConfig
	Storage     StorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// PipelineConfig tunes the notes synthesis pipeline
type PipelineConfig struct {
	ChunkSize        int
	SummaryMaxLength int
	SummaryMinLength int
}

// OpenAIConfig holds transcription (Whisper) API configuration
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// HuggingFaceConfig holds summarization model API configuration
type HuggingFaceConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	MaxRetries int
}

// StorageConfig holds report archive configuration
type StorageConfig struct {
	Type            string // "local" or "minio"
	LocalDir        string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Pipeline: PipelineConfig{
			ChunkSize:        getEnvAsInt("PIPELINE_CHUNK_SIZE", 2000),
			SummaryMaxLength: getEnvAsInt("PIPELINE_SUMMARY_MAX_LENGTH", 250),
			SummaryMinLength: getEnvAsInt("PIPELINE_SUMMARY_MIN_LENGTH", 80),
		},
		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("OPENAI_BASE_URL", ""),
			Model:   getEnv("OPENAI_TRANSCRIPTION_MODEL", "whisper-1"),
		},
		HuggingFace: HuggingFaceConfig{
			APIKey:     getEnv("HF_API_KEY", ""),
			BaseURL:    getEnv("HF_API_URL", "https://api-inference.huggingface.co"),
			Model:      getEnv("HF_SUMMARY_MODEL", "philschmid/bart-large-cnn-samsum"),
			MaxRetries: getEnvAsInt("HF_MAX_RETRIES", 3),
		},
		Storage: StorageConfig{
			Type:            getEnv("STORAGE_TYPE", "local"),
			LocalDir:        getEnv("STORAGE_LOCAL_DIR", "downloads"),
			Endpoint:        getEnv("STORAGE_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
			SecretAccessKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
			BucketName:      getEnv("STORAGE_BUCKET", "meeting-reports"),
			UseSSL:          getEnvAsBool("STORAGE_USE_SSL", false),
		},
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.Storage.Type != "local" && c.Storage.Type != "minio" {
		return fmt.Errorf("STORAGE_TYPE must be \"local\" or \"minio\", got %q", c.Storage.Type)
	}
	if c.Pipeline.ChunkSize <= 0 {
		return fmt.Errorf("PIPELINE_CHUNK_SIZE must be positive")
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
