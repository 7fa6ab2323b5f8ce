package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Vision   VisionConfig
	LLM      LLMConfig
	Airtable AirtableConfig
	Section  SectionConfig
}

// DatabaseConfig holds audit-store configuration. The DSN is optional:
// when empty the pipeline records nothing locally.
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string
	MaxUploadBytes  int64
	ShutdownTimeout time.Duration
}

// VisionConfig holds Google Cloud Vision OCR configuration
type VisionConfig struct {
	CredentialsJSON string // service-account key blob
	Timeout         time.Duration
}

// LLMConfig holds OpenAI configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// AirtableConfig holds the external tabular store configuration
type AirtableConfig struct {
	BaseID          string
	Token           string
	ExperienceTable string
	EmployeeField   string
	BatchSize       int
	ReplaceExisting bool
	Timeout         time.Duration
}

// SectionConfig overrides the section-extraction defaults. Zero values
// fall back to the tuned defaults in the section package.
type SectionConfig struct {
	SectionCap  int
	FallbackCap int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			MaxUploadBytes:  int64(getEnvAsInt("MAX_UPLOAD_MB", 10)) << 20,
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Vision: VisionConfig{
			CredentialsJSON: getEnv("GOOGLE_APPLICATION_CREDENTIALS_JSON", ""),
			Timeout:         getEnvAsDuration("VISION_TIMEOUT", 60*time.Second),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Airtable: AirtableConfig{
			BaseID:          getEnv("AIRTABLE_BASE_ID", ""),
			Token:           getEnv("AIRTABLE_PAT", ""),
			ExperienceTable: getEnv("AIRTABLE_EXPERIENCE_TABLE", "Work Experience"),
			EmployeeField:   getEnv("AIRTABLE_EMPLOYEE_FIELD", "Employee Database"),
			BatchSize:       getEnvAsInt("AIRTABLE_BATCH_SIZE", 10),
			ReplaceExisting: getEnvAsBool("AIRTABLE_REPLACE_EXISTING", false),
			Timeout:         getEnvAsDuration("AIRTABLE_TIMEOUT", 30*time.Second),
		},
		Section: SectionConfig{
			SectionCap:  getEnvAsInt("SECTION_CHAR_CAP", 0),
			FallbackCap: getEnvAsInt("SECTION_FALLBACK_CAP", 0),
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

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
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

// Validate validates the loaded configuration. A missing credential fails
// here with a descriptive message instead of as an obscure vendor error.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrConfiguration)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrConfiguration)
	}
	if c.Airtable.BaseID == "" || c.Airtable.Token == "" {
		return NewAppError("CONFIG_ERROR", "AIRTABLE_BASE_ID and AIRTABLE_PAT are required", ErrConfiguration)
	}
	if c.Airtable.BatchSize < 1 || c.Airtable.BatchSize > 10 {
		return NewAppError("CONFIG_ERROR", "AIRTABLE_BATCH_SIZE must be between 1 and 10", ErrConfiguration)
	}
	return nil
}
