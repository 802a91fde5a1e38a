package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Mongo      MongoConfig      `mapstructure:"mongo" validate:"required"`
	Redis      RedisConfig      `mapstructure:"redis" validate:"required"`
	Gemini     GeminiConfig     `mapstructure:"gemini" validate:"required"`
	Extraction ExtractionConfig `mapstructure:"extraction" validate:"required"`
}

// ServerConfig contains all HTTP server related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// MongoConfig contains the document store connection settings.
type MongoConfig struct {
	URI      string `mapstructure:"uri" validate:"required,url"`
	Database string `mapstructure:"database" validate:"required"`
}

// RedisConfig contains the cache connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr" validate:"required,hostname_port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
}

// GeminiConfig contains the extraction API settings.
type GeminiConfig struct {
	APIKey    string `mapstructure:"api_key" validate:"required"`
	ModelName string `mapstructure:"model_name" validate:"required"`
}

// ExtractionConfig contains the settings for upload intake and the
// extraction worker pool.
type ExtractionConfig struct {
	UploadDir string `mapstructure:"upload_dir" validate:"required"`
	Workers   int    `mapstructure:"workers" validate:"required,gt=0"`
	QueueSize int    `mapstructure:"queue_size" validate:"required,gt=0"`
}
