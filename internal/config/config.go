package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Storage  StorageConfig  `mapstructure:"storage"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port      int    `mapstructure:"port"       validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"omitempty,oneof=json pretty"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes controls how long issued bearer tokens stay
	// valid. Defaults to 60 (one hour).
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// StorageConfig selects and configures the uploaded-file backend.
type StorageConfig struct {
	// Driver is "local" for disk storage or "s3" for an S3-compatible
	// object store.
	Driver string `mapstructure:"driver" validate:"required,oneof=local s3"`

	// UploadDir is the directory for the local driver.
	UploadDir string `mapstructure:"upload_dir" validate:"required_if=Driver local"`

	// S3 settings; required only for the s3 driver. BaseEndpoint allows
	// pointing at MinIO or another S3-compatible store.
	S3Bucket       string `mapstructure:"s3_bucket"        validate:"required_if=Driver s3"`
	S3Region       string `mapstructure:"s3_region"        validate:"required_if=Driver s3"`
	S3BaseEndpoint string `mapstructure:"s3_base_endpoint"`
	S3AccessKey    string `mapstructure:"s3_access_key"`
	S3SecretKey    string `mapstructure:"s3_secret_key"`
}
