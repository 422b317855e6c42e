package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// CORSSettings lists the origins allowed to call the JSON endpoints
type CORSSettings struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// WebConfig is the full configuration of the kudos web application
type WebConfig struct {
	Port          string                `mapstructure:"port" validate:"required,numeric"`
	Logger        LoggerSettings        `mapstructure:"logger"`
	Database      DatabaseSettings      `mapstructure:"database"`
	ObjectStorage ObjectStorageSettings `mapstructure:"object_storage"`
	Session       SessionSettings       `mapstructure:"session"`
	CORS          CORSSettings          `mapstructure:"cors"`
}

// envBindings maps configuration keys to the environment variables deployments set
var envBindings = map[string]string{
	"object_storage.bucket_name":       "KUDOS_BUCKET_NAME",
	"object_storage.region":            "KUDOS_BUCKET_REGION",
	"object_storage.access_key_id":     "KUDOS_ACCESS_KEY_ID",
	"object_storage.secret_access_key": "KUDOS_SECRET_ACCESS_KEY",
	"object_storage.endpoint":          "KUDOS_BUCKET_ENDPOINT",
	"session.secret":                   "KUDOS_SESSION_SECRET",
	"database.dsn":                     "KUDOS_DATABASE_DSN",
}

// InitializeWebConfig reads the YAML file at path, applies KUDOS_ environment
// overrides and validates the result.
func InitializeWebConfig(path string) (*WebConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	setDefaults(v)

	v.SetEnvPrefix("KUDOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg WebConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("object_storage.provider", AwsStorageProvider)
	v.SetDefault("object_storage.max_avatar_size", DefaultMaxAvatarSize)
	v.SetDefault("session.cookie_name", DefaultSessionCookieName)
	v.SetDefault("session.max_age", DefaultSessionMaxAge)
}

// Validate checks the top-level fields and every settings section
func (c *WebConfig) Validate() error {
	validate := validator.New()

	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for WebConfig port: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.ObjectStorage.Validate(); err != nil {
		return err
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}

	return nil
}
