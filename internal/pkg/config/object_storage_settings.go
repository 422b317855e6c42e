package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DefaultMaxAvatarSize is the upload limit applied when none is configured (5 MiB)
const DefaultMaxAvatarSize int64 = 5 << 20

// ObjectStorageSettings holds the bucket and credentials avatars are uploaded to
type ObjectStorageSettings struct {
	Provider        string `mapstructure:"provider" validate:"required,oneof=aws minio"`
	BucketName      string `mapstructure:"bucket_name" validate:"required,min=3,max=63"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id" validate:"required"`
	SecretAccessKey string `mapstructure:"secret_access_key" validate:"required"`
	Endpoint        string `mapstructure:"endpoint"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	MaxAvatarSize   int64  `mapstructure:"max_avatar_size" validate:"gte=0"`
}

// Validate checks that all fields in ObjectStorageSettings are valid
func (s *ObjectStorageSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ObjectStorageSettings: %w", err)
	}

	switch s.Provider {
	case AwsStorageProvider:
		if s.Region == "" {
			return fmt.Errorf("region is required for %s", AwsStorageProvider)
		}
	case MinioStorageProvider:
		if s.Endpoint == "" {
			return fmt.Errorf("endpoint is required for %s", MinioStorageProvider)
		}
	}

	return nil
}

// AvatarSizeLimit returns the configured avatar limit or DefaultMaxAvatarSize
func (s *ObjectStorageSettings) AvatarSizeLimit() int64 {
	if s.MaxAvatarSize <= 0 {
		return DefaultMaxAvatarSize
	}
	return s.MaxAvatarSize
}
