package connector

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/kudos/internal/domain/avatars"
	"github.com/MGTheTrain/kudos/internal/pkg/config"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"
)

// NewAvatarConnector creates the AvatarConnector for the configured provider
func NewAvatarConnector(ctx context.Context, settings *config.ObjectStorageSettings, log logger.Logger) (avatars.AvatarConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Provider {
	case config.AwsStorageProvider:
		return NewS3AvatarConnector(ctx, settings, log)
	case config.MinioStorageProvider:
		return NewMinioAvatarConnector(settings, log)
	default:
		return nil, fmt.Errorf("unsupported object storage provider: %s", settings.Provider)
	}
}
