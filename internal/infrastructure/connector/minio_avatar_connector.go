package connector

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MGTheTrain/kudos/internal/domain/avatars"
	"github.com/MGTheTrain/kudos/internal/pkg/config"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"

	"github.com/minio/minio-go/v7"
	miniocreds "github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioAPI is the subset of the MinIO client used for avatars
type MinioAPI interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	EndpointURL() *url.URL
}

type minioAvatarConnector struct {
	client MinioAPI
	bucket string
	logger logger.Logger
}

// NewMinioAvatarConnector creates an AvatarConnector for an S3-compatible MinIO server.
// settings.Endpoint is host[:port] without scheme; UseSSL selects https.
func NewMinioAvatarConnector(settings *config.ObjectStorageSettings, log logger.Logger) (avatars.AvatarConnector, error) {
	client, err := minio.New(settings.Endpoint, &minio.Options{
		Creds:  miniocreds.NewStaticV4(settings.AccessKeyID, settings.SecretAccessKey, ""),
		Secure: settings.UseSSL,
		Region: settings.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return NewMinioAvatarConnectorWithClient(client, settings, log), nil
}

// NewMinioAvatarConnectorWithClient creates an AvatarConnector over an existing MinIO client
func NewMinioAvatarConnectorWithClient(client MinioAPI, settings *config.ObjectStorageSettings, log logger.Logger) avatars.AvatarConnector {
	return &minioAvatarConnector{
		client: client,
		bucket: settings.BucketName,
		logger: log,
	}
}

func (c *minioAvatarConnector) Upload(ctx context.Context, object *avatars.Object) (string, error) {
	size := object.Size
	if size <= 0 {
		// unknown length, minio-go switches to a streaming multipart upload
		size = -1
	}

	info, err := c.client.PutObject(ctx, c.bucket, object.Key, object.Body, size, minio.PutObjectOptions{
		ContentType: object.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", object.Key, c.bucket, err)
	}

	endpoint := strings.TrimRight(c.client.EndpointURL().String(), "/")
	location := endpoint + "/" + c.bucket + "/" + escapeKey(object.Key)

	c.logger.Info("uploaded avatar", "bucket", c.bucket, "key", object.Key, "size", info.Size)
	return location, nil
}

func (c *minioAvatarConnector) Delete(ctx context.Context, key string) error {
	if err := c.client.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %s from bucket %s: %w", key, c.bucket, err)
	}

	c.logger.Info("deleted avatar", "bucket", c.bucket, "key", key)
	return nil
}
