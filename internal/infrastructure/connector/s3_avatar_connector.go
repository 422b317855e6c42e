package connector

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MGTheTrain/kudos/internal/domain/avatars"
	"github.com/MGTheTrain/kudos/internal/pkg/config"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client used for avatars
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3AvatarConnector struct {
	client   S3API
	bucket   string
	region   string
	endpoint string
	logger   logger.Logger
}

// NewS3AvatarConnector creates an AvatarConnector backed by AWS S3.
// When settings.Endpoint is set, requests go to that endpoint with path-style addressing.
func NewS3AvatarConnector(ctx context.Context, settings *config.ObjectStorageSettings, log logger.Logger) (avatars.AvatarConnector, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(settings.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			settings.AccessKeyID,
			settings.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if settings.Endpoint != "" {
			o.BaseEndpoint = aws.String(settings.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3AvatarConnectorWithClient(client, settings, log), nil
}

// NewS3AvatarConnectorWithClient creates an AvatarConnector over an existing S3 client
func NewS3AvatarConnectorWithClient(client S3API, settings *config.ObjectStorageSettings, log logger.Logger) avatars.AvatarConnector {
	return &s3AvatarConnector{
		client:   client,
		bucket:   settings.BucketName,
		region:   settings.Region,
		endpoint: settings.Endpoint,
		logger:   log,
	}
}

func (c *s3AvatarConnector) Upload(ctx context.Context, object *avatars.Object) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(object.Key),
		Body:        object.Body,
		ContentType: aws.String(object.ContentType),
	}
	if object.Size > 0 {
		input.ContentLength = aws.Int64(object.Size)
	}

	if _, err := c.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", object.Key, c.bucket, err)
	}

	c.logger.Info("uploaded avatar", "bucket", c.bucket, "key", object.Key, "size", object.Size)
	return c.location(object.Key), nil
}

func (c *s3AvatarConnector) Delete(ctx context.Context, key string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s from bucket %s: %w", key, c.bucket, err)
	}

	c.logger.Info("deleted avatar", "bucket", c.bucket, "key", key)
	return nil
}

// location returns the public URL of key
func (c *s3AvatarConnector) location(key string) string {
	if c.endpoint != "" {
		return strings.TrimRight(c.endpoint, "/") + "/" + c.bucket + "/" + escapeKey(key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, escapeKey(key))
}

// escapeKey escapes each path segment of an object key
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
