//go:build unit
// +build unit

package connector

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MGTheTrain/kudos/internal/domain/avatars"
	"github.com/MGTheTrain/kudos/internal/pkg/config"
	"github.com/MGTheTrain/kudos/internal/pkg/testutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newS3Settings(endpoint string) *config.ObjectStorageSettings {
	return &config.ObjectStorageSettings{
		Provider:        config.AwsStorageProvider,
		BucketName:      "kudos-avatars",
		Region:          "eu-central-1",
		AccessKeyID:     "access",
		SecretAccessKey: "secret",
		Endpoint:        endpoint,
	}
}

func TestS3AvatarConnector_Upload_Success(t *testing.T) {
	client := new(MockS3API)
	conn := NewS3AvatarConnectorWithClient(client, newS3Settings(""), testutil.SetupTestLogger(t))

	client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return aws.ToString(in.Bucket) == "kudos-avatars" &&
			aws.ToString(in.Key) == "avatars/u1/me.png" &&
			aws.ToString(in.ContentType) == "image/png" &&
			aws.ToInt64(in.ContentLength) == 4
	})).Return(&s3.PutObjectOutput{}, nil)

	location, err := conn.Upload(context.Background(), &avatars.Object{
		Key:         "avatars/u1/me.png",
		ContentType: "image/png",
		Size:        4,
		Body:        bytes.NewReader([]byte("data")),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://kudos-avatars.s3.eu-central-1.amazonaws.com/avatars/u1/me.png", location)
	client.AssertExpectations(t)
}

func TestS3AvatarConnector_Upload_CustomEndpoint(t *testing.T) {
	client := new(MockS3API)
	conn := NewS3AvatarConnectorWithClient(client, newS3Settings("http://localhost:9000/"), testutil.SetupTestLogger(t))

	client.On("PutObject", mock.Anything, mock.Anything).Return(&s3.PutObjectOutput{}, nil)

	location, err := conn.Upload(context.Background(), &avatars.Object{
		Key:         "avatars/u1/my photo.png",
		ContentType: "image/png",
		Body:        bytes.NewReader([]byte("data")),
	})

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/kudos-avatars/avatars/u1/my%20photo.png", location)
}

func TestS3AvatarConnector_Upload_Error(t *testing.T) {
	client := new(MockS3API)
	conn := NewS3AvatarConnectorWithClient(client, newS3Settings(""), testutil.SetupTestLogger(t))

	client.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

	location, err := conn.Upload(context.Background(), &avatars.Object{
		Key:  "avatars/u1/me.png",
		Body: bytes.NewReader([]byte("data")),
	})

	assert.Error(t, err)
	assert.Empty(t, location)
	assert.Contains(t, err.Error(), "access denied")
}

func TestS3AvatarConnector_Delete(t *testing.T) {
	client := new(MockS3API)
	conn := NewS3AvatarConnectorWithClient(client, newS3Settings(""), testutil.SetupTestLogger(t))

	client.On("DeleteObject", mock.Anything, mock.MatchedBy(func(in *s3.DeleteObjectInput) bool {
		return aws.ToString(in.Key) == "avatars/u1/me.png"
	})).Return(&s3.DeleteObjectOutput{}, nil)

	err := conn.Delete(context.Background(), "avatars/u1/me.png")

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestEscapeKey(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"avatars/u1/me.png", "avatars/u1/me.png"},
		{"avatars/u1/my photo.png", "avatars/u1/my%20photo.png"},
		{"avatars/u1/a?b.png", "avatars/u1/a%3Fb.png"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeKey(tt.key))
		})
	}
}
