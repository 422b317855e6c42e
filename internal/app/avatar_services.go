package app

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/MGTheTrain/kudos/internal/domain/avatars"
	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// avatarUploadService implements the AvatarUploadService interface
type avatarUploadService struct {
	connector   avatars.AvatarConnector
	userService users.UserService
	maxSize     int64
	logger      logger.Logger
}

// NewAvatarUploadService creates a new instance of AvatarUploadService.
// Files larger than maxSize bytes are rejected.
func NewAvatarUploadService(connector avatars.AvatarConnector, userService users.UserService, maxSize int64, logger logger.Logger) (avatars.AvatarUploadService, error) {
	if maxSize <= 0 {
		return nil, fmt.Errorf("avatar size limit must be positive, got %d", maxSize)
	}

	return &avatarUploadService{
		connector:   connector,
		userService: userService,
		maxSize:     maxSize,
		logger:      logger,
	}, nil
}

// Upload streams the profile-pic file to object storage under avatars/<userID>/
// and stores the returned location on the user's profile. The replaced picture
// is removed from storage, and so is the new one when the profile update fails.
func (s *avatarUploadService) Upload(ctx context.Context, userID string, form *multipart.Form) (string, error) {
	if form == nil || len(form.File[avatars.FormField]) == 0 {
		return "", avatars.ErrMissingFile
	}

	header := form.File[avatars.FormField][0]
	if header.Size > s.maxSize {
		return "", avatars.ErrFileTooLarge
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			s.logger.Warn("failed to close uploaded file", "error", cerr)
		}
	}()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("failed to detect content type: %w", err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", avatars.ErrUnsupportedType
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind uploaded file: %w", err)
	}

	user, err := s.userService.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	object := &avatars.Object{
		Key:         avatarKey(userID, header.Filename, mtype.Extension()),
		ContentType: mtype.String(),
		Size:        header.Size,
		Body:        file,
	}

	location, err := s.connector.Upload(ctx, object)
	if err != nil {
		return "", err
	}

	if err := s.userService.UpdateAvatar(ctx, userID, location); err != nil {
		s.discard(ctx, object.Key)
		return "", err
	}

	if previous, ok := avatarKeyFromLocation(userID, user.Profile.ProfilePicture); ok && previous != object.Key {
		s.discard(ctx, previous)
	}

	s.logger.Info("avatar uploaded", "user_id", userID, "key", object.Key, "content_type", object.ContentType)
	return location, nil
}

// Remove deletes the stored profile picture of user, if it was uploaded here
func (s *avatarUploadService) Remove(ctx context.Context, user *users.User) error {
	key, ok := avatarKeyFromLocation(user.ID, user.Profile.ProfilePicture)
	if !ok {
		return nil
	}

	if err := s.connector.Delete(ctx, key); err != nil {
		return err
	}

	s.logger.Info("avatar removed", "user_id", user.ID, "key", key)
	return nil
}

// discard removes an object the profile no longer points to; failures only leave an orphan behind
func (s *avatarUploadService) discard(ctx context.Context, key string) {
	if err := s.connector.Delete(ctx, key); err != nil {
		s.logger.Warn("failed to delete avatar object", "key", key, "error", err)
	}
}

// avatarKeyFromLocation recovers the object key of a location returned by Upload.
// Pictures stored anywhere other than avatars/<userID>/ are not ours to delete.
func avatarKeyFromLocation(userID, location string) (string, bool) {
	if location == "" || userID == "" {
		return "", false
	}

	u, err := url.Parse(location)
	if err != nil {
		return "", false
	}

	prefix := path.Join("avatars", userID) + "/"
	i := strings.Index(u.Path, prefix)
	if i < 0 || len(u.Path) == i+len(prefix) {
		return "", false
	}
	return u.Path[i:], true
}

// avatarKey builds avatars/<userID>/<name>; an unusable file name is replaced by a random one
func avatarKey(userID, fileName, ext string) string {
	name := unsafeKeyChars.ReplaceAllString(path.Base(strings.ReplaceAll(fileName, `\`, "/")), "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = uuid.NewString() + ext
	}
	return path.Join("avatars", userID, name)
}
