package web

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/kudos/internal/domain/avatars"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// multipartOverhead covers boundaries and part headers around the file
const multipartOverhead = 64 << 10

// AvatarHandler defines the interface for the avatar upload endpoint
type AvatarHandler interface {
	Upload(ctx *gin.Context)
}

type avatarHandler struct {
	avatarService avatars.AvatarUploadService
	maxSize       int64
	logger        logger.Logger
}

// NewAvatarHandler creates a new AvatarHandler
func NewAvatarHandler(avatarService avatars.AvatarUploadService, maxSize int64, logger logger.Logger) AvatarHandler {
	return &avatarHandler{
		avatarService: avatarService,
		maxSize:       maxSize,
		logger:        logger,
	}
}

// Upload handles the POST request carrying the profile-pic file
// and responds with the location of the stored picture.
func (handler *avatarHandler) Upload(ctx *gin.Context) {
	user := CurrentUser(ctx)

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, handler.maxSize+multipartOverhead)

	form, err := ctx.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: avatars.ErrFileTooLarge.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form"})
		return
	}

	location, err := handler.avatarService.Upload(ctx, user.ID, form)
	if err != nil {
		if errors.Is(err, avatars.ErrMissingFile) ||
			errors.Is(err, avatars.ErrFileTooLarge) ||
			errors.Is(err, avatars.ErrUnsupportedType) {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		handler.logger.Error("avatar upload failed", "user_id", user.ID, "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to upload profile picture"})
		return
	}

	ctx.JSON(http.StatusOK, AvatarResponse{ImageURL: location})
}
