package web

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/kudos/internal/domain/kudos"
	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"
	"github.com/MGTheTrain/kudos/internal/pkg/validators"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KudoHandler defines the interface for the kudo form of a recipient
type KudoHandler interface {
	ShowKudoForm(ctx *gin.Context)
	SendKudo(ctx *gin.Context)
}

type kudoHandler struct {
	userService users.UserService
	kudoService kudos.KudoService
	logger      logger.Logger
}

// NewKudoHandler creates a new KudoHandler
func NewKudoHandler(userService users.UserService, kudoService kudos.KudoService, logger logger.Logger) KudoHandler {
	return &kudoHandler{
		userService: userService,
		kudoService: kudoService,
		logger:      logger,
	}
}

// ShowKudoForm renders the kudo form for :userId; unknown recipients go back to /home
func (handler *kudoHandler) ShowKudoForm(ctx *gin.Context) {
	recipient, ok := handler.recipient(ctx)
	if !ok {
		ctx.Redirect(http.StatusFound, "/home")
		return
	}

	handler.render(ctx, http.StatusOK, kudoPage{
		Recipient: recipient,
		Style:     kudos.KudoStyle{}.WithDefaults(),
	})
}

// SendKudo stores a kudo for :userId and redirects to /home
func (handler *kudoHandler) SendKudo(ctx *gin.Context) {
	recipient, ok := handler.recipient(ctx)
	if !ok {
		ctx.Redirect(http.StatusFound, "/home")
		return
	}

	message := ctx.PostForm("message")
	style := kudos.KudoStyle{
		BackgroundColor: kudos.Color(ctx.PostForm("backgroundColor")),
		TextColor:       kudos.Color(ctx.PostForm("textColor")),
		Emoji:           kudos.Emoji(ctx.PostForm("emoji")),
	}.WithDefaults()

	data := kudoPage{
		Recipient: recipient,
		Message:   message,
		Style:     style,
	}

	if msg := validators.ValidateMessage(message); msg != "" {
		data.Error = msg
		handler.render(ctx, http.StatusBadRequest, data)
		return
	}
	if !style.BackgroundColor.Valid() || !style.TextColor.Valid() || !style.Emoji.Valid() {
		data.Error = "Please pick a color and an emoji from the list"
		data.Style = kudos.KudoStyle{}.WithDefaults()
		handler.render(ctx, http.StatusBadRequest, data)
		return
	}

	_, err := handler.kudoService.Send(ctx, kudos.SendInput{
		AuthorID:    CurrentUser(ctx).ID,
		RecipientID: recipient.ID,
		Message:     message,
		Style:       style,
	})
	switch {
	case err == nil:
		ctx.Redirect(http.StatusFound, "/home")
	case errors.Is(err, kudos.ErrRecipientNotFound):
		ctx.Redirect(http.StatusFound, "/home")
	case errors.Is(err, kudos.ErrSelfKudo), errors.Is(err, kudos.ErrEmptyMessage):
		data.Error = err.Error()
		handler.render(ctx, http.StatusBadRequest, data)
	default:
		handler.logger.Error("failed to send kudo", "recipient_id", recipient.ID, "error", err)
		data.Error = "Something went wrong sending your kudo."
		handler.render(ctx, http.StatusInternalServerError, data)
	}
}

// recipient loads :userId, refusing malformed IDs and the signed-in user
func (handler *kudoHandler) recipient(ctx *gin.Context) (*users.User, bool) {
	userID := ctx.Param("userId")
	if _, err := uuid.Parse(userID); err != nil {
		return nil, false
	}
	if userID == CurrentUser(ctx).ID {
		return nil, false
	}

	recipient, err := handler.userService.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, users.ErrUserNotFound) {
			handler.logger.Error("failed to load recipient", "recipient_id", userID, "error", err)
		}
		return nil, false
	}
	return recipient, true
}

func (handler *kudoHandler) render(ctx *gin.Context, status int, data kudoPage) {
	data.page = page{Title: "Send Kudos", User: CurrentUser(ctx)}
	data.Colors = kudos.Colors
	data.Emojis = kudos.Emojis
	ctx.HTML(status, kudoTemplate, data)
}
