package web

import (
	"net/http"
	"unicode/utf8"

	"github.com/MGTheTrain/kudos/internal/app"
	"github.com/MGTheTrain/kudos/internal/domain/kudos"
	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const maxFilterLength = 100

// HomeHandler defines the interface for the home page
type HomeHandler interface {
	Home(ctx *gin.Context)
}

type homeHandler struct {
	userService users.UserService
	kudoService kudos.KudoService
	logger      logger.Logger
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(userService users.UserService, kudoService kudos.KudoService, logger logger.Logger) HomeHandler {
	return &homeHandler{
		userService: userService,
		kudoService: kudoService,
		logger:      logger,
	}
}

// Home renders the user panel, the recent kudos and the signed-in user's feed.
// The feed honours the filter and sort query parameters.
func (handler *homeHandler) Home(ctx *gin.Context) {
	user := CurrentUser(ctx)

	query := kudos.NewKudoQuery()
	query.RecipientID = user.ID
	query.Filter = truncate(ctx.Query("filter"), maxFilterLength)
	if sortBy := ctx.Query("sort"); isSortOption(sortBy) {
		query.SortBy = sortBy
	}

	data := homePage{
		page:        page{Title: "Home", User: user},
		Filter:      query.Filter,
		SortBy:      query.SortBy,
		SortOptions: kudos.SortOptions,
	}

	others, err := handler.userService.ListOthers(ctx, user.ID)
	if err != nil {
		handler.fail(ctx, data, "failed to list users", err)
		return
	}
	data.Users = others

	feed, err := handler.kudoService.Feed(ctx, query)
	if err != nil {
		handler.fail(ctx, data, "failed to load feed", err)
		return
	}
	data.Kudos = feed

	recent, err := handler.kudoService.Recent(ctx, app.DefaultRecentLimit)
	if err != nil {
		handler.fail(ctx, data, "failed to load recent kudos", err)
		return
	}
	data.Recent = recent

	ctx.HTML(http.StatusOK, homeTemplate, data)
}

func (handler *homeHandler) fail(ctx *gin.Context, data homePage, msg string, err error) {
	handler.logger.Error(msg, "user_id", data.User.ID, "error", err)
	data.Error = "Something went wrong loading your kudos."
	ctx.HTML(http.StatusInternalServerError, homeTemplate, data)
}

func isSortOption(value string) bool {
	for _, option := range kudos.SortOptions {
		if option.Value == value {
			return true
		}
	}
	return false
}

func truncate(s string, maxRunes int) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	return string([]rune(s)[:maxRunes])
}
