package web

import (
	"net/http"

	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/pkg/config"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// sessionStore reads and writes the signed session cookie
type sessionStore struct {
	manager  users.SessionManager
	settings *config.SessionSettings
}

func newSessionStore(manager users.SessionManager, settings *config.SessionSettings) *sessionStore {
	return &sessionStore{manager: manager, settings: settings}
}

// Start issues a token for userID and sets it as the session cookie
func (s *sessionStore) Start(ctx *gin.Context, userID string) error {
	token, err := s.manager.Issue(userID)
	if err != nil {
		return err
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(s.settings.CookieName, token, int(s.manager.MaxAge().Seconds()), "/", "", s.settings.Secure, true)
	return nil
}

// Clear expires the session cookie
func (s *sessionStore) Clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(s.settings.CookieName, "", -1, "/", "", s.settings.Secure, true)
}

// UserID returns the user ID of a valid session cookie
func (s *sessionStore) UserID(ctx *gin.Context) (string, bool) {
	token, err := ctx.Cookie(s.settings.CookieName)
	if err != nil || token == "" {
		return "", false
	}

	userID, err := s.manager.Parse(token)
	if err != nil {
		return "", false
	}
	return userID, true
}

// RequireUser loads the signed-in user into the context.
// Requests without a valid session are redirected to /login and a stale cookie is cleared.
func RequireUser(store *sessionStore, userService users.UserService, log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := store.UserID(ctx)
		if !ok {
			if _, err := ctx.Cookie(store.settings.CookieName); err == nil {
				store.Clear(ctx)
			}
			ctx.Redirect(http.StatusFound, "/login")
			ctx.Abort()
			return
		}

		user, err := userService.GetByID(ctx, userID)
		if err != nil {
			log.Warn("session refers to unknown user", "user_id", userID, "error", err)
			store.Clear(ctx)
			ctx.Redirect(http.StatusFound, "/login")
			ctx.Abort()
			return
		}

		ctx.Set(currentUserKey, user)
		ctx.Next()
	}
}

// CurrentUser returns the user stored by RequireUser
func CurrentUser(ctx *gin.Context) *users.User {
	value, ok := ctx.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := value.(*users.User)
	return user
}
