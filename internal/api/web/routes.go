package web

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/kudos/internal/domain/avatars"
	"github.com/MGTheTrain/kudos/internal/domain/kudos"
	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/pkg/config"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupRoutes loads the page templates and registers every route of the application.
func SetupRoutes(r *gin.Engine,
	sessionSettings *config.SessionSettings,
	sessionManager users.SessionManager,
	authService users.AuthService,
	userService users.UserService,
	kudoService kudos.KudoService,
	avatarService avatars.AvatarUploadService,
	maxAvatarSize int64,
	log logger.Logger) error {

	tmpl, err := LoadTemplates()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	sessions := newSessionStore(sessionManager, sessionSettings)

	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})
	r.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/home")
	})

	// Auth Routes
	authHandler := NewAuthHandler(authService, userService, sessions, log)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	signedIn := r.Group("/", RequireUser(sessions, userService, log))

	// Home Routes
	homeHandler := NewHomeHandler(userService, kudoService, log)
	signedIn.GET("/home", homeHandler.Home)

	kudoHandler := NewKudoHandler(userService, kudoService, log)
	signedIn.GET("/home/kudo/:userId", kudoHandler.ShowKudoForm)
	signedIn.POST("/home/kudo/:userId", kudoHandler.SendKudo)

	profileHandler := NewProfileHandler(userService, avatarService, sessions, maxAvatarSize, log)
	signedIn.GET("/home/profile", profileHandler.ShowProfile)
	signedIn.POST("/home/profile", profileHandler.UpdateProfile)

	// Avatar Routes
	avatarHandler := NewAvatarHandler(avatarService, maxAvatarSize, log)
	signedIn.POST("/avatar", avatarHandler.Upload)

	return nil
}
