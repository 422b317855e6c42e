package web

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"
	"github.com/MGTheTrain/kudos/internal/pkg/validators"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for the login page and session endpoints
type AuthHandler interface {
	ShowLogin(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type authHandler struct {
	authService users.AuthService
	userService users.UserService
	sessions    *sessionStore
	logger      logger.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService, userService users.UserService, sessions *sessionStore, logger logger.Logger) AuthHandler {
	return &authHandler{
		authService: authService,
		userService: userService,
		sessions:    sessions,
		logger:      logger,
	}
}

// ShowLogin renders the login form, or redirects to /home when already signed in.
// ?action=register opens the form in register mode.
func (handler *authHandler) ShowLogin(ctx *gin.Context) {
	if userID, ok := handler.sessions.UserID(ctx); ok {
		if _, err := handler.userService.GetByID(ctx, userID); err == nil {
			ctx.Redirect(http.StatusFound, "/home")
			return
		}
		handler.sessions.Clear(ctx)
	}

	state := NewLoginFormState(ActionLogin)
	if ctx.Query("action") == ActionRegister {
		state = state.Toggle()
	}

	handler.render(ctx, http.StatusOK, state)
}

// Login handles both sign in and sign up, selected by the _action field
func (handler *authHandler) Login(ctx *gin.Context) {
	action, hasAction := ctx.GetPostForm("_action")
	email, hasEmail := ctx.GetPostForm("email")
	password, hasPassword := ctx.GetPostForm("password")
	firstName, hasFirstName := ctx.GetPostForm("firstName")
	lastName, hasLastName := ctx.GetPostForm("lastName")

	state := NewLoginFormState(action).Merge(LoginFormState{
		Fields: LoginFields{
			Email:     email,
			Password:  password,
			FirstName: firstName,
			LastName:  lastName,
		},
	})

	if !hasAction || !hasEmail || !hasPassword {
		handler.render(ctx, http.StatusBadRequest, state.Merge(LoginFormState{FormError: invalidFormData}))
		return
	}
	if action == ActionRegister && (!hasFirstName || !hasLastName) {
		handler.render(ctx, http.StatusBadRequest, state.Merge(LoginFormState{FormError: invalidFormData}))
		return
	}

	fieldErrors := validators.FieldErrors{}
	fieldErrors.Add("email", validators.ValidateEmail(email))
	fieldErrors.Add("password", validators.ValidatePassword(password))
	if action == ActionRegister {
		fieldErrors.Add("firstName", validators.ValidateName(firstName))
		fieldErrors.Add("lastName", validators.ValidateName(lastName))
	}

	if fieldErrors.Any() {
		handler.render(ctx, http.StatusBadRequest, state.Merge(LoginFormState{Errors: fieldErrors}))
		return
	}

	switch action {
	case ActionLogin:
		handler.login(ctx, state, email, password)
	case ActionRegister:
		handler.register(ctx, state, users.RegisterInput{
			Email:     email,
			Password:  password,
			FirstName: firstName,
			LastName:  lastName,
		})
	default:
		handler.render(ctx, http.StatusBadRequest, state.Merge(LoginFormState{FormError: invalidFormData}))
	}
}

func (handler *authHandler) login(ctx *gin.Context, state LoginFormState, email, password string) {
	user, err := handler.authService.Login(ctx, email, password)
	if err != nil {
		if !errors.Is(err, users.ErrInvalidCredentials) {
			handler.logger.Error("login failed", "error", err)
		}
		handler.render(ctx, http.StatusBadRequest, state.Merge(LoginFormState{FormError: incorrectLogin}))
		return
	}

	handler.startSession(ctx, state, user)
}

func (handler *authHandler) register(ctx *gin.Context, state LoginFormState, input users.RegisterInput) {
	user, err := handler.authService.Register(ctx, input)
	if errors.Is(err, users.ErrEmailTaken) {
		handler.render(ctx, http.StatusBadRequest, state.Merge(LoginFormState{FormError: emailTaken}))
		return
	}
	if errors.Is(err, users.ErrInvalidEmail) {
		handler.render(ctx, http.StatusBadRequest, state.Merge(LoginFormState{
			Errors: validators.FieldErrors{"email": invalidEmail},
		}))
		return
	}
	if err != nil {
		handler.logger.Error("registration failed", "error", err)
		handler.render(ctx, http.StatusBadRequest, state.Merge(LoginFormState{FormError: registrationFail}))
		return
	}

	handler.startSession(ctx, state, user)
}

func (handler *authHandler) startSession(ctx *gin.Context, state LoginFormState, user *users.User) {
	if err := handler.sessions.Start(ctx, user.ID); err != nil {
		handler.logger.Error("failed to start session", "user_id", user.ID, "error", err)
		handler.render(ctx, http.StatusInternalServerError, state.Merge(LoginFormState{FormError: "Could not sign you in, please try again."}))
		return
	}

	ctx.Redirect(http.StatusFound, "/home")
}

// Logout clears the session cookie
func (handler *authHandler) Logout(ctx *gin.Context) {
	handler.sessions.Clear(ctx)
	ctx.Redirect(http.StatusFound, "/login")
}

func (handler *authHandler) render(ctx *gin.Context, status int, state LoginFormState) {
	ctx.HTML(status, loginTemplate, loginPage{
		page: page{Title: "Welcome"},
		Form: state,
	})
}
