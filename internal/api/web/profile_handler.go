package web

import (
	"net/http"

	"github.com/MGTheTrain/kudos/internal/domain/avatars"
	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"
	"github.com/MGTheTrain/kudos/internal/pkg/validators"

	"github.com/gin-gonic/gin"
)

// Profile form actions
const (
	profileActionSave   = "save"
	profileActionDelete = "delete"
)

// ProfileHandler defines the interface for the profile settings page
type ProfileHandler interface {
	ShowProfile(ctx *gin.Context)
	UpdateProfile(ctx *gin.Context)
}

type profileHandler struct {
	userService   users.UserService
	avatarService avatars.AvatarUploadService
	sessions      *sessionStore
	maxAvatarSize int64
	logger        logger.Logger
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(userService users.UserService, avatarService avatars.AvatarUploadService, sessions *sessionStore, maxAvatarSize int64, logger logger.Logger) ProfileHandler {
	return &profileHandler{
		userService:   userService,
		avatarService: avatarService,
		sessions:      sessions,
		maxAvatarSize: maxAvatarSize,
		logger:        logger,
	}
}

func (handler *profileHandler) ShowProfile(ctx *gin.Context) {
	user := CurrentUser(ctx)
	department := user.Profile.Department
	if department == "" {
		department = users.DefaultDepartment
	}

	handler.render(ctx, http.StatusOK, profilePage{
		Fields: ProfileFields{
			FirstName:  user.Profile.FirstName,
			LastName:   user.Profile.LastName,
			Department: string(department),
		},
	})
}

// UpdateProfile saves the profile or, with _action=delete, removes the account
func (handler *profileHandler) UpdateProfile(ctx *gin.Context) {
	switch action := ctx.PostForm("_action"); action {
	case "", profileActionSave:
		handler.save(ctx)
	case profileActionDelete:
		handler.delete(ctx)
	default:
		handler.render(ctx, http.StatusBadRequest, profilePage{FormError: invalidFormData})
	}
}

func (handler *profileHandler) save(ctx *gin.Context) {
	user := CurrentUser(ctx)

	firstName, hasFirstName := ctx.GetPostForm("firstName")
	lastName, hasLastName := ctx.GetPostForm("lastName")
	department, hasDepartment := ctx.GetPostForm("department")

	data := profilePage{
		Fields: ProfileFields{
			FirstName:  firstName,
			LastName:   lastName,
			Department: department,
		},
	}

	if !hasFirstName || !hasLastName || !hasDepartment {
		data.FormError = invalidFormData
		handler.render(ctx, http.StatusBadRequest, data)
		return
	}

	fieldErrors := validators.FieldErrors{}
	fieldErrors.Add("firstName", validators.ValidateName(firstName))
	fieldErrors.Add("lastName", validators.ValidateName(lastName))
	fieldErrors.Add("department", validators.ValidateName(department))
	if _, failed := fieldErrors["department"]; !failed && !users.Department(department).Valid() {
		fieldErrors.Add("department", "Please select a department from the list")
	}

	if fieldErrors.Any() {
		data.Errors = fieldErrors
		handler.render(ctx, http.StatusBadRequest, data)
		return
	}

	_, err := handler.userService.UpdateProfile(ctx, user.ID, users.ProfileUpdate{
		FirstName:  firstName,
		LastName:   lastName,
		Department: users.Department(department),
	})
	if err != nil {
		handler.logger.Error("failed to update profile", "user_id", user.ID, "error", err)
		data.FormError = "Something went wrong saving your profile."
		handler.render(ctx, http.StatusInternalServerError, data)
		return
	}

	ctx.Redirect(http.StatusFound, "/home")
}

func (handler *profileHandler) delete(ctx *gin.Context) {
	user := CurrentUser(ctx)

	if err := handler.userService.DeleteByID(ctx, user.ID); err != nil {
		handler.logger.Error("failed to delete user", "user_id", user.ID, "error", err)
		handler.render(ctx, http.StatusInternalServerError, profilePage{
			FormError: "Something went wrong deleting your account.",
		})
		return
	}

	if err := handler.avatarService.Remove(ctx, user); err != nil {
		handler.logger.Warn("failed to remove avatar of deleted user", "user_id", user.ID, "error", err)
	}

	handler.sessions.Clear(ctx)
	ctx.Redirect(http.StatusFound, "/login")
}

func (handler *profileHandler) render(ctx *gin.Context, status int, data profilePage) {
	user := CurrentUser(ctx)
	data.page = page{Title: "Profile Settings", User: user}
	data.Departments = users.Departments
	data.MaxAvatar = handler.maxAvatarSize
	if data.Fields == (ProfileFields{}) && !data.Errors.Any() {
		data.Fields = ProfileFields{
			FirstName:  user.Profile.FirstName,
			LastName:   user.Profile.LastName,
			Department: string(user.Profile.Department),
		}
	}
	ctx.HTML(status, profileTemplate, data)
}
