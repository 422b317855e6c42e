//go:build unit
// +build unit

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/infrastructure/auth"
	"github.com/MGTheTrain/kudos/internal/pkg/config"
	"github.com/MGTheTrain/kudos/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testMaxAvatarSize = 1 << 20

// testApp bundles a router with the mocked services behind it
type testApp struct {
	router   *gin.Engine
	sessions users.SessionManager
	settings *config.SessionSettings

	authService   *MockAuthService
	userService   *MockUserService
	kudoService   *MockKudoService
	avatarService *MockAvatarUploadService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	settings := &config.SessionSettings{Secret: "test-session-secret-123", MaxAge: time.Hour}
	sessions, err := auth.NewJWTSessionManager(settings)
	require.NoError(t, err)

	a := &testApp{
		router:        gin.New(),
		sessions:      sessions,
		settings:      settings,
		authService:   new(MockAuthService),
		userService:   new(MockUserService),
		kudoService:   new(MockKudoService),
		avatarService: new(MockAvatarUploadService),
	}

	err = SetupRoutes(a.router, settings, sessions,
		a.authService, a.userService, a.kudoService, a.avatarService,
		testMaxAvatarSize, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	return a
}

// signIn registers user as the owner of a valid session and returns its cookie
func (a *testApp) signIn(t *testing.T, user *users.User) *http.Cookie {
	t.Helper()

	a.userService.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	token, err := a.sessions.Issue(user.ID)
	require.NoError(t, err)

	return &http.Cookie{Name: a.settings.CookieName, Value: token}
}

func (a *testApp) serve(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func newTestUser(first, last string) *users.User {
	return &users.User{
		ID:    uuid.NewString(),
		Email: first + "@kudos.com",
		Profile: users.Profile{
			FirstName:  first,
			LastName:   last,
			Department: users.DepartmentEngineering,
		},
	}
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
