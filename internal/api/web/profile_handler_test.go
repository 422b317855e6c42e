//go:build unit
// +build unit

package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func profileForm(first, last, department string) url.Values {
	return url.Values{
		"_action":    {"save"},
		"firstName":  {first},
		"lastName":   {last},
		"department": {department},
	}
}

func TestProfileHandler_ShowProfile(t *testing.T) {
	a := newTestApp(t)
	me := newTestUser("Ada", "Lovelace")
	cookie := a.signIn(t, me)

	w := a.serve(httptest.NewRequest(http.MethodGet, "/home/profile", nil), cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `value="Ada"`)
	assert.Contains(t, body, `value="Lovelace"`)
	assert.Contains(t, body, `<option value="ENGINEERING" selected>`)
	assert.Contains(t, body, `name="profile-pic"`)
}

func TestProfileHandler_Save_Success(t *testing.T) {
	a := newTestApp(t)
	me := newTestUser("Ada", "Lovelace")
	cookie := a.signIn(t, me)
	a.userService.On("UpdateProfile", mock.Anything, me.ID, users.ProfileUpdate{
		FirstName:  "Augusta",
		LastName:   "King",
		Department: users.DepartmentHR,
	}).Return(me, nil)

	w := a.serve(testutil.NewFormRequest("/home/profile", profileForm("Augusta", "King", "HR")), cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))
	a.userService.AssertExpectations(t)
}

func TestProfileHandler_Save_FieldErrors(t *testing.T) {
	a := newTestApp(t)
	me := newTestUser("Ada", "Lovelace")
	cookie := a.signIn(t, me)

	w := a.serve(testutil.NewFormRequest("/home/profile", profileForm("", "King", "LEGAL")), cookie)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Please enter a value")
	assert.Contains(t, body, "Please select a department from the list")
	assert.Contains(t, body, `value="King"`)
	a.userService.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileHandler_Save_MissingFields(t *testing.T) {
	a := newTestApp(t)
	me := newTestUser("Ada", "Lovelace")
	cookie := a.signIn(t, me)

	w := a.serve(testutil.NewFormRequest("/home/profile", url.Values{"firstName": {"Ada"}}), cookie)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Form Data")
}

func TestProfileHandler_Save_ServiceError(t *testing.T) {
	a := newTestApp(t)
	me := newTestUser("Ada", "Lovelace")
	cookie := a.signIn(t, me)
	a.userService.On("UpdateProfile", mock.Anything, me.ID, mock.Anything).Return(nil, errors.New("db down"))

	w := a.serve(testutil.NewFormRequest("/home/profile", profileForm("Ada", "Lovelace", "SALES")), cookie)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestProfileHandler_Delete(t *testing.T) {
	a := newTestApp(t)
	me := newTestUser("Ada", "Lovelace")
	cookie := a.signIn(t, me)
	a.userService.On("DeleteByID", mock.Anything, me.ID).Return(nil)
	a.avatarService.On("Remove", mock.Anything, me).Return(nil)

	w := a.serve(testutil.NewFormRequest("/home/profile", url.Values{"_action": {"delete"}}), cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	cleared := findCookie(w, a.settings.CookieName)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	a.userService.AssertExpectations(t)
	a.avatarService.AssertExpectations(t)
}

func TestProfileHandler_Delete_AvatarRemovalFails(t *testing.T) {
	a := newTestApp(t)
	me := newTestUser("Ada", "Lovelace")
	cookie := a.signIn(t, me)
	a.userService.On("DeleteByID", mock.Anything, me.ID).Return(nil)
	a.avatarService.On("Remove", mock.Anything, me).Return(errors.New("bucket unavailable"))

	w := a.serve(testutil.NewFormRequest("/home/profile", url.Values{"_action": {"delete"}}), cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	a.avatarService.AssertExpectations(t)
}

func TestProfileHandler_Delete_Fails(t *testing.T) {
	a := newTestApp(t)
	me := newTestUser("Ada", "Lovelace")
	cookie := a.signIn(t, me)
	a.userService.On("DeleteByID", mock.Anything, me.ID).Return(errors.New("db down"))

	w := a.serve(testutil.NewFormRequest("/home/profile", url.Values{"_action": {"delete"}}), cookie)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	a.avatarService.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestProfileHandler_UnknownAction(t *testing.T) {
	a := newTestApp(t)
	me := newTestUser("Ada", "Lovelace")
	cookie := a.signIn(t, me)

	w := a.serve(testutil.NewFormRequest("/home/profile", url.Values{"_action": {"archive"}}), cookie)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Form Data")
}
