//go:build unit
// +build unit

package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/MGTheTrain/kudos/internal/domain/kudos"
	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestKudoHandler_ShowKudoForm(t *testing.T) {
	a := newTestApp(t)
	me := newTestUser("Ada", "Lovelace")
	grace := newTestUser("Grace", "Hopper")
	cookie := a.signIn(t, me)
	a.userService.On("GetByID", mock.Anything, grace.ID).Return(grace, nil)

	w := a.serve(httptest.NewRequest(http.MethodGet, "/home/kudo/"+grace.ID, nil), cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Grace Hopper")
	assert.Contains(t, body, "Engineering")
	assert.Contains(t, body, `<option value="YELLOW" selected>`)
}

func TestKudoHandler_ShowKudoForm_RedirectsHome(t *testing.T) {
	a := newTestApp(t)
	me := newTestUser("Ada", "Lovelace")
	cookie := a.signIn(t, me)
	unknown := uuid.NewString()
	a.userService.On("GetByID", mock.Anything, unknown).Return(nil, users.ErrUserNotFound)

	for _, id := range []string{unknown, "not-a-uuid", me.ID} {
		w := a.serve(httptest.NewRequest(http.MethodGet, "/home/kudo/"+id, nil), cookie)

		assert.Equal(t, http.StatusFound, w.Code, id)
		assert.Equal(t, "/home", w.Header().Get("Location"), id)
	}
}

func TestKudoHandler_SendKudo_Success(t *testing.T) {
	a := newTestApp(t)
	me := newTestUser("Ada", "Lovelace")
	grace := newTestUser("Grace", "Hopper")
	cookie := a.signIn(t, me)
	a.userService.On("GetByID", mock.Anything, grace.ID).Return(grace, nil)
	a.kudoService.On("Send", mock.Anything, kudos.SendInput{
		AuthorID:    me.ID,
		RecipientID: grace.ID,
		Message:     "Great talk",
		Style:       kudos.KudoStyle{BackgroundColor: kudos.ColorGreen, TextColor: kudos.ColorWhite, Emoji: kudos.EmojiHandsUp},
	}).Return(&kudos.Kudo{ID: "k1"}, nil)

	values := url.Values{
		"message":         {"Great talk"},
		"backgroundColor": {"GREEN"},
		"textColor":       {"WHITE"},
		"emoji":           {"HANDSUP"},
	}
	w := a.serve(testutil.NewFormRequest("/home/kudo/"+grace.ID, values), cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))
	a.kudoService.AssertExpectations(t)
}

func TestKudoHandler_SendKudo_EmptyMessage(t *testing.T) {
	a := newTestApp(t)
	me := newTestUser("Ada", "Lovelace")
	grace := newTestUser("Grace", "Hopper")
	cookie := a.signIn(t, me)
	a.userService.On("GetByID", mock.Anything, grace.ID).Return(grace, nil)

	w := a.serve(testutil.NewFormRequest("/home/kudo/"+grace.ID, url.Values{"message": {"   "}}), cookie)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please provide a message")
	a.kudoService.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestKudoHandler_SendKudo_InvalidStyle(t *testing.T) {
	a := newTestApp(t)
	me := newTestUser("Ada", "Lovelace")
	grace := newTestUser("Grace", "Hopper")
	cookie := a.signIn(t, me)
	a.userService.On("GetByID", mock.Anything, grace.ID).Return(grace, nil)

	values := url.Values{"message": {"hi"}, "backgroundColor": {"PURPLE"}}
	w := a.serve(testutil.NewFormRequest("/home/kudo/"+grace.ID, values), cookie)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please pick a color and an emoji from the list")
	assert.Contains(t, w.Body.String(), ">hi</textarea>")
}

func TestKudoHandler_SendKudo_RecipientGone(t *testing.T) {
	a := newTestApp(t)
	me := newTestUser("Ada", "Lovelace")
	grace := newTestUser("Grace", "Hopper")
	cookie := a.signIn(t, me)
	a.userService.On("GetByID", mock.Anything, grace.ID).Return(grace, nil)
	a.kudoService.On("Send", mock.Anything, mock.Anything).Return(nil, kudos.ErrRecipientNotFound)

	w := a.serve(testutil.NewFormRequest("/home/kudo/"+grace.ID, url.Values{"message": {"hi"}}), cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))
}
