package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pospenjualan/internal/middleware"
	"pospenjualan/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	sessions map[string]*model.Session
	rotateTo string // when set, Rotate swaps to this token
}

func newStubStore() *stubStore { return &stubStore{sessions: make(map[string]*model.Session)} }

func (s *stubStore) Get(_ context.Context, token string) (*model.Session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, errors.New("session not found or expired")
	}
	cp := *sess
	cp.Token = token
	return &cp, nil
}

func (s *stubStore) Touch(_ context.Context, _ *model.Session) error { return nil }

func (s *stubStore) Rotate(_ context.Context, sess *model.Session) (bool, error) {
	if s.rotateTo == "" {
		return false, nil
	}
	delete(s.sessions, sess.Token)
	sess.Token = s.rotateTo
	s.sessions[s.rotateTo] = sess
	return true, nil
}

func newTestRouter(store *stubStore, required model.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cookie := middleware.CookieConfig{Name: "pos_session", MaxAge: 1800}
	r.GET("/guarded",
		middleware.SessionAuth(store, cookie),
		middleware.RequireLevel(required, "/dashboard"),
		func(c *gin.Context) {
			c.String(http.StatusOK, middleware.GetSession(c).Username)
		})
	return r
}

func get(r *gin.Engine, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "pos_session", Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionAuthRedirectsWithoutCookie(t *testing.T) {
	r := newTestRouter(newStubStore(), model.RoleKasir)
	w := get(r, "")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestSessionAuthRedirectsOnExpiredSession(t *testing.T) {
	r := newTestRouter(newStubStore(), model.RoleKasir)
	w := get(r, "dead-token")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireLevelPassesAndRefuses(t *testing.T) {
	store := newStubStore()
	store.sessions["tok"] = &model.Session{Username: "manager1", Level: model.RoleManager}

	// Manager reaches a manager page.
	w := get(newTestRouter(store, model.RoleManager), "tok")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "manager1", w.Body.String())

	// But is bounced off an admin page.
	w = get(newTestRouter(store, model.RoleAdmin), "tok")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestSessionAuthResetsCookieOnRotation(t *testing.T) {
	store := newStubStore()
	store.sessions["old"] = &model.Session{Username: "kasir1", Level: model.RoleKasir}
	store.rotateTo = "new"

	w := get(newTestRouter(store, model.RoleKasir), "old")
	require.Equal(t, http.StatusOK, w.Code)

	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "pos_session" {
			found = true
			assert.Equal(t, "new", c.Value)
			assert.True(t, c.HttpOnly)
		}
	}
	assert.True(t, found, "rotated token must be re-set on the cookie")
}
