package handler

import (
	"net/http"

	"pospenjualan/internal/access"
	"pospenjualan/internal/dto"
	"pospenjualan/internal/middleware"
	"pospenjualan/internal/result"
	"pospenjualan/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc    service.AuthService
	cookie middleware.CookieConfig
}

func NewAuthHandler(svc service.AuthService, cookie middleware.CookieConfig) *AuthHandler {
	return &AuthHandler{svc: svc, cookie: cookie}
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials, opens a server-side session and sets the session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Credentials"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	sess, err := h.svc.Login(c.Request.Context(), req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, sess.Token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)

	c.JSON(http.StatusOK, result.OKData("login successful", dto.LoginResponse{
		User: dto.SessionUser{
			UserID:    sess.UserID.String(),
			Username:  sess.Username,
			Name:      sess.Name,
			Level:     int(sess.Level),
			Role:      sess.Level.Name(),
			RoleIcon:  sess.Level.Icon(),
			RoleColor: sess.Level.Color(),
		},
		Permissions: access.Permissions(sess),
	}))
}

// Logout godoc
// @Summary      Log out
// @Description  Destroys the session and clears the cookie.
// @Tags         auth
// @Produce      json
// @Success      200 {object} result.Result
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookie.Name); err == nil && token != "" {
		if err := h.svc.Logout(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusInternalServerError, result.Fail("failed to log out"))
			return
		}
	}
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, result.OK("logged out"))
}

// Me godoc
// @Summary      Current session
// @Description  Returns the identity and permissions behind the session cookie.
// @Tags         auth
// @Produce      json
// @Success      200 {object} result.Result
// @Router       /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.JSON(http.StatusOK, result.OKData("session", dto.LoginResponse{
		User: dto.SessionUser{
			UserID:    sess.UserID.String(),
			Username:  sess.Username,
			Name:      sess.Name,
			Level:     int(sess.Level),
			Role:      sess.Level.Name(),
			RoleIcon:  sess.Level.Icon(),
			RoleColor: sess.Level.Color(),
		},
		Permissions: access.Permissions(sess),
	}))
}
