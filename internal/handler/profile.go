package handler

import (
	"net/http"

	"pospenjualan/internal/dto"
	"pospenjualan/internal/middleware"
	"pospenjualan/internal/result"
	"pospenjualan/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler is the self-service surface: any logged-in user may edit
// their own account here regardless of level.
type ProfileHandler struct{ svc service.UserService }

func NewProfileHandler(svc service.UserService) *ProfileHandler { return &ProfileHandler{svc: svc} }

// Get godoc
// @Summary      Own profile
// @Tags         profile
// @Produce      json
// @Success      200 {object} result.Result
// @Router       /profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	sess := middleware.GetSession(c)
	resp, err := h.svc.GetByID(c.Request.Context(), sess.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result.OKData("profile loaded", resp))
}

// Update godoc
// @Summary      Update own profile
// @Description  Changes name, username and optionally the password in one transaction.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body body dto.UpdateProfileRequest true "Profile"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sess := middleware.GetSession(c)
	resp, err := h.svc.UpdateProfile(c.Request.Context(), sess.UserID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result.OKData("profile updated", resp))
}

// ChangePassword godoc
// @Summary      Change own password
// @Description  Requires the current password.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body body dto.ChangePasswordRequest true "Passwords"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /profile/password [put]
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sess := middleware.GetSession(c)
	if err := h.svc.ChangePassword(c.Request.Context(), sess.UserID, req); err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result.OK("password changed"))
}
