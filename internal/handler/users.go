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

type UsersHandler struct{ svc service.UserService }

func NewUsersHandler(svc service.UserService) *UsersHandler { return &UsersHandler{svc: svc} }

// Create godoc
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateUserRequest true "User"
// @Success      201 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /users [post]
func (h *UsersHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, result.OKData("user created", resp))
}

// Get godoc
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        id path string true "User UUID"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /users/{id} [get]
func (h *UsersHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result.OKData("user loaded", resp))
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        search query string false "Search by username or name"
// @Param        page   query int    false "Page (default 1)"
// @Param        limit  query int    false "Rows per page (default 10)"
// @Success      200 {object} result.Result
// @Router       /users [get]
func (h *UsersHandler) List(c *gin.Context) {
	var filter dto.UserFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result.OKData("users loaded", resp))
}

// Update godoc
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id   path string true "User UUID"
// @Param        body body dto.UpdateUserRequest true "Fields to change"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /users/{id} [put]
func (h *UsersHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result.OKData("user updated", resp))
}

// Delete godoc
// @Summary      Delete user
// @Description  The caller cannot delete their own account.
// @Tags         users
// @Produce      json
// @Param        id path string true "User UUID"
// @Success      200 {object} result.Result
// @Failure      400 {object} result.Result
// @Router       /users/{id} [delete]
func (h *UsersHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sess := middleware.GetSession(c)
	if err := h.svc.Delete(c.Request.Context(), id, sess.UserID); err != nil {
		c.JSON(http.StatusBadRequest, result.Fail(err.Error()))
		return
	}
	c.JSON(http.StatusOK, result.OK("user deleted"))
}

// LevelOptions godoc
// @Summary      Role level options
// @Description  The three levels with their product-copy descriptions, for the user form dropdown.
// @Tags         users
// @Produce      json
// @Success      200 {object} result.Result
// @Router       /users/level-options [get]
func (h *UsersHandler) LevelOptions(c *gin.Context) {
	c.JSON(http.StatusOK, result.OKData("level options", access.LevelOptions()))
}
