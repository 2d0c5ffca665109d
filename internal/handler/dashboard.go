package handler

import (
	"net/http"

	"pospenjualan/internal/access"
	"pospenjualan/internal/middleware"
	"pospenjualan/internal/result"
	"pospenjualan/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.ReportService }

func NewDashboardHandler(svc service.ReportService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Get godoc
// @Summary      Dashboard
// @Description  Headline counters plus the role-specific header block (accessible pages, permissions, primary action).
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} result.Result
// @Router       /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	sess := middleware.GetSession(c)
	stats, err := h.svc.DashboardStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result.OKData("dashboard", gin.H{
		"stats": stats,
		"role":  access.DashboardData(sess),
	}))
}
