package v1

import (
	"net/http"

	"yuva-hire-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUC domain.DashboardUsecase
}

func NewDashboardHandler(r Routes, dashboardUC domain.DashboardUsecase) {
	handler := &DashboardHandler{dashboardUC: dashboardUC}
	r.Authed.GET("/dashboard/stats", handler.Stats)
}

type StatsResponse struct {
	Stats any `json:"stats"`
}

// Stats godoc
// @Summary      Dashboard statistics
// @Description  Admins get college-wide numbers, students get their own pipeline.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  StatsResponse
// @Failure      401  {object}  response.ErrorBody
// @Router       /dashboard/stats [get]
// @Security     BearerAuth
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardUC.Stats(c.Request.Context(), currentUser(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, StatsResponse{Stats: stats})
}
