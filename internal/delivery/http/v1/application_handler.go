package v1

import (
	"net/http"

	"yuva-hire-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(r Routes, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	students := r.Student.Group("/applications")
	{
		students.POST("", handler.Apply)
		students.GET("", handler.ListMine)
	}

	r.Admin.PATCH("/applications/:id/status", handler.UpdateStatus)
}

type ApplyRequest struct {
	JobID string `json:"jobId" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ApplicationResponse struct {
	Application *domain.Application `json:"application"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Students may apply once to an active job of their own college.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      ApplyRequest  true  "Job to apply to"
// @Success      201   {object}  ApplicationResponse
// @Failure      400   {object}  response.ErrorBody
// @Failure      403   {object}  response.ErrorBody
// @Failure      404   {object}  response.ErrorBody
// @Failure      409   {object}  response.ErrorBody
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), currentUser(c), req.JobID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	created(c, ApplicationResponse{Application: app})
}

// ListMine godoc
// @Summary      My applications
// @Description  Newest first, each with the job's public fields.
// @Tags         applications
// @Produce      json
// @Success      200  {object}  ApplicationListResponse
// @Failure      403  {object}  response.ErrorBody
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	apps, err := h.applicationUC.ListMine(c.Request.Context(), currentUser(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	c.JSON(http.StatusOK, ApplicationListResponse{Applications: apps})
}

// UpdateStatus godoc
// @Summary      Move an application through the pipeline
// @Description  pending → interview_scheduled → offer_received, with accepted and rejected as terminal states.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "New status"
// @Success      200   {object}  ApplicationResponse
// @Failure      400   {object}  response.ErrorBody
// @Failure      404   {object}  response.ErrorBody
// @Failure      409   {object}  response.ErrorBody
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.applicationUC.UpdateStatus(c.Request.Context(), currentUser(c), c.Param("id"), req.Status)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ApplicationResponse{Application: app})
}
