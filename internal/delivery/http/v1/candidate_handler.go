package v1

import (
	"net/http"

	"yuva-hire-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r Routes, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	mine := r.Student.Group("/candidates")
	{
		mine.GET("/me", handler.GetMine)
		mine.PUT("/me", handler.UpdateMine)
	}

	directory := r.Admin.Group("/candidates")
	{
		directory.GET("", handler.List)
		directory.GET("/:id", handler.Get)
	}
}

type UpdateCandidateRequest struct {
	Title        *string           `json:"title"`
	Location     *string           `json:"location"`
	Experience   *string           `json:"experience"`
	Education    *string           `json:"education"`
	Skills       *[]string         `json:"skills"`
	Bio          *string           `json:"bio"`
	GPA          *float64          `json:"gpa"`
	Projects     *[]domain.Project `json:"projects"`
	Achievements *[]string         `json:"achievements"`
}

type CandidateResponse struct {
	Candidate *domain.Candidate `json:"candidate"`
}

type CandidateListResponse struct {
	Candidates []domain.Candidate `json:"candidates"`
}

// List godoc
// @Summary      Candidate directory
// @Description  Students of the admin's college. Filters are case-insensitive substrings.
// @Tags         candidates
// @Produce      json
// @Param        search    query     string  false  "Name, title or any skill"
// @Param        location  query     string  false  "Location"
// @Param        role      query     string  false  "Title"
// @Success      200  {object}  CandidateListResponse
// @Failure      403  {object}  response.ErrorBody
// @Router       /candidates [get]
// @Security     BearerAuth
func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidateUC.List(c.Request.Context(), currentUser(c), domain.CandidateFilter{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		Role:     c.Query("role"),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	if candidates == nil {
		candidates = []domain.Candidate{}
	}
	c.JSON(http.StatusOK, CandidateListResponse{Candidates: candidates})
}

// Get godoc
// @Summary      Candidate detail
// @Description  Counts as a profile view and includes the five most recent applications.
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate (user) ID"
// @Success      200  {object}  CandidateResponse
// @Failure      404  {object}  response.ErrorBody
// @Router       /candidates/{id} [get]
// @Security     BearerAuth
func (h *CandidateHandler) Get(c *gin.Context) {
	candidate, err := h.candidateUC.Get(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, CandidateResponse{Candidate: candidate})
}

// GetMine godoc
// @Summary      My candidate profile
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  CandidateResponse
// @Router       /candidates/me [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetMine(c *gin.Context) {
	candidate, err := h.candidateUC.GetMine(c.Request.Context(), currentUser(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, CandidateResponse{Candidate: candidate})
}

// UpdateMine godoc
// @Summary      Edit my candidate profile
// @Description  Partial update. Omitted fields are unchanged.
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateCandidateRequest  true  "Profile fields"
// @Success      200   {object}  CandidateResponse
// @Failure      400   {object}  response.ErrorBody
// @Router       /candidates/me [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateMine(c *gin.Context) {
	var req UpdateCandidateRequest
	if !bindJSON(c, &req) {
		return
	}

	candidate, err := h.candidateUC.UpdateMine(c.Request.Context(), currentUser(c), domain.ProfileInput{
		Title:        req.Title,
		Location:     req.Location,
		Experience:   req.Experience,
		Education:    req.Education,
		Skills:       req.Skills,
		Bio:          req.Bio,
		GPA:          req.GPA,
		Projects:     req.Projects,
		Achievements: req.Achievements,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, CandidateResponse{Candidate: candidate})
}
