package v1

import (
	"net/http"

	"yuva-hire-backend/internal/delivery/http/response"
	"yuva-hire-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC         domain.JobUsecase
	applicationUC domain.ApplicationUsecase
}

func NewJobHandler(r Routes, jobUC domain.JobUsecase, applicationUC domain.ApplicationUsecase) {
	handler := &JobHandler{jobUC: jobUC, applicationUC: applicationUC}

	// Job detail is public; the listing needs a viewer for college scoping.
	r.Public.GET("/jobs/:id", handler.Get)
	r.Authed.GET("/jobs", handler.List)

	adminJobs := r.Admin.Group("/jobs")
	{
		adminJobs.POST("", handler.Create)
		adminJobs.PUT("/:id", handler.Update)
		adminJobs.DELETE("/:id", handler.Delete)
		adminJobs.GET("/:id/applications", handler.Applications)
	}

	r.Admin.GET("/admin/jobs", handler.ListMine)
}

type CreateJobRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	JobType      string   `json:"jobType" binding:"required,job_type"`
	Salary       string   `json:"salary" binding:"required"`
	SalaryPeriod string   `json:"salaryPeriod"`
	Deadline     string   `json:"deadline" binding:"required,iso_date"`
	Requirements []string `json:"requirements"`
	Status       string   `json:"status" binding:"omitempty,oneof=active closed"`
}

type UpdateJobRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Location     *string   `json:"location"`
	JobType      *string   `json:"jobType"`
	Salary       *string   `json:"salary"`
	SalaryPeriod *string   `json:"salaryPeriod"`
	Deadline     *string   `json:"deadline"`
	Requirements *[]string `json:"requirements"`
	Status       *string   `json:"status"`
}

type JobResponse struct {
	Job *domain.Job `json:"job"`
}

type JobListResponse struct {
	Jobs       []domain.Job      `json:"jobs"`
	Pagination domain.Pagination `json:"pagination"`
}

type ApplicationListResponse struct {
	Applications []domain.Application `json:"applications"`
}

func jobList(jobs []domain.Job, p domain.Pagination) JobListResponse {
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return JobListResponse{Jobs: jobs, Pagination: p}
}

// List godoc
// @Summary      List active jobs
// @Description  Students only see jobs from their own college, annotated with hasApplied.
// @Tags         jobs
// @Produce      json
// @Param        search       query     string  false  "Substring of title or description"
// @Param        location     query     string  false  "Substring of location"
// @Param        jobType      query     string  false  "Full-time, Part-time, Internship, Remote or all"
// @Param        minDeadline  query     string  false  "Only jobs with deadline on or after (YYYY-MM-DD)"
// @Param        deadline     query     string  false  "Alias of minDeadline"
// @Param        page         query     int     false  "Page number (default 1)"
// @Param        limit        query     int     false  "Page size (default 10, max 100)"
// @Success      200  {object}  JobListResponse
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	jobs, pagination, err := h.jobUC.List(c.Request.Context(), currentUser(c), domain.JobFilter{
		Search:      c.Query("search"),
		Location:    c.Query("location"),
		JobType:     c.Query("jobType"),
		MinDeadline: c.DefaultQuery("minDeadline", c.Query("deadline")),
		Page:        queryInt(c, "page"),
		Limit:       queryInt(c, "limit"),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, jobList(jobs, pagination))
}

// Get godoc
// @Summary      Job detail
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  JobResponse
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, JobResponse{Job: job})
}

// Create godoc
// @Summary      Post a job
// @Description  The job is scoped to the admin's college.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      CreateJobRequest  true  "Job"
// @Success      201   {object}  JobResponse
// @Failure      400   {object}  response.ErrorBody
// @Failure      401   {object}  response.ErrorBody
// @Failure      403   {object}  response.ErrorBody
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.jobUC.Create(c.Request.Context(), currentUser(c), domain.JobInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		JobType:      req.JobType,
		Salary:       req.Salary,
		SalaryPeriod: req.SalaryPeriod,
		Deadline:     req.Deadline,
		Requirements: req.Requirements,
		Status:       req.Status,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	created(c, JobResponse{Job: job})
}

// Update godoc
// @Summary      Update a job
// @Description  Partial update. Jobs posted by another admin are reported as not found.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Job ID"
// @Param        body  body      UpdateJobRequest  true  "Fields to change"
// @Success      200   {object}  JobResponse
// @Failure      400   {object}  response.ErrorBody
// @Failure      404   {object}  response.ErrorBody
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	var req UpdateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.jobUC.Update(c.Request.Context(), currentUser(c), c.Param("id"), domain.JobUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		JobType:      req.JobType,
		Salary:       req.Salary,
		SalaryPeriod: req.SalaryPeriod,
		Deadline:     req.Deadline,
		Requirements: req.Requirements,
		Status:       req.Status,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, JobResponse{Job: job})
}

// Delete godoc
// @Summary      Delete a job
// @Description  Also deletes every application to the job.
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.SuccessBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobUC.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessBody{Success: true})
}

// Applications godoc
// @Summary      Applications to a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  ApplicationListResponse
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *JobHandler) Applications(c *gin.Context) {
	apps, err := h.applicationUC.ListForJob(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	c.JSON(http.StatusOK, ApplicationListResponse{Applications: apps})
}

// ListMine godoc
// @Summary      Jobs posted by the current admin
// @Description  Includes closed jobs.
// @Tags         jobs
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10, max 100)"
// @Success      200    {object}  JobListResponse
// @Router       /admin/jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListMine(c *gin.Context) {
	jobs, pagination, err := h.jobUC.ListMine(c.Request.Context(), currentUser(c), queryInt(c, "page"), queryInt(c, "limit"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, jobList(jobs, pagination))
}
