package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talenthub/recruiting-api/internal/core/domain"
	"github.com/talenthub/recruiting-api/internal/core/ports"
)

// JobHandler handles HR job publishing endpoints.
type JobHandler struct {
	jobService ports.JobService
}

func NewJobHandler(jobService ports.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

func toJobResponse(job *domain.Job) jobResponse {
	skills := make([]jobSkillResponse, 0, len(job.Skills))
	for _, s := range job.Skills {
		skills = append(skills, jobSkillResponse{
			SkillID:  s.SkillID,
			Name:     s.Name,
			Required: s.Required,
			Weight:   s.Weight,
		})
	}
	return jobResponse{
		ID:            job.ID,
		Title:         job.Title,
		Description:   job.Description,
		MinExperience: job.MinExperience,
		Skills:        skills,
		CreatedAt:     job.CreatedAt,
	}
}

// CreateJob publishes a job for the authenticated HR user.
//
// @Summary      Create a job opening
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/hr/jobs [post]
func (h *JobHandler) CreateJob(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	skills := make([]ports.JobSkillInput, 0, len(req.Skills))
	for _, s := range req.Skills {
		skills = append(skills, ports.JobSkillInput{
			Name:     s.Name,
			Required: s.Required,
			Weight:   s.Weight,
		})
	}

	job, err := h.jobService.CreateJob(c.Request().Context(), ports.CreateJobInput{
		UserID:        claims.UserID,
		Title:         req.Title,
		Description:   req.Description,
		MinExperience: *req.MinExperience,
		Skills:        skills,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toJobResponse(job))
}

// ListJobs returns the jobs owned by the authenticated HR user.
//
// @Summary      List own job openings
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listJobsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/hr/jobs [get]
func (h *JobHandler) ListJobs(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	jobs, err := h.jobService.ListJobsForUser(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}

	out := make([]jobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, toJobResponse(&jobs[i]))
	}
	return c.JSON(http.StatusOK, listJobsResponse{Data: out})
}
