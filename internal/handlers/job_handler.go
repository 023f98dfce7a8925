package handlers

import (
	"net/http"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// JobHandler serves the public job views.
type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("", h.ListActive)
		jobs.GET("/:slug", h.GetBySlug)
	}
}

// ListActive returns the card projection of active jobs, newest first.
// An empty board answers with an empty array, not an error.
func (h *JobHandler) ListActive(c *gin.Context) {
	cards, err := h.jobService.ListActive(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if cards == nil {
		// an empty board is an empty array, never null
		cards = []models.JobCard{}
	}
	c.JSON(http.StatusOK, gin.H{"jobs": cards})
}

// GetBySlug returns exactly one job. Not found and fetch errors are
// distinct outcomes.
func (h *JobHandler) GetBySlug(c *gin.Context) {
	job, err := h.jobService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"job": job})
}
