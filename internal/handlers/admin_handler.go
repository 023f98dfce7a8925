package handlers

import (
	"net/http"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the secret-gated dashboard API. The gate is a UI
// convenience only; real access control lives in the store.
type AdminHandler struct {
	*BaseHandler
	jobService     services.JobService
	jobTypeService services.JobTypeService
	appService     services.ApplicationService
}

func NewAdminHandler(
	base *BaseHandler,
	jobService services.JobService,
	jobTypeService services.JobTypeService,
	appService services.ApplicationService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    base,
		jobService:     jobService,
		jobTypeService: jobTypeService,
		appService:     appService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/jobs", h.ListJobs)
	r.POST("/jobs", h.CreateJob)
	r.PUT("/jobs/:id", h.UpdateJob)
	r.DELETE("/jobs/:id", h.DeleteJob)

	r.GET("/job-types", h.ListJobTypes)
	r.POST("/job-types", h.CreateJobType)
	r.DELETE("/job-types/:id", h.DeleteJobType)

	r.GET("/applications", h.ListApplications)
	r.GET("/applications/export", h.ExportApplications)
	r.DELETE("/applications/:id", h.DeleteApplication)
	r.PATCH("/applications/:id/status", h.UpdateApplicationStatus)

	r.POST("/files/signed-url", h.SignedURL)
}

// --- Jobs ---

func (h *AdminHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *AdminHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": job})
}

func (h *AdminHandler) UpdateJob(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": job})
}

func (h *AdminHandler) DeleteJob(c *gin.Context) {
	if err := h.jobService.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

// --- Job types ---

func (h *AdminHandler) ListJobTypes(c *gin.Context) {
	jobTypes, err := h.jobTypeService.ListAll(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if jobTypes == nil {
		jobTypes = []models.JobType{}
	}
	c.JSON(http.StatusOK, gin.H{"job_types": jobTypes})
}

func (h *AdminHandler) CreateJobType(c *gin.Context) {
	var req dto.CreateJobTypeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	jobType, err := h.jobTypeService.CreateJobType(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job_type": jobType})
}

// DeleteJobType nulls job references instead of cascading; the dashboard
// warns about that before confirming.
func (h *AdminHandler) DeleteJobType(c *gin.Context) {
	if err := h.jobTypeService.DeleteJobType(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job type deleted"})
}

// --- Applications ---

func (h *AdminHandler) ListApplications(c *gin.Context) {
	var filter dto.ApplicationFilter
	if !h.BindAndValidateQuery(c, &filter) {
		return
	}

	apps, err := h.appService.Search(c.Request.Context(), filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// ExportApplications serializes the currently filtered list to JSON, the
// quick-export the dashboard copies to the clipboard.
func (h *AdminHandler) ExportApplications(c *gin.Context) {
	var filter dto.ApplicationFilter
	if !h.BindAndValidateQuery(c, &filter) {
		return
	}

	apps, err := h.appService.Search(c.Request.Context(), filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	out, err := h.appService.Export(apps)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", []byte(out))
}

func (h *AdminHandler) DeleteApplication(c *gin.Context) {
	if err := h.appService.DeleteApplication(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted"})
}

func (h *AdminHandler) UpdateApplicationStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.appService.UpdateStatus(c.Request.Context(), c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application status updated"})
}

// --- Files ---

// SignedURL mints a time-limited download link for a private attachment
// and returns it for the dashboard to open.
func (h *AdminHandler) SignedURL(c *gin.Context) {
	var req dto.SignedURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	url, err := h.appService.SignedURL(c.Request.Context(), req.Path, req.Expires)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"signedUrl": url})
}
