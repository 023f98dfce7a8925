package handlers

import (
	"mime/multipart"
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler serves the public application submission.
type ApplicationHandler struct {
	*BaseHandler
	appService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, appService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler: base,
		appService:  appService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/jobs/:slug/applications", h.Submit)
}

// Submit accepts the multipart application form: text fields, a required
// resume file and an optional cover letter.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	req := &dto.SubmitApplicationRequest{
		FullName:         c.PostForm("full_name"),
		Email:            c.PostForm("email"),
		PhoneNumber:      c.PostForm("phone_number"),
		Location:         c.PostForm("location"),
		HowHeard:         c.PostForm("how_heard"),
		WhyInterested:    c.PostForm("why_interested"),
		Experience:       c.PostForm("experience"),
		AgreeDataSharing: c.PostForm("agree_data_sharing") == "true" || c.PostForm("agree_data_sharing") == "on",
	}

	if !h.ValidateStruct(c, req) {
		return
	}

	resume, resumeClose, ok := h.formFile(c, "resume")
	if !ok {
		return
	}
	if resumeClose != nil {
		defer resumeClose()
	}
	req.Resume = resume

	coverLetter, coverClose, ok := h.formFile(c, "cover_letter")
	if !ok {
		return
	}
	if coverClose != nil {
		defer coverClose()
	}
	req.CoverLetter = coverLetter

	app, err := h.appService.Submit(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted successfully. Thank you!",
		"application": app,
	})
}

// formFile pulls one optional file off the multipart form. Returns
// (nil, nil, true) when the field is absent; writes an error response and
// returns ok=false only when the form itself is unreadable.
func (h *ApplicationHandler) formFile(c *gin.Context, field string) (*dto.FileUpload, func(), bool) {
	fileHeader, err := c.FormFile(field)
	if err == http.ErrMissingFile || err == multipart.ErrMessageTooLarge {
		if err == multipart.ErrMessageTooLarge {
			apperrors.HandleError(c, apperrors.ValidationError("Uploaded file is too large"))
			return nil, nil, false
		}
		return nil, nil, true
	}
	if err != nil {
		// no multipart body at all is treated as "no file"
		return nil, nil, true
	}

	f, err := fileHeader.Open()
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Could not read uploaded file: "+err.Error()))
		return nil, nil, false
	}

	upload := &dto.FileUpload{
		Filename:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Reader:      f,
	}
	return upload, func() { f.Close() }, true
}
