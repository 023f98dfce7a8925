package handlers

import (
	"errors"
	"net/http"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FunctionHandler exposes the two privileged endpoints the browser client
// cannot perform itself: minting signed download URLs and sending the
// application notification email. Both keep the wire contract of the
// original serverless functions, so they answer with bare JSON bodies
// instead of the API error envelope.
type FunctionHandler struct {
	cfg        *config.Config
	appService services.ApplicationService
	provider   email.Provider
}

func NewFunctionHandler(cfg *config.Config, appService services.ApplicationService, provider email.Provider) *FunctionHandler {
	return &FunctionHandler{
		cfg:        cfg,
		appService: appService,
		provider:   provider,
	}
}

// RegisterRoutes mounts the function endpoints at the server root.
func (h *FunctionHandler) RegisterRoutes(r *gin.Engine) {
	r.Any("/get-signed-url", h.GetSignedURL)
	r.Any("/send-application-email", h.SendApplicationEmail)
}

// GetSignedURL returns a time-limited download URL for a stored object.
//
//	POST {"path": "applications/acme/123-456.pdf", "expires": 120}
//	200  {"signedUrl": "https://..."}
func (h *FunctionHandler) GetSignedURL(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.String(http.StatusMethodNotAllowed, "Only POST allowed")
		return
	}

	if !h.cfg.HasStorageConfig() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Missing storage configuration"})
		return
	}

	var req dto.SignedURLRequest
	// an unreadable or empty body falls through to the path check
	_ = c.ShouldBindJSON(&req)

	if req.Path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path is required in body"})
		return
	}

	url, err := h.appService.SignedURL(c.Request.Context(), req.Path, req.Expires)
	if err != nil {
		msg := err.Error()
		if appErr, ok := apperrors.AsAppError(err); ok {
			msg = appErr.Message
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"signedUrl": url})
}

type sendApplicationEmailRequest struct {
	Application *models.Application `json:"application"`
	Job         *models.Job         `json:"job"`
}

// SendApplicationEmail formats and sends the plain-text notification for a
// new application to the single fixed recipient.
//
//	POST {"application": {...}, "job": {...}}
//	200  {"ok": true}
func (h *FunctionHandler) SendApplicationEmail(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.String(http.StatusMethodNotAllowed, "Only POST allowed")
		return
	}

	if !h.cfg.HasEmailConfig() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Missing email configuration in function secrets"})
		return
	}

	var req sendApplicationEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Application == nil || req.Job == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "application and job required in body"})
		return
	}

	msg := email.NewApplicationNotification(h.cfg.Email.FromEmail, h.cfg.Email.ToEmail, req.Application, req.Job)
	if err := h.provider.Send(msg); err != nil {
		var sendErr *email.SendError
		if errors.As(err, &sendErr) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Email provider error", "detail": sendErr.Detail})
			return
		}
		logger.CtxWithError(c.Request.Context(), "notification send failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
