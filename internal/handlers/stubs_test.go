package handlers

import (
	"context"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/email"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// Hand-written service stubs. Each method delegates to an optional
// function field so a test overrides only what it exercises.

type stubJobService struct {
	listActiveFn func(ctx context.Context) ([]models.JobCard, error)
	getBySlugFn  func(ctx context.Context, slug string) (*models.Job, error)
	listAllFn    func(ctx context.Context) ([]models.Job, error)
	createFn     func(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	updateFn     func(ctx context.Context, id string, req *dto.UpdateJobRequest) (*models.Job, error)
	deleteFn     func(ctx context.Context, id string) error
}

func (s *stubJobService) ListActive(ctx context.Context) ([]models.JobCard, error) {
	if s.listActiveFn != nil {
		return s.listActiveFn(ctx)
	}
	return nil, nil
}

func (s *stubJobService) GetBySlug(ctx context.Context, slug string) (*models.Job, error) {
	if s.getBySlugFn != nil {
		return s.getBySlugFn(ctx, slug)
	}
	return &models.Job{}, nil
}

func (s *stubJobService) ListAll(ctx context.Context) ([]models.Job, error) {
	if s.listAllFn != nil {
		return s.listAllFn(ctx)
	}
	return nil, nil
}

func (s *stubJobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	if s.createFn != nil {
		return s.createFn(ctx, req)
	}
	return &models.Job{Title: req.Title, Slug: req.Slug}, nil
}

func (s *stubJobService) UpdateJob(ctx context.Context, id string, req *dto.UpdateJobRequest) (*models.Job, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, req)
	}
	return &models.Job{}, nil
}

func (s *stubJobService) DeleteJob(ctx context.Context, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubJobTypeService struct {
	listAllFn func(ctx context.Context) ([]models.JobType, error)
	createFn  func(ctx context.Context, req *dto.CreateJobTypeRequest) (*models.JobType, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (s *stubJobTypeService) ListAll(ctx context.Context) ([]models.JobType, error) {
	if s.listAllFn != nil {
		return s.listAllFn(ctx)
	}
	return nil, nil
}

func (s *stubJobTypeService) CreateJobType(ctx context.Context, req *dto.CreateJobTypeRequest) (*models.JobType, error) {
	if s.createFn != nil {
		return s.createFn(ctx, req)
	}
	return &models.JobType{Name: req.Name}, nil
}

func (s *stubJobTypeService) DeleteJobType(ctx context.Context, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type stubApplicationService struct {
	submitFn       func(ctx context.Context, jobSlug string, req *dto.SubmitApplicationRequest) (*models.Application, error)
	searchFn       func(ctx context.Context, filter dto.ApplicationFilter) ([]models.Application, error)
	deleteFn       func(ctx context.Context, id string) error
	updateStatusFn func(ctx context.Context, id string, req *dto.UpdateApplicationStatusRequest) error
	exportFn       func(apps []models.Application) (string, error)
	signedURLFn    func(ctx context.Context, path string, expires int) (string, error)
}

func (s *stubApplicationService) Submit(ctx context.Context, jobSlug string, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	if s.submitFn != nil {
		return s.submitFn(ctx, jobSlug, req)
	}
	return &models.Application{FullName: req.FullName}, nil
}

func (s *stubApplicationService) Search(ctx context.Context, filter dto.ApplicationFilter) ([]models.Application, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, filter)
	}
	return []models.Application{}, nil
}

func (s *stubApplicationService) DeleteApplication(ctx context.Context, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *stubApplicationService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateApplicationStatusRequest) error {
	if s.updateStatusFn != nil {
		return s.updateStatusFn(ctx, id, req)
	}
	return nil
}

func (s *stubApplicationService) Export(apps []models.Application) (string, error) {
	if s.exportFn != nil {
		return s.exportFn(apps)
	}
	return "[]", nil
}

func (s *stubApplicationService) SignedURL(ctx context.Context, path string, expires int) (string, error) {
	if s.signedURLFn != nil {
		return s.signedURLFn(ctx, path, expires)
	}
	return "https://store.example/signed", nil
}

type stubEmailProvider struct {
	sendFn func(e *email.Email) error
	sent   []*email.Email
}

func (s *stubEmailProvider) Send(e *email.Email) error {
	if s.sendFn != nil {
		return s.sendFn(e)
	}
	s.sent = append(s.sent, e)
	return nil
}

func (s *stubEmailProvider) Validate() error { return nil }
func (s *stubEmailProvider) Close() error    { return nil }

// errorEnvelope mirrors the API error response shape.
type errorEnvelope struct {
	Error struct {
		Code    string      `json:"code"`
		Domain  string      `json:"domain"`
		Message string      `json:"message"`
		Details interface{} `json:"details"`
	} `json:"error"`
}

func newTestBaseHandler() *BaseHandler {
	return NewBaseHandler(validator.New())
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// configuredFunctionConfig returns a config where both function endpoints
// have everything they need.
func configuredFunctionConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Storage.Type = "s3"
	cfg.Storage.Endpoint = "https://store.example"
	cfg.Storage.Bucket = "resumes"
	cfg.Storage.AccessKey = "key"
	cfg.Storage.SecretKey = "secret"
	cfg.Email.Provider = "sendgrid"
	cfg.Email.SendGridAPIKey = "SG.test"
	cfg.Email.FromEmail = "jobs@example.com"
	cfg.Email.ToEmail = "recruiting@example.com"
	return cfg
}
