package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"jobboard_backend/internal/email"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"
)

// ApplicationRepository is what ApplicationService needs from the
// applications collection.
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*models.Application, error)
	ListAll(ctx context.Context) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type ApplicationService interface {
	// Submit runs the whole submission pipeline: validate, upload the
	// attachments, insert the record, then fire the best-effort
	// notification. A failure after a successful upload leaves the
	// uploaded object orphaned; that is accepted, no cleanup runs.
	Submit(ctx context.Context, jobSlug string, req *dto.SubmitApplicationRequest) (*models.Application, error)

	// Search lists all applications newest first and applies the admin
	// filter.
	Search(ctx context.Context, filter dto.ApplicationFilter) ([]models.Application, error)

	DeleteApplication(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateApplicationStatusRequest) error

	// Export serializes a filtered application list to a JSON string.
	Export(apps []models.Application) (string, error)

	// SignedURL mints a time-limited download URL for a stored object.
	SignedURL(ctx context.Context, path string, expires int) (string, error)
}

// ApplicationConfig is the slice of configuration the service needs.
type ApplicationConfig struct {
	FromEmail         string
	ToEmail           string
	MaxUploadSize     int64
	AllowedExtensions []string
	SignedURLExpires  int
	StorageConfigured bool
}

type applicationService struct {
	appRepo  ApplicationRepository
	jobRepo  JobRepository
	storage  storage.Storage
	provider email.Provider
	config   ApplicationConfig
}

func NewApplicationService(
	appRepo ApplicationRepository,
	jobRepo JobRepository,
	storageInstance storage.Storage,
	provider email.Provider,
	config ApplicationConfig,
) ApplicationService {
	return &applicationService{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		storage:  storageInstance,
		provider: provider,
		config:   config,
	}
}

// Submission messages shown to the applicant.
const (
	msgConsentRequired = "Please agree to share your data for recruitment purposes."
	msgMissingFields   = "Please fill in all required fields and upload your resume."
)

func (s *applicationService) Submit(ctx context.Context, jobSlug string, req *dto.SubmitApplicationRequest) (*models.Application, error) {
	// Consent, required fields and the attachments are gated here, before
	// any store call, the jobs lookup included.
	if !req.AgreeDataSharing {
		return nil, apperrors.ValidationError(msgConsentRequired)
	}
	if req.FullName == "" || req.Email == "" || req.PhoneNumber == "" ||
		req.Location == "" || req.HowHeard == "" || req.WhyInterested == "" ||
		req.Experience == "" || req.Resume == nil {
		return nil, apperrors.ValidationError(msgMissingFields)
	}

	if err := s.validateUpload(req.Resume); err != nil {
		return nil, err
	}
	if req.CoverLetter != nil {
		if err := s.validateUpload(req.CoverLetter); err != nil {
			return nil, err
		}
	}

	job, err := s.jobRepo.FindBySlug(ctx, jobSlug)
	if apperrors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NewNotFoundError("jobs", "Job not found")
	}
	if err != nil {
		return nil, apperrors.StoreError("jobs", err)
	}

	// Upload resume, then the optional cover letter. An upload failure
	// aborts the submission; nothing already uploaded is removed.
	resumePath, err := s.uploadFile(ctx, job.Slug, req.Resume)
	if err != nil {
		return nil, err
	}

	var coverLetterPath *string
	if req.CoverLetter != nil {
		p, err := s.uploadFile(ctx, job.Slug, req.CoverLetter)
		if err != nil {
			return nil, err
		}
		coverLetterPath = &p
	}

	app := &models.Application{
		JobID:            job.ID,
		FullName:         req.FullName,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		Location:         req.Location,
		Position:         job.Title,
		HowHeard:         req.HowHeard,
		WhyInterested:    req.WhyInterested,
		Experience:       req.Experience,
		ResumePath:       resumePath,
		CoverLetterPath:  coverLetterPath,
		AgreeDataSharing: req.AgreeDataSharing,
		Status:           models.ApplicationStatusSubmitted,
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, apperrors.StoreError("applications", err)
	}

	// Best-effort notification: a failure is logged and never surfaces
	// to the applicant.
	go s.notify(app, job)

	return app, nil
}

func (s *applicationService) notify(app *models.Application, job *models.Job) {
	if s.provider == nil {
		return
	}
	msg := email.NewApplicationNotification(s.config.FromEmail, s.config.ToEmail, app, job)
	if err := s.provider.Send(msg); err != nil {
		logger.Warn("application notification failed",
			"application_id", app.ID,
			"job", job.Slug,
			"error", err.Error(),
		)
	}
}

func (s *applicationService) validateUpload(file *dto.FileUpload) error {
	if s.config.MaxUploadSize > 0 && file.Size > s.config.MaxUploadSize {
		return apperrors.ValidationError(fmt.Sprintf("File %s exceeds the maximum size of %d bytes", file.Filename, s.config.MaxUploadSize))
	}
	if len(s.config.AllowedExtensions) > 0 {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		for _, allowed := range s.config.AllowedExtensions {
			if ext == allowed {
				return nil
			}
		}
		return apperrors.ValidationError(fmt.Sprintf("File type %s is not allowed", ext))
	}
	return nil
}

func (s *applicationService) uploadFile(ctx context.Context, jobSlug string, file *dto.FileUpload) (string, error) {
	path := objectPath("applications", jobSlug, file.Filename)
	if err := s.storage.Save(ctx, path, file.Reader, file.ContentType); err != nil {
		return "", apperrors.StoreError("storage", err)
	}
	return path, nil
}

// objectPath builds the bucket path for one attachment:
// <folder>/<job-slug>/<timestamp>-<random>.<ext>
func objectPath(folder, jobSlug, filename string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	name := fmt.Sprintf("%d-%d", time.Now().UnixMilli(), rand.Intn(1000000))
	if ext != "" {
		name = name + "." + ext
	}
	return fmt.Sprintf("%s/%s/%s", folder, jobSlug, name)
}

func (s *applicationService) Search(ctx context.Context, filter dto.ApplicationFilter) ([]models.Application, error) {
	apps, err := s.appRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.StoreError("applications", err)
	}
	return FilterApplications(apps, filter), nil
}

// FilterApplications applies the admin search: a case-insensitive
// substring match over full name, email and position, ANDed with an exact
// status match. Status "all" or "" imposes no constraint.
func FilterApplications(apps []models.Application, filter dto.ApplicationFilter) []models.Application {
	q := strings.ToLower(strings.TrimSpace(filter.Search))
	status := filter.Status

	filtered := make([]models.Application, 0, len(apps))
	for _, app := range apps {
		matchesSearch := q == "" ||
			strings.Contains(strings.ToLower(app.FullName), q) ||
			strings.Contains(strings.ToLower(app.Email), q) ||
			strings.Contains(strings.ToLower(app.Position), q)
		matchesStatus := status == "" || status == "all" || app.Status == status

		if matchesSearch && matchesStatus {
			filtered = append(filtered, app)
		}
	}
	return filtered
}

func (s *applicationService) DeleteApplication(ctx context.Context, id string) error {
	if err := s.appRepo.Delete(ctx, id); err != nil {
		return apperrors.StoreError("applications", err)
	}
	return nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateApplicationStatusRequest) error {
	err := s.appRepo.UpdateStatus(ctx, id, req.Status)
	if apperrors.Is(err, repositories.ErrNotFound) {
		return apperrors.NewNotFoundError("applications", "Application not found")
	}
	if err != nil {
		return apperrors.StoreError("applications", err)
	}
	return nil
}

func (s *applicationService) Export(apps []models.Application) (string, error) {
	data, err := json.Marshal(apps)
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	return string(data), nil
}

func (s *applicationService) SignedURL(ctx context.Context, path string, expires int) (string, error) {
	if !s.config.StorageConfigured {
		return "", apperrors.ConfigurationError("storage", "Missing storage configuration")
	}
	if path == "" {
		return "", apperrors.NewBadRequestError("path is required in body")
	}
	if expires <= 0 {
		expires = s.config.SignedURLExpires
	}

	url, err := s.storage.GetSignedURL(ctx, path, time.Duration(expires)*time.Second)
	if err != nil {
		return "", apperrors.StoreError("storage", err)
	}
	return url, nil
}
