package services

import (
	"context"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// JobRepository is what JobService needs from the jobs collection.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*models.Job, error)
	FindBySlug(ctx context.Context, slug string) (*models.Job, error)
	ListActiveCards(ctx context.Context) ([]models.JobCard, error)
	ListAll(ctx context.Context) ([]models.Job, error)
}

type JobService interface {
	// ListActive returns the card projection of active jobs, newest first
	ListActive(ctx context.Context) ([]models.JobCard, error)

	// GetBySlug returns exactly one job or a not-found error
	GetBySlug(ctx context.Context, slug string) (*models.Job, error)

	// ListAll returns every job for the admin dashboard
	ListAll(ctx context.Context) ([]models.Job, error)

	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	UpdateJob(ctx context.Context, id string, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, id string) error
}

type jobService struct {
	jobRepo JobRepository
}

func NewJobService(jobRepo JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

func (s *jobService) ListActive(ctx context.Context) ([]models.JobCard, error) {
	cards, err := s.jobRepo.ListActiveCards(ctx)
	if err != nil {
		return nil, apperrors.StoreError("jobs", err)
	}
	return cards, nil
}

func (s *jobService) GetBySlug(ctx context.Context, slug string) (*models.Job, error) {
	job, err := s.jobRepo.FindBySlug(ctx, slug)
	if apperrors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NewNotFoundError("jobs", "Job not found")
	}
	if err != nil {
		return nil, apperrors.StoreError("jobs", err)
	}
	return job, nil
}

func (s *jobService) ListAll(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.StoreError("jobs", err)
	}
	return jobs, nil
}

func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	status := req.Status
	if status == "" {
		status = models.JobStatusDraft
	}

	job := &models.Job{
		Title:            req.Title,
		Slug:             req.Slug,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		Overview:         req.Overview,
		PositionSummary:  req.PositionSummary,
		Responsibilities: req.Responsibilities,
		Requirements:     req.Requirements,
		Qualifications:   req.Qualifications,
		Benefits:         req.Benefits,
		Location:         req.Location,
		Salary:           req.Salary,
		JobTypeID:        req.JobTypeID,
		Status:           status,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, apperrors.StoreError("jobs", err)
	}
	return job, nil
}

func (s *jobService) UpdateJob(ctx context.Context, id string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if apperrors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NewNotFoundError("jobs", "Job not found")
	}
	if err != nil {
		return nil, apperrors.StoreError("jobs", err)
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Slug != nil {
		job.Slug = *req.Slug
	}
	if req.ShortDescription != nil {
		job.ShortDescription = *req.ShortDescription
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Overview != nil {
		job.Overview = *req.Overview
	}
	if req.PositionSummary != nil {
		job.PositionSummary = *req.PositionSummary
	}
	if req.Responsibilities != nil {
		job.Responsibilities = *req.Responsibilities
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.Qualifications != nil {
		job.Qualifications = *req.Qualifications
	}
	if req.Benefits != nil {
		job.Benefits = *req.Benefits
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.JobTypeID != nil {
		job.JobTypeID = req.JobTypeID
	}
	if req.Status != nil {
		job.Status = *req.Status
	}

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, apperrors.StoreError("jobs", err)
	}
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, id string) error {
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return apperrors.StoreError("jobs", err)
	}
	return nil
}
