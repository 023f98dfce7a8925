package services

import (
	"context"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// JobTypeRepository is what JobTypeService needs from the job_types
// collection. JobTypes are created and deleted, never updated.
type JobTypeRepository interface {
	Create(ctx context.Context, jobType *models.JobType) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]models.JobType, error)
}

type JobTypeService interface {
	ListAll(ctx context.Context) ([]models.JobType, error)
	CreateJobType(ctx context.Context, req *dto.CreateJobTypeRequest) (*models.JobType, error)
	DeleteJobType(ctx context.Context, id string) error
}

type jobTypeService struct {
	jobTypeRepo JobTypeRepository
}

func NewJobTypeService(jobTypeRepo JobTypeRepository) JobTypeService {
	return &jobTypeService{jobTypeRepo: jobTypeRepo}
}

func (s *jobTypeService) ListAll(ctx context.Context) ([]models.JobType, error) {
	jobTypes, err := s.jobTypeRepo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.StoreError("job_types", err)
	}
	return jobTypes, nil
}

func (s *jobTypeService) CreateJobType(ctx context.Context, req *dto.CreateJobTypeRequest) (*models.JobType, error) {
	jobType := &models.JobType{Name: req.Name}
	if err := s.jobTypeRepo.Create(ctx, jobType); err != nil {
		return nil, apperrors.StoreError("job_types", err)
	}
	return jobType, nil
}

func (s *jobTypeService) DeleteJobType(ctx context.Context, id string) error {
	if err := s.jobTypeRepo.Delete(ctx, id); err != nil {
		return apperrors.StoreError("job_types", err)
	}
	return nil
}
