package repositories

import (
	"context"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

type JobTypeRepository struct {
	db *gorm.DB
}

func NewJobTypeRepository(db *gorm.DB) *JobTypeRepository {
	return &JobTypeRepository{db: db}
}

func (r *JobTypeRepository) Create(ctx context.Context, jobType *models.JobType) error {
	return r.db.WithContext(ctx).Create(jobType).Error
}

// Delete removes the job type and nulls out any job that referenced it.
// No cascade: the jobs themselves stay.
func (r *JobTypeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Job{}).
			Where("job_type_id = ?", id).
			Update("job_type_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.JobType{}, "id = ?", id).Error
	})
}

func (r *JobTypeRepository) ListAll(ctx context.Context) ([]models.JobType, error) {
	var jobTypes []models.JobType
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&jobTypes).Error
	if err != nil {
		return nil, err
	}
	return jobTypes, nil
}
