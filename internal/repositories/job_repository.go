package repositories

import (
	"context"
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepository) Update(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id).Error
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// FindBySlug is the public lookup. Exactly one row or ErrNotFound.
func (r *JobRepository) FindBySlug(ctx context.Context, slug string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// ListActiveCards fetches only the card projection of active jobs,
// newest first.
func (r *JobRepository) ListActiveCards(ctx context.Context) ([]models.JobCard, error) {
	var cards []models.JobCard
	err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Select("id", "slug", "title", "short_description", "location", "salary").
		Where("status = ?", models.JobStatusActive).
		Order("created_at DESC").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// ListAll returns every job for the admin dashboard, newest first.
func (r *JobRepository) ListAll(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}
