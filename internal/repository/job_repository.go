package repository

import (
	"context"

	"gorm.io/gorm"

	"carelink/internal/model"
)

// JobRepository defines job-posting persistence operations.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	Save(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id uint) (*model.Job, error)
	List(ctx context.Context) ([]model.Job, error)
	Delete(ctx context.Context, id uint) error
	MaxID(ctx context.Context) (uint, error)
	CountByMember(ctx context.Context, memberUserID uint) (int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository builds a GORM-backed repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *jobRepository) Save(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *jobRepository) FindByID(ctx context.Context, id uint) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).Where("job_id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) List(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	if err := r.db.WithContext(ctx).Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Job{}, "job_id = ?", id).Error
}

// MaxID returns the highest allocated job id, or 0 when the table is empty.
func (r *jobRepository) MaxID(ctx context.Context) (uint, error) {
	var max uint
	err := r.db.WithContext(ctx).Model(&model.Job{}).
		Select("COALESCE(MAX(job_id), 0)").Scan(&max).Error
	return max, err
}

func (r *jobRepository) CountByMember(ctx context.Context, memberUserID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Job{}).
		Where("member_user_id = ?", memberUserID).Count(&count).Error
	return count, err
}
