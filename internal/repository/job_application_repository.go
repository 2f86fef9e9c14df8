package repository

import (
	"context"

	"gorm.io/gorm"

	"carelink/internal/model"
)

// JobApplicationRepository defines job-application persistence operations.
// Applications are keyed by the composite (caregiver, job) pair.
type JobApplicationRepository interface {
	Create(ctx context.Context, application *model.JobApplication) error
	FindByKey(ctx context.Context, caregiverUserID, jobID uint) (*model.JobApplication, error)
	List(ctx context.Context) ([]model.JobApplication, error)
	Delete(ctx context.Context, caregiverUserID, jobID uint) error
	CountByCaregiver(ctx context.Context, caregiverUserID uint) (int64, error)
	CountByJob(ctx context.Context, jobID uint) (int64, error)
}

type jobApplicationRepository struct {
	db *gorm.DB
}

// NewJobApplicationRepository builds a GORM-backed repository.
func NewJobApplicationRepository(db *gorm.DB) JobApplicationRepository {
	return &jobApplicationRepository{db: db}
}

func (r *jobApplicationRepository) Create(ctx context.Context, application *model.JobApplication) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *jobApplicationRepository) FindByKey(ctx context.Context, caregiverUserID, jobID uint) (*model.JobApplication, error) {
	var application model.JobApplication
	err := r.db.WithContext(ctx).
		Where("caregiver_user_id = ? AND job_id = ?", caregiverUserID, jobID).
		First(&application).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func (r *jobApplicationRepository) List(ctx context.Context) ([]model.JobApplication, error) {
	var applications []model.JobApplication
	if err := r.db.WithContext(ctx).Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *jobApplicationRepository) Delete(ctx context.Context, caregiverUserID, jobID uint) error {
	return r.db.WithContext(ctx).
		Delete(&model.JobApplication{}, "caregiver_user_id = ? AND job_id = ?", caregiverUserID, jobID).Error
}

func (r *jobApplicationRepository) CountByCaregiver(ctx context.Context, caregiverUserID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.JobApplication{}).
		Where("caregiver_user_id = ?", caregiverUserID).Count(&count).Error
	return count, err
}

func (r *jobApplicationRepository) CountByJob(ctx context.Context, jobID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.JobApplication{}).
		Where("job_id = ?", jobID).Count(&count).Error
	return count, err
}
