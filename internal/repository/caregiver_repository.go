package repository

import (
	"context"

	"gorm.io/gorm"

	"carelink/internal/model"
)

// CaregiverRepository defines caregiver-profile persistence operations.
type CaregiverRepository interface {
	Create(ctx context.Context, caregiver *model.Caregiver) error
	Save(ctx context.Context, caregiver *model.Caregiver) error
	FindByID(ctx context.Context, userID uint) (*model.Caregiver, error)
	List(ctx context.Context) ([]model.Caregiver, error)
	Delete(ctx context.Context, userID uint) error
}

type caregiverRepository struct {
	db *gorm.DB
}

// NewCaregiverRepository builds a GORM-backed repository.
func NewCaregiverRepository(db *gorm.DB) CaregiverRepository {
	return &caregiverRepository{db: db}
}

func (r *caregiverRepository) Create(ctx context.Context, caregiver *model.Caregiver) error {
	return r.db.WithContext(ctx).Create(caregiver).Error
}

func (r *caregiverRepository) Save(ctx context.Context, caregiver *model.Caregiver) error {
	return r.db.WithContext(ctx).Save(caregiver).Error
}

func (r *caregiverRepository) FindByID(ctx context.Context, userID uint) (*model.Caregiver, error) {
	var caregiver model.Caregiver
	if err := r.db.WithContext(ctx).Where("caregiver_user_id = ?", userID).First(&caregiver).Error; err != nil {
		return nil, err
	}
	return &caregiver, nil
}

func (r *caregiverRepository) List(ctx context.Context) ([]model.Caregiver, error) {
	var caregivers []model.Caregiver
	if err := r.db.WithContext(ctx).Find(&caregivers).Error; err != nil {
		return nil, err
	}
	return caregivers, nil
}

func (r *caregiverRepository) Delete(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Delete(&model.Caregiver{}, "caregiver_user_id = ?", userID).Error
}
