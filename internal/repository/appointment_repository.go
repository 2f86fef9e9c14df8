package repository

import (
	"context"

	"gorm.io/gorm"

	"carelink/internal/model"
)

// AppointmentRepository defines appointment persistence operations.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	Save(ctx context.Context, appointment *model.Appointment) error
	FindByID(ctx context.Context, id uint) (*model.Appointment, error)
	List(ctx context.Context) ([]model.Appointment, error)
	Delete(ctx context.Context, id uint) error
	MaxID(ctx context.Context) (uint, error)
	CountByCaregiver(ctx context.Context, caregiverUserID uint) (int64, error)
	CountByMember(ctx context.Context, memberUserID uint) (int64, error)
}

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository builds a GORM-backed repository.
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) Save(ctx context.Context, appointment *model.Appointment) error {
	return r.db.WithContext(ctx).Save(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uint) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := r.db.WithContext(ctx).Where("appointment_id = ?", id).First(&appointment).Error; err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) List(ctx context.Context) ([]model.Appointment, error) {
	var appointments []model.Appointment
	if err := r.db.WithContext(ctx).Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Appointment{}, "appointment_id = ?", id).Error
}

// MaxID returns the highest allocated appointment id, or 0 when the table is empty.
func (r *appointmentRepository) MaxID(ctx context.Context) (uint, error) {
	var max uint
	err := r.db.WithContext(ctx).Model(&model.Appointment{}).
		Select("COALESCE(MAX(appointment_id), 0)").Scan(&max).Error
	return max, err
}

func (r *appointmentRepository) CountByCaregiver(ctx context.Context, caregiverUserID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Appointment{}).
		Where("caregiver_user_id = ?", caregiverUserID).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountByMember(ctx context.Context, memberUserID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Appointment{}).
		Where("member_user_id = ?", memberUserID).Count(&count).Error
	return count, err
}
