package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperr "carelink/internal/errors"
	"carelink/internal/model"
	"carelink/internal/repository"
)

// CaregiverService exposes caregiver-profile operations.
type CaregiverService interface {
	ListCaregivers(ctx context.Context) ([]model.Caregiver, error)
	GetCaregiver(ctx context.Context, userID uint) (*model.Caregiver, error)
	CreateCaregiver(ctx context.Context, caregiver *model.Caregiver) (*model.Caregiver, error)
	UpdateCaregiver(ctx context.Context, userID uint, caregiver *model.Caregiver) (*model.Caregiver, error)
	DeleteCaregiver(ctx context.Context, userID uint) error
}

type caregiverService struct {
	store repository.Store
}

// NewCaregiverService builds a CaregiverService on top of the store.
func NewCaregiverService(store repository.Store) CaregiverService {
	return &caregiverService{store: store}
}

func (s *caregiverService) ListCaregivers(ctx context.Context) ([]model.Caregiver, error) {
	return s.store.Repos().Caregivers.List(ctx)
}

func (s *caregiverService) GetCaregiver(ctx context.Context, userID uint) (*model.Caregiver, error) {
	caregiver, err := s.store.Repos().Caregivers.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrCaregiverNotFound
		}
		return nil, err
	}
	return caregiver, nil
}

// CreateCaregiver checks the referenced user exists, then that the user does
// not already hold a caregiver profile, before inserting.
func (s *caregiverService) CreateCaregiver(ctx context.Context, caregiver *model.Caregiver) (*model.Caregiver, error) {
	err := s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Users.FindByID(ctx, caregiver.CaregiverUserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrUserMissing
			}
			return err
		}
		if _, err := repos.Caregivers.FindByID(ctx, caregiver.CaregiverUserID); err == nil {
			return apperr.ErrCaregiverExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return repos.Caregivers.Create(ctx, caregiver)
	})
	if err != nil {
		return nil, err
	}
	return caregiver, nil
}

// UpdateCaregiver rewrites every editable field; the key cannot change, so no
// reference checks are repeated.
func (s *caregiverService) UpdateCaregiver(ctx context.Context, userID uint, caregiver *model.Caregiver) (*model.Caregiver, error) {
	err := s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Caregivers.FindByID(ctx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrCaregiverNotFound
			}
			return err
		}
		caregiver.CaregiverUserID = userID
		return repos.Caregivers.Save(ctx, caregiver)
	})
	if err != nil {
		return nil, err
	}
	return caregiver, nil
}

// DeleteCaregiver removes the profile unless job applications or appointments
// still reference it (Restrict).
func (s *caregiverService) DeleteCaregiver(ctx context.Context, userID uint) error {
	return s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Caregivers.FindByID(ctx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrCaregiverNotFound
			}
			return err
		}
		applications, err := repos.JobApplications.CountByCaregiver(ctx, userID)
		if err != nil {
			return err
		}
		appointments, err := repos.Appointments.CountByCaregiver(ctx, userID)
		if err != nil {
			return err
		}
		if applications > 0 || appointments > 0 {
			return apperr.ErrCaregiverInUse
		}
		return repos.Caregivers.Delete(ctx, userID)
	})
}
