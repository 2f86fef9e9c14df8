package service

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	apperr "carelink/internal/errors"
	"carelink/internal/model"
	"carelink/internal/repository"
)

// AppointmentService exposes appointment operations.
type AppointmentService interface {
	ListAppointments(ctx context.Context) ([]model.Appointment, error)
	GetAppointment(ctx context.Context, id uint) (*model.Appointment, error)
	CreateAppointment(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error)
	UpdateAppointment(ctx context.Context, id uint, appointment *model.Appointment) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id uint) error
}

type appointmentService struct {
	store repository.Store
	keyMu sync.Mutex
}

// NewAppointmentService builds an AppointmentService on top of the store.
func NewAppointmentService(store repository.Store) AppointmentService {
	return &appointmentService{store: store}
}

func (s *appointmentService) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	return s.store.Repos().Appointments.List(ctx)
}

func (s *appointmentService) GetAppointment(ctx context.Context, id uint) (*model.Appointment, error) {
	appointment, err := s.store.Repos().Appointments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrAppointmentNotFound
		}
		return nil, err
	}
	return appointment, nil
}

// CreateAppointment checks the caregiver, then the member, assigns the next
// appointment id and inserts.
func (s *appointmentService) CreateAppointment(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error) {
	s.keyMu.Lock()
	defer s.keyMu.Unlock()

	err := s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := ensureParties(ctx, repos, appointment.CaregiverUserID, appointment.MemberUserID); err != nil {
			return err
		}
		maxID, err := repos.Appointments.MaxID(ctx)
		if err != nil {
			return err
		}
		appointment.AppointmentID = maxID + 1
		return repos.Appointments.Create(ctx, appointment)
	})
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

// UpdateAppointment rewrites every editable field, re-checking both
// references since either party may be reassigned.
func (s *appointmentService) UpdateAppointment(ctx context.Context, id uint, appointment *model.Appointment) (*model.Appointment, error) {
	err := s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Appointments.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrAppointmentNotFound
			}
			return err
		}
		if err := ensureParties(ctx, repos, appointment.CaregiverUserID, appointment.MemberUserID); err != nil {
			return err
		}
		appointment.AppointmentID = id
		return repos.Appointments.Save(ctx, appointment)
	})
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *appointmentService) DeleteAppointment(ctx context.Context, id uint) error {
	return s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Appointments.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrAppointmentNotFound
			}
			return err
		}
		return repos.Appointments.Delete(ctx, id)
	})
}

// ensureParties validates the caregiver reference, then the member reference.
func ensureParties(ctx context.Context, repos repository.Repositories, caregiverUserID, memberUserID uint) error {
	if _, err := repos.Caregivers.FindByID(ctx, caregiverUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrCaregiverMissing
		}
		return err
	}
	if _, err := repos.Members.FindByID(ctx, memberUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrMemberMissing
		}
		return err
	}
	return nil
}
