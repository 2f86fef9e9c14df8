package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperr "carelink/internal/errors"
	"carelink/internal/model"
	"carelink/internal/repository"
)

// JobApplicationService exposes job-application operations.
type JobApplicationService interface {
	ListJobApplications(ctx context.Context) ([]model.JobApplication, error)
	GetJobApplication(ctx context.Context, caregiverUserID, jobID uint) (*model.JobApplication, error)
	CreateJobApplication(ctx context.Context, application *model.JobApplication) (*model.JobApplication, error)
	// MoveJobApplication reassigns an application to a new (caregiver, job)
	// pair, keeping the original application date.
	MoveJobApplication(ctx context.Context, caregiverUserID, jobID, newCaregiverUserID, newJobID uint) (*model.JobApplication, error)
	DeleteJobApplication(ctx context.Context, caregiverUserID, jobID uint) error
}

type jobApplicationService struct {
	store repository.Store
}

// NewJobApplicationService builds a JobApplicationService on top of the store.
func NewJobApplicationService(store repository.Store) JobApplicationService {
	return &jobApplicationService{store: store}
}

func (s *jobApplicationService) ListJobApplications(ctx context.Context) ([]model.JobApplication, error) {
	return s.store.Repos().JobApplications.List(ctx)
}

func (s *jobApplicationService) GetJobApplication(ctx context.Context, caregiverUserID, jobID uint) (*model.JobApplication, error) {
	application, err := s.store.Repos().JobApplications.FindByKey(ctx, caregiverUserID, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrJobApplicationNotFound
		}
		return nil, err
	}
	return application, nil
}

// CreateJobApplication checks the caregiver, then the job, then that the pair
// is not already taken, before inserting. A zero DateApplied defaults to the
// current day.
func (s *jobApplicationService) CreateJobApplication(ctx context.Context, application *model.JobApplication) (*model.JobApplication, error) {
	err := s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := ensurePairExists(ctx, repos, application.CaregiverUserID, application.JobID); err != nil {
			return err
		}
		if _, err := repos.JobApplications.FindByKey(ctx, application.CaregiverUserID, application.JobID); err == nil {
			return apperr.ErrJobApplicationExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if application.DateApplied.IsZero() {
			application.DateApplied = today()
		}
		return repos.JobApplications.Create(ctx, application)
	})
	if err != nil {
		return nil, err
	}
	return application, nil
}

// MoveJobApplication changes the composite key of an application. Because the
// pair is the primary key this is a delete-then-insert; the uniqueness check
// on the target pair runs before the old row is touched, and the whole move
// shares one transaction.
func (s *jobApplicationService) MoveJobApplication(ctx context.Context, caregiverUserID, jobID, newCaregiverUserID, newJobID uint) (*model.JobApplication, error) {
	var moved *model.JobApplication
	err := s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		current, err := repos.JobApplications.FindByKey(ctx, caregiverUserID, jobID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrJobApplicationNotFound
			}
			return err
		}
		if err := ensurePairExists(ctx, repos, newCaregiverUserID, newJobID); err != nil {
			return err
		}
		keyChanged := newCaregiverUserID != caregiverUserID || newJobID != jobID
		if keyChanged {
			if _, err := repos.JobApplications.FindByKey(ctx, newCaregiverUserID, newJobID); err == nil {
				return apperr.ErrJobApplicationExists
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}
		if err := repos.JobApplications.Delete(ctx, caregiverUserID, jobID); err != nil {
			return err
		}
		moved = &model.JobApplication{
			CaregiverUserID: newCaregiverUserID,
			JobID:           newJobID,
			DateApplied:     current.DateApplied,
		}
		return repos.JobApplications.Create(ctx, moved)
	})
	if err != nil {
		return nil, err
	}
	return moved, nil
}

func (s *jobApplicationService) DeleteJobApplication(ctx context.Context, caregiverUserID, jobID uint) error {
	return s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.JobApplications.FindByKey(ctx, caregiverUserID, jobID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrJobApplicationNotFound
			}
			return err
		}
		return repos.JobApplications.Delete(ctx, caregiverUserID, jobID)
	})
}

// ensurePairExists validates both legs of the composite reference, caregiver
// first, then job.
func ensurePairExists(ctx context.Context, repos repository.Repositories, caregiverUserID, jobID uint) error {
	if _, err := repos.Caregivers.FindByID(ctx, caregiverUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrCaregiverMissing
		}
		return err
	}
	if _, err := repos.Jobs.FindByID(ctx, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrJobMissing
		}
		return err
	}
	return nil
}
