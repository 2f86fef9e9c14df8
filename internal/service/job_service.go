package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	apperr "carelink/internal/errors"
	"carelink/internal/model"
	"carelink/internal/repository"
)

// JobService exposes job-posting operations.
type JobService interface {
	ListJobs(ctx context.Context) ([]model.Job, error)
	GetJob(ctx context.Context, id uint) (*model.Job, error)
	CreateJob(ctx context.Context, job *model.Job) (*model.Job, error)
	UpdateJob(ctx context.Context, id uint, job *model.Job) (*model.Job, error)
	DeleteJob(ctx context.Context, id uint) error
}

type jobService struct {
	store repository.Store
	keyMu sync.Mutex
}

// NewJobService builds a JobService on top of the store.
func NewJobService(store repository.Store) JobService {
	return &jobService{store: store}
}

func (s *jobService) ListJobs(ctx context.Context) ([]model.Job, error) {
	return s.store.Repos().Jobs.List(ctx)
}

func (s *jobService) GetJob(ctx context.Context, id uint) (*model.Job, error) {
	job, err := s.store.Repos().Jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// CreateJob checks the posting member exists, assigns the next job id and
// inserts. A zero DatePosted defaults to the current day.
func (s *jobService) CreateJob(ctx context.Context, job *model.Job) (*model.Job, error) {
	s.keyMu.Lock()
	defer s.keyMu.Unlock()

	err := s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Members.FindByID(ctx, job.MemberUserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrMemberMissing
			}
			return err
		}
		maxID, err := repos.Jobs.MaxID(ctx)
		if err != nil {
			return err
		}
		job.JobID = maxID + 1
		if job.DatePosted.IsZero() {
			job.DatePosted = today()
		}
		return repos.Jobs.Create(ctx, job)
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

// UpdateJob rewrites the member reference, caregiving type and requirements,
// re-checking the member reference. The posting date is not editable.
func (s *jobService) UpdateJob(ctx context.Context, id uint, job *model.Job) (*model.Job, error) {
	err := s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		current, err := repos.Jobs.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrJobNotFound
			}
			return err
		}
		if _, err := repos.Members.FindByID(ctx, job.MemberUserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrMemberMissing
			}
			return err
		}
		job.JobID = id
		job.DatePosted = current.DatePosted
		return repos.Jobs.Save(ctx, job)
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes the job unless applications still reference it (Restrict).
func (s *jobService) DeleteJob(ctx context.Context, id uint) error {
	return s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Jobs.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrJobNotFound
			}
			return err
		}
		applications, err := repos.JobApplications.CountByJob(ctx, id)
		if err != nil {
			return err
		}
		if applications > 0 {
			return apperr.ErrJobHasApplications
		}
		return repos.Jobs.Delete(ctx, id)
	})
}

// today returns the current date truncated to midnight UTC, matching the
// date-only columns.
func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
