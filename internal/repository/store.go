package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles the per-entity repositories bound to one *gorm.DB,
// which may be the root connection or an open transaction.
type Repositories struct {
	Users           UserRepository
	Caregivers      CaregiverRepository
	Members         MemberRepository
	Addresses       AddressRepository
	Jobs            JobRepository
	JobApplications JobApplicationRepository
	Appointments    AppointmentRepository
}

// Store hands out repositories and scopes units of work to one transaction.
type Store interface {
	// Repos returns repositories bound to the root connection, for reads.
	Repos() Repositories
	// WithTransaction runs fn with repositories bound to a single
	// transaction; fn returning an error rolls everything back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

type store struct {
	db *gorm.DB
}

// NewStore builds a GORM-backed store.
func NewStore(db *gorm.DB) Store {
	return &store{db: db}
}

func (s *store) Repos() Repositories {
	return newRepositories(s.db)
}

func (s *store) WithTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, newRepositories(tx))
	})
}

func newRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:           NewUserRepository(db),
		Caregivers:      NewCaregiverRepository(db),
		Members:         NewMemberRepository(db),
		Addresses:       NewAddressRepository(db),
		Jobs:            NewJobRepository(db),
		JobApplications: NewJobApplicationRepository(db),
		Appointments:    NewAppointmentRepository(db),
	}
}
