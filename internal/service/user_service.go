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

// UserService exposes user record operations.
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	UpdateUser(ctx context.Context, id uint, user *model.User) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	store repository.Store

	// Serializes the max-id read against the insert so concurrent creates
	// cannot allocate the same key.
	keyMu sync.Mutex
}

// NewUserService builds a UserService on top of the store.
func NewUserService(store repository.Store) UserService {
	return &userService{store: store}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.store.Repos().Users.List(ctx)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.store.Repos().Users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// CreateUser assigns the next user id (max existing id plus one) and inserts
// the row, rejecting duplicate emails.
func (s *userService) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	s.keyMu.Lock()
	defer s.keyMu.Unlock()

	err := s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if err := ensureEmailFree(ctx, repos.Users, user.Email, 0); err != nil {
			return err
		}
		maxID, err := repos.Users.MaxID(ctx)
		if err != nil {
			return err
		}
		user.UserID = maxID + 1
		return repos.Users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser rewrites every editable field of the identified user.
func (s *userService) UpdateUser(ctx context.Context, id uint, user *model.User) (*model.User, error) {
	err := s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Users.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrUserNotFound
			}
			return err
		}
		if err := ensureEmailFree(ctx, repos.Users, user.Email, id); err != nil {
			return err
		}
		user.UserID = id
		return repos.Users.Save(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user unless a caregiver or member profile still
// references it (delete is Restrict for both profile relations).
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	return s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Users.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrUserNotFound
			}
			return err
		}
		if _, err := repos.Caregivers.FindByID(ctx, id); err == nil {
			return apperr.ErrUserHasProfiles
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if _, err := repos.Members.FindByID(ctx, id); err == nil {
			return apperr.ErrUserHasProfiles
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return repos.Users.Delete(ctx, id)
	})
}

// ensureEmailFree rejects an email already registered to a different user.
// selfID 0 means a create, where any hit is a conflict.
func ensureEmailFree(ctx context.Context, users repository.UserRepository, email string, selfID uint) error {
	existing, err := users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.UserID != selfID {
		return apperr.ErrEmailTaken
	}
	return nil
}
