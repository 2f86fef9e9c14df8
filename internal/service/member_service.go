package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperr "carelink/internal/errors"
	"carelink/internal/model"
	"carelink/internal/repository"
)

// MemberService exposes member-profile operations.
type MemberService interface {
	ListMembers(ctx context.Context) ([]model.Member, error)
	GetMember(ctx context.Context, userID uint) (*model.Member, error)
	CreateMember(ctx context.Context, member *model.Member) (*model.Member, error)
	UpdateMember(ctx context.Context, userID uint, member *model.Member) (*model.Member, error)
	DeleteMember(ctx context.Context, userID uint) error
}

type memberService struct {
	store repository.Store
}

// NewMemberService builds a MemberService on top of the store.
func NewMemberService(store repository.Store) MemberService {
	return &memberService{store: store}
}

func (s *memberService) ListMembers(ctx context.Context) ([]model.Member, error) {
	return s.store.Repos().Members.List(ctx)
}

func (s *memberService) GetMember(ctx context.Context, userID uint) (*model.Member, error) {
	member, err := s.store.Repos().Members.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// CreateMember checks the referenced user exists, then that the user does not
// already hold a member profile, before inserting.
func (s *memberService) CreateMember(ctx context.Context, member *model.Member) (*model.Member, error) {
	err := s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Users.FindByID(ctx, member.MemberUserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrUserMissing
			}
			return err
		}
		if _, err := repos.Members.FindByID(ctx, member.MemberUserID); err == nil {
			return apperr.ErrMemberExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return repos.Members.Create(ctx, member)
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// UpdateMember rewrites every editable field; the key cannot change.
func (s *memberService) UpdateMember(ctx context.Context, userID uint, member *model.Member) (*model.Member, error) {
	err := s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Members.FindByID(ctx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrMemberNotFound
			}
			return err
		}
		member.MemberUserID = userID
		return repos.Members.Save(ctx, member)
	})
	if err != nil {
		return nil, err
	}
	return member, nil
}

// DeleteMember removes the profile unless jobs or appointments still
// reference it (Restrict). The member's address, owned 1:1, is removed in the
// same transaction (Cascade).
func (s *memberService) DeleteMember(ctx context.Context, userID uint) error {
	return s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Members.FindByID(ctx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrMemberNotFound
			}
			return err
		}
		jobs, err := repos.Jobs.CountByMember(ctx, userID)
		if err != nil {
			return err
		}
		appointments, err := repos.Appointments.CountByMember(ctx, userID)
		if err != nil {
			return err
		}
		if jobs > 0 || appointments > 0 {
			return apperr.ErrMemberInUse
		}
		if err := repos.Addresses.Delete(ctx, userID); err != nil {
			return err
		}
		return repos.Members.Delete(ctx, userID)
	})
}
