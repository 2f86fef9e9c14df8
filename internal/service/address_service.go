package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperr "carelink/internal/errors"
	"carelink/internal/model"
	"carelink/internal/repository"
)

// AddressService exposes member-address operations.
type AddressService interface {
	ListAddresses(ctx context.Context) ([]model.Address, error)
	GetAddress(ctx context.Context, memberUserID uint) (*model.Address, error)
	CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error)
	UpdateAddress(ctx context.Context, memberUserID uint, address *model.Address) (*model.Address, error)
	DeleteAddress(ctx context.Context, memberUserID uint) error
}

type addressService struct {
	store repository.Store
}

// NewAddressService builds an AddressService on top of the store.
func NewAddressService(store repository.Store) AddressService {
	return &addressService{store: store}
}

func (s *addressService) ListAddresses(ctx context.Context) ([]model.Address, error) {
	return s.store.Repos().Addresses.List(ctx)
}

func (s *addressService) GetAddress(ctx context.Context, memberUserID uint) (*model.Address, error) {
	address, err := s.store.Repos().Addresses.FindByID(ctx, memberUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrAddressNotFound
		}
		return nil, err
	}
	return address, nil
}

// CreateAddress checks the referenced member exists, then that no address is
// registered for it yet, before inserting.
func (s *addressService) CreateAddress(ctx context.Context, address *model.Address) (*model.Address, error) {
	err := s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Members.FindByID(ctx, address.MemberUserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrMemberMissing
			}
			return err
		}
		if _, err := repos.Addresses.FindByID(ctx, address.MemberUserID); err == nil {
			return apperr.ErrAddressExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return repos.Addresses.Create(ctx, address)
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

// UpdateAddress rewrites every editable field; the key cannot change.
func (s *addressService) UpdateAddress(ctx context.Context, memberUserID uint, address *model.Address) (*model.Address, error) {
	err := s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Addresses.FindByID(ctx, memberUserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrAddressNotFound
			}
			return err
		}
		address.MemberUserID = memberUserID
		return repos.Addresses.Save(ctx, address)
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

func (s *addressService) DeleteAddress(ctx context.Context, memberUserID uint) error {
	return s.store.WithTransaction(ctx, func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Addresses.FindByID(ctx, memberUserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.ErrAddressNotFound
			}
			return err
		}
		return repos.Addresses.Delete(ctx, memberUserID)
	})
}
