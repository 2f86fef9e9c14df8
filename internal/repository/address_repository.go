package repository

import (
	"context"

	"gorm.io/gorm"

	"carelink/internal/model"
)

// AddressRepository defines address persistence operations. Addresses are
// keyed by the owning member's id.
type AddressRepository interface {
	Create(ctx context.Context, address *model.Address) error
	Save(ctx context.Context, address *model.Address) error
	FindByID(ctx context.Context, memberUserID uint) (*model.Address, error)
	List(ctx context.Context) ([]model.Address, error)
	Delete(ctx context.Context, memberUserID uint) error
}

type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository builds a GORM-backed repository.
func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(ctx context.Context, address *model.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *addressRepository) Save(ctx context.Context, address *model.Address) error {
	return r.db.WithContext(ctx).Save(address).Error
}

func (r *addressRepository) FindByID(ctx context.Context, memberUserID uint) (*model.Address, error) {
	var address model.Address
	if err := r.db.WithContext(ctx).Where("member_user_id = ?", memberUserID).First(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *addressRepository) List(ctx context.Context) ([]model.Address, error) {
	var addresses []model.Address
	if err := r.db.WithContext(ctx).Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *addressRepository) Delete(ctx context.Context, memberUserID uint) error {
	return r.db.WithContext(ctx).Delete(&model.Address{}, "member_user_id = ?", memberUserID).Error
}
