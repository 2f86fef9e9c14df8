package repository

import (
	"context"

	"gorm.io/gorm"

	"carelink/internal/model"
)

// MemberRepository defines member-profile persistence operations.
type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	Save(ctx context.Context, member *model.Member) error
	FindByID(ctx context.Context, userID uint) (*model.Member, error)
	List(ctx context.Context) ([]model.Member, error)
	Delete(ctx context.Context, userID uint) error
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository builds a GORM-backed repository.
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepository) Save(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *memberRepository) FindByID(ctx context.Context, userID uint) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).Where("member_user_id = ?", userID).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) List(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	if err := r.db.WithContext(ctx).Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) Delete(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Delete(&model.Member{}, "member_user_id = ?", userID).Error
}
