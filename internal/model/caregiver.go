package model

import "github.com/shopspring/decimal"

// Caregiver is the caregiver profile of a user. The primary key is the owning
// user's id, so a user can hold at most one caregiver profile.
type Caregiver struct {
	CaregiverUserID uint                `json:"caregiver_user_id" gorm:"primaryKey;autoIncrement:false"`
	Photo           string              `json:"photo,omitempty" gorm:"size:255"`
	Gender          string              `json:"gender,omitempty" gorm:"size:10"`
	CaregivingType  string              `json:"caregiving_type" gorm:"size:50;not null"`
	HourlyRate      decimal.NullDecimal `json:"hourly_rate,omitempty" gorm:"type:decimal(10,3)"`

	// Relations
	User User `json:"-" gorm:"foreignKey:CaregiverUserID;references:UserID;constraint:OnDelete:RESTRICT"`
}
