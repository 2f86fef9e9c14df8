package model

// User represents a registered person on the platform. A user may later take a
// caregiver profile, a member profile, or both.
type User struct {
	UserID             uint   `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	Email              string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	GivenName          string `json:"given_name" gorm:"size:100;not null"`
	Surname            string `json:"surname" gorm:"size:100;not null"`
	City               string `json:"city" gorm:"size:100;not null"`
	PhoneNumber        string `json:"phone_number,omitempty" gorm:"size:25"`
	ProfileDescription string `json:"profile_description,omitempty" gorm:"type:text"`
	Password           string `json:"-" gorm:"size:255;not null"` // Never expose in JSON
}
