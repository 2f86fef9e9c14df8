package model

// Member is the care-seeking profile of a user. The primary key is the owning
// user's id, so a user can hold at most one member profile.
type Member struct {
	MemberUserID         uint   `json:"member_user_id" gorm:"primaryKey;autoIncrement:false"`
	HouseRules           string `json:"house_rules" gorm:"type:text;not null"`
	DependentDescription string `json:"dependent_description" gorm:"type:text;not null"`

	// Relations
	User User `json:"-" gorm:"foreignKey:MemberUserID;references:UserID;constraint:OnDelete:RESTRICT"`
}
