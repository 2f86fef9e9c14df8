package model

// Address is the home address of a member, owned 1:1 and removed together
// with the member.
type Address struct {
	MemberUserID uint   `json:"member_user_id" gorm:"primaryKey;autoIncrement:false"`
	HouseNumber  string `json:"house_number" gorm:"size:25;not null"`
	Street       string `json:"street" gorm:"size:150;not null"`
	Town         string `json:"town" gorm:"size:100;not null"`

	// Relations
	Member Member `json:"-" gorm:"foreignKey:MemberUserID;references:MemberUserID;constraint:OnDelete:CASCADE"`
}
