package model

import "time"

// Job is a care job posted by a member.
type Job struct {
	JobID                  uint      `json:"job_id" gorm:"primaryKey;autoIncrement:false"`
	MemberUserID           uint      `json:"member_user_id" gorm:"not null;index"`
	RequiredCaregivingType string    `json:"required_caregiving_type" gorm:"size:50;not null"`
	OtherRequirements      string    `json:"other_requirements,omitempty" gorm:"type:text"`
	DatePosted             time.Time `json:"date_posted" gorm:"type:date;not null"`

	// Relations
	Member Member `json:"-" gorm:"foreignKey:MemberUserID;references:MemberUserID;constraint:OnDelete:RESTRICT"`
}
