package model

import "time"

// Appointment is a scheduled work session between a caregiver and a member.
// Status is a free-form string; no transition set is enforced.
type Appointment struct {
	AppointmentID   uint      `json:"appointment_id" gorm:"primaryKey;autoIncrement:false"`
	CaregiverUserID uint      `json:"caregiver_user_id" gorm:"not null;index"`
	MemberUserID    uint      `json:"member_user_id" gorm:"not null;index"`
	AppointmentDate time.Time `json:"appointment_date" gorm:"type:date;not null"`
	AppointmentTime string    `json:"appointment_time" gorm:"size:8;not null"`
	WorkHours       int       `json:"work_hours" gorm:"not null"`
	Status          string    `json:"status" gorm:"size:25;not null"`

	// Relations
	Caregiver Caregiver `json:"-" gorm:"foreignKey:CaregiverUserID;references:CaregiverUserID;constraint:OnDelete:RESTRICT"`
	Member    Member    `json:"-" gorm:"foreignKey:MemberUserID;references:MemberUserID;constraint:OnDelete:RESTRICT"`
}
