package model

import "time"

// JobApplication records a caregiver applying to a job. The composite primary
// key makes the (caregiver, job) pair unique.
type JobApplication struct {
	CaregiverUserID uint      `json:"caregiver_user_id" gorm:"primaryKey;autoIncrement:false"`
	JobID           uint      `json:"job_id" gorm:"primaryKey;autoIncrement:false"`
	DateApplied     time.Time `json:"date_applied" gorm:"type:date;not null"`

	// Relations
	Caregiver Caregiver `json:"-" gorm:"foreignKey:CaregiverUserID;references:CaregiverUserID;constraint:OnDelete:RESTRICT"`
	Job       Job       `json:"-" gorm:"foreignKey:JobID;references:JobID;constraint:OnDelete:RESTRICT"`
}
