package entity

import "time"

// Professional is a healthcare professional that consultations are booked with.
type Professional struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SocialName string    `gorm:"type:varchar(255);not null;index" json:"social_name"`
	Profession string    `gorm:"type:varchar(255);not null;index" json:"profession"`
	Address    string    `gorm:"type:text;not null" json:"address"`
	Contact    string    `gorm:"type:varchar(255);not null" json:"contact"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Consultations []Consultation `gorm:"foreignKey:ProfessionalID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"consultations,omitempty"`
}

func (Professional) TableName() string {
	return "professionals"
}

// ProfessionalSummary is a list row: the professional plus its consultation count.
type ProfessionalSummary struct {
	Professional
	TotalConsultations int64 `gorm:"column:total_consultations" json:"total_consultations"`
}
