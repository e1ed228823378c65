package entity

import "time"

// Consultation is an appointment with exactly one professional.
type Consultation struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ScheduledAt    time.Time `gorm:"not null;index" json:"scheduled_at"`
	ProfessionalID uint      `gorm:"not null;index" json:"professional_id"`
	Notes          string    `gorm:"type:text;not null;default:''" json:"notes"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Professional Professional `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

func (Consultation) TableName() string {
	return "consultations"
}

// IsFuture reports whether the consultation is scheduled strictly after now.
// It is derived on every read and never persisted.
func (c Consultation) IsFuture(now time.Time) bool {
	return c.ScheduledAt.After(now)
}
