package dto

import "time"

// Request DTOs

// ConsultationRequest carries the writable consultation fields. A nil field
// was not supplied by the caller.
type ConsultationRequest struct {
	ScheduledAt    *time.Time `json:"scheduled_at"`
	ProfessionalID *uint      `json:"professional_id"`
	Notes          *string    `json:"notes"`
}

type ConsultationListQuery struct {
	ProfessionalID *uint
	Date           *time.Time
	Search         string
	Ordering       string
	Page           int
}

// Response DTOs

type ConsultationResponse struct {
	ID             uint                  `json:"id"`
	ScheduledAt    time.Time             `json:"scheduled_at"`
	ProfessionalID uint                  `json:"professional_id"`
	Professional   *ProfessionalResponse `json:"professional,omitempty"`
	Notes          string                `json:"notes"`
	IsFuture       bool                  `json:"is_future"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

type ConsultationListItem struct {
	ID                     uint      `json:"id"`
	ScheduledAt            time.Time `json:"scheduled_at"`
	ProfessionalID         uint      `json:"professional_id"`
	ProfessionalName       string    `json:"professional_name"`
	ProfessionalProfession string    `json:"professional_profession"`
	Notes                  string    `json:"notes"`
	IsFuture               bool      `json:"is_future"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type ConsultationListResponse struct {
	Consultations []ConsultationListItem `json:"consultations"`
	PageInfo
}
