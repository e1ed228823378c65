package dto

import "time"

// Request DTOs

// ProfessionalRequest carries the writable professional fields. A nil field
// was not supplied by the caller.
type ProfessionalRequest struct {
	SocialName *string `json:"social_name"`
	Profession *string `json:"profession"`
	Address    *string `json:"address"`
	Contact    *string `json:"contact"`
}

type ProfessionalListQuery struct {
	Profession string
	Search     string
	Ordering   string
	Page       int
}

// Response DTOs

type ProfessionalResponse struct {
	ID         uint      `json:"id"`
	SocialName string    `json:"social_name"`
	Profession string    `json:"profession"`
	Address    string    `json:"address"`
	Contact    string    `json:"contact"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ProfessionalListItem struct {
	ProfessionalResponse
	TotalConsultations int64 `json:"total_consultations"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalListItem `json:"professionals"`
	PageInfo
}
