package entity

import "time"

// ProfessionalFilter is a domain-level filter for listing professionals.
// Used by repository layer to avoid coupling with delivery DTOs.
type ProfessionalFilter struct {
	Profession string // exact match
	Search     string // every term must match social name or profession
	Ordering   string // social_name, profession, created_at; "-" prefix for descending
}

// ConsultationFilter is a domain-level filter for listing consultations.
type ConsultationFilter struct {
	ProfessionalID *uint
	Date           *time.Time // calendar day in UTC
	Search         string     // every term must match professional social name or notes
	Ordering       string     // scheduled_at, created_at; "-" prefix for descending
}

// Page is a 1-based offset page of a fixed size.
type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}
