package converter

import (
	"time"

	"health-scheduling-api/internal/delivery/dto"
	"health-scheduling-api/internal/domain/entity"
)

// ConsultationToResponse converts a Consultation entity to ConsultationResponse DTO.
// is_future is evaluated against now.
func ConsultationToResponse(consultation *entity.Consultation, now time.Time) *dto.ConsultationResponse {
	if consultation == nil {
		return nil
	}

	resp := &dto.ConsultationResponse{
		ID:             consultation.ID,
		ScheduledAt:    consultation.ScheduledAt,
		ProfessionalID: consultation.ProfessionalID,
		Notes:          consultation.Notes,
		IsFuture:       consultation.IsFuture(now),
		CreatedAt:      consultation.CreatedAt,
		UpdatedAt:      consultation.UpdatedAt,
	}
	if consultation.Professional.ID != 0 {
		resp.Professional = ProfessionalToResponse(&consultation.Professional)
	}
	return resp
}

// ConsultationsToListItems converts a slice of Consultation entities to list item DTOs
func ConsultationsToListItems(consultations []entity.Consultation, now time.Time) []dto.ConsultationListItem {
	items := make([]dto.ConsultationListItem, len(consultations))
	for i, c := range consultations {
		items[i] = dto.ConsultationListItem{
			ID:                     c.ID,
			ScheduledAt:            c.ScheduledAt,
			ProfessionalID:         c.ProfessionalID,
			ProfessionalName:       c.Professional.SocialName,
			ProfessionalProfession: c.Professional.Profession,
			Notes:                  c.Notes,
			IsFuture:               c.IsFuture(now),
			CreatedAt:              c.CreatedAt,
			UpdatedAt:              c.UpdatedAt,
		}
	}
	return items
}
