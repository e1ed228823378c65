package converter

import (
	"health-scheduling-api/internal/delivery/dto"
	"health-scheduling-api/internal/domain/entity"
)

// ProfessionalToResponse converts a Professional entity to ProfessionalResponse DTO
func ProfessionalToResponse(professional *entity.Professional) *dto.ProfessionalResponse {
	if professional == nil {
		return nil
	}

	return &dto.ProfessionalResponse{
		ID:         professional.ID,
		SocialName: professional.SocialName,
		Profession: professional.Profession,
		Address:    professional.Address,
		Contact:    professional.Contact,
		CreatedAt:  professional.CreatedAt,
		UpdatedAt:  professional.UpdatedAt,
	}
}

// ProfessionalSummariesToListItems converts list rows to list item DTOs
func ProfessionalSummariesToListItems(summaries []entity.ProfessionalSummary) []dto.ProfessionalListItem {
	items := make([]dto.ProfessionalListItem, len(summaries))
	for i := range summaries {
		items[i] = dto.ProfessionalListItem{
			ProfessionalResponse: *ProfessionalToResponse(&summaries[i].Professional),
			TotalConsultations:   summaries[i].TotalConsultations,
		}
	}
	return items
}
