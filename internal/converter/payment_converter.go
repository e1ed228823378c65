package converter

import (
	"health-scheduling-api/internal/delivery/dto"
	"health-scheduling-api/internal/domain/entity"
)

// PaymentToResponse converts a Payment entity to PaymentResponse DTO
func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	return &dto.PaymentResponse{
		ID:                payment.ID,
		ConsultationID:    payment.ConsultationID,
		CustomerID:        payment.CustomerID,
		GatewayChargeID:   payment.GatewayChargeID,
		BillingType:       payment.BillingType,
		Value:             payment.Value,
		ProfessionalShare: payment.ProfessionalShare,
		PlatformShare:     payment.PlatformShare,
		DueDate:           payment.DueDate.Format("2006-01-02"),
		Status:            payment.Status,
		InvoiceURL:        payment.InvoiceURL,
		ExternalReference: payment.ExternalReference,
		CreatedAt:         payment.CreatedAt,
		UpdatedAt:         payment.UpdatedAt,
	}
}
