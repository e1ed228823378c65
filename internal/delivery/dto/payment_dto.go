package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreatePaymentRequest struct {
	BillingType          string          `json:"billing_type" validate:"required,oneof=BOLETO CREDIT_CARD PIX"`
	Value                decimal.Decimal `json:"value"`
	DueDate              string          `json:"due_date" validate:"required,datetime=2006-01-02"`
	CustomerName         string          `json:"customer_name" validate:"required,min=2,max=255"`
	CustomerDocument     string          `json:"customer_document" validate:"required,numeric,min=11,max=14"`
	CustomerEmail        string          `json:"customer_email" validate:"required,email"`
	ProfessionalWalletID string          `json:"professional_wallet_id" validate:"required,max=100"`
	Description          string          `json:"description" validate:"omitempty,max=500"`
}

// PaymentWebhookRequest is the event body posted by the payment gateway.
type PaymentWebhookRequest struct {
	Event   string `json:"event" validate:"required"`
	Payment struct {
		ID                string `json:"id" validate:"required"`
		Status            string `json:"status"`
		ExternalReference string `json:"externalReference"`
	} `json:"payment"`
}

// Response DTOs

type PaymentResponse struct {
	ID                uuid.UUID       `json:"id"`
	ConsultationID    *uint           `json:"consultation_id"`
	CustomerID        string          `json:"customer_id"`
	GatewayChargeID   string          `json:"gateway_charge_id"`
	BillingType       string          `json:"billing_type"`
	Value             decimal.Decimal `json:"value"`
	ProfessionalShare decimal.Decimal `json:"professional_share"`
	PlatformShare     decimal.Decimal `json:"platform_share"`
	DueDate           string          `json:"due_date"`
	Status            string          `json:"status"`
	InvoiceURL        string          `json:"invoice_url"`
	ExternalReference string          `json:"external_reference"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

type PaymentWebhookResponse struct {
	Processed bool       `json:"processed"`
	PaymentID *uuid.UUID `json:"payment_id,omitempty"`
	Status    string     `json:"status,omitempty"`
}
