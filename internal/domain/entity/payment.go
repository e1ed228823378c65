package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Billing types accepted by the payment gateway.
const (
	BillingTypeBoleto     = "BOLETO"
	BillingTypeCreditCard = "CREDIT_CARD"
	BillingTypePix        = "PIX"
)

// Charge statuses reported by the payment gateway.
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusReceived  = "RECEIVED"
	PaymentStatusConfirmed = "CONFIRMED"
	PaymentStatusOverdue   = "OVERDUE"
	PaymentStatusRefunded  = "REFUNDED"
	PaymentStatusCancelled = "CANCELLED"
)

// Payment is a gateway charge issued for a consultation. The consultation
// reference is cleared, not cascaded, when the consultation is removed.
type Payment struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ConsultationID    *uint           `gorm:"index" json:"consultation_id"`
	CustomerID        string          `gorm:"type:varchar(100);not null" json:"customer_id"`
	GatewayChargeID   string          `gorm:"type:varchar(100);uniqueIndex:uq_payments_gateway_charge_id;not null" json:"gateway_charge_id"`
	BillingType       string          `gorm:"type:varchar(20);not null" json:"billing_type"`
	Value             decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"value"`
	ProfessionalShare decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"professional_share"`
	PlatformShare     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"platform_share"`
	DueDate           time.Time       `gorm:"type:date;not null" json:"due_date"`
	Status            string          `gorm:"type:varchar(30);not null;index" json:"status"`
	InvoiceURL        string          `gorm:"type:text" json:"invoice_url"`
	ExternalReference string          `gorm:"type:varchar(100);not null" json:"external_reference"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Consultation *Consultation `gorm:"foreignKey:ConsultationID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Payment) TableName() string {
	return "payments"
}

// IsPaid reports whether the gateway has settled the charge.
func (p Payment) IsPaid() bool {
	return p.Status == PaymentStatusReceived || p.Status == PaymentStatusConfirmed
}
