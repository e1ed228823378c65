package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type GatewayCustomer struct {
	Name     string
	Document string
	Email    string
}

type ChargeRequest struct {
	CustomerID        string
	BillingType       string
	Value             decimal.Decimal
	DueDate           time.Time
	Description       string
	ExternalReference string
}

type Charge struct {
	ID         string
	Status     string
	InvoiceURL string
}

// SplitShare assigns part of a charge to a wallet, as a percentage of its value.
type SplitShare struct {
	WalletID string
	Percent  decimal.Decimal
}

// PaymentGateway is the external billing provider.
type PaymentGateway interface {
	CreateCustomer(ctx context.Context, customer GatewayCustomer) (string, error)
	CreateCharge(ctx context.Context, req ChargeRequest) (*Charge, error)
	ConfigureSplit(ctx context.Context, chargeID string, shares []SplitShare) error
}
