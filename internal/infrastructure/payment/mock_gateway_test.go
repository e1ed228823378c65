package payment

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"health-scheduling-api/config"
	"health-scheduling-api/internal/domain/entity"
	"health-scheduling-api/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway() service.PaymentGateway {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewMockGateway(config.PaymentConfig{APIURL: "https://sandbox.asaas.com/api/v3"}, log)
}

func TestMockGateway_CreateCharge(t *testing.T) {
	gateway := newTestGateway()
	ctx := context.Background()

	customerID, err := gateway.CreateCustomer(ctx, service.GatewayCustomer{Name: "Paciente"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(customerID, "cus_"))

	charge, err := gateway.CreateCharge(ctx, service.ChargeRequest{
		CustomerID:        customerID,
		BillingType:       entity.BillingTypePix,
		Value:             decimal.NewFromInt(200),
		DueDate:           time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
		ExternalReference: "consultation_1",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(charge.ID, "pay_"))
	assert.Equal(t, entity.PaymentStatusPending, charge.Status)
	assert.Equal(t, "https://sandbox.asaas.com/i/"+strings.TrimPrefix(charge.ID, "pay_"), charge.InvoiceURL)
}

func TestMockGateway_ConfigureSplit(t *testing.T) {
	gateway := newTestGateway()

	err := gateway.ConfigureSplit(context.Background(), "pay_1", []service.SplitShare{
		{WalletID: "wal_professional", Percent: decimal.NewFromInt(80)},
		{WalletID: "wal_platform", Percent: decimal.NewFromInt(20)},
	})
	assert.NoError(t, err)

	err = gateway.ConfigureSplit(context.Background(), "pay_1", []service.SplitShare{{Percent: decimal.NewFromInt(20)}})
	assert.Error(t, err)
}
