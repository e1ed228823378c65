// Package payment holds the payment gateway client. Only a logging mock is
// provided: it never performs network calls and answers like the gateway's
// sandbox would.
package payment

import (
	"context"
	"fmt"
	"strings"

	"health-scheduling-api/config"
	"health-scheduling-api/internal/domain/entity"
	"health-scheduling-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type mockGateway struct {
	cfg config.PaymentConfig
	log *logrus.Logger
}

func NewMockGateway(cfg config.PaymentConfig, log *logrus.Logger) service.PaymentGateway {
	return &mockGateway{cfg: cfg, log: log}
}

func (g *mockGateway) CreateCustomer(ctx context.Context, customer service.GatewayCustomer) (string, error) {
	customerID := "cus_" + shortID()
	g.log.WithFields(logrus.Fields{
		"gateway":     g.cfg.APIURL,
		"customer_id": customerID,
	}).Infof("Payment gateway mock: creating customer %s", customer.Name)
	return customerID, nil
}

func (g *mockGateway) CreateCharge(ctx context.Context, req service.ChargeRequest) (*service.Charge, error) {
	chargeID := "pay_" + shortID()
	g.log.WithFields(logrus.Fields{
		"charge_id":          chargeID,
		"billing_type":       req.BillingType,
		"due_date":           req.DueDate.Format("2006-01-02"),
		"external_reference": req.ExternalReference,
	}).Infof("Payment gateway mock: creating charge of %s", req.Value.StringFixed(2))

	return &service.Charge{
		ID:         chargeID,
		Status:     entity.PaymentStatusPending,
		InvoiceURL: g.invoiceURL(chargeID),
	}, nil
}

func (g *mockGateway) ConfigureSplit(ctx context.Context, chargeID string, shares []service.SplitShare) error {
	for _, share := range shares {
		if share.WalletID == "" {
			return fmt.Errorf("split share of %s%% has no wallet", share.Percent.String())
		}
		g.log.WithFields(logrus.Fields{
			"charge_id": chargeID,
			"wallet_id": share.WalletID,
		}).Infof("Payment gateway mock: split %s%%", share.Percent.String())
	}
	return nil
}

func (g *mockGateway) invoiceURL(chargeID string) string {
	base := strings.TrimSuffix(g.cfg.APIURL, "/")
	base = strings.TrimSuffix(base, "/api/v3")
	return fmt.Sprintf("%s/i/%s", base, strings.TrimPrefix(chargeID, "pay_"))
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
