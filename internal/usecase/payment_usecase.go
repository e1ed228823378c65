package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"health-scheduling-api/internal/converter"
	"health-scheduling-api/internal/delivery/dto"
	"health-scheduling-api/internal/domain/entity"
	"health-scheduling-api/internal/domain/repository"
	"health-scheduling-api/internal/domain/validation"
	"health-scheduling-api/internal/service"
	"health-scheduling-api/pkg/sanitizer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

const paymentEntity = "payment"

var hundred = decimal.NewFromInt(100)

// PaymentSettings configures how a charge is split between the professional
// and the platform.
type PaymentSettings struct {
	PlatformWalletID         string
	ProfessionalSplitPercent decimal.Decimal
}

type PaymentUsecase interface {
	CreatePayment(ctx context.Context, consultationID uint, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	GetPayment(ctx context.Context, id uuid.UUID) (*dto.PaymentResponse, error)
	HandleWebhook(ctx context.Context, req *dto.PaymentWebhookRequest) (*dto.PaymentWebhookResponse, error)
}

type paymentUsecase struct {
	transactor       repository.Transactor
	log              *logrus.Logger
	consultationRepo repository.ConsultationRepository
	paymentRepo      repository.PaymentRepository
	gateway          service.PaymentGateway
	auditService     service.AuditService
	settings         PaymentSettings
	now              func() time.Time
}

func NewPaymentUsecase(
	transactor repository.Transactor,
	log *logrus.Logger,
	consultationRepo repository.ConsultationRepository,
	paymentRepo repository.PaymentRepository,
	gateway service.PaymentGateway,
	auditService service.AuditService,
	settings PaymentSettings,
	now func() time.Time,
) PaymentUsecase {
	return &paymentUsecase{
		transactor:       transactor,
		log:              log,
		consultationRepo: consultationRepo,
		paymentRepo:      paymentRepo,
		gateway:          gateway,
		auditService:     auditService,
		settings:         settings,
		now:              now,
	}
}

func (u *paymentUsecase) CreatePayment(ctx context.Context, consultationID uint, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	consultation, err := u.consultationRepo.FindByID(u.transactor.DB(ctx), consultationID)
	if err != nil {
		u.log.Warnf("Failed to find consultation: %+v", err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	now := u.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dueDate, parseErr := time.Parse("2006-01-02", req.DueDate)

	rules := []validation.Rule{
		validation.Check("value", req.Value.IsPositive(), "Ensure this value is greater than 0."),
		validation.Check("due_date", parseErr == nil, "Enter a valid date in the format 2006-01-02."),
	}
	if parseErr == nil {
		rules = append(rules, validation.NotBefore("due_date", dueDate, today, "Due date cannot be in the past."))
	}
	if err := validation.Validate(rules...); err != nil {
		return nil, err
	}

	value := req.Value.Round(2)
	professionalShare := value.Mul(u.settings.ProfessionalSplitPercent).Div(hundred).Round(2)
	platformShare := value.Sub(professionalShare)

	customerID, err := u.gateway.CreateCustomer(ctx, service.GatewayCustomer{
		Name:     sanitizer.Clean(req.CustomerName),
		Document: req.CustomerDocument,
		Email:    req.CustomerEmail,
	})
	if err != nil {
		u.log.Warnf("Failed to create gateway customer: %+v", err)
		return nil, err
	}

	description := sanitizer.Clean(req.Description)
	if description == "" {
		description = fmt.Sprintf("Consultation with %s", consultation.Professional.SocialName)
	}
	externalReference := fmt.Sprintf("consultation_%d", consultation.ID)

	charge, err := u.gateway.CreateCharge(ctx, service.ChargeRequest{
		CustomerID:        customerID,
		BillingType:       req.BillingType,
		Value:             value,
		DueDate:           dueDate,
		Description:       description,
		ExternalReference: externalReference,
	})
	if err != nil {
		u.log.Warnf("Failed to create gateway charge: %+v", err)
		return nil, err
	}

	shares := []service.SplitShare{
		{WalletID: req.ProfessionalWalletID, Percent: u.settings.ProfessionalSplitPercent},
		{WalletID: u.settings.PlatformWalletID, Percent: hundred.Sub(u.settings.ProfessionalSplitPercent)},
	}
	if err := u.gateway.ConfigureSplit(ctx, charge.ID, shares); err != nil {
		u.log.Warnf("Failed to configure split: %+v", err)
		return nil, err
	}

	payment := &entity.Payment{
		ConsultationID:    &consultation.ID,
		CustomerID:        customerID,
		GatewayChargeID:   charge.ID,
		BillingType:       req.BillingType,
		Value:             value,
		ProfessionalShare: professionalShare,
		PlatformShare:     platformShare,
		DueDate:           dueDate,
		Status:            charge.Status,
		InvoiceURL:        charge.InvoiceURL,
		ExternalReference: externalReference,
	}

	err = u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.paymentRepo.Create(tx, payment); err != nil {
			u.log.Warnf("Failed to create payment: %+v", err)
			return err
		}

		// Audit log - create payment
		if err := u.auditService.LogCreate(ctx, tx, actorFromContext(ctx), entity.AuditActionPaymentCreate, paymentEntity, payment.ID.String(), converter.PaymentToResponse(payment)); err != nil {
			u.log.Warnf("Failed to create audit log: %+v", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Payment created: id=%s, consultation_id=%d, charge=%s", payment.ID, consultation.ID, payment.GatewayChargeID)
	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) GetPayment(ctx context.Context, id uuid.UUID) (*dto.PaymentResponse, error) {
	payment, err := u.paymentRepo.FindByID(u.transactor.DB(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find payment: %+v", err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	return converter.PaymentToResponse(payment), nil
}

// HandleWebhook stores the status reported for a charge. Events for charges
// this service never issued are acknowledged without effect.
func (u *paymentUsecase) HandleWebhook(ctx context.Context, req *dto.PaymentWebhookRequest) (*dto.PaymentWebhookResponse, error) {
	status := req.Payment.Status
	if status == "" {
		status = strings.TrimPrefix(req.Event, "PAYMENT_")
	}

	var result *dto.PaymentWebhookResponse
	err := u.transactor.WithinTransaction(ctx, func(tx *gorm.DB) error {
		payment, err := u.paymentRepo.FindByGatewayChargeID(tx, req.Payment.ID)
		if err != nil {
			u.log.Warnf("Failed to find payment by charge: %+v", err)
			return err
		}
		if payment == nil {
			u.log.Warnf("Webhook for unknown charge ignored: event=%s, charge=%s", req.Event, req.Payment.ID)
			result = &dto.PaymentWebhookResponse{Processed: false}
			return nil
		}

		if payment.Status != status {
			if err := u.paymentRepo.UpdateStatus(tx, payment.ID, status); err != nil {
				u.log.Warnf("Failed to update payment status: %+v", err)
				return err
			}

			// Audit log - payment status change
			if err := u.auditService.LogUpdate(ctx, tx, nil, entity.AuditActionPaymentStatus, paymentEntity, payment.ID.String(), entity.JSON{"status": payment.Status}, entity.JSON{"status": status}); err != nil {
				u.log.Warnf("Failed to create audit log: %+v", err)
			}
			payment.Status = status
			if payment.IsPaid() {
				u.log.Infof("Payment settled: id=%s, status=%s", payment.ID, status)
			}
		}

		result = &dto.PaymentWebhookResponse{Processed: true, PaymentID: &payment.ID, Status: status}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.log.Infof("Payment webhook processed: event=%s, charge=%s, processed=%t", req.Event, req.Payment.ID, result.Processed)
	return result, nil
}
