package usecase

import (
	"context"
	"io"
	"time"

	"health-scheduling-api/internal/domain/entity"
	"health-scheduling-api/internal/service"
	"health-scheduling-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// fakeTransactor runs fn directly with a nil handle; repositories are mocked.
type fakeTransactor struct {
	calls int
}

func (t *fakeTransactor) DB(ctx context.Context) *gorm.DB {
	return nil
}

func (t *fakeTransactor) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	t.calls++
	return fn(nil)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func fixedClock(now time.Time) func() time.Time {
	return func() time.Time { return now }
}

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }

func timePtr(t time.Time) *time.Time { return &t }

// MockProfessionalRepository is a mock implementation of ProfessionalRepository.
type MockProfessionalRepository struct {
	mock.Mock
}

func (m *MockProfessionalRepository) Create(db *gorm.DB, professional *entity.Professional) error {
	args := m.Called(db, professional)
	return args.Error(0)
}

func (m *MockProfessionalRepository) FindByID(db *gorm.DB, id uint) (*entity.Professional, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) FindAll(db *gorm.DB, filter entity.ProfessionalFilter, page entity.Page) ([]entity.ProfessionalSummary, int64, error) {
	args := m.Called(db, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.ProfessionalSummary), args.Get(1).(int64), args.Error(2)
}

func (m *MockProfessionalRepository) Update(db *gorm.DB, professional *entity.Professional) error {
	args := m.Called(db, professional)
	return args.Error(0)
}

func (m *MockProfessionalRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProfessionalRepository) Exists(db *gorm.DB, id uint) (bool, error) {
	args := m.Called(db, id)
	return args.Bool(0), args.Error(1)
}

// MockConsultationRepository is a mock implementation of ConsultationRepository.
type MockConsultationRepository struct {
	mock.Mock
}

func (m *MockConsultationRepository) Create(db *gorm.DB, consultation *entity.Consultation) error {
	args := m.Called(db, consultation)
	return args.Error(0)
}

func (m *MockConsultationRepository) FindByID(db *gorm.DB, id uint) (*entity.Consultation, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Consultation), args.Error(1)
}

func (m *MockConsultationRepository) FindAll(db *gorm.DB, filter entity.ConsultationFilter, page entity.Page) ([]entity.Consultation, int64, error) {
	args := m.Called(db, filter, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Consultation), args.Get(1).(int64), args.Error(2)
}

func (m *MockConsultationRepository) Update(db *gorm.DB, consultation *entity.Consultation) error {
	args := m.Called(db, consultation)
	return args.Error(0)
}

func (m *MockConsultationRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockConsultationRepository) CountByProfessionalID(db *gorm.DB, professionalID uint) (int64, error) {
	args := m.Called(db, professionalID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

// MockAuditLogRepository is a mock implementation of AuditLogRepository.
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	args := m.Called(db, log)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindAll(db *gorm.DB, page entity.Page) ([]entity.AuditLog, int64, error) {
	args := m.Called(db, page)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.AuditLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockAuditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuditLog), args.Error(1)
}

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	args := m.Called(db, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByGatewayChargeID(db *gorm.DB, chargeID string) (*entity.Payment, error) {
	args := m.Called(db, chargeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status string) error {
	args := m.Called(db, id, status)
	return args.Error(0)
}

// MockAuditService is a mock implementation of AuditService.
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID, newValue)
	return args.Error(0)
}

func (m *MockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID, oldValue, newValue)
	return args.Error(0)
}

func (m *MockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID, oldValue)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStore.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Save(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenType, userID, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) Exists(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenType, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenStore) Revoke(ctx context.Context, tokenType jwt.TokenType, userID uuid.UUID, tokenID string) error {
	args := m.Called(ctx, tokenType, userID, tokenID)
	return args.Error(0)
}

// MockPaymentGateway is a mock implementation of PaymentGateway.
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateCustomer(ctx context.Context, customer service.GatewayCustomer) (string, error) {
	args := m.Called(ctx, customer)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentGateway) CreateCharge(ctx context.Context, req service.ChargeRequest) (*service.Charge, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Charge), args.Error(1)
}

func (m *MockPaymentGateway) ConfigureSplit(ctx context.Context, chargeID string, shares []service.SplitShare) error {
	args := m.Called(ctx, chargeID, shares)
	return args.Error(0)
}
