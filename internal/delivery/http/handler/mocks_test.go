package handler

import (
	"context"

	"health-scheduling-api/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProfessionalUsecase struct {
	mock.Mock
}

func (m *MockProfessionalUsecase) CreateProfessional(ctx context.Context, req *dto.ProfessionalRequest) (*dto.ProfessionalResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProfessionalResponse), args.Error(1)
}

func (m *MockProfessionalUsecase) GetProfessional(ctx context.Context, id uint) (*dto.ProfessionalResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProfessionalResponse), args.Error(1)
}

func (m *MockProfessionalUsecase) ListProfessionals(ctx context.Context, query dto.ProfessionalListQuery) (*dto.ProfessionalListResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProfessionalListResponse), args.Error(1)
}

func (m *MockProfessionalUsecase) UpdateProfessional(ctx context.Context, id uint, req *dto.ProfessionalRequest, partial bool) (*dto.ProfessionalResponse, error) {
	args := m.Called(ctx, id, req, partial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProfessionalResponse), args.Error(1)
}

func (m *MockProfessionalUsecase) DeleteProfessional(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type MockConsultationUsecase struct {
	mock.Mock
}

func (m *MockConsultationUsecase) CreateConsultation(ctx context.Context, req *dto.ConsultationRequest) (*dto.ConsultationResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConsultationResponse), args.Error(1)
}

func (m *MockConsultationUsecase) GetConsultation(ctx context.Context, id uint) (*dto.ConsultationResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConsultationResponse), args.Error(1)
}

func (m *MockConsultationUsecase) ListConsultations(ctx context.Context, query dto.ConsultationListQuery) (*dto.ConsultationListResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConsultationListResponse), args.Error(1)
}

func (m *MockConsultationUsecase) ListByProfessional(ctx context.Context, professionalID uint, page int) (*dto.ConsultationListResponse, error) {
	args := m.Called(ctx, professionalID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConsultationListResponse), args.Error(1)
}

func (m *MockConsultationUsecase) UpdateConsultation(ctx context.Context, id uint, req *dto.ConsultationRequest, partial bool) (*dto.ConsultationResponse, error) {
	args := m.Called(ctx, id, req, partial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConsultationResponse), args.Error(1)
}

func (m *MockConsultationUsecase) DeleteConsultation(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type MockPaymentUsecase struct {
	mock.Mock
}

func (m *MockPaymentUsecase) CreatePayment(ctx context.Context, consultationID uint, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	args := m.Called(ctx, consultationID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaymentResponse), args.Error(1)
}

func (m *MockPaymentUsecase) GetPayment(ctx context.Context, id uuid.UUID) (*dto.PaymentResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaymentResponse), args.Error(1)
}

func (m *MockPaymentUsecase) HandleWebhook(ctx context.Context, req *dto.PaymentWebhookRequest) (*dto.PaymentWebhookResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaymentWebhookResponse), args.Error(1)
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenResponse), args.Error(1)
}

func (m *MockAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenResponse), args.Error(1)
}

func (m *MockAuthUsecase) VerifyToken(ctx context.Context, req *dto.VerifyTokenRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockAuthUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID string, req *dto.LogoutRequest) error {
	return m.Called(ctx, userID, accessTokenID, req).Error(0)
}

func (m *MockAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockAuthUsecase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

type MockAuditLogUsecase struct {
	mock.Mock
}

func (m *MockAuditLogUsecase) GetAllAuditLogs(ctx context.Context, page int) (*dto.AuditLogListResponse, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuditLogListResponse), args.Error(1)
}

func (m *MockAuditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuditLogResponse), args.Error(1)
}
