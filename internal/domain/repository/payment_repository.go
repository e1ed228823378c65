package repository

import (
	"health-scheduling-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error)
	FindByGatewayChargeID(db *gorm.DB, chargeID string) (*entity.Payment, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status string) error
}
