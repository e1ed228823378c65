package repository

import (
	"errors"

	"health-scheduling-api/internal/domain/entity"
	domainRepo "health-scheduling-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Omit(clause.Associations).Create(payment).Error
}

func (r *paymentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error) {
	return r.findOne(db.Where("id = ?", id))
}

func (r *paymentRepository) FindByGatewayChargeID(db *gorm.DB, chargeID string) (*entity.Payment, error) {
	return r.findOne(db.Where("gateway_charge_id = ?", chargeID))
}

func (r *paymentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status string) error {
	return db.Model(&entity.Payment{}).Where("id = ?", id).Update("status", status).Error
}

func (r *paymentRepository) findOne(db *gorm.DB) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}
