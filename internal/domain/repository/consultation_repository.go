package repository

import (
	"health-scheduling-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ConsultationRepository interface {
	Create(db *gorm.DB, consultation *entity.Consultation) error
	FindByID(db *gorm.DB, id uint) (*entity.Consultation, error)
	FindAll(db *gorm.DB, filter entity.ConsultationFilter, page entity.Page) ([]entity.Consultation, int64, error)
	Update(db *gorm.DB, consultation *entity.Consultation) error
	Delete(db *gorm.DB, id uint) (int64, error)
	CountByProfessionalID(db *gorm.DB, professionalID uint) (int64, error)
}
