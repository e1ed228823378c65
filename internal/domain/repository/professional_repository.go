package repository

import (
	"health-scheduling-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ProfessionalRepository interface {
	Create(db *gorm.DB, professional *entity.Professional) error
	FindByID(db *gorm.DB, id uint) (*entity.Professional, error)
	FindAll(db *gorm.DB, filter entity.ProfessionalFilter, page entity.Page) ([]entity.ProfessionalSummary, int64, error)
	Update(db *gorm.DB, professional *entity.Professional) error
	Delete(db *gorm.DB, id uint) (int64, error)
	Exists(db *gorm.DB, id uint) (bool, error)
}
