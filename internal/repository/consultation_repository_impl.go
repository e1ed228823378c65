package repository

import (
	"errors"
	"time"

	"health-scheduling-api/internal/domain/entity"
	domainRepo "health-scheduling-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var consultationOrdering = map[string]string{
	"scheduled_at": "consultations.scheduled_at",
	"created_at":   "consultations.created_at",
}

const defaultConsultationOrder = "consultations.scheduled_at DESC"

type consultationRepository struct{}

func NewConsultationRepository() domainRepo.ConsultationRepository {
	return &consultationRepository{}
}

func (r *consultationRepository) Create(db *gorm.DB, consultation *entity.Consultation) error {
	return db.Omit(clause.Associations).Create(consultation).Error
}

func (r *consultationRepository) FindByID(db *gorm.DB, id uint) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := db.Preload("Professional").Where("id = ?", id).First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) FindAll(db *gorm.DB, filter entity.ConsultationFilter, page entity.Page) ([]entity.Consultation, int64, error) {
	var total int64
	err := db.Model(&entity.Consultation{}).Scopes(consultationFilterScope(filter)).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	consultations := []entity.Consultation{}
	if total == 0 {
		return consultations, 0, nil
	}

	err = db.Model(&entity.Consultation{}).
		Scopes(consultationFilterScope(filter)).
		Preload("Professional").
		Order(orderClause(filter.Ordering, consultationOrdering, defaultConsultationOrder)).
		Order("consultations.id DESC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&consultations).Error
	if err != nil {
		return nil, 0, err
	}
	return consultations, total, nil
}

func (r *consultationRepository) Update(db *gorm.DB, consultation *entity.Consultation) error {
	return db.Omit(clause.Associations).Save(consultation).Error
}

func (r *consultationRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Consultation{})
	return result.RowsAffected, result.Error
}

func (r *consultationRepository) CountByProfessionalID(db *gorm.DB, professionalID uint) (int64, error) {
	var count int64
	err := db.Model(&entity.Consultation{}).Where("professional_id = ?", professionalID).Count(&count).Error
	return count, err
}

func consultationFilterScope(filter entity.ConsultationFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.ProfessionalID != nil {
			db = db.Where("consultations.professional_id = ?", *filter.ProfessionalID)
		}
		if filter.Date != nil {
			start := time.Date(filter.Date.Year(), filter.Date.Month(), filter.Date.Day(), 0, 0, 0, 0, time.UTC)
			db = db.Where("consultations.scheduled_at >= ? AND consultations.scheduled_at < ?", start, start.AddDate(0, 0, 1))
		}
		if terms := searchTerms(filter.Search); len(terms) > 0 {
			db = db.Joins("JOIN professionals ON professionals.id = consultations.professional_id")
			for _, term := range terms {
				pattern := containsPattern(term)
				db = db.Where("professionals.social_name ILIKE ? OR consultations.notes ILIKE ?", pattern, pattern)
			}
		}
		return db
	}
}
