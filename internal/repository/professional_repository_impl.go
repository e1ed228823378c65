package repository

import (
	"errors"

	"health-scheduling-api/internal/domain/entity"
	domainRepo "health-scheduling-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var professionalOrdering = map[string]string{
	"social_name": "professionals.social_name",
	"profession":  "professionals.profession",
	"created_at":  "professionals.created_at",
}

const (
	defaultProfessionalOrder = "professionals.created_at DESC"
	totalConsultationsSelect = "professionals.*, (SELECT COUNT(*) FROM consultations WHERE consultations.professional_id = professionals.id) AS total_consultations"
)

type professionalRepository struct{}

func NewProfessionalRepository() domainRepo.ProfessionalRepository {
	return &professionalRepository{}
}

func (r *professionalRepository) Create(db *gorm.DB, professional *entity.Professional) error {
	return db.Omit(clause.Associations).Create(professional).Error
}

func (r *professionalRepository) FindByID(db *gorm.DB, id uint) (*entity.Professional, error) {
	var professional entity.Professional
	err := db.Where("id = ?", id).First(&professional).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &professional, nil
}

func (r *professionalRepository) FindAll(db *gorm.DB, filter entity.ProfessionalFilter, page entity.Page) ([]entity.ProfessionalSummary, int64, error) {
	var total int64
	err := db.Model(&entity.Professional{}).Scopes(professionalFilterScope(filter)).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	professionals := []entity.ProfessionalSummary{}
	if total == 0 {
		return professionals, 0, nil
	}

	err = db.Model(&entity.Professional{}).
		Scopes(professionalFilterScope(filter)).
		Select(totalConsultationsSelect).
		Order(orderClause(filter.Ordering, professionalOrdering, defaultProfessionalOrder)).
		Order("professionals.id DESC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&professionals).Error
	if err != nil {
		return nil, 0, err
	}
	return professionals, total, nil
}

func (r *professionalRepository) Update(db *gorm.DB, professional *entity.Professional) error {
	return db.Omit(clause.Associations).Save(professional).Error
}

func (r *professionalRepository) Delete(db *gorm.DB, id uint) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Professional{})
	return result.RowsAffected, result.Error
}

func (r *professionalRepository) Exists(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Model(&entity.Professional{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func professionalFilterScope(filter entity.ProfessionalFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Profession != "" {
			db = db.Where("professionals.profession = ?", filter.Profession)
		}
		for _, term := range searchTerms(filter.Search) {
			pattern := containsPattern(term)
			db = db.Where("professionals.social_name ILIKE ? OR professionals.profession ILIKE ?", pattern, pattern)
		}
		return db
	}
}
