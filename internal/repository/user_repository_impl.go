package repository

import (
	"errors"

	"health-scheduling-api/internal/domain/entity"
	domainRepo "health-scheduling-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	return r.findOne(db.Where("LOWER(email) = LOWER(?)", email))
}

func (r *userRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return r.findOne(db.Where("id = ?", id))
}

func (r *userRepository) findOne(db *gorm.DB) (*entity.User, error) {
	var user entity.User
	err := db.First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
