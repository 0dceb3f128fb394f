package repository

import (
	"errors"

	"academic-attendance-backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByID finds a user by id. Returns (nil, nil) when absent.
func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email, case-insensitively
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByRegistrationNumber finds a student by registration number
func (r *UserRepository) FindByRegistrationNumber(regNo string) (*models.User, error) {
	var user models.User
	err := r.db.Where("registration_number = ?", regNo).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Update saves changes to an existing user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// ListByRole retrieves active users with the given role, ordered by name
func (r *UserRepository) ListByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ? AND status = ?", role, models.StatusActive).
		Order("first_name ASC, last_name ASC").
		Find(&users).Error
	return users, err
}

// ListAll retrieves every user regardless of status, ordered by name
func (r *UserRepository) ListAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("first_name ASC, last_name ASC").Find(&users).Error
	return users, err
}

// CountByRole counts active users with the given role
func (r *UserRepository) CountByRole(role models.Role) (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("role = ? AND status = ?", role, models.StatusActive).
		Count(&count).Error
	return count, err
}
