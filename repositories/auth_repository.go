package repositories

import (
	"moving-tracker/models"

	"gorm.io/gorm"
)

type IAuthRepository interface {
	CreateUser(user models.User) (*models.User, error)
	FindUser(username string) (*models.User, error)
	FindAllUsers() (*[]models.User, error)
}

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) IAuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) CreateUser(user models.User) (*models.User, error) {
	result := r.db.Create(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *AuthRepository) FindUser(username string) (*models.User, error) {
	var user models.User
	result := r.db.First(&user, "username = ?", username)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (r *AuthRepository) FindAllUsers() (*[]models.User, error) {
	var users []models.User
	result := r.db.Order("id").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return &users, nil
}
