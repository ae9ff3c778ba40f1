package repositories

import (
	"personal-website-api/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsernameOrEmail(username, email string) (*models.User, error)
	GetList(skip, limit int) ([]models.User, error)
	Update(user *models.User) error
	ReplaceImages(userID uint, imageURLs []string) error
	Delete(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Preload("Images").First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByUsernameOrEmail(username, email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ? OR email = ?", username, email).First(&user).Error
	return &user, err
}

func (r *userRepository) GetList(skip, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Images").Offset(skip).Limit(limit).Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Omit("Images").Save(user).Error
}

// ReplaceImages swaps the user's whole image set: delete everything, insert
// the provided list.
func (r *userRepository) ReplaceImages(userID uint, imageURLs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserImage{}).Error; err != nil {
			return err
		}
		for _, url := range imageURLs {
			image := models.UserImage{UserID: userID, ImageURL: url}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the user and its images in one transaction.
func (r *userRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.UserImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
