package repositories

import (
	"personal-website-api/models"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(contact *models.Contact) error
	GetByID(id uint) (*models.Contact, error)
	GetList(skip, limit int) ([]models.Contact, error)
	Delete(id uint) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

func (r *contactRepository) GetByID(id uint) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, id).Error
	return &contact, err
}

func (r *contactRepository) GetList(skip, limit int) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Order("created_at desc").
		Offset(skip).Limit(limit).
		Find(&contacts).Error
	return contacts, err
}

func (r *contactRepository) Delete(id uint) error {
	return r.db.Delete(&models.Contact{}, id).Error
}
