package repositories

import (
	"personal-website-api/models"

	"gorm.io/gorm"
)

type NewsletterRepository interface {
	Create(newsletter *models.Newsletter) error
	GetByEmail(email string) (*models.Newsletter, error)
	Update(newsletter *models.Newsletter) error
	GetList(skip, limit int, activeOnly bool) ([]models.Newsletter, error)
}

type newsletterRepository struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Create(newsletter *models.Newsletter) error {
	return r.db.Create(newsletter).Error
}

func (r *newsletterRepository) GetByEmail(email string) (*models.Newsletter, error) {
	var newsletter models.Newsletter
	err := r.db.Where("email = ?", email).First(&newsletter).Error
	return &newsletter, err
}

func (r *newsletterRepository) Update(newsletter *models.Newsletter) error {
	return r.db.Save(newsletter).Error
}

func (r *newsletterRepository) GetList(skip, limit int, activeOnly bool) ([]models.Newsletter, error) {
	var subscribers []models.Newsletter
	query := r.db.Order("subscribed_at desc").Offset(skip).Limit(limit)
	if activeOnly {
		query = query.Where("is_active = ?", models.SubscriptionActive)
	}
	err := query.Find(&subscribers).Error
	return subscribers, err
}
