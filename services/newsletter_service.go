package services

import (
	"errors"

	"gorm.io/gorm"

	"personal-website-api/models"
	"personal-website-api/repositories"
)

type NewsletterService interface {
	Subscribe(email string) (*models.Newsletter, error)
	Unsubscribe(email string) error
	GetSubscribers(skip, limit int, activeOnly bool) ([]models.Newsletter, error)
}

type newsletterService struct {
	newsletterRepo repositories.NewsletterRepository
}

func NewNewsletterService(newsletterRepo repositories.NewsletterRepository) NewsletterService {
	return &newsletterService{newsletterRepo: newsletterRepo}
}

// Subscribe reactivates an existing inactive subscription in place (the row
// id never changes) and rejects an already-active one. The pre-check has a
// benign race window; the unique index on email is the real guard, and a
// lost race surfaces as the same duplicate error.
func (s *newsletterService) Subscribe(email string) (*models.Newsletter, error) {
	existing, err := s.newsletterRepo.GetByEmail(email)
	if err == nil {
		if existing.IsActive == models.SubscriptionActive {
			return nil, ErrDuplicateSubscription
		}
		existing.IsActive = models.SubscriptionActive
		if err := s.newsletterRepo.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newsletter := &models.Newsletter{
		Email:    email,
		IsActive: models.SubscriptionActive,
	}
	if err := s.newsletterRepo.Create(newsletter); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSubscription
		}
		return nil, err
	}
	return newsletter, nil
}

func (s *newsletterService) Unsubscribe(email string) error {
	newsletter, err := s.newsletterRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	newsletter.IsActive = models.SubscriptionInactive
	return s.newsletterRepo.Update(newsletter)
}

func (s *newsletterService) GetSubscribers(skip, limit int, activeOnly bool) ([]models.Newsletter, error) {
	return s.newsletterRepo.GetList(skip, limit, activeOnly)
}
