package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"personal-website-api/models"
	"personal-website-api/repositories"
)

type ContactService interface {
	CreateContact(req models.ContactCreateRequest) (*models.Contact, error)
	GetContacts(skip, limit int) ([]models.Contact, error)
	GetContact(id uint) (*models.Contact, error)
	DeleteContact(id uint) error
}

type contactService struct {
	contactRepo repositories.ContactRepository
	mailer      Mailer
}

func NewContactService(contactRepo repositories.ContactRepository, mailer Mailer) ContactService {
	return &contactService{contactRepo: contactRepo, mailer: mailer}
}

// CreateContact persists the submission, then attempts a best-effort email
// notification. The stored record is the source of truth; a failed send
// never fails the request.
func (s *contactService) CreateContact(req models.ContactCreateRequest) (*models.Contact, error) {
	contact := &models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.contactRepo.Create(contact); err != nil {
		return nil, err
	}

	if !s.mailer.SendContactEmail(req.Name, req.Email, req.Subject, req.Message) {
		logrus.WithField("email", req.Email).Warn("Contact notification not delivered")
	}

	return contact, nil
}

func (s *contactService) GetContacts(skip, limit int) ([]models.Contact, error) {
	return s.contactRepo.GetList(skip, limit)
}

func (s *contactService) GetContact(id uint) (*models.Contact, error) {
	contact, err := s.contactRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return contact, nil
}

func (s *contactService) DeleteContact(id uint) error {
	if _, err := s.contactRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.contactRepo.Delete(id)
}
