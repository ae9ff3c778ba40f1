package services

import (
	"errors"

	"gorm.io/gorm"

	"personal-website-api/models"
	"personal-website-api/repositories"
)

type UserService interface {
	CreateUser(req models.CreateUserRequest) (*models.User, error)
	GetUsers(skip, limit int) ([]models.User, error)
	GetUser(id uint) (*models.User, error)
	UpdateUser(id uint, req models.UpdateUserRequest) (*models.User, error)
	DeleteUser(id uint) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(req models.CreateUserRequest) (*models.User, error) {
	// Pre-check for a friendly error; the unique indexes catch the race.
	if _, err := s.userRepo.GetByUsernameOrEmail(req.Username, req.Email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	user := &models.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashed,
		Role:           role,
		IsActive:       isActive,
		FullName:       req.FullName,
		DOB:            req.DOB,
	}
	for _, url := range req.Images {
		user.Images = append(user.Images, models.UserImage{ImageURL: url})
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	// Reload with children attached.
	return s.userRepo.GetByID(user.ID)
}

func (s *userService) GetUsers(skip, limit int) ([]models.User, error) {
	return s.userRepo.GetList(skip, limit)
}

func (s *userService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser applies only the fields present in the payload. A present
// images field replaces the whole child set.
func (s *userService) UpdateUser(id uint, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = hashed
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.FullName != nil {
		user.FullName = req.FullName
	}
	if req.DOB != nil {
		user.DOB = req.DOB
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	if req.Images != nil {
		if err := s.userRepo.ReplaceImages(user.ID, *req.Images); err != nil {
			return nil, err
		}
	}

	return s.userRepo.GetByID(user.ID)
}

func (s *userService) DeleteUser(id uint) error {
	if _, err := s.userRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.userRepo.Delete(id)
}
