package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"personal-website-api/models"
	"personal-website-api/repositories"
)

// ContentService covers the three content resources behind /api/content.
type ContentService interface {
	GetCategories() ([]models.Category, error)
	CreateCategory(req models.CreateCategoryRequest) (*models.Category, error)
	GetCategory(id uint) (*models.Category, error)
	UpdateCategory(id uint, req models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(id uint) error

	GetPosts(skip, limit int) ([]models.Post, error)
	CreatePost(req models.CreatePostRequest) (*models.Post, error)
	GetPost(id uint) (*models.Post, error)
	UpdatePost(id uint, req models.UpdatePostRequest) (*models.Post, error)
	DeletePost(id uint) error

	GetProjects(skip, limit int) ([]models.Project, error)
	CreateProject(req models.CreateProjectRequest) (*models.Project, error)
	GetProject(id uint) (*models.Project, error)
	UpdateProject(id uint, req models.UpdateProjectRequest) (*models.Project, error)
	DeleteProject(id uint) error
}

type contentService struct {
	categoryRepo repositories.CategoryRepository
	postRepo     repositories.PostRepository
	projectRepo  repositories.ProjectRepository
}

func NewContentService(
	categoryRepo repositories.CategoryRepository,
	postRepo repositories.PostRepository,
	projectRepo repositories.ProjectRepository,
) ContentService {
	return &contentService{
		categoryRepo: categoryRepo,
		postRepo:     postRepo,
		projectRepo:  projectRepo,
	}
}

// --- Categories ---

func (s *contentService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *contentService) CreateCategory(req models.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{Name: req.Name, Slug: req.Slug}
	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return category, nil
}

func (s *contentService) GetCategory(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *contentService) UpdateCategory(id uint, req models.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		category.Slug = *req.Slug
	}

	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return category, nil
}

func (s *contentService) DeleteCategory(id uint) error {
	if _, err := s.GetCategory(id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(id)
}

// --- Posts ---

func (s *contentService) GetPosts(skip, limit int) ([]models.Post, error) {
	return s.postRepo.GetList(skip, limit)
}

func (s *contentService) CreatePost(req models.CreatePostRequest) (*models.Post, error) {
	status := req.Status
	if status == "" {
		status = models.PostStatusDraft
	}

	post := &models.Post{
		Title:      req.Title,
		Slug:       req.Slug,
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		Status:     status,
		ImageURL:   req.ImageURL,
		CategoryID: req.CategoryID,
	}
	if err := s.postRepo.Create(post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	return post, nil
}

func (s *contentService) GetPost(id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

// UpdatePost applies only payload-present fields and touches updated_at.
func (s *contentService) UpdatePost(id uint, req models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.GetPost(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Slug != nil {
		post.Slug = *req.Slug
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Excerpt != nil {
		post.Excerpt = req.Excerpt
	}
	if req.Status != nil {
		post.Status = *req.Status
	}
	if req.Views != nil {
		post.Views = *req.Views
	}
	if req.ImageURL != nil {
		post.ImageURL = req.ImageURL
	}
	if req.CategoryID != nil {
		post.CategoryID = req.CategoryID
	}

	now := time.Now()
	post.UpdatedAt = &now

	if err := s.postRepo.Update(post); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	return post, nil
}

func (s *contentService) DeletePost(id uint) error {
	if _, err := s.GetPost(id); err != nil {
		return err
	}
	return s.postRepo.Delete(id)
}

// --- Projects ---

func (s *contentService) GetProjects(skip, limit int) ([]models.Project, error) {
	return s.projectRepo.GetList(skip, limit)
}

func (s *contentService) CreateProject(req models.CreateProjectRequest) (*models.Project, error) {
	status := req.Status
	if status == "" {
		status = models.ProjectStatusCompleted
	}

	project := &models.Project{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		ProjectURL:  req.ProjectURL,
		GithubURL:   req.GithubURL,
		Status:      status,
	}
	if err := s.projectRepo.Create(project); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	return project, nil
}

func (s *contentService) GetProject(id uint) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return project, nil
}

func (s *contentService) UpdateProject(id uint, req models.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Slug != nil {
		project.Slug = *req.Slug
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Content != nil {
		project.Content = req.Content
	}
	if req.ImageURL != nil {
		project.ImageURL = req.ImageURL
	}
	if req.ProjectURL != nil {
		project.ProjectURL = req.ProjectURL
	}
	if req.GithubURL != nil {
		project.GithubURL = req.GithubURL
	}
	if req.Status != nil {
		project.Status = *req.Status
	}

	now := time.Now()
	project.UpdatedAt = &now

	if err := s.projectRepo.Update(project); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	return project, nil
}

func (s *contentService) DeleteProject(id uint) error {
	if _, err := s.GetProject(id); err != nil {
		return err
	}
	return s.projectRepo.Delete(id)
}
