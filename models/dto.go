package models

import "time"

// Create requests carry required fields; update requests use pointer fields
// so handlers can tell an absent key from a zero value and only apply what
// the payload actually contains.

type ContactCreateRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=100"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone" binding:"omitempty,max=20"`
	Subject string  `json:"subject" binding:"required,min=3,max=200"`
	Message string  `json:"message" binding:"required,min=10,max=2000"`
}

type NewsletterSubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type CreateUserRequest struct {
	Username string     `json:"username" binding:"required,min=3,max=50"`
	Email    string     `json:"email" binding:"required,email"`
	Password string     `json:"password" binding:"required,min=6"`
	Role     UserRole   `json:"role" binding:"omitempty,oneof=admin user"`
	IsActive *bool      `json:"is_active"`
	FullName *string    `json:"full_name" binding:"omitempty,max=100"`
	DOB      *time.Time `json:"dob"`
	Images   []string   `json:"images" binding:"omitempty,dive,max=500"`
}

type UpdateUserRequest struct {
	Username *string    `json:"username" binding:"omitempty,min=3,max=50"`
	Email    *string    `json:"email" binding:"omitempty,email"`
	Password *string    `json:"password" binding:"omitempty,min=6"`
	Role     *UserRole  `json:"role" binding:"omitempty,oneof=admin user"`
	IsActive *bool      `json:"is_active"`
	FullName *string    `json:"full_name" binding:"omitempty,max=100"`
	DOB      *time.Time `json:"dob"`
	// Non-nil replaces the whole image set; an empty list clears it.
	Images *[]string `json:"images" binding:"omitempty,dive,max=500"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Slug string `json:"slug" binding:"required,min=1,max=100"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1,max=100"`
	Slug *string `json:"slug" binding:"omitempty,min=1,max=100"`
}

type CreatePostRequest struct {
	Title      string     `json:"title" binding:"required,min=1,max=255"`
	Slug       string     `json:"slug" binding:"required,min=1,max=255"`
	Content    string     `json:"content" binding:"required"`
	Excerpt    *string    `json:"excerpt"`
	Status     PostStatus `json:"status" binding:"omitempty,oneof=draft published"`
	ImageURL   *string    `json:"image_url" binding:"omitempty,max=255"`
	CategoryID *uint      `json:"category_id"`
}

type UpdatePostRequest struct {
	Title      *string     `json:"title" binding:"omitempty,min=1,max=255"`
	Slug       *string     `json:"slug" binding:"omitempty,min=1,max=255"`
	Content    *string     `json:"content"`
	Excerpt    *string     `json:"excerpt"`
	Status     *PostStatus `json:"status" binding:"omitempty,oneof=draft published"`
	Views      *int        `json:"views" binding:"omitempty,min=0"`
	ImageURL   *string     `json:"image_url" binding:"omitempty,max=255"`
	CategoryID *uint       `json:"category_id"`
}

type CreateProjectRequest struct {
	Title       string        `json:"title" binding:"required,min=1,max=255"`
	Slug        string        `json:"slug" binding:"required,min=1,max=255"`
	Description string        `json:"description" binding:"required"`
	Content     *string       `json:"content"`
	ImageURL    *string       `json:"image_url" binding:"omitempty,max=255"`
	ProjectURL  *string       `json:"project_url" binding:"omitempty,max=255"`
	GithubURL   *string       `json:"github_url" binding:"omitempty,max=255"`
	Status      ProjectStatus `json:"status" binding:"omitempty,oneof=completed in-progress"`
}

type UpdateProjectRequest struct {
	Title       *string        `json:"title" binding:"omitempty,min=1,max=255"`
	Slug        *string        `json:"slug" binding:"omitempty,min=1,max=255"`
	Description *string        `json:"description"`
	Content     *string        `json:"content"`
	ImageURL    *string        `json:"image_url" binding:"omitempty,max=255"`
	ProjectURL  *string        `json:"project_url" binding:"omitempty,max=255"`
	GithubURL   *string        `json:"github_url" binding:"omitempty,max=255"`
	Status      *ProjectStatus `json:"status" binding:"omitempty,oneof=completed in-progress"`
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminLoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type StatsEntry struct {
	Day   string `json:"day"`
	Views int    `json:"views"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
}

// ListParams is the common offset/limit query shape.
type ListParams struct {
	Skip  int `form:"skip" binding:"omitempty,min=0"`
	Limit int `form:"limit,default=100" binding:"omitempty,min=1,max=1000"`
}

type SubscriberListParams struct {
	Skip       int  `form:"skip" binding:"omitempty,min=0"`
	Limit      int  `form:"limit,default=100" binding:"omitempty,min=1,max=1000"`
	ActiveOnly bool `form:"active_only,default=true"`
}
