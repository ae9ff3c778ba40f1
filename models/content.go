package models

import "time"

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

type ProjectStatus string

const (
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusInProgress ProjectStatus = "in-progress"
)

type Category struct {
	ID    uint   `json:"id" gorm:"primarykey"`
	Name  string `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Slug  string `json:"slug" gorm:"size:100;uniqueIndex;not null"`
	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:CategoryID"`
}

type Post struct {
	ID         uint       `json:"id" gorm:"primarykey"`
	Title      string     `json:"title" gorm:"size:255;not null"`
	Slug       string     `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	Content    string     `json:"content" gorm:"type:text;not null"`
	Excerpt    *string    `json:"excerpt" gorm:"type:text"`
	Status     PostStatus `json:"status" gorm:"size:20;default:'draft';not null"`
	Views      int        `json:"views" gorm:"default:0"`
	ImageURL   *string    `json:"image_url" gorm:"size:255"`
	CategoryID *uint      `json:"category_id"`
	Category   *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt  time.Time  `json:"created_at"`
	// Set by the update path only, never on create.
	UpdatedAt *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}

type Project struct {
	ID          uint          `json:"id" gorm:"primarykey"`
	Title       string        `json:"title" gorm:"size:255;not null"`
	Slug        string        `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	Description string        `json:"description" gorm:"type:text;not null"`
	Content     *string       `json:"content" gorm:"type:text"`
	ImageURL    *string       `json:"image_url" gorm:"size:255"`
	ProjectURL  *string       `json:"project_url" gorm:"size:255"`
	GithubURL   *string       `json:"github_url" gorm:"size:255"`
	Status      ProjectStatus `json:"status" gorm:"size:20;default:'completed';not null"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   *time.Time    `json:"updated_at" gorm:"autoUpdateTime:false"`
}
