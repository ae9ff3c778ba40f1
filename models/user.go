package models

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type User struct {
	ID             uint        `json:"id" gorm:"primarykey"`
	Username       string      `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Email          string      `json:"email" gorm:"size:255;uniqueIndex;not null"`
	HashedPassword string      `json:"-" gorm:"size:255;not null"`
	Role           UserRole    `json:"role" gorm:"size:20;default:'user';not null"`
	IsActive       bool        `json:"is_active" gorm:"default:true;not null"`
	FullName       *string     `json:"full_name" gorm:"size:100"`
	DOB            *time.Time  `json:"dob"`
	LastLogin      *time.Time  `json:"last_login"`
	CreatedAt      time.Time   `json:"created_at"`
	Images         []UserImage `json:"images" gorm:"foreignKey:UserID"`
}

type UserImage struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	ImageURL  string    `json:"image_url" gorm:"size:500;not null"`
	CreatedAt time.Time `json:"created_at"`
}
