package models

import "time"

// Contact is a contact form submission. Immutable after creation except
// deletion through the admin endpoints.
type Contact struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"size:255;index;not null"`
	Phone     *string   `json:"phone,omitempty" gorm:"size:20"`
	Subject   string    `json:"subject" gorm:"size:200;not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}
