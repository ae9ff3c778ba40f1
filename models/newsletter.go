package models

import "time"

// Newsletter subscription states via is_active (1 = active, 0 = unsubscribed).
const (
	SubscriptionActive   = 1
	SubscriptionInactive = 0
)

// Newsletter is a newsletter subscription. Unsubscribing flips is_active
// instead of deleting the row; resubscription reactivates the same record.
// The unique index on email is the authoritative duplicate guard.
type Newsletter struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Email        string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	SubscribedAt time.Time `json:"subscribed_at" gorm:"autoCreateTime"`
	IsActive     int       `json:"is_active" gorm:"default:1;not null"`
}
