package model

import "time"

// Task belongs to exactly one user. UserID is set from the authenticated
// identity at creation and is never client-supplied. Deletes are permanent,
// so there is no gorm.DeletedAt here.
type Task struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Title          string    `json:"title" gorm:"size:255;not null"`
	Description    string    `json:"description" gorm:"type:text;not null"`
	ExpirationDate time.Time `json:"expiration_date" gorm:"type:date;not null"`
	StatusID       uint      `json:"status_id" gorm:"not null;index"`
	UserID         uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Status Status `json:"status,omitempty" gorm:"foreignKey:StatusID"`
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
