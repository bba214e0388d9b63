package models

import "time"

// Expense is immutable once created; there is no update path.
type Expense struct {
	ID          string    `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	UserID      string    `gorm:"index;size:36;not null" bson:"user_id" json:"user_id"`
	Amount      float64   `gorm:"not null" bson:"amount" json:"amount"`
	Category    string    `gorm:"not null" bson:"category" json:"category"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Date        time.Time `gorm:"index" bson:"date" json:"date"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
