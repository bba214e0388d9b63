package models

import (
	"time"

	"gorm.io/datatypes"
)

// Receipt is an uploaded receipt image plus whatever the AI extraction pass
// pulled out of it. Parsed holds the raw extraction payload; Merchant and
// Total are promoted out of it for querying.
type Receipt struct {
	ID         string         `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	UserID     string         `gorm:"index;size:36;not null" bson:"user_id" json:"user_id"`
	FileName   string         `gorm:"not null" bson:"file_name" json:"file_name"`
	StorageKey string         `bson:"storage_key,omitempty" json:"storage_key,omitempty"`
	Merchant   string         `bson:"merchant,omitempty" json:"merchant,omitempty"`
	Total      float64        `bson:"total,omitempty" json:"total"`
	Parsed     datatypes.JSON `bson:"parsed,omitempty" json:"parsed,omitempty"`
	CreatedAt  time.Time      `bson:"created_at" json:"created_at"`
}

// BudgetDocument is an uploaded bank/budget statement record.
type BudgetDocument struct {
	ID         string         `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	UserID     string         `gorm:"index;size:36;not null" bson:"user_id" json:"user_id"`
	Title      string         `gorm:"not null" bson:"title" json:"title"`
	FileName   string         `bson:"file_name,omitempty" json:"file_name,omitempty"`
	StorageKey string         `bson:"storage_key,omitempty" json:"storage_key,omitempty"`
	Summary    datatypes.JSON `bson:"summary,omitempty" json:"summary,omitempty"`
	CreatedAt  time.Time      `bson:"created_at" json:"created_at"`
}
