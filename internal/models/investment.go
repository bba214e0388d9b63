package models

import "time"

type Investment struct {
	ID            string    `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	UserID        string    `gorm:"index;size:36;not null" bson:"user_id" json:"user_id"`
	Name          string    `gorm:"not null" bson:"name" json:"name"`
	Symbol        string    `gorm:"not null" bson:"symbol" json:"symbol"`
	Shares        float64   `gorm:"not null" bson:"shares" json:"shares"`
	PurchasePrice float64   `gorm:"not null" bson:"purchase_price" json:"purchase_price"`
	CurrentPrice  float64   `gorm:"not null;default:0" bson:"current_price" json:"current_price"`
	PurchaseDate  time.Time `bson:"purchase_date" json:"purchase_date"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
