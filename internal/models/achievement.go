package models

import "time"

// Achievement is an unlocked badge. Code is the stable rule identifier used
// for deduplication; Title is display text and may be reworded without
// re-unlocking anything.
type Achievement struct {
	ID          string    `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	UserID      string    `gorm:"index:idx_achievements_user_code,unique;size:36;not null" bson:"user_id" json:"user_id"`
	Code        string    `gorm:"index:idx_achievements_user_code,unique;not null" bson:"code" json:"code"`
	Title       string    `gorm:"not null" bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Points      int       `gorm:"not null" bson:"points" json:"points"`
	Icon        string    `bson:"icon" json:"icon"`
	Category    string    `bson:"category" json:"category"`
	IsUnlocked  bool      `gorm:"not null;default:true" bson:"is_unlocked" json:"is_unlocked"`
	UnlockedAt  time.Time `bson:"unlocked_at" json:"unlocked_at"`
}
