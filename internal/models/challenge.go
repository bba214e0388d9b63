package models

import "time"

// UserChallenge tracks one user's progress against a challenge from the
// static catalogue. Progress is recomputed from current stats on read.
type UserChallenge struct {
	ID          string     `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	UserID      string     `gorm:"index:idx_user_challenges_user_code,unique;size:36;not null" bson:"user_id" json:"user_id"`
	Code        string     `gorm:"index:idx_user_challenges_user_code,unique;not null" bson:"code" json:"code"`
	Progress    int        `gorm:"not null;default:0" bson:"progress" json:"progress"`
	Target      int        `gorm:"not null" bson:"target" json:"target"`
	Completed   bool       `gorm:"not null;default:false" bson:"completed" json:"completed"`
	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
}
