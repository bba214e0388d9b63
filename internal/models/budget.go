package models

import "time"

// Budget period tags. The period is a label on the limit, not an enforced
// rollover schedule.
const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// Budget tracks a category spending limit. Spent is only ever incremented by
// matching expense insertions; the increment is a separate store call from
// the expense insert and the two are not transactional.
type Budget struct {
	ID        string    `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	UserID    string    `gorm:"index;size:36;not null" bson:"user_id" json:"user_id"`
	Category  string    `gorm:"not null" bson:"category" json:"category"`
	Amount    float64   `gorm:"not null" bson:"amount" json:"amount"`
	Period    string    `gorm:"not null;default:'monthly'" bson:"period" json:"period"`
	Spent     float64   `gorm:"not null;default:0" bson:"spent" json:"spent"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
