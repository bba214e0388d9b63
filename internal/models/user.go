package models

import "time"

// Subscription plans. Plan changes arrive through the payment webhook or an
// admin edit; nothing else writes this field.
const (
	PlanFree             = "free"
	PlanPersonalPlus     = "personal-plus"
	PlanInvestor         = "investor"
	PlanBusinessProElite = "business-pro-elite"
)

// User carries both gorm and bson tags so the same struct round-trips
// through either storage backend.
type User struct {
	ID                     string     `gorm:"primaryKey;size:36" bson:"_id" json:"id"`
	Email                  string     `gorm:"uniqueIndex;not null" bson:"email" json:"email"`
	Password               string     `gorm:"not null" bson:"password" json:"-"`
	FullName               string     `gorm:"not null" bson:"full_name" json:"full_name"`
	SubscriptionPlan       string     `gorm:"not null;default:'free'" bson:"subscription_plan" json:"subscription_plan"`
	Points                 int        `gorm:"not null;default:0" bson:"points" json:"points"`
	StreakDays             int        `gorm:"not null;default:0" bson:"streak_days" json:"streak_days"`
	LastLogin              *time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
	EmailConfirmed         bool       `gorm:"not null;default:false" bson:"email_confirmed" json:"email_confirmed"`
	EmailConfirmationToken *string    `gorm:"size:36" bson:"email_confirmation_token,omitempty" json:"-"`
	IsAdmin                bool       `gorm:"not null;default:false" bson:"is_admin" json:"is_admin"`
	CreatedAt              time.Time  `bson:"created_at" json:"created_at"`
}
