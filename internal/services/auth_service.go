package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/USveterandr/budgetwise-ai/internal/database"
	"github.com/USveterandr/budgetwise-ai/internal/email"
	"github.com/USveterandr/budgetwise-ai/internal/gamification"
	"github.com/USveterandr/budgetwise-ai/internal/models"
	"github.com/USveterandr/budgetwise-ai/internal/store"
	"github.com/USveterandr/budgetwise-ai/internal/utils"
)

var (
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid confirmation token")
)

type AuthService struct {
	store      store.Store
	engine     *gamification.Engine
	mailer     email.Mailer
	appBaseURL string
}

func NewAuthService(s store.Store, engine *gamification.Engine, mailer email.Mailer, appBaseURL string) *AuthService {
	return &AuthService{
		store:      s,
		engine:     engine,
		mailer:     mailer,
		appBaseURL: appBaseURL,
	}
}

// Register creates a user after a check-then-create existence test. The
// check and the insert are two separate store calls, so a concurrent signup
// with the same email can slip through on a backend without a unique email
// index; that race is accepted.
func (a *AuthService) Register(ctx context.Context, emailAddr, password, fullName string) (*models.User, error) {
	emailAddr = strings.ToLower(emailAddr)

	_, err := a.store.GetUserByEmail(ctx, emailAddr)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	confirmToken := uuid.New().String()
	user := &models.User{
		ID:                     uuid.New().String(),
		Email:                  emailAddr,
		Password:               string(hashedPassword),
		FullName:               fullName,
		SubscriptionPlan:       models.PlanFree,
		EmailConfirmationToken: &confirmToken,
		CreatedAt:              time.Now().UTC(),
	}

	if err := a.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	confirmURL := fmt.Sprintf("%s/api/v1/auth/confirm?email=%s&token=%s",
		a.appBaseURL, user.Email, confirmToken)
	if err := a.mailer.SendConfirmation(ctx, user.Email, user.FullName, confirmURL); err != nil {
		// Signup succeeds even when the provider is down; the user can
		// request a resend.
		zap.L().Warn("confirmation email failed",
			zap.String("user_id", user.ID), zap.Error(err))
	}

	return user, nil
}

// Login verifies credentials, advances the login streak and stamps
// last_login. Streak update and last_login land in one field update; the
// points side effects of any streak achievements are separate calls.
func (a *AuthService) Login(ctx context.Context, emailAddr, password string) (string, *models.User, error) {
	user, err := a.store.GetUserByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	streak, err := a.engine.UpdateStreak(ctx, user, now)
	if err != nil {
		return "", nil, err
	}
	user.StreakDays = streak
	user.LastLogin = &now

	token, err := utils.GenerateToken(user.ID, user.IsAdmin)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// ConfirmEmail burns the single-use confirmation token.
func (a *AuthService) ConfirmEmail(ctx context.Context, emailAddr, token string) error {
	user, err := a.store.GetUserByEmail(ctx, emailAddr)
	if err != nil {
		return err
	}
	if user.EmailConfirmed {
		return nil
	}
	if user.EmailConfirmationToken == nil || *user.EmailConfirmationToken != token {
		return ErrInvalidToken
	}
	err = a.store.UpdateUserFields(ctx, user.ID, map[string]interface{}{
		"email_confirmed":          true,
		"email_confirmation_token": nil,
	})
	if err != nil {
		return err
	}
	database.InvalidateUserCache(user.ID)
	return nil
}
