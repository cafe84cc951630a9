// internal/domain/user/service.go
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/arumaroma/storefront-backend/internal/config"
	"github.com/arumaroma/storefront-backend/internal/domain/prefs"
	"github.com/arumaroma/storefront-backend/internal/pkg/auth"
)

// Service handles account registration, login and profile updates. Login
// and logout also write through to the preference store's profile fields,
// which is what keys all scoped preferences to the active user.
type Service struct {
	db        *gorm.DB
	config    *config.Config
	jwt       *auth.JWTManager
	passwords *auth.PasswordManager
	store     *prefs.Store

	scopeListeners []func(context.Context)
}

// NewService creates a user service
func NewService(db *gorm.DB, cfg *config.Config, store *prefs.Store) *Service {
	return &Service{
		db:        db,
		config:    cfg,
		jwt:       auth.NewJWTManager(cfg),
		passwords: auth.NewPasswordManager(cfg),
		store:     store,
	}
}

// OnScopeChange registers a callback invoked after login and logout,
// when the active preference scope has switched. Services holding
// per-user in-memory state reload themselves here.
func (s *Service) OnScopeChange(fn func(context.Context)) {
	s.scopeListeners = append(s.scopeListeners, fn)
}

func (s *Service) notifyScopeChange(ctx context.Context) {
	for _, fn := range s.scopeListeners {
		fn(ctx)
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenPair carries the issued access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Register creates a new account
func (s *Service) Register(_ context.Context, req *RegisterRequest) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing User
	if err := s.db.Where("email = ? OR username = ?", email, req.Username).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("an account with this email or username already exists")
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := User{
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.db.Create(&account).Error; err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &account, nil
}

// Login verifies credentials, issues a token pair and activates the
// user's preference scope.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*User, *TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var account User
	if err := s.db.Where("email = ? AND is_active = ?", email, true).First(&account).Error; err != nil {
		return nil, nil, fmt.Errorf("invalid email or password")
	}

	if err := s.passwords.VerifyPassword(req.Password, account.PasswordHash); err != nil {
		return nil, nil, fmt.Errorf("invalid email or password")
	}

	tokens, err := s.issueTokens(&account)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	account.LastLoginAt = &now
	s.db.Model(&account).Update("last_login_at", now)

	// Activate this user's preference scope.
	s.store.SaveProfile(ctx, account.Username, account.Email)
	s.notifyScopeChange(ctx)

	return &account, tokens, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *Service) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	var account User
	if err := s.db.Where("id = ? AND is_active = ?", claims.UserID, true).First(&account).Error; err != nil {
		return nil, fmt.Errorf("account not found or inactive")
	}

	return s.issueTokens(&account)
}

// Logout clears the stored profile so the preference scope reverts to
// guest.
func (s *Service) Logout(ctx context.Context) {
	s.store.ClearProfile(ctx)
	s.notifyScopeChange(ctx)
}

// Get returns the account for an id
func (s *Service) Get(id uint) (*User, error) {
	var account User
	if err := s.db.Where("id = ?", id).First(&account).Error; err != nil {
		return nil, fmt.Errorf("account not found")
	}
	return &account, nil
}

// UpdateProfile changes the account's username and keeps the preference
// scope's profile fields in sync.
func (s *Service) UpdateProfile(ctx context.Context, id uint, username string) (*User, error) {
	account, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return nil, fmt.Errorf("username must be at least 3 characters")
	}

	account.Username = username
	if err := s.db.Save(account).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.store.SaveProfile(ctx, account.Username, account.Email)
	return account, nil
}

func (s *Service) issueTokens(account *User) (*TokenPair, error) {
	accessToken, err := s.jwt.GenerateAccessToken(account.ID, account.Email, account.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.jwt.GenerateRefreshToken(account.ID, account.Email, account.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
