package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wsalem/rental_ledger_app/internal/apperrors"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
	portsrepo "github.com/wsalem/rental_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/wsalem/rental_ledger_app/internal/core/ports/services"
	"github.com/wsalem/rental_ledger_app/internal/dto"
	"github.com/wsalem/rental_ledger_app/internal/middleware"
	"github.com/wsalem/rental_ledger_app/internal/utils"
)

// UserService handles account registration and credential checks.
type UserService struct {
	userRepo     portsrepo.UserRepository
	settingsRepo portsrepo.SettingsRepository
	allowedEmail string
}

// NewUserService creates a new UserService. allowedEmail restricts sign-up to
// a single address when non-empty.
func NewUserService(userRepo portsrepo.UserRepository, settingsRepo portsrepo.SettingsRepository, allowedEmail string) portssvc.UserSvc {
	return &UserService{
		userRepo:     userRepo,
		settingsRepo: settingsRepo,
		allowedEmail: allowedEmail,
	}
}

var _ portssvc.UserSvc = (*UserService)(nil)

// RegisterUser creates a new user and seeds the owner's default settings row.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if s.allowedEmail != "" && email != strings.ToLower(s.allowedEmail) {
		logger.Warn("Registration attempted with non-allowed email")
		return nil, fmt.Errorf("%w: sign-up is restricted", apperrors.ErrForbidden)
	}

	if existing, err := s.userRepo.FindUserByEmail(ctx, email); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	} else if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		Name:         req.Name,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "self",
			LastUpdatedAt: now,
			LastUpdatedBy: "self",
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	// Seed default settings so the converter has a base currency and rate
	// before the owner ever opens the settings form.
	settings := domain.DefaultSettings(user.UserID)
	settings.AuditFields = user.AuditFields
	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		logger.Error("Failed to seed default settings", slog.String("error", err.Error()))
	}

	return &user, nil
}

// AuthenticateUser verifies email/password and returns the user.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}
