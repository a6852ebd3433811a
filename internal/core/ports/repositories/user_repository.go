package repositories

import (
	"context"

	"github.com/wsalem/rental_ledger_app/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser inserts a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by its unique identifier.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, or apperrors.ErrNotFound.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
