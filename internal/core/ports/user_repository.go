package ports

import (
	"context"

	"github.com/mi-ecommerce/marketplace-api/internal/core/domain"
)

// UserUpdate carries a partial field replacement. Nil fields are left
// untouched by the store; PasswordHash is set by the service after hashing,
// never from caller input.
type UserUpdate struct {
	FirstName    *string
	LastName     *string
	Username     *string
	Email        *string
	PasswordHash *string
	Role         *string
	ProfilePic   *string
}

// UserRepository defines persistence operations for user records.
//
// Read operations return records with the password hash projected out, except
// FindByUsername which is the single credential-verification path.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByUsername returns the full record including the password hash.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByUsernameOrEmail returns any record whose username or email equals
	// the given non-empty values. excludeID > 0 skips that record, which lets
	// Update ignore the row being updated.
	FindByUsernameOrEmail(ctx context.Context, username, email string, excludeID int64) (*domain.User, error)
	// Insert stores a new record and assigns its immutable numeric identifier.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdateByID applies a partial update and reports how many records matched.
	UpdateByID(ctx context.Context, id int64, fields UserUpdate) (int64, error)
	DeleteByID(ctx context.Context, id int64) error
}
