package ports

import (
	"context"

	"github.com/mi-ecommerce/marketplace-api/internal/core/domain"
)

// CreateUserInput carries all data needed to register a new account.
type CreateUserInput struct {
	FirstName  string
	LastName   string
	Username   string
	Password   string
	Email      string
	Role       string
	ProfilePic string
}

// UpdateUserInput is the partial counterpart of CreateUserInput. Nil fields
// are left untouched; an absent password keeps the stored hash as is.
type UpdateUserInput struct {
	FirstName  *string
	LastName   *string
	Username   *string
	Password   *string
	Email      *string
	Role       *string
	ProfilePic *string
}

// AuthResult is returned on successful authentication.
type AuthResult struct {
	UserID   int64
	Username string
	Token    string
}

// UserService defines the account-management use cases.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*AuthResult, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) (*domain.User, error)
}
