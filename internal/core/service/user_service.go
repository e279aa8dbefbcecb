package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mi-ecommerce/marketplace-api/internal/core/domain"
	"github.com/mi-ecommerce/marketplace-api/internal/core/ports"
)

// bcryptCost is fixed; changing it would silently fork the hash population.
const bcryptCost = 10

// dummyHash is a valid bcrypt digest compared against when a username does
// not exist, so that the unknown-user path costs the same as a real
// verification. The compare result is discarded either way.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserService implements account management: identity uniqueness, credential
// hashing, and authentication.
type UserService struct {
	users     ports.UserRepository
	carts     ports.CartRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewUserService(users ports.UserRepository, carts ports.CartRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &UserService{
		users:     users,
		carts:     carts,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// List returns every user record with the password stripped.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i] = users[i].Sanitized()
	}
	return users, nil
}

// Get returns a single user record with the password stripped.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// Create registers a new user after enforcing username and email uniqueness,
// then creates the companion empty cart for the new identifier.
//
// The two writes are not wrapped in a transaction: a cart insert failure
// leaves the user record durable and surfaces as an infrastructure error.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if err := s.checkCollision(ctx, input.Username, input.Email, 0); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Insert(ctx, &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		ProfilePic:   input.ProfilePic,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.carts.Create(ctx, created.UserID); err != nil {
		s.logger.Error().Err(err).Int64("user_id", created.UserID).Msg("cart creation failed after user insert")
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.UserID).Str("username", created.Username).Msg("user created")

	sanitized := created.Sanitized()
	return &sanitized, nil
}

// Authenticate verifies a username/password pair and issues a bearer token.
// Unknown usernames and wrong passwords yield the same failure, and both
// paths run a bcrypt compare so their latency is indistinguishable.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.UserID).Str("username", user.Username).Msg("user authenticated")

	return &ports.AuthResult{
		UserID:   user.UserID,
		Username: user.Username,
		Token:    token,
	}, nil
}

// Update applies a partial field replacement. A supplied password is
// re-hashed; an absent one leaves the stored hash untouched.
func (s *UserService) Update(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	username := ""
	if input.Username != nil {
		username = *input.Username
	}
	email := ""
	if input.Email != nil {
		email = *input.Email
	}
	if err := s.checkCollision(ctx, username, email, id); err != nil {
		return nil, err
	}

	fields := ports.UserUpdate{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Username:   input.Username,
		Email:      input.Email,
		Role:       input.Role,
		ProfilePic: input.ProfilePic,
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		fields.PasswordHash = &hashed
	}

	matched, err := s.users.UpdateByID(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, domain.ErrUserNotFound
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Msg("user updated")

	sanitized := user.Sanitized()
	return &sanitized, nil
}

// Delete removes a user permanently and returns the deleted record's data as
// confirmation. The companion cart is left to the store's own rules.
func (s *UserService) Delete(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.users.DeleteByID(ctx, id); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Str("username", user.Username).Msg("user deleted")

	sanitized := user.Sanitized()
	return &sanitized, nil
}

// checkCollision looks for another record holding the given username or
// email. The username conflict takes precedence when both match.
func (s *UserService) checkCollision(ctx context.Context, username, email string, excludeID int64) error {
	found, err := s.users.FindByUsernameOrEmail(ctx, username, email, excludeID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}
	if username != "" && found.Username == username {
		return domain.ErrUsernameTaken
	}
	if email != "" && found.Email == email {
		return domain.ErrEmailTaken
	}
	return nil
}

// issueToken signs a bearer token carrying the identifier, username, and
// role. The password hash never enters the claims.
func (s *UserService) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.UserID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
