package domain

import "errors"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

var (
	ErrUserNotFound       = errors.New("user does not exist")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("credentials are not valid")
)

// User models a registered account. The password hash is never serialized:
// the json tag strips it from every outward-facing payload and read paths in
// the repository additionally project it out.
type User struct {
	UserID       int64  `json:"user_id" bson:"user_id"`
	FirstName    string `json:"first_name" bson:"first_name"`
	LastName     string `json:"last_name" bson:"last_name"`
	Username     string `json:"username" bson:"username"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"-" bson:"password,omitempty"`
	Role         string `json:"role" bson:"role"`
	ProfilePic   string `json:"profilepic,omitempty" bson:"profilepic,omitempty"`
}

// Sanitized returns a copy of the user with the password hash cleared.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// ValidRole reports whether role is one of the known role tags.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCustomer
}
