package handler

// --- Request types ---

type createUserRequest struct {
	FirstName  string `json:"firstname"  validate:"required"`
	LastName   string `json:"lastname"   validate:"required"`
	Username   string `json:"username"   validate:"required,min=3"`
	Password   string `json:"password"   validate:"required,min=6"`
	Email      string `json:"email"      validate:"required,email"`
	Role       string `json:"role"       validate:"required,oneof=admin customer"`
	ProfilePic string `json:"profilepic" validate:"omitempty,url"`
}

// updateUserRequest mirrors createUserRequest with every field optional.
// Pointer fields distinguish "absent" from "set to empty"; an absent password
// leaves the stored hash untouched.
type updateUserRequest struct {
	FirstName  *string `json:"firstname"  validate:"omitempty,min=1"`
	LastName   *string `json:"lastname"   validate:"omitempty,min=1"`
	Username   *string `json:"username"   validate:"omitempty,min=3"`
	Password   *string `json:"password"   validate:"omitempty,min=6"`
	Email      *string `json:"email"      validate:"omitempty,email"`
	Role       *string `json:"role"       validate:"omitempty,oneof=admin customer"`
	ProfilePic *string `json:"profilepic" validate:"omitempty,url"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Response payloads (the data field of the envelope) ---

// loginData is the login success payload; the token travels at the envelope
// top level.
type loginData struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}
