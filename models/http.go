package models

// Request bodies accepted by the HTTP layer. Validation rules are declared
// as validator/v10 tags and enforced by the validators package before any
// service call is made.

// SignupRequest is the body of POST /users/signup.
// The image itself arrives as a multipart part and is handled separately;
// only the scalar fields are validated here.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreatePlaceRequest is the body of POST /places.
type CreatePlaceRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Address     string `json:"address" validate:"required"`
}

// UpdatePlaceRequest is the body of PATCH /places/{pid}.
// Only title and description are mutable; address, image and creator are
// fixed at creation time.
type UpdatePlaceRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}
