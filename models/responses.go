package models

import "github.com/google/uuid"

// Response envelopes returned by the HTTP layer. Every successful response
// body is one of these shapes; error responses use [ErrorResponse].

// UsersResponse wraps the user listing. Password hashes are excluded by the
// User JSON tags.
type UsersResponse struct {
	Users []User `json:"users"`
}

// AuthResponse is returned by both signup and login. Message is only set on
// login.
type AuthResponse struct {
	Message string    `json:"message,omitempty"`
	UserID  uuid.UUID `json:"userId"`
	Email   string    `json:"email"`
	Token   string    `json:"token"`
}

// PlaceResponse wraps a single place.
type PlaceResponse struct {
	Place Place `json:"place"`
}

// PlacesResponse wraps a place listing.
type PlacesResponse struct {
	Places []Place `json:"places"`
}

// MessageResponse carries a human-readable acknowledgement, e.g. after a
// successful delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body. It carries only a human-readable
// message; internal error detail never reaches the client.
type ErrorResponse struct {
	Message string `json:"message"`
}
