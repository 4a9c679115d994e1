package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials, could not log you in")
	ErrNotPlaceOwner      = errors.New("you are not allowed to modify this place")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrCreatorNotFound = errors.New("could not find user for provided id")
)
