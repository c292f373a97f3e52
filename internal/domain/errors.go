package domain

import "errors"

// Sentinel errors shared by the usecase layer. The HTTP layer maps each of
// these to a status code in one place.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("not allowed")
	ErrSelfFollow         = errors.New("cannot follow yourself")
	ErrValidation         = errors.New("please add all the fields")
)
