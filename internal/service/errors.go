package service

import "errors"

var (
	ErrMissingFields   = errors.New("required fields missing")
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidRole     = errors.New("invalid role for this user")
	ErrUnknownRole     = errors.New("unknown role")
)

type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindAuth       ErrorKind = "auth"
	KindInternal   ErrorKind = "internal"
)

// Kind classifies err. Validation and auth errors are reported to the
// caller verbatim; anything else is internal and stays in the logs.
func Kind(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrMissingFields):
		return KindValidation
	case errors.Is(err, ErrInvalidUsername),
		errors.Is(err, ErrInvalidPassword),
		errors.Is(err, ErrInvalidRole):
		return KindAuth
	}
	return KindInternal
}

var publicMessages = map[error]string{
	ErrMissingFields:   "Username, password, and role are required",
	ErrInvalidUsername: "Invalid username",
	ErrInvalidPassword: "Invalid password",
	ErrInvalidRole:     "Invalid role for this user",
	ErrUnknownRole:     "Unknown role",
}

// Message is the client-facing text for err.
func Message(err error) string {
	for target, msg := range publicMessages {
		if errors.Is(err, target) {
			return msg
		}
	}
	return "Internal server error"
}
