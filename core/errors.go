package core

import "errors"

// Registration errors
var (
	ErrMissingIdentifier = errors.New("email or phone is required")   // 400 Bad Request
	ErrDuplicateEmail    = errors.New("email is already registered")  // 400 Bad Request
	ErrDuplicatePhone    = errors.New("phone is already registered")  // 400 Bad Request
	ErrInvalidRole       = errors.New("invalid role value")           // 400 Bad Request
)

// Login errors
var (
	// ErrInvalidCredentials covers both an unknown identifier and a wrong
	// password so callers cannot probe which identifiers are registered.
	ErrInvalidCredentials = errors.New("invalid credentials") // 401 Unauthorized
)

// Storage errors
var (
	ErrAccountNotFound = errors.New("account not found")
	// ErrCorruptCredential marks a stored password hash that can no longer
	// be decoded. An internal fault, never a client error.
	ErrCorruptCredential = errors.New("stored credential is unreadable") // 500
)

// Config errors (server-side configuration)
var (
	ErrStoreRequired       = errors.New("account storage is required") // 500
	ErrHTTPAdapterRequired = errors.New("http adapter is required")    // 500
	ErrSecretRequired      = errors.New("signing secret is required")  // 500
	ErrSecretTooShort      = errors.New("signing secret too short")    // 500
)
