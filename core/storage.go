package core

import "context"

// AccountStorage is the port to the credential store. Implementations live
// in adapters (pgx, memory) and may block on I/O.
type AccountStorage interface {
	// FindByEmail returns the account owning email, or ErrAccountNotFound.
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// FindByPhone returns the account owning phone, or ErrAccountNotFound.
	FindByPhone(ctx context.Context, phone string) (*Account, error)

	// Save persists a new account and assigns its ID and CreatedAt.
	//
	// Implementations that enforce uniqueness at the storage layer return
	// ErrDuplicateEmail or ErrDuplicatePhone on constraint violations,
	// backstopping the registration flow's non-atomic existence checks.
	Save(ctx context.Context, account *Account) error
}
