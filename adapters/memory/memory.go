// Package memory implements the account storage port with an in-process
// map. Intended for tests and local development; it enforces the same
// uniqueness backstop as the PostgreSQL adapter.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/porterhq/authgate/core"
	"github.com/porterhq/authgate/pkg/crypto"
)

type Store struct {
	mu       sync.RWMutex
	accounts map[string]*core.Account
}

var _ core.AccountStorage = (*Store)(nil)

func New() *Store {
	return &Store{
		accounts: make(map[string]*core.Account),
	}
}

func (s *Store) Save(ctx context.Context, account *core.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.accounts {
		if account.Email != nil && existing.Email != nil && *existing.Email == *account.Email {
			return core.ErrDuplicateEmail
		}
		if account.Phone != nil && existing.Phone != nil && *existing.Phone == *account.Phone {
			return core.ErrDuplicatePhone
		}
	}

	id, err := crypto.NewID()
	if err != nil {
		return fmt.Errorf("failed to generate ID: %w", err)
	}

	account.ID = id
	account.CreatedAt = time.Now()

	stored := *account
	s.accounts[id] = &stored
	return nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*core.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.Email != nil && *account.Email == email {
			found := *account
			return &found, nil
		}
	}
	return nil, core.ErrAccountNotFound
}

func (s *Store) FindByPhone(ctx context.Context, phone string) (*core.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if account.Phone != nil && *account.Phone == phone {
			found := *account
			return &found, nil
		}
	}
	return nil, core.ErrAccountNotFound
}

// Len reports the number of stored accounts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}
