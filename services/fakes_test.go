package services

import (
	"context"
	"strconv"
	"sync"

	"github.com/porterhq/authgate/core"
)

// FakeAccountStore is a test-only fake implementing core.AccountStorage.
// It stores accounts in a map and exposes error fields for behavior
// injection.
type FakeAccountStore struct {
	mu       sync.RWMutex
	accounts map[string]*core.Account
	nextID   int

	findEmailErr error
	findPhoneErr error
	saveErr      error
}

func NewFakeAccountStore() *FakeAccountStore {
	return &FakeAccountStore{
		accounts: make(map[string]*core.Account),
	}
}

func (f *FakeAccountStore) Save(ctx context.Context, account *core.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return f.saveErr
	}

	f.nextID++
	account.ID = "account-" + strconv.Itoa(f.nextID)
	stored := *account
	f.accounts[account.ID] = &stored
	return nil
}

func (f *FakeAccountStore) FindByEmail(ctx context.Context, email string) (*core.Account, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.findEmailErr != nil {
		return nil, f.findEmailErr
	}
	for _, account := range f.accounts {
		if account.Email != nil && *account.Email == email {
			return account, nil
		}
	}
	return nil, core.ErrAccountNotFound
}

func (f *FakeAccountStore) FindByPhone(ctx context.Context, phone string) (*core.Account, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.findPhoneErr != nil {
		return nil, f.findPhoneErr
	}
	for _, account := range f.accounts {
		if account.Phone != nil && *account.Phone == phone {
			return account, nil
		}
	}
	return nil, core.ErrAccountNotFound
}

// seed inserts an account directly, bypassing Save's ID assignment.
func (f *FakeAccountStore) seed(account *core.Account) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[account.ID] = account
}

func strptr(s string) *string {
	return &s
}
