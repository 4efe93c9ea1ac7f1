package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/porterhq/authgate/core"
	"github.com/porterhq/authgate/pkg/crypto"
	"github.com/porterhq/authgate/pkg/token"
)

// AuthService implements the registration and login flows on top of the
// account storage port, a password handler and the token codec.
type AuthService struct {
	store  core.AccountStorage
	hasher crypto.PasswordHandler
	codec  *token.Codec
}

func NewAuthService(store core.AccountStorage, hasher crypto.PasswordHandler, codec *token.Codec) *AuthService {
	return &AuthService{
		store:  store,
		hasher: hasher,
		codec:  codec,
	}
}

// RegisterInput contains the data needed to register a new account.
type RegisterInput struct {
	Name     string
	Email    *string
	Phone    *string
	Password string
	Role     core.Role
}

// Register creates a new account after enforcing the identity-uniqueness
// invariants. Checks run in a fixed order so a given malformed input
// always produces the same error: missing identifier, then duplicate
// email, then duplicate phone.
//
// The two existence checks and the write are not wrapped in a transaction;
// stores that enforce uniqueness return the same duplicate errors from
// Save, which backstops concurrent registrations.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*core.Account, error) {
	// Step 1: At least one identifier must be present.
	if input.Email == nil && input.Phone == nil {
		return nil, core.ErrMissingIdentifier
	}

	// Step 2: The email must not already be registered.
	if input.Email != nil {
		_, err := s.store.FindByEmail(ctx, *input.Email)
		switch {
		case err == nil:
			return nil, core.ErrDuplicateEmail
		case !errors.Is(err, core.ErrAccountNotFound):
			return nil, fmt.Errorf("failed to check existing email: %w", err)
		}
	}

	// Step 3: The phone must not already be registered.
	if input.Phone != nil {
		_, err := s.store.FindByPhone(ctx, *input.Phone)
		switch {
		case err == nil:
			return nil, core.ErrDuplicatePhone
		case !errors.Is(err, core.ErrAccountNotFound):
			return nil, fmt.Errorf("failed to check existing phone: %w", err)
		}
	}

	// Step 4: The role must belong to the closed set.
	if !input.Role.Valid() {
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidRole, input.Role)
	}

	// Step 5: Hash the password. The plaintext is not retained past this call.
	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &core.Account{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Role:         input.Role,
		PasswordHash: passwordHash,
	}

	// Step 6: Persist. The store assigns the identifier.
	if err := s.store.Save(ctx, account); err != nil {
		if errors.Is(err, core.ErrDuplicateEmail) || errors.Is(err, core.ErrDuplicatePhone) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return account, nil
}

// LoginResult is the payload returned to a successfully authenticated
// client.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login resolves an account by email, verifies the password and issues a
// signed token. An unknown email and a wrong password return the same
// error so the response never reveals which identifiers are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	// Step 1: Find the account by email.
	account, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, core.ErrAccountNotFound) {
			return nil, core.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	// Step 2: Verify the password.
	valid, err := s.hasher.Verify(password, account.PasswordHash)
	if err != nil {
		if errors.Is(err, crypto.ErrMalformedHash) {
			return nil, fmt.Errorf("%w: %v", core.ErrCorruptCredential, err)
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, core.ErrInvalidCredentials
	}

	// Step 3: Issue the session token.
	accessToken, err := s.codec.Issue(account.ID, account.Role.String())
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResult{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}, nil
}
