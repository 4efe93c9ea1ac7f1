package pgx

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/porterhq/authgate/core"
)

func (a *Adapter) Save(ctx context.Context, account *core.Account) error {
	query := `INSERT INTO public.accounts (name, email, phone, role, password_hash)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at`

	var id string
	var createdAt time.Time
	err := a.pool.QueryRow(ctx, query,
		account.Name, account.Email, account.Phone, account.Role.String(), account.PasswordHash,
	).Scan(&id, &createdAt)
	if err != nil {
		return mapSaveError(err)
	}

	account.ID = id
	account.CreatedAt = createdAt
	return nil
}

func (a *Adapter) FindByEmail(ctx context.Context, email string) (*core.Account, error) {
	q := `SELECT id, name, email, phone, role, password_hash, created_at
	      FROM public.accounts WHERE email = $1`
	return a.findOne(ctx, q, email)
}

func (a *Adapter) FindByPhone(ctx context.Context, phone string) (*core.Account, error) {
	q := `SELECT id, name, email, phone, role, password_hash, created_at
	      FROM public.accounts WHERE phone = $1`
	return a.findOne(ctx, q, phone)
}

func (a *Adapter) findOne(ctx context.Context, query, arg string) (*core.Account, error) {
	account := &core.Account{}
	var role string
	err := a.pool.QueryRow(ctx, query, arg).Scan(
		&account.ID, &account.Name, &account.Email, &account.Phone, &role, &account.PasswordHash, &account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrAccountNotFound
		}
		return nil, err
	}
	account.Role = core.Role(role)
	return account, nil
}

// mapSaveError converts unique-constraint violations into the same
// duplicate errors the registration flow's own checks produce, so a race
// between two concurrent registrations surfaces identically.
func mapSaveError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}

	switch {
	case strings.Contains(pgErr.ConstraintName, "email"):
		return core.ErrDuplicateEmail
	case strings.Contains(pgErr.ConstraintName, "phone"):
		return core.ErrDuplicatePhone
	default:
		return err
	}
}
