// Package pgx implements the account storage port on PostgreSQL via
// jackc/pgx v5. The expected schema lives in schema.sql; its unique
// indexes on email and phone are the storage-layer backstop for the
// registration flow's non-atomic existence checks.
package pgx

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/porterhq/authgate/core"
)

type Adapter struct {
	pool *pgxpool.Pool
}

var _ core.AccountStorage = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{
		pool: pool,
	}
}
