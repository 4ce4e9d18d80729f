package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrae lo que los repositorios necesitan de pgx: lo cumplen tanto
// *pgxpool.Pool como pgx.Tx, así el mismo repo funciona fuera y dentro de una
// transacción (ver TxRunner).
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
