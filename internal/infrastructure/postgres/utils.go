package postgres

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Querier abstrae *pgxpool.Pool y pgx.Tx para las consultas de lectura.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// escapeLike escapa los comodines de LIKE para que la búsqueda sea literal.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
