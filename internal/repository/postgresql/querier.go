package postgresql

import (
	"context"

	"github.com/cmlabs-hris/timerecon-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// GetQuerier returns either transaction or pool.
// The engine itself only reads, but report exports run the bulk reads
// inside a repeatable-read transaction to keep the source tables
// consistent across the fan-out.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
