package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/swarnaledger/swarna_erp_app/internal/core/ports/repositories"
)

type PgxSequenceRepository struct {
	pool *pgxpool.Pool
}

// newPgxSequenceRepository creates a repository for display sequence numbers.
func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{pool: pool}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// NextTransactionSequence atomically increments and returns the per-year
// transaction counter. The upsert makes the first call of a year create the
// row; the RETURNING clause makes the whole thing one round trip with no read
// gap for concurrent callers to race through.
func (r *PgxSequenceRepository) NextTransactionSequence(ctx context.Context, year int) (int64, error) {
	query := `
		INSERT INTO sequences (name, year, value)
		VALUES ('transaction', $1, 1)
		ON CONFLICT (name, year)
		DO UPDATE SET value = sequences.value + 1
		RETURNING value;
	`
	var value int64
	if err := r.pool.QueryRow(ctx, query, year).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to advance transaction sequence for year %d: %w", year, err)
	}
	return value, nil
}
