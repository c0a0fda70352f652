package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/swarnaledger/swarna_erp_app/internal/apperrors"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	portsrepo "github.com/swarnaledger/swarna_erp_app/internal/core/ports/repositories"
	"github.com/swarnaledger/swarna_erp_app/internal/models"
	"github.com/swarnaledger/swarna_erp_app/internal/utils/mapping"
)

type PgxGoldLedgerRepository struct {
	pool *pgxpool.Pool
}

// newPgxGoldLedgerRepository creates a repository for the physical gold ledger.
func newPgxGoldLedgerRepository(pool *pgxpool.Pool) portsrepo.GoldLedgerRepositoryFacade {
	return &PgxGoldLedgerRepository{pool: pool}
}

var _ portsrepo.GoldLedgerRepositoryFacade = (*PgxGoldLedgerRepository)(nil)

const goldLedgerColumns = `entry_id, party_id, date, direction, weight_grams, purity_entered, purpose, reference_type, reference_id, notes, is_deleted, created_at, created_by, last_updated_at, last_updated_by`

// RecordEntry appends a gold movement. No balance is maintained; positions are
// always derived by summation.
func (r *PgxGoldLedgerRepository) RecordEntry(ctx context.Context, entry domain.GoldLedgerEntry) error {
	m := mapping.ToModelGoldLedgerEntry(entry)

	query := `
		INSERT INTO gold_ledger (` + goldLedgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.pool.Exec(ctx, query,
		m.EntryID,
		m.PartyID,
		m.Date,
		m.Direction,
		m.WeightGrams,
		m.PurityEntered,
		m.Purpose,
		m.ReferenceType,
		m.ReferenceID,
		m.Notes,
		m.IsDeleted,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to record gold ledger entry %s: %w", m.EntryID, err)
	}
	return nil
}

// DeleteEntry hard-deletes an entry. Finalize rollback only.
func (r *PgxGoldLedgerRepository) DeleteEntry(ctx context.Context, entryID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM gold_ledger WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete gold ledger entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListEntriesByParty retrieves a party's non-deleted entries, newest first.
func (r *PgxGoldLedgerRepository) ListEntriesByParty(ctx context.Context, partyID string) ([]domain.GoldLedgerEntry, error) {
	query := `
		SELECT ` + goldLedgerColumns + `
		FROM gold_ledger
		WHERE party_id = $1 AND is_deleted = FALSE
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, partyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query gold ledger entries for party %s: %w", partyID, err)
	}
	defer rows.Close()

	entries := []domain.GoldLedgerEntry{}
	for rows.Next() {
		var m models.GoldLedgerEntry
		err := rows.Scan(
			&m.EntryID,
			&m.PartyID,
			&m.Date,
			&m.Direction,
			&m.WeightGrams,
			&m.PurityEntered,
			&m.Purpose,
			&m.ReferenceType,
			&m.ReferenceID,
			&m.Notes,
			&m.IsDeleted,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gold ledger row: %w", err)
		}
		entries = append(entries, mapping.ToDomainGoldLedgerEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gold ledger rows: %w", err)
	}
	return entries, nil
}

// PartyGoldPosition computes sum(IN) - sum(OUT) in grams.
func (r *PgxGoldLedgerRepository) PartyGoldPosition(ctx context.Context, partyID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE direction WHEN 'IN' THEN weight_grams ELSE -weight_grams END), 0)
		FROM gold_ledger
		WHERE party_id = $1 AND is_deleted = FALSE;
	`
	var net decimal.Decimal
	err := r.pool.QueryRow(ctx, query, partyID).Scan(&net)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to compute gold position for party %s: %w", partyID, err)
	}
	return net, nil
}
