package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/swarnaledger/swarna_erp_app/internal/apperrors"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	portsrepo "github.com/swarnaledger/swarna_erp_app/internal/core/ports/repositories"
	"github.com/swarnaledger/swarna_erp_app/internal/models"
	"github.com/swarnaledger/swarna_erp_app/internal/utils/mapping"
)

type PgxPartyRepository struct {
	pool *pgxpool.Pool
}

// newPgxPartyRepository creates a repository for customers and vendors.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{pool: pool}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

// FindPartyByID retrieves a non-deleted party by its ID.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := `
		SELECT party_id, name, party_type, phone, outstanding_balance, is_deleted, created_at, created_by, last_updated_at, last_updated_by
		FROM parties
		WHERE party_id = $1 AND is_deleted = FALSE;
	`
	var m models.Party
	err := r.pool.QueryRow(ctx, query, partyID).Scan(
		&m.PartyID,
		&m.Name,
		&m.PartyType,
		&m.Phone,
		&m.OutstandingBalance,
		&m.IsDeleted,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find party by ID %s: %w", partyID, err)
	}
	d := mapping.ToDomainParty(m)
	return &d, nil
}

// AdjustOutstandingBalance increments the party's outstanding balance in a
// single UPDATE so concurrent finalizations never lose an increment.
func (r *PgxPartyRepository) AdjustOutstandingBalance(ctx context.Context, partyID string, delta decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE parties
		SET outstanding_balance = COALESCE(outstanding_balance, 0) + $2, last_updated_at = $3, last_updated_by = $4
		WHERE party_id = $1 AND is_deleted = FALSE;
	`
	cmdTag, err := r.pool.Exec(ctx, query, partyID, delta, now, userID)
	if err != nil {
		return fmt.Errorf("failed to adjust outstanding balance for party %s: %w", partyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: party %s not found during balance adjustment", apperrors.ErrNotFound, partyID)
	}
	return nil
}
