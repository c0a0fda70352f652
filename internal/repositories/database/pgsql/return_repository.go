package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/swarnaledger/swarna_erp_app/internal/apperrors"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	portsrepo "github.com/swarnaledger/swarna_erp_app/internal/core/ports/repositories"
	"github.com/swarnaledger/swarna_erp_app/internal/models"
	"github.com/swarnaledger/swarna_erp_app/internal/utils/mapping"
)

type PgxReturnRepository struct {
	pool *pgxpool.Pool
}

// newPgxReturnRepository creates a repository for return documents.
func newPgxReturnRepository(pool *pgxpool.Pool) portsrepo.ReturnRepositoryFacade {
	return &PgxReturnRepository{pool: pool}
}

var _ portsrepo.ReturnRepositoryFacade = (*PgxReturnRepository)(nil)

const returnColumns = `return_id, return_number, return_type, party_id, party_name, payment_mode, reference_type, reference_id, refund_mode, refund_money_amount, refund_gold_grams, refund_gold_purity, account_id, item_count, status, processing_started_at, finalized_at, finalized_by, transaction_id, gold_ledger_id, inventory_action_required, inventory_action_notes, is_deleted, created_at, created_by, last_updated_at, last_updated_by`

func scanReturn(row pgx.Row) (models.Return, error) {
	var m models.Return
	err := row.Scan(
		&m.ReturnID,
		&m.ReturnNumber,
		&m.ReturnType,
		&m.PartyID,
		&m.PartyName,
		&m.PaymentMode,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.RefundMode,
		&m.RefundMoneyAmount,
		&m.RefundGoldGrams,
		&m.RefundGoldPurity,
		&m.AccountID,
		&m.ItemCount,
		&m.Status,
		&m.ProcessingStartedAt,
		&m.FinalizedAt,
		&m.FinalizedBy,
		&m.TransactionID,
		&m.GoldLedgerID,
		&m.InventoryActionRequired,
		&m.InventoryActionNotes,
		&m.IsDeleted,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindReturnByID retrieves a non-deleted return by its ID.
func (r *PgxReturnRepository) FindReturnByID(ctx context.Context, returnID string) (*domain.Return, error) {
	query := `
		SELECT ` + returnColumns + `
		FROM returns
		WHERE return_id = $1 AND is_deleted = FALSE;
	`
	m, err := scanReturn(r.pool.QueryRow(ctx, query, returnID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find return by ID %s: %w", returnID, err)
	}
	d := mapping.ToDomainReturn(m)
	return &d, nil
}

// SaveReturn persists a new draft return.
func (r *PgxReturnRepository) SaveReturn(ctx context.Context, ret domain.Return) error {
	m := mapping.ToModelReturn(ret)

	query := `
		INSERT INTO returns (` + returnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ReturnID,
		m.ReturnNumber,
		m.ReturnType,
		m.PartyID,
		m.PartyName,
		m.PaymentMode,
		m.ReferenceType,
		m.ReferenceID,
		m.RefundMode,
		m.RefundMoneyAmount,
		m.RefundGoldGrams,
		m.RefundGoldPurity,
		m.AccountID,
		m.ItemCount,
		m.Status,
		m.ProcessingStartedAt,
		m.FinalizedAt,
		m.FinalizedBy,
		m.TransactionID,
		m.GoldLedgerID,
		m.InventoryActionRequired,
		m.InventoryActionNotes,
		m.IsDeleted,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: return %s already exists", apperrors.ErrDuplicate, m.ReturnID)
		}
		return fmt.Errorf("failed to save return %s: %w", m.ReturnID, err)
	}
	return nil
}

// AcquireFinalizeLock performs the compare-and-swap DRAFT -> PROCESSING. The
// WHERE clause is the whole locking mechanism: zero rows affected means some
// other request got there first, or the document is no longer a draft.
func (r *PgxReturnRepository) AcquireFinalizeLock(ctx context.Context, returnID string, now time.Time) error {
	query := `
		UPDATE returns
		SET status = $2, processing_started_at = $3, last_updated_at = $3
		WHERE return_id = $1 AND status = $4 AND is_deleted = FALSE;
	`
	cmdTag, err := r.pool.Exec(ctx, query, returnID, string(domain.StatusProcessing), now, string(domain.StatusDraft))
	if err != nil {
		return fmt.Errorf("failed to acquire finalize lock on return %s: %w", returnID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: return %s is not a draft or is being finalized concurrently", apperrors.ErrConflict, returnID)
	}
	return nil
}

// MarkFinalized performs the terminal commit of a finalize run.
func (r *PgxReturnRepository) MarkFinalized(ctx context.Context, ret domain.Return) error {
	query := `
		UPDATE returns
		SET status = $2,
		    processing_started_at = NULL,
		    finalized_at = $3,
		    finalized_by = $4,
		    transaction_id = $5,
		    gold_ledger_id = $6,
		    inventory_action_required = $7,
		    inventory_action_notes = $8,
		    last_updated_at = $9,
		    last_updated_by = $4
		WHERE return_id = $1 AND status = $10;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		ret.ReturnID,
		string(domain.StatusFinalized),
		ret.FinalizedAt,
		ret.FinalizedBy,
		ret.TransactionID,
		ret.GoldLedgerID,
		ret.InventoryActionRequired,
		ret.InventoryActionNotes,
		ret.LastUpdatedAt,
		string(domain.StatusProcessing),
	)
	if err != nil {
		return fmt.Errorf("failed to mark return %s finalized: %w", ret.ReturnID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: return %s is not in processing state", apperrors.ErrConflict, ret.ReturnID)
	}
	return nil
}

// RollbackToDraft reverts PROCESSING -> DRAFT clearing the lock marker and any
// partially-set finalize fields.
func (r *PgxReturnRepository) RollbackToDraft(ctx context.Context, returnID string) error {
	query := `
		UPDATE returns
		SET status = $2,
		    processing_started_at = NULL,
		    finalized_at = NULL,
		    finalized_by = '',
		    transaction_id = '',
		    gold_ledger_id = '',
		    inventory_action_required = FALSE,
		    inventory_action_notes = ''
		WHERE return_id = $1 AND status = $3;
	`
	cmdTag, err := r.pool.Exec(ctx, query, returnID, string(domain.StatusDraft), string(domain.StatusProcessing))
	if err != nil {
		return fmt.Errorf("failed to roll back return %s to draft: %w", returnID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: return %s is not in processing state", apperrors.ErrConflict, returnID)
	}
	return nil
}
