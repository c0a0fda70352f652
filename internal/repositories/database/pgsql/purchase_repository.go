package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/swarnaledger/swarna_erp_app/internal/apperrors"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	portsrepo "github.com/swarnaledger/swarna_erp_app/internal/core/ports/repositories"
	"github.com/swarnaledger/swarna_erp_app/internal/models"
	"github.com/swarnaledger/swarna_erp_app/internal/utils/mapping"
)

type PgxPurchaseRepository struct {
	pool *pgxpool.Pool
}

// newPgxPurchaseRepository creates a repository for purchases.
func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{pool: pool}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

const purchaseColumns = `purchase_id, purchase_number, vendor_id, vendor_name, total_money, balance_due_money, status, processing_started_at, finalized_at, finalized_by, is_deleted, created_at, created_by, last_updated_at, last_updated_by`

func scanPurchase(row pgx.Row) (models.Purchase, error) {
	var m models.Purchase
	err := row.Scan(
		&m.PurchaseID,
		&m.PurchaseNumber,
		&m.VendorID,
		&m.VendorName,
		&m.TotalMoney,
		&m.BalanceDueMoney,
		&m.Status,
		&m.ProcessingStartedAt,
		&m.FinalizedAt,
		&m.FinalizedBy,
		&m.IsDeleted,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindPurchaseByID retrieves a non-deleted purchase by its ID.
func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases
		WHERE purchase_id = $1 AND is_deleted = FALSE;
	`
	m, err := scanPurchase(r.pool.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase by ID %s: %w", purchaseID, err)
	}
	d := mapping.ToDomainPurchase(m)
	return &d, nil
}

// SavePurchase persists a new draft purchase.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, p domain.Purchase) error {
	m := mapping.ToModelPurchase(p)

	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.pool.Exec(ctx, query,
		m.PurchaseID,
		m.PurchaseNumber,
		m.VendorID,
		m.VendorName,
		m.TotalMoney,
		m.BalanceDueMoney,
		m.Status,
		m.ProcessingStartedAt,
		m.FinalizedAt,
		m.FinalizedBy,
		m.IsDeleted,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: purchase %s already exists", apperrors.ErrDuplicate, m.PurchaseID)
		}
		return fmt.Errorf("failed to save purchase %s: %w", m.PurchaseID, err)
	}
	return nil
}

// UpdateBalanceDue sets balance_due_money.
func (r *PgxPurchaseRepository) UpdateBalanceDue(ctx context.Context, purchaseID string, balanceDue decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE purchases
		SET balance_due_money = $2, last_updated_at = $3, last_updated_by = $4
		WHERE purchase_id = $1 AND is_deleted = FALSE;
	`
	cmdTag, err := r.pool.Exec(ctx, query, purchaseID, balanceDue, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update balance due on purchase %s: %w", purchaseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AcquireFinalizeLock performs the compare-and-swap DRAFT -> PROCESSING.
func (r *PgxPurchaseRepository) AcquireFinalizeLock(ctx context.Context, purchaseID string, now time.Time) error {
	query := `
		UPDATE purchases
		SET status = $2, processing_started_at = $3, last_updated_at = $3
		WHERE purchase_id = $1 AND status = $4 AND is_deleted = FALSE;
	`
	cmdTag, err := r.pool.Exec(ctx, query, purchaseID, string(domain.StatusProcessing), now, string(domain.StatusDraft))
	if err != nil {
		return fmt.Errorf("failed to acquire finalize lock on purchase %s: %w", purchaseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: purchase %s is not a draft or is being finalized concurrently", apperrors.ErrConflict, purchaseID)
	}
	return nil
}

// MarkFinalized commits FINALIZED status with finalize metadata.
func (r *PgxPurchaseRepository) MarkFinalized(ctx context.Context, purchaseID string, userID string, now time.Time) error {
	query := `
		UPDATE purchases
		SET status = $2, processing_started_at = NULL, finalized_at = $3, finalized_by = $4, last_updated_at = $3, last_updated_by = $4
		WHERE purchase_id = $1 AND status = $5;
	`
	cmdTag, err := r.pool.Exec(ctx, query, purchaseID, string(domain.StatusFinalized), now, userID, string(domain.StatusProcessing))
	if err != nil {
		return fmt.Errorf("failed to mark purchase %s finalized: %w", purchaseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: purchase %s is not in processing state", apperrors.ErrConflict, purchaseID)
	}
	return nil
}

// RollbackToDraft reverts PROCESSING -> DRAFT.
func (r *PgxPurchaseRepository) RollbackToDraft(ctx context.Context, purchaseID string) error {
	query := `
		UPDATE purchases
		SET status = $2, processing_started_at = NULL, finalized_at = NULL, finalized_by = ''
		WHERE purchase_id = $1 AND status = $3;
	`
	cmdTag, err := r.pool.Exec(ctx, query, purchaseID, string(domain.StatusDraft), string(domain.StatusProcessing))
	if err != nil {
		return fmt.Errorf("failed to roll back purchase %s to draft: %w", purchaseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: purchase %s is not in processing state", apperrors.ErrConflict, purchaseID)
	}
	return nil
}
