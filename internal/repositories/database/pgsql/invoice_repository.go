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

type PgxInvoiceRepository struct {
	pool *pgxpool.Pool
}

// newPgxInvoiceRepository creates a repository for invoices.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{pool: pool}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, invoice_number, customer_id, customer_name, grand_total, paid_amount, balance_due, payment_status, status, processing_started_at, finalized_at, finalized_by, is_deleted, created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.InvoiceNumber,
		&m.CustomerID,
		&m.CustomerName,
		&m.GrandTotal,
		&m.PaidAmount,
		&m.BalanceDue,
		&m.PaymentStatus,
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

// FindInvoiceByID retrieves a non-deleted invoice by its ID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE invoice_id = $1 AND is_deleted = FALSE;
	`
	m, err := scanInvoice(r.pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}
	d := mapping.ToDomainInvoice(m)
	return &d, nil
}

// SaveInvoice persists a new draft invoice.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, inv domain.Invoice) error {
	m := mapping.ToModelInvoice(inv)

	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.pool.Exec(ctx, query,
		m.InvoiceID,
		m.InvoiceNumber,
		m.CustomerID,
		m.CustomerName,
		m.GrandTotal,
		m.PaidAmount,
		m.BalanceDue,
		m.PaymentStatus,
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
			return fmt.Errorf("%w: invoice %s already exists", apperrors.ErrDuplicate, m.InvoiceID)
		}
		return fmt.Errorf("failed to save invoice %s: %w", m.InvoiceID, err)
	}
	return nil
}

// UpdatePaymentFields sets paid_amount, balance_due and payment_status.
func (r *PgxInvoiceRepository) UpdatePaymentFields(ctx context.Context, invoiceID string, paidAmount, balanceDue decimal.Decimal, paymentStatus domain.PaymentStatus, userID string, now time.Time) error {
	query := `
		UPDATE invoices
		SET paid_amount = $2, balance_due = $3, payment_status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE invoice_id = $1 AND is_deleted = FALSE;
	`
	cmdTag, err := r.pool.Exec(ctx, query, invoiceID, paidAmount, balanceDue, string(paymentStatus), now, userID)
	if err != nil {
		return fmt.Errorf("failed to update payment fields on invoice %s: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AcquireFinalizeLock performs the compare-and-swap DRAFT -> PROCESSING.
func (r *PgxInvoiceRepository) AcquireFinalizeLock(ctx context.Context, invoiceID string, now time.Time) error {
	query := `
		UPDATE invoices
		SET status = $2, processing_started_at = $3, last_updated_at = $3
		WHERE invoice_id = $1 AND status = $4 AND is_deleted = FALSE;
	`
	cmdTag, err := r.pool.Exec(ctx, query, invoiceID, string(domain.StatusProcessing), now, string(domain.StatusDraft))
	if err != nil {
		return fmt.Errorf("failed to acquire finalize lock on invoice %s: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice %s is not a draft or is being finalized concurrently", apperrors.ErrConflict, invoiceID)
	}
	return nil
}

// MarkFinalized commits FINALIZED status with finalize metadata.
func (r *PgxInvoiceRepository) MarkFinalized(ctx context.Context, invoiceID string, userID string, now time.Time) error {
	query := `
		UPDATE invoices
		SET status = $2, processing_started_at = NULL, finalized_at = $3, finalized_by = $4, last_updated_at = $3, last_updated_by = $4
		WHERE invoice_id = $1 AND status = $5;
	`
	cmdTag, err := r.pool.Exec(ctx, query, invoiceID, string(domain.StatusFinalized), now, userID, string(domain.StatusProcessing))
	if err != nil {
		return fmt.Errorf("failed to mark invoice %s finalized: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice %s is not in processing state", apperrors.ErrConflict, invoiceID)
	}
	return nil
}

// RollbackToDraft reverts PROCESSING -> DRAFT.
func (r *PgxInvoiceRepository) RollbackToDraft(ctx context.Context, invoiceID string) error {
	query := `
		UPDATE invoices
		SET status = $2, processing_started_at = NULL, finalized_at = NULL, finalized_by = ''
		WHERE invoice_id = $1 AND status = $3;
	`
	cmdTag, err := r.pool.Exec(ctx, query, invoiceID, string(domain.StatusDraft), string(domain.StatusProcessing))
	if err != nil {
		return fmt.Errorf("failed to roll back invoice %s to draft: %w", invoiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: invoice %s is not in processing state", apperrors.ErrConflict, invoiceID)
	}
	return nil
}
