package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/swarnaledger/swarna_erp_app/internal/apperrors"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	portsrepo "github.com/swarnaledger/swarna_erp_app/internal/core/ports/repositories"
	"github.com/swarnaledger/swarna_erp_app/internal/models"
	"github.com/swarnaledger/swarna_erp_app/internal/utils/accounting"
	"github.com/swarnaledger/swarna_erp_app/internal/utils/mapping"
	"github.com/swarnaledger/swarna_erp_app/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for the money journal.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, transaction_number, date, transaction_type, mode, account_id, account_name, party_id, party_name, amount, category, notes, reference_type, reference_id, balance_before, balance_after, has_balance, is_deleted, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.TransactionNumber,
		&m.Date,
		&m.TransactionType,
		&m.Mode,
		&m.AccountID,
		&m.AccountName,
		&m.PartyID,
		&m.PartyName,
		&m.Amount,
		&m.Category,
		&m.Notes,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.BalanceBefore,
		&m.BalanceAfter,
		&m.HasBalance,
		&m.IsDeleted,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// RecordTransaction inserts the journal row and applies the signed delta to the
// account's balance inside one database transaction. Either both effects land
// or neither does.
func (r *PgxTransactionRepository) RecordTransaction(ctx context.Context, txn domain.Transaction, signedDelta decimal.Decimal) error {
	m := mapping.ToModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	insertQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.TransactionID,
		m.TransactionNumber,
		m.Date,
		m.TransactionType,
		m.Mode,
		m.AccountID,
		m.AccountName,
		m.PartyID,
		m.PartyName,
		m.Amount,
		m.Category,
		m.Notes,
		m.ReferenceType,
		m.ReferenceID,
		m.BalanceBefore,
		m.BalanceAfter,
		m.HasBalance,
		m.IsDeleted,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}

	balanceQuery := `
		UPDATE accounts
		SET current_balance = COALESCE(current_balance, 0) + $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1 AND is_deleted = FALSE;
	`
	cmdTag, err := tx.Exec(ctx, balanceQuery, m.AccountID, signedDelta, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to apply balance delta for transaction %s: %w", m.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s not found during transaction recording", apperrors.ErrNotFound, m.AccountID)
	}

	return r.Commit(ctx, tx)
}

// ReverseTransaction hard-deletes the journal row and applies the negated
// balance delta, as one unit. Rollback path only; the delta is recomputed from
// the stored row so the reversal is exact.
func (r *PgxTransactionRepository) ReverseTransaction(ctx context.Context, transactionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	selectQuery := `
		SELECT t.account_id, t.transaction_type, t.amount, a.account_type
		FROM transactions t
		JOIN accounts a ON a.account_id = t.account_id
		WHERE t.transaction_id = $1
		FOR UPDATE OF t;
	`
	var accountID string
	var txnType string
	var amount decimal.Decimal
	var accountType string
	err = tx.QueryRow(ctx, selectQuery, transactionID).Scan(&accountID, &txnType, &amount, &accountType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to load transaction %s for reversal: %w", transactionID, err)
	}

	signed, err := accounting.BalanceDelta(domain.AccountType(accountType), domain.TransactionType(txnType), amount)
	if err != nil {
		return fmt.Errorf("failed to compute reversal delta for transaction %s: %w", transactionID, err)
	}
	delta := signed.Neg()

	deleteQuery := `DELETE FROM transactions WHERE transaction_id = $1;`
	if _, err := tx.Exec(ctx, deleteQuery, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	balanceQuery := `
		UPDATE accounts
		SET current_balance = COALESCE(current_balance, 0) + $2
		WHERE account_id = $1;
	`
	if _, err := tx.Exec(ctx, balanceQuery, accountID, delta); err != nil {
		return fmt.Errorf("failed to reverse balance delta for transaction %s: %w", transactionID, err)
	}

	return r.Commit(ctx, tx)
}

// SetBalanceFields persists backfilled balance history onto a transaction.
func (r *PgxTransactionRepository) SetBalanceFields(ctx context.Context, transactionID string, balanceBefore, balanceAfter decimal.Decimal) error {
	query := `
		UPDATE transactions
		SET balance_before = $2, balance_after = $3, has_balance = TRUE
		WHERE transaction_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID, balanceBefore, balanceAfter)
	if err != nil {
		return fmt.Errorf("failed to set balance fields on transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND is_deleted = FALSE;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// FindTransactionsByReference retrieves all non-deleted transactions linked to
// a document.
func (r *PgxTransactionRepository) FindTransactionsByReference(ctx context.Context, ref domain.DocumentRef) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE reference_type = $1 AND reference_id = $2 AND is_deleted = FALSE
		ORDER BY date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, string(ref.Kind), ref.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for %s %s: %w", ref.Kind, ref.ID, err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListTransactionsByAccountAsc retrieves every non-deleted transaction of an
// account in ascending date order. Balance replay depends on this ordering.
func (r *PgxTransactionRepository) ListTransactionsByAccountAsc(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1 AND is_deleted = FALSE
		ORDER BY date ASC, created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// ListTransactionsByAccount retrieves a page of an account's transactions in
// descending date order using token-based pagination.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE account_id = $1 AND is_deleted = FALSE
	`
	orderByClause := `ORDER BY date DESC, created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{accountID}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken", apperrors.ErrValidation)
		}
		cursorClause := `AND (date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $2;"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(txns) > limit {
		last := txns[limit-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		nextTokenVal = &token
		txns = txns[:limit]
	}
	return txns, nextTokenVal, nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	ms := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}
