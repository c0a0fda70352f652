package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/swarnaledger/swarna_erp_app/internal/core/domain"
	portsrepo "github.com/swarnaledger/swarna_erp_app/internal/core/ports/repositories"
)

type PgxAuditLogRepository struct {
	pool *pgxpool.Pool
}

// newPgxAuditLogRepository creates a repository for the audit trail.
func newPgxAuditLogRepository(pool *pgxpool.Pool) portsrepo.AuditLogRepositoryFacade {
	return &PgxAuditLogRepository{pool: pool}
}

var _ portsrepo.AuditLogRepositoryFacade = (*PgxAuditLogRepository)(nil)

// SaveAuditLog appends an audit record. Changes is stored as JSONB.
func (r *PgxAuditLogRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	changes, err := json.Marshal(entry.Changes)
	if err != nil {
		return fmt.Errorf("failed to marshal audit changes for %s: %w", entry.RecordID, err)
	}

	query := `
		INSERT INTO audit_logs (audit_id, user_id, user_name, module, record_id, action, changes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = r.pool.Exec(ctx, query,
		entry.AuditID,
		entry.UserID,
		entry.UserName,
		entry.Module,
		entry.RecordID,
		entry.Action,
		changes,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit log %s: %w", entry.AuditID, err)
	}
	return nil
}
