package repository

import (
	"context"
	"time"

	"github.com/joblink-dev/admin-console/backend/internal/domain"
)

func (r *Repository) CreateAuditEntry(entry *domain.AuditEntry) error {
	query := `
		INSERT INTO audit_entries (operator_id, action, target_kind, target_id, detail)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{entry.OperatorID, entry.Action, entry.TargetKind, entry.TargetID, entry.Detail}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetRecentAuditEntries(limit int) ([]*domain.AuditEntry, error) {
	query := `
		SELECT id, operator_id, action, target_kind, target_id, detail, created_at
		FROM audit_entries
		ORDER BY created_at DESC
		LIMIT $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.AuditEntry, 0)
	for rows.Next() {
		entry := &domain.AuditEntry{}
		dst := []any{&entry.ID, &entry.OperatorID, &entry.Action, &entry.TargetKind, &entry.TargetID, &entry.Detail, &entry.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
