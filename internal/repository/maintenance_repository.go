package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/pump-maintenance/internal/model"
)

// MaintenanceRepo provides read and delete access to the 'maintenance'
// table.  Inserts and status updates go through LifecycleRepo because
// they must move the owning pump's status in the same transaction.
type MaintenanceRepo struct {
	db *sql.DB
}

// NewMaintenanceRepo constructs a MaintenanceRepo with the provided DB handle.
func NewMaintenanceRepo(db *sql.DB) *MaintenanceRepo { return &MaintenanceRepo{db: db} }

const maintenanceColumns = "id, pump_id, description, status, created_at"

// GetByID returns a single maintenance record or ErrMaintenanceNotFound.
func (r *MaintenanceRepo) GetByID(ctx context.Context, id uint64) (model.MaintenanceRecord, error) {
	var m model.MaintenanceRecord
	err := r.db.QueryRowContext(ctx,
		"SELECT "+maintenanceColumns+" FROM maintenance WHERE id = ?", id).
		Scan(&m.ID, &m.PumpID, &m.Description, &m.Status, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return model.MaintenanceRecord{}, ErrMaintenanceNotFound
	}
	return m, err
}

// ListByPump returns all maintenance records bound to a pump, oldest first.
func (r *MaintenanceRepo) ListByPump(ctx context.Context, pumpID uint64) ([]model.MaintenanceRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+maintenanceColumns+" FROM maintenance WHERE pump_id = ? ORDER BY id", pumpID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]model.MaintenanceRecord, 0)
	for rows.Next() {
		var m model.MaintenanceRecord
		if err := rows.Scan(&m.ID, &m.PumpID, &m.Description, &m.Status, &m.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, m)
	}
	return records, rows.Err()
}

// DeleteByID removes a maintenance record.  The owning pump's status is
// intentionally left untouched: status only moves through explicit
// lifecycle transitions, so deleting the last open record leaves the pump
// Under Maintenance until a technician acts on it.
func (r *MaintenanceRepo) DeleteByID(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM maintenance WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMaintenanceNotFound
	}
	return nil
}
