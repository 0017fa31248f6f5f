package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/pump-maintenance/internal/model"
)

// LifecycleRepo is the coordinator that keeps a pump's status consistent
// with its maintenance records.  Every mutating method here writes the
// maintenance row and the owning pump row inside a single transaction,
// locking the pump row first so concurrent calls against the same pump
// serialize.  It holds no state of its own.
type LifecycleRepo struct {
	db *sql.DB
}

// NewLifecycleRepo constructs a LifecycleRepo with the provided DB handle.
func NewLifecycleRepo(db *sql.DB) *LifecycleRepo { return &LifecycleRepo{db: db} }

// Schedule inserts a new maintenance record for a pump and marks the pump
// Under Maintenance, as one atomic unit.  The pump's last maintenance
// date stays untouched until a record completes.  Returns
// ErrPumpNotFound when the pump id does not resolve; in that case nothing
// is written.
func (r *LifecycleRepo) Schedule(ctx context.Context, pumpID uint64, description string, status model.MaintenanceStatus) (model.MaintenanceRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.MaintenanceRecord{}, err
	}
	defer tx.Rollback()

	// Lock the pump row for the duration of the transaction.
	var pid uint64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM pumps WHERE id = ? FOR UPDATE", pumpID).Scan(&pid)
	if err == sql.ErrNoRows {
		return model.MaintenanceRecord{}, ErrPumpNotFound
	}
	if err != nil {
		return model.MaintenanceRecord{}, err
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO maintenance (pump_id, description, status) VALUES (?, ?, ?)",
		pumpID, description, string(status))
	if err != nil {
		return model.MaintenanceRecord{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.MaintenanceRecord{}, err
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE pumps SET status = ? WHERE id = ?",
		string(model.PumpUnderMaintenance), pumpID); err != nil {
		return model.MaintenanceRecord{}, err
	}

	// Query back the inserted row so the caller gets DB-generated fields.
	var m model.MaintenanceRecord
	err = tx.QueryRowContext(ctx,
		"SELECT "+maintenanceColumns+" FROM maintenance WHERE id = ?", id).
		Scan(&m.ID, &m.PumpID, &m.Description, &m.Status, &m.CreatedAt)
	if err != nil {
		return model.MaintenanceRecord{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.MaintenanceRecord{}, err
	}
	return m, nil
}

// UpdateStatus moves a maintenance record to newStatus and derives the
// owning pump's status from it: Completed sends the pump back to Active
// and stamps last_maintenance_date; anything else keeps it Under
// Maintenance.  Only the record being updated drives the pump -- other
// open records on the same pump are not consulted, matching the
// documented product behavior.  Both writes commit atomically or not at
// all.  Returns ErrMaintenanceNotFound for an unknown record and
// ErrInvalidTransition when the move violates the lifecycle order.
func (r *LifecycleRepo) UpdateStatus(ctx context.Context, recordID uint64, newStatus model.MaintenanceStatus) (model.MaintenanceRecord, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.MaintenanceRecord{}, err
	}
	defer tx.Rollback()

	var m model.MaintenanceRecord
	err = tx.QueryRowContext(ctx,
		"SELECT "+maintenanceColumns+" FROM maintenance WHERE id = ? FOR UPDATE", recordID).
		Scan(&m.ID, &m.PumpID, &m.Description, &m.Status, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return model.MaintenanceRecord{}, ErrMaintenanceNotFound
	}
	if err != nil {
		return model.MaintenanceRecord{}, err
	}

	if !model.CanTransition(m.Status, newStatus) {
		return model.MaintenanceRecord{}, ErrInvalidTransition
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE maintenance SET status = ? WHERE id = ?",
		string(newStatus), recordID); err != nil {
		return model.MaintenanceRecord{}, err
	}

	// Lock the owning pump row before deriving its status.
	var pid uint64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM pumps WHERE id = ? FOR UPDATE", m.PumpID).Scan(&pid)
	if err == sql.ErrNoRows {
		return model.MaintenanceRecord{}, ErrPumpNotFound
	}
	if err != nil {
		return model.MaintenanceRecord{}, err
	}

	if newStatus == model.MaintenanceCompleted {
		if _, err := tx.ExecContext(ctx,
			"UPDATE pumps SET status = ?, last_maintenance_date = ? WHERE id = ?",
			string(model.PumpActive), time.Now().UTC(), m.PumpID); err != nil {
			return model.MaintenanceRecord{}, err
		}
	} else {
		if _, err := tx.ExecContext(ctx,
			"UPDATE pumps SET status = ? WHERE id = ?",
			string(model.PumpUnderMaintenance), m.PumpID); err != nil {
			return model.MaintenanceRecord{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return model.MaintenanceRecord{}, err
	}
	m.Status = newStatus
	return m, nil
}

// Summary aggregates current pump and maintenance counts for reporting.
type Summary struct {
	TotalPumps       int `json:"total_pumps"`
	ActivePumps      int `json:"active_pumps"`
	PumpsNotActive   int `json:"pumps_under_maintenance"`
	TotalMaintenance int `json:"total_maintenance_records"`
}

// Summarize computes the report counts on demand from the current table
// contents; nothing is cached.
func (r *LifecycleRepo) Summarize(ctx context.Context) (Summary, error) {
	var s Summary
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(status = ?), 0),
		        COALESCE(SUM(status <> ?), 0)
		   FROM pumps`,
		string(model.PumpActive), string(model.PumpActive)).
		Scan(&s.TotalPumps, &s.ActivePumps, &s.PumpsNotActive)
	if err != nil {
		return Summary{}, err
	}
	err = r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM maintenance").Scan(&s.TotalMaintenance)
	if err != nil {
		return Summary{}, err
	}
	return s, nil
}
