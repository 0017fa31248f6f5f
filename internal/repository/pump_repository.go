package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/pump-maintenance/internal/model"
)

// PumpRepo encapsulates all database queries against the 'pumps' table.
// It deliberately exposes no status-update method: once a pump has
// maintenance history its status is derived state, and only the
// LifecycleRepo writes it.
type PumpRepo struct {
	db *sql.DB
}

// NewPumpRepo constructs a PumpRepo with the provided DB handle.
func NewPumpRepo(db *sql.DB) *PumpRepo { return &PumpRepo{db: db} }

const pumpColumns = "id, name, status, last_maintenance_date, created_at"

// scanPump reads one pump row from any row scanner (sql.Row or sql.Rows).
func scanPump(scan func(dest ...any) error) (model.Pump, error) {
	var (
		p       model.Pump
		lastMnt sql.NullTime
	)
	if err := scan(&p.ID, &p.Name, &p.Status, &lastMnt, &p.CreatedAt); err != nil {
		return model.Pump{}, err
	}
	if lastMnt.Valid {
		t := lastMnt.Time
		p.LastMaintenanceDate = &t
	}
	return p, nil
}

// Create inserts a new pump and returns the fully populated row.  The
// status must already have passed enum validation at the handler boundary.
func (r *PumpRepo) Create(ctx context.Context, name string, status model.PumpStatus) (model.Pump, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO pumps (name, status) VALUES (?, ?)", name, string(status))
	if err != nil {
		return model.Pump{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Pump{}, err
	}
	// Query back the full row to populate timestamps and defaults.
	row := r.db.QueryRowContext(ctx,
		"SELECT "+pumpColumns+" FROM pumps WHERE id = ?", id)
	return scanPump(row.Scan)
}

// GetByID returns a single pump or ErrPumpNotFound.
func (r *PumpRepo) GetByID(ctx context.Context, id uint64) (model.Pump, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+pumpColumns+" FROM pumps WHERE id = ?", id)
	p, err := scanPump(row.Scan)
	if err == sql.ErrNoRows {
		return model.Pump{}, ErrPumpNotFound
	}
	return p, err
}

// List returns all pumps ordered by id.
func (r *PumpRepo) List(ctx context.Context) ([]model.Pump, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+pumpColumns+" FROM pumps ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pumps := make([]model.Pump, 0)
	for rows.Next() {
		p, err := scanPump(rows.Scan)
		if err != nil {
			return nil, err
		}
		pumps = append(pumps, p)
	}
	return pumps, rows.Err()
}

// DeleteByID removes a pump and all of its maintenance records in one
// transaction.  The explicit child delete keeps the cascade visible here
// rather than relying solely on the FK constraint.  Returns
// ErrPumpNotFound when the pump does not exist.
func (r *PumpRepo) DeleteByID(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists uint64
	err = tx.QueryRowContext(ctx,
		"SELECT id FROM pumps WHERE id = ? FOR UPDATE", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrPumpNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM maintenance WHERE pump_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"DELETE FROM pumps WHERE id = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}
