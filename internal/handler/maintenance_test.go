package handler_test

import (
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/pump-maintenance/internal/handler"
	"github.com/iliyamo/pump-maintenance/internal/repository"
)

const (
	maintenanceSelectForUpdate = "SELECT id, pump_id, description, status, created_at FROM maintenance WHERE id = ? FOR UPDATE"
	maintenanceSelect          = "SELECT id, pump_id, description, status, created_at FROM maintenance WHERE id = ?"
	pumpLock                   = "SELECT id FROM pumps WHERE id = ? FOR UPDATE"
)

func maintenanceRows(id, pumpID uint64, desc, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "pump_id", "description", "status", "created_at"}).
		AddRow(id, pumpID, desc, status, time.Now().UTC())
}

func newMaintenanceHandler(t *testing.T) (*handler.MaintenanceHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMock(t)
	return handler.NewMaintenanceHandler(
		repository.NewLifecycleRepo(db),
		repository.NewMaintenanceRepo(db),
	), mock
}

func TestScheduleMaintenance(t *testing.T) {
	h, mock := newMaintenanceHandler(t)

	mock.ExpectBegin()
	mock.ExpectQuery(pumpLock).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec("INSERT INTO maintenance (pump_id, description, status) VALUES (?, ?, ?)").
		WithArgs(uint64(1), "leak", "Scheduled").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE pumps SET status = ? WHERE id = ?").
		WithArgs("Under Maintenance", uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(maintenanceSelect).
		WithArgs(int64(1)).
		WillReturnRows(maintenanceRows(1, 1, "leak", "Scheduled"))
	mock.ExpectCommit()

	c, rec := newJSONContext(t, http.MethodPost, "/maintenance",
		`{"pump_id":1,"description":"leak","status":"Scheduled"}`)
	require.NoError(t, h.Schedule(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"Scheduled"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleMaintenanceUnknownPump(t *testing.T) {
	h, mock := newMaintenanceHandler(t)

	mock.ExpectBegin()
	mock.ExpectQuery(pumpLock).
		WithArgs(uint64(999)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	c, rec := newJSONContext(t, http.MethodPost, "/maintenance",
		`{"pump_id":999,"description":"leak","status":"Scheduled"}`)
	require.NoError(t, h.Schedule(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateMaintenanceCompleted(t *testing.T) {
	h, mock := newMaintenanceHandler(t)

	mock.ExpectBegin()
	mock.ExpectQuery(maintenanceSelectForUpdate).
		WithArgs(uint64(1)).
		WillReturnRows(maintenanceRows(1, 1, "leak", "Scheduled"))
	mock.ExpectExec("UPDATE maintenance SET status = ? WHERE id = ?").
		WithArgs("Completed", uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(pumpLock).
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec("UPDATE pumps SET status = ?, last_maintenance_date = ? WHERE id = ?").
		WithArgs("Active", sqlmock.AnyArg(), uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c, rec := newJSONContext(t, http.MethodPut, "/maintenance/1", `{"status":"Completed"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"Completed"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMaintenanceInvalidStatus(t *testing.T) {
	h, _ := newMaintenanceHandler(t)

	c, rec := newJSONContext(t, http.MethodPut, "/maintenance/1", `{"status":"Cancelled"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateMaintenanceUnknownRecord(t *testing.T) {
	h, mock := newMaintenanceHandler(t)

	mock.ExpectBegin()
	mock.ExpectQuery(maintenanceSelectForUpdate).
		WithArgs(uint64(42)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	c, rec := newJSONContext(t, http.MethodPut, "/maintenance/42", `{"status":"Completed"}`)
	c.SetParamNames("id")
	c.SetParamValues("42")
	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateMaintenanceReopenConflict(t *testing.T) {
	h, mock := newMaintenanceHandler(t)

	mock.ExpectBegin()
	mock.ExpectQuery(maintenanceSelectForUpdate).
		WithArgs(uint64(1)).
		WillReturnRows(maintenanceRows(1, 1, "leak", "Completed"))
	mock.ExpectRollback()

	c, rec := newJSONContext(t, http.MethodPut, "/maintenance/1", `{"status":"In Progress"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteMaintenance(t *testing.T) {
	h, mock := newMaintenanceHandler(t)

	mock.ExpectExec("DELETE FROM maintenance WHERE id = ?").
		WithArgs(uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, rec := newJSONContext(t, http.MethodDelete, "/maintenance/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
