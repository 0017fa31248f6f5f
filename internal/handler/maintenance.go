package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/pump-maintenance/internal/model"
	"github.com/iliyamo/pump-maintenance/internal/repository"
)

// MaintenanceHandler exposes the maintenance work-order endpoints.
// Mutations that touch pump status go through the lifecycle repository;
// plain reads and the admin delete use the maintenance repository.
type MaintenanceHandler struct {
	Lifecycle *repository.LifecycleRepo
	Records   *repository.MaintenanceRepo
}

func NewMaintenanceHandler(l *repository.LifecycleRepo, m *repository.MaintenanceRepo) *MaintenanceHandler {
	if l == nil || m == nil {
		panic("nil repository passed to NewMaintenanceHandler")
	}
	return &MaintenanceHandler{Lifecycle: l, Records: m}
}

type scheduleReq struct {
	PumpID      uint64 `json:"pump_id"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// Schedule handles POST /maintenance (technician or admin).  On success
// the owning pump is Under Maintenance, committed together with the new
// record.
func (h *MaintenanceHandler) Schedule(c echo.Context) error {
	var req scheduleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.PumpID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "pump_id required"})
	}

	status := model.MaintenanceScheduled
	if req.Status != "" {
		var ok bool
		if status, ok = model.ParseMaintenanceStatus(req.Status); !ok {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "invalid maintenance status"})
		}
	}

	rec, err := h.Lifecycle.Schedule(c.Request().Context(), req.PumpID, req.Description, status)
	if err != nil {
		if err == repository.ErrPumpNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "pump not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "schedule failed"})
	}
	return c.JSON(http.StatusOK, toMaintenanceResponse(rec))
}

// UpdateStatus handles PUT /maintenance/:id (technician or admin).  The
// pump's status is derived from the new record status inside the same
// transaction.
func (h *MaintenanceHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	status, ok := model.ParseMaintenanceStatus(req.Status)
	if !ok {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "invalid maintenance status"})
	}

	rec, err := h.Lifecycle.UpdateStatus(c.Request().Context(), id, status)
	if err != nil {
		switch err {
		case repository.ErrMaintenanceNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "maintenance record not found"})
		case repository.ErrInvalidTransition:
			return c.JSON(http.StatusConflict, echo.Map{"error": "maintenance already completed"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}
	return c.JSON(http.StatusOK, toMaintenanceResponse(rec))
}

// ListByPump handles GET /maintenance/pump/:id (technician or admin).
func (h *MaintenanceHandler) ListByPump(c echo.Context) error {
	pumpID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	records, err := h.Records.ListByPump(c.Request().Context(), pumpID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]maintenanceResponse, 0, len(records))
	for _, m := range records {
		out = append(out, toMaintenanceResponse(m))
	}
	return c.JSON(http.StatusOK, out)
}

// Delete handles DELETE /maintenance/:id (admin only).  Pump status is
// not recomputed on delete; see MaintenanceRepo.DeleteByID.
func (h *MaintenanceHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Records.DeleteByID(c.Request().Context(), id); err != nil {
		if err == repository.ErrMaintenanceNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "maintenance record not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "maintenance record deleted"})
}
