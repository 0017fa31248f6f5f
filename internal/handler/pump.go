package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/pump-maintenance/internal/model"
	"github.com/iliyamo/pump-maintenance/internal/repository"
)

// PumpHandler exposes CRUD endpoints for pump asset records.  Status here
// is only ever written at creation; after that the lifecycle repository
// owns it.
type PumpHandler struct {
	Pumps *repository.PumpRepo
}

func NewPumpHandler(p *repository.PumpRepo) *PumpHandler {
	if p == nil {
		panic("nil repository passed to NewPumpHandler")
	}
	return &PumpHandler{Pumps: p}
}

type createPumpReq struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Create handles POST /pumps (admin only).  An omitted status defaults to
// Active; a value outside the enumeration is rejected with 422.
func (h *PumpHandler) Create(c echo.Context) error {
	var req createPumpReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	status := model.PumpStatus(strings.TrimSpace(req.Status))
	if status == "" {
		status = model.PumpActive
	}
	if !model.ValidPumpStatus(status) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "invalid pump status"})
	}

	p, err := h.Pumps.Create(c.Request().Context(), req.Name, status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create pump failed"})
	}
	return c.JSON(http.StatusOK, toPumpResponse(p))
}

// List handles GET /pumps (any authenticated user).
func (h *PumpHandler) List(c echo.Context) error {
	pumps, err := h.Pumps.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list pumps failed"})
	}
	out := make([]pumpResponse, 0, len(pumps))
	for _, p := range pumps {
		out = append(out, toPumpResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /pumps/:id (any authenticated user).
func (h *PumpHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	p, err := h.Pumps.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrPumpNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "pump not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toPumpResponse(p))
}

// Delete handles DELETE /pumps/:id (admin only).  The pump's maintenance
// records are removed in the same transaction.
func (h *PumpHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Pumps.DeleteByID(c.Request().Context(), id); err != nil {
		if err == repository.ErrPumpNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "pump not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "pump deleted successfully"})
}
