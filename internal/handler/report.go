package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/pump-maintenance/internal/repository"
)

// ReportHandler exposes the read-only reporting surface.
type ReportHandler struct {
	Lifecycle *repository.LifecycleRepo
}

func NewReportHandler(l *repository.LifecycleRepo) *ReportHandler {
	if l == nil {
		panic("nil repository passed to NewReportHandler")
	}
	return &ReportHandler{Lifecycle: l}
}

// Summary handles GET /reports/summary (any authenticated user).  Counts
// are computed from the current table contents on every call.
func (h *ReportHandler) Summary(c echo.Context) error {
	s, err := h.Lifecycle.Summarize(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "summary failed"})
	}
	return c.JSON(http.StatusOK, s)
}
