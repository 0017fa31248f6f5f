package handler // handler defines http handlers

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/pump-maintenance/internal/model"
)

// currentUsername extracts the authenticated username that JWTAuth stored
// in the context.
func currentUsername(c echo.Context) (string, error) {
	if s, ok := c.Get("username").(string); ok && s != "" {
		return s, nil
	}
	return "", errors.New("missing username in context")
}

// pumpResponse is the wire shape of a pump shared by the pump and
// maintenance endpoints.
type pumpResponse struct {
	ID                  uint64     `json:"id"`
	Name                string     `json:"name"`
	Status              string     `json:"status"`
	LastMaintenanceDate *time.Time `json:"last_maintenance_date"`
	CreatedAt           time.Time  `json:"created_at"`
}

func toPumpResponse(p model.Pump) pumpResponse {
	return pumpResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Status:              string(p.Status),
		LastMaintenanceDate: p.LastMaintenanceDate,
		CreatedAt:           p.CreatedAt,
	}
}

// maintenanceResponse is the wire shape of a maintenance record.
type maintenanceResponse struct {
	ID          uint64    `json:"id"`
	PumpID      uint64    `json:"pump_id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func toMaintenanceResponse(m model.MaintenanceRecord) maintenanceResponse {
	return maintenanceResponse{
		ID:          m.ID,
		PumpID:      m.PumpID,
		Description: m.Description,
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}
