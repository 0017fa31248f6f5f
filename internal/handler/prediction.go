package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/pump-maintenance/internal/predictor"
)

// PredictionHandler exposes the failure risk scorer.  The model itself is
// a black box from this layer's point of view; the handler only maps its
// output to an advisory message.
type PredictionHandler struct {
	Scorer *predictor.Scorer
}

func NewPredictionHandler(s *predictor.Scorer) *PredictionHandler {
	if s == nil {
		panic("nil scorer passed to NewPredictionHandler")
	}
	return &PredictionHandler{Scorer: s}
}

type predictionReq struct {
	UsageHours     float64 `json:"usage_hours"`
	Temperature    float64 `json:"temperature"`
	Vibration      float64 `json:"vibration"`
	BreakdownCount int     `json:"breakdown_count"`
}

// Predict handles POST /prediction (any authenticated user).
func (h *PredictionHandler) Predict(c echo.Context) error {
	var req predictionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	res := h.Scorer.Score(req.UsageHours, req.Temperature, req.Vibration, req.BreakdownCount)

	msg := "Pump operating normally."
	if res.Risk == 1 {
		msg = "High risk of failure. Schedule maintenance."
	}
	return c.JSON(http.StatusOK, echo.Map{
		"failure_prediction":  res.Risk,
		"failure_probability": res.Probability,
		"message":             msg,
	})
}
