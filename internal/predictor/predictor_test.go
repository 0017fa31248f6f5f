package predictor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/pump-maintenance/internal/predictor"
)

func TestScoreHealthyPump(t *testing.T) {
	s := predictor.NewScorer()

	res := s.Score(200, 60, 2.0, 0)
	assert.Equal(t, 0, res.Risk)
	assert.Less(t, res.Probability, 0.5)
	assert.GreaterOrEqual(t, res.Probability, 0.0)
}

func TestScoreWornPump(t *testing.T) {
	s := predictor.NewScorer()

	res := s.Score(700, 90, 4.5, 4)
	assert.Equal(t, 1, res.Risk)
	assert.GreaterOrEqual(t, res.Probability, 0.5)
	assert.LessOrEqual(t, res.Probability, 1.0)
}

func TestScoreMonotonicInBreakdowns(t *testing.T) {
	s := predictor.NewScorer()

	low := s.Score(400, 70, 3.0, 0)
	high := s.Score(400, 70, 3.0, 5)
	assert.Greater(t, high.Probability, low.Probability)
}
