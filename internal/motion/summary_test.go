package motion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_BeforeStartGuardsDivision(t *testing.T) {
	cfg := Config{InitialVelocity: 20, TotalDistance: 400, TargetDistance: 100}
	var st State
	Reset(&st, cfg, NewTrack(cfg.TotalDistance, DefaultViewportWidth))

	s := Summarize(st, cfg)
	assert.Equal(t, 0.0, s.AverageVelocity)
	assert.False(t, math.IsNaN(s.AverageVelocity))
	assert.Equal(t, 0.0, s.PercentComplete)
	require.NotNil(t, s.Target)
	assert.False(t, s.Target.Reached)
	assert.InDelta(t, 5.0, s.Target.EstimatedTime, 1e-12)
}

func TestSummarize_AfterTarget(t *testing.T) {
	r := newRun(t, Config{InitialVelocity: 50, TotalDistance: 1150, TargetDistance: 100})
	r.steps(300)

	s := Summarize(r.state, r.cfg)
	assert.Equal(t, 50.0, s.ConfiguredVelocity)
	assert.InDelta(t, 120.0, s.DistanceTraveled, 1e-9)
	assert.InDelta(t, 120.0/1150*100, s.PercentComplete, 1e-9)
	assert.InDelta(t, 50.0, s.AverageVelocity, 1e-6)
	require.NotNil(t, s.Target)
	assert.True(t, s.Target.Reached)
	assert.InDelta(t, 50.0, s.Target.AverageVelocity, 0.5)
}

func TestSummarize_NoTarget(t *testing.T) {
	s := Summarize(State{}, Config{InitialVelocity: 1, TotalDistance: 1})
	assert.Nil(t, s.Target)
}

func TestTimeToCover(t *testing.T) {
	tests := []struct {
		name    string
		d, v, a float64
		want    float64
		ok      bool
	}{
		{"uniform", 100, 50, 0, 2, true},
		{"from rest", 50, 0, 4, 5, true},
		{"initial velocity and acceleration", 100, 10, 2, (-10 + math.Sqrt(100+400)) / 2, true},
		{"already there", 0, 0, 0, 0, true},
		{"never moves", 10, 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TimeToCover(tt.d, tt.v, tt.a)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestEstimateTimeToTarget_MatchesSimulation(t *testing.T) {
	cfg := Config{InitialVelocity: 8, Acceleration: 3, TotalDistance: 1000, TargetDistance: 250}
	est, ok := EstimateRun(cfg)
	require.True(t, ok)

	r := newRun(t, cfg)
	midway, ok := EstimateTimeToTarget(r.state, cfg)
	require.True(t, ok)
	assert.InDelta(t, est, midway, 1e-12)

	for !r.state.TargetReached {
		r.step()
	}
	assert.InDelta(t, est, r.state.TimeToTarget, DefaultTimeStep)

	got, ok := EstimateTimeToTarget(r.state, cfg)
	require.True(t, ok)
	assert.Equal(t, r.state.TimeToTarget, got)
}

func TestEstimateRun_WithoutTargetUsesTrackEnd(t *testing.T) {
	got, ok := EstimateRun(Config{InitialVelocity: 25, TotalDistance: 100})
	require.True(t, ok)
	assert.InDelta(t, 4.0, got, 1e-12)
}
