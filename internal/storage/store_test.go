package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/chaosgen/internal/chaos"
	"github.com/san-kum/chaosgen/internal/logistic"
	"github.com/san-kum/chaosgen/internal/ode"
)

func testResult() *logistic.Result {
	return &logistic.Result{
		X:           chaos.Series{0.4, 0.84, 0.4704},
		Y:           chaos.Series{0.6, 0.72, 0.55},
		Params:      logistic.ParameterSet{MuX: 3.7, MuY: 3.6, AlphaXY: 0.1, AlphaYX: 0.05, X0: 0.4, Y0: 0.6},
		Config:      logistic.RunConfig{NPoints: 3, StepSize: 1, Seed: 42, MaxAttempts: 10},
		Attempts:    1,
		GeneratedAt: time.Now(),
	}
}

func TestSaveLogisticRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	id, err := st.SaveLogistic(testResult())
	require.NoError(t, err)

	meta, err := st.Load(id)
	require.NoError(t, err)
	assert.Equal(t, "logistic", meta.System)
	assert.Equal(t, int64(42), meta.Seed)
	assert.Equal(t, 3, meta.Samples)
	assert.Equal(t, 3.7, meta.Params["mu_x"])
	assert.Equal(t, []string{"x", "y"}, meta.Columns)

	header, rows, err := st.LoadSeries(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, header)
	require.Len(t, rows, 3)
	assert.Equal(t, 0.4, rows[0][0])
	assert.Equal(t, 0.55, rows[2][1])
}

func TestSaveSolutionRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	sol := &ode.Solution{
		Times:  []float64{0, 0.1, 0.2},
		States: []ode.State{{1, 2, 3}, {1.1, 2.1, 3.1}, {1.2, 2.2, 3.2}},
	}
	id, err := st.SaveSolution("lorenz", []float64{10, 28, 8.0 / 3.0}, 7, sol)
	require.NoError(t, err)

	meta, err := st.Load(id)
	require.NoError(t, err)
	assert.Equal(t, "lorenz", meta.System)
	assert.Equal(t, []string{"time", "x0", "x1", "x2"}, meta.Columns)

	header, rows, err := st.LoadSeries(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"time", "x0", "x1", "x2"}, header)
	require.Len(t, rows, 3)
	assert.Equal(t, 0.1, rows[1][0])
	assert.Equal(t, 3.2, rows[2][3])
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = st.SaveLogistic(testResult())
	require.NoError(t, err)

	runs, err = st.List()
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestList_MissingDir(t *testing.T) {
	st := New("/nonexistent/chaosgen-test")
	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestLoad_UnknownRun(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())
	_, err := st.Load("logistic_123")
	assert.Error(t, err)
}
