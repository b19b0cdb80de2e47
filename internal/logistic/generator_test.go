package logistic

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/chaosgen/internal/chaos"
	"github.com/san-kum/chaosgen/internal/dist"
)

// seqDist replays a fixed sequence of draws, cycling when exhausted.
type seqDist struct {
	vals []float64
	i    int
}

func (d *seqDist) Sample(_ *rand.Rand) float64 {
	v := d.vals[d.i%len(d.vals)]
	d.i++
	return v
}

func fixedParams() ParameterSet {
	return ParameterSet{MuX: 3.7, MuY: 3.65, AlphaXY: 0.05, AlphaYX: 0.03, X0: 0.4, Y0: 0.6}
}

func TestGenerate_OutputLengths(t *testing.T) {
	cfg := RunConfig{NPoints: 37, NTransient: 100, StepSize: 3, Seed: 1, MaxAttempts: 1}
	res, err := NewGenerator(FixedSpec(fixedParams()), cfg, nil).Generate()
	require.NoError(t, err)

	assert.Len(t, res.X, cfg.NPoints)
	assert.Len(t, res.Y, cfg.NPoints)
	assert.Equal(t, 1, res.Attempts)
	assert.False(t, res.GeneratedAt.IsZero())
}

func TestGenerate_StrideOneMatchesRawSlice(t *testing.T) {
	p := fixedParams()
	cfg := RunConfig{NPoints: 25, NTransient: 50, StepSize: 1, Seed: 1, MaxAttempts: 1}

	res, err := NewGenerator(FixedSpec(p), cfg, nil).Generate()
	require.NoError(t, err)

	rawX, rawY := Iterate(p, cfg.RawLen())
	assert.Equal(t, rawX[cfg.NTransient:cfg.NTransient+cfg.NPoints], res.X)
	assert.Equal(t, rawY[cfg.NTransient:cfg.NTransient+cfg.NPoints], res.Y)
}

func TestGenerate_StrideK(t *testing.T) {
	p := fixedParams()
	cfg := RunConfig{NPoints: 10, NTransient: 30, StepSize: 4, Seed: 1, MaxAttempts: 1}

	res, err := NewGenerator(FixedSpec(p), cfg, nil).Generate()
	require.NoError(t, err)

	rawX, _ := Iterate(p, cfg.RawLen())
	for i := 0; i < cfg.NPoints; i++ {
		assert.Equal(t, rawX[cfg.NTransient+i*cfg.StepSize], res.X[i], "sample %d", i)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := RunConfig{NPoints: 50, NTransient: 200, StepSize: 2, Seed: 42, MaxAttempts: 1}

	a, err := NewGenerator(FixedSpec(fixedParams()), cfg, nil).Generate()
	require.NoError(t, err)
	b, err := NewGenerator(FixedSpec(fixedParams()), cfg, nil).Generate()
	require.NoError(t, err)

	assert.Equal(t, a.X, b.X)
	assert.Equal(t, a.Y, b.Y)
}

func TestGenerate_ReproducibleWithDrawnParams(t *testing.T) {
	cfg := RunConfig{NPoints: 100, NTransient: 10000, StepSize: 1, Seed: 7, MaxAttempts: 25}

	a, err := NewGenerator(DefaultSpec(), cfg, nil).Generate()
	require.NoError(t, err)
	b, err := NewGenerator(DefaultSpec(), cfg, nil).Generate()
	require.NoError(t, err)

	assert.Equal(t, a.Params, b.Params)
	assert.Equal(t, a.X, b.X)
	assert.Equal(t, a.Y, b.Y)
}

func TestGenerate_DecoupledXIgnoresYSide(t *testing.T) {
	cfg := RunConfig{NPoints: 40, NTransient: 100, StepSize: 1, Seed: 1, MaxAttempts: 1}

	pa := ParameterSet{MuX: 3.7, MuY: 3.6, X0: 0.3, Y0: 0.2}
	pb := ParameterSet{MuX: 3.7, MuY: 3.95, X0: 0.3, Y0: 0.81}

	a, err := NewGenerator(FixedSpec(pa), cfg, nil).Generate()
	require.NoError(t, err)
	b, err := NewGenerator(FixedSpec(pb), cfg, nil).Generate()
	require.NoError(t, err)

	assert.Equal(t, a.X, b.X, "with zero coupling, X must not depend on the Y side")
	assert.NotEqual(t, a.Y, b.Y)
}

func TestGenerate_NoiseBound(t *testing.T) {
	p := fixedParams()
	clean := RunConfig{NPoints: 200, NTransient: 100, StepSize: 1, Seed: 5, MaxAttempts: 1}
	noisy := clean
	noisy.NoiseFrac = 0.1

	base, err := NewGenerator(FixedSpec(p), clean, nil).Generate()
	require.NoError(t, err)
	res, err := NewGenerator(FixedSpec(p), noisy, nil).Generate()
	require.NoError(t, err)

	boundX := noisy.NoiseFrac * base.X.StdDev()
	boundY := noisy.NoiseFrac * base.Y.StdDev()
	require.Greater(t, boundX, 0.0)

	for i := range res.X {
		assert.LessOrEqual(t, math.Abs(res.X[i]-base.X[i]), boundX+1e-12, "x[%d]", i)
		assert.LessOrEqual(t, math.Abs(res.Y[i]-base.Y[i]), boundY+1e-12, "y[%d]", i)
	}
}

func TestGenerate_NoiseOffPassesThrough(t *testing.T) {
	p := fixedParams()
	cfg := RunConfig{NPoints: 30, NTransient: 10, StepSize: 1, Seed: 5, MaxAttempts: 1}

	res, err := NewGenerator(FixedSpec(p), cfg, nil).Generate()
	require.NoError(t, err)

	rawX, _ := Iterate(p, cfg.RawLen())
	assert.Equal(t, rawX[cfg.NTransient:cfg.NTransient+cfg.NPoints], res.X)
}

func TestGenerate_RetryPreservesCoupling(t *testing.T) {
	// First MuX draw blows the map up; the retry draws 3.5 and succeeds.
	spec := ParameterSpec{
		MuX:     &seqDist{vals: []float64{500.0, 3.5}},
		MuY:     dist.Constant(3.5),
		AlphaXY: dist.Constant(0.05),
		AlphaYX: dist.Constant(0.02),
		X0:      dist.Constant(0.4),
		Y0:      dist.Constant(0.4),
	}
	cfg := RunConfig{NPoints: 20, NTransient: 20, StepSize: 1, Seed: 1, MaxAttempts: 5}

	res, err := NewGenerator(spec, cfg, nil).Generate()
	require.NoError(t, err)

	assert.Equal(t, 2, res.Attempts)
	assert.Equal(t, 3.5, res.Params.MuX)
	assert.Equal(t, 0.05, res.Params.AlphaXY, "coupling must survive the retry")
	assert.Equal(t, 0.02, res.Params.AlphaYX, "coupling must survive the retry")
}

func TestGenerate_RetriesExhausted(t *testing.T) {
	spec := FixedSpec(ParameterSet{MuX: 500, MuY: 3.5, X0: 0.4, Y0: 0.4})
	cfg := RunConfig{NPoints: 20, NTransient: 20, StepSize: 1, Seed: 1, MaxAttempts: 3}

	_, err := NewGenerator(spec, cfg, nil).Generate()
	require.Error(t, err)
	assert.ErrorIs(t, err, chaos.ErrRetriesExhausted)
}

func TestGenerate_InvalidConfigFailsFast(t *testing.T) {
	cfg := RunConfig{NPoints: 0, StepSize: 1, MaxAttempts: 1}
	_, err := NewGenerator(FixedSpec(fixedParams()), cfg, nil).Generate()
	require.Error(t, err)
	assert.NotErrorIs(t, err, chaos.ErrRetriesExhausted)
}

func TestGenerate_HandComputedScenario(t *testing.T) {
	// mu=3.5, no coupling, x0=y0=0.4: the classic r=3.5 logistic map,
	// identical for X and Y.
	p := ParameterSet{MuX: 3.5, MuY: 3.5, X0: 0.4, Y0: 0.4}
	cfg := RunConfig{NPoints: 5, NTransient: 0, StepSize: 1, Seed: 1, MaxAttempts: 1}

	res, err := NewGenerator(FixedSpec(p), cfg, nil).Generate()
	require.NoError(t, err)

	assert.InDelta(t, 0.4, res.X[0], 1e-12)
	assert.InDelta(t, 0.84, res.X[1], 1e-12)
	assert.InDelta(t, 0.4704, res.X[2], 1e-12)

	x := 0.4
	for i := 0; i < 5; i++ {
		assert.Equal(t, x, res.X[i], "point %d", i)
		assert.Equal(t, x, res.Y[i], "point %d", i)
		x = 3.5 * x * (1 - x)
	}
}
