package logistic

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/san-kum/chaosgen/internal/chaos"
)

// Result bundles the two output series with everything needed to reproduce
// them. It is never mutated after Generate returns it.
type Result struct {
	X           chaos.Series `json:"x"`
	Y           chaos.Series `json:"y"`
	Params      ParameterSet `json:"params"`
	Config      RunConfig    `json:"config"`
	Attempts    int          `json:"attempts"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// Generator produces coupled logistic map trajectories. Each call to
// Generate owns its raw buffers and RNG; instances are cheap and a fresh
// one per trajectory is fine.
type Generator struct {
	spec   ParameterSpec
	cfg    RunConfig
	logger *slog.Logger
}

func NewGenerator(spec ParameterSpec, cfg RunConfig, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{spec: spec, cfg: cfg, logger: logger}
}

// Generate runs the full pipeline: resolve parameters, iterate through the
// transient and sampling phases, check for collapse, extract strided
// samples and optionally add noise.
//
// A collapsed run is retried with freshly drawn growth rates and initial
// conditions while the coupling strengths are carried forward unchanged.
// The loop is bounded by RunConfig.MaxAttempts; exhaustion returns an error
// wrapping chaos.ErrRetriesExhausted.
func (g *Generator) Generate() (*Result, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(g.cfg.Seed))
	params := g.spec.Resolve(rng)

	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		rawX, rawY := Iterate(params, g.cfg.RawLen())

		if !rawX.IsFinite() || !rawY.IsFinite() {
			g.logger.Warn("trajectory collapsed, redrawing parameters",
				"attempt", attempt,
				"mu_x", params.MuX,
				"mu_y", params.MuY,
				"alpha_xy", params.AlphaXY,
				"alpha_yx", params.AlphaYX,
			)
			params = g.spec.RedrawKeepCoupling(params, rng)
			continue
		}

		x := extract(rawX, g.cfg)
		y := extract(rawY, g.cfg)
		injectNoise(x, g.cfg.NoiseFrac, rng)
		injectNoise(y, g.cfg.NoiseFrac, rng)

		return &Result{
			X:           x,
			Y:           y,
			Params:      params,
			Config:      g.cfg,
			Attempts:    attempt,
			GeneratedAt: time.Now(),
		}, nil
	}

	return nil, fmt.Errorf("%w (%d attempts)", chaos.ErrRetriesExhausted, g.cfg.MaxAttempts)
}

// Generate is the convenience entry point: a fully defaulted run with
// distribution-drawn parameters.
func Generate(logger *slog.Logger) (*Result, error) {
	return NewGenerator(DefaultSpec(), DefaultRunConfig(), logger).Generate()
}
