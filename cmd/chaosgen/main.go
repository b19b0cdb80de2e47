package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/san-kum/chaosgen/internal/config"
	"github.com/san-kum/chaosgen/internal/logistic"
	"github.com/san-kum/chaosgen/internal/ode"
	"github.com/san-kum/chaosgen/internal/storage"
	"github.com/san-kum/chaosgen/internal/systems"
	"github.com/san-kum/chaosgen/internal/viz"
)

var (
	dataDir string
	verbose bool

	// logistic map flags
	nPoints     int
	nTransient  int
	stepSize    int
	noiseFrac   float64
	seed        int64
	maxAttempts int
	muX         float64
	muY         float64
	alphaXY     float64
	alphaYX     float64
	x0          float64
	y0          float64

	// continuous system flags
	duration   float64
	sampleDt   float64
	subSteps   int
	integrator string
	odeParams  []string

	configFile string
	preset     string
	exportPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chaosgen",
		Short: "synthetic chaotic time-series generator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(
				tint.NewHandler(os.Stderr, &tint.Options{
					Level:      level,
					TimeFormat: "15:04:05",
				}),
			))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".chaosgen", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	generateCmd := &cobra.Command{
		Use:   "generate [system]",
		Short: "generate a trajectory (logistic, rossler, lorenz, coupled_rossler)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGenerate,
	}
	addLogisticFlags(generateCmd)
	generateCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "integration time span")
	generateCmd.Flags().Float64Var(&sampleDt, "sample-dt", config.DefaultSampleDt, "sampling interval")
	generateCmd.Flags().IntVar(&subSteps, "substeps", config.DefaultSubSteps, "integrator steps per sample")
	generateCmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator (rk4, euler)")
	generateCmd.Flags().StringArrayVar(&odeParams, "param", nil, "system parameter override (name=value)")
	generateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	generateCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&exportPath, "out", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets [system]",
		Short: "list available presets for a system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for system: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch a coupled logistic map run live",
		RunE:  runLive,
	}
	addLogisticFlags(liveCmd)
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	rootCmd.AddCommand(generateCmd, listCmd, plotCmd, exportCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addLogisticFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&nPoints, "points", logistic.DefaultNPoints, "number of output samples")
	cmd.Flags().IntVar(&nTransient, "transient", logistic.DefaultNTransient, "burn-in iterations")
	cmd.Flags().IntVar(&stepSize, "stride", logistic.DefaultStepSize, "sampling stride")
	cmd.Flags().Float64Var(&noiseFrac, "noise", 0.0, "noise fraction of one stddev")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().IntVar(&maxAttempts, "attempts", logistic.DefaultMaxAttempts, "max collapse retries")
	cmd.Flags().Float64Var(&muX, "mu-x", 0, "fix muX instead of drawing it")
	cmd.Flags().Float64Var(&muY, "mu-y", 0, "fix muY instead of drawing it")
	cmd.Flags().Float64Var(&alphaXY, "alpha-xy", 0, "fix the X-on-Y coupling")
	cmd.Flags().Float64Var(&alphaYX, "alpha-yx", 0, "fix the Y-on-X coupling")
	cmd.Flags().Float64Var(&x0, "x0", 0, "fix the X initial condition")
	cmd.Flags().Float64Var(&y0, "y0", 0, "fix the Y initial condition")
}

// resolveConfig merges preset, config file and flags, in that precedence
// order (flags win).
func resolveConfig(cmd *cobra.Command, system string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.System = system

	if preset != "" {
		pc := config.GetPreset(system, preset)
		if pc == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(system))
		}
		copied := *pc
		cfg = &copied
	}

	if configFile != "" {
		fc, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fc
	}

	flags := cmd.Flags()
	if flags.Changed("points") {
		cfg.Logistic.NPoints = nPoints
	}
	if flags.Changed("transient") {
		cfg.Logistic.NTransient = nTransient
	}
	if flags.Changed("stride") {
		cfg.Logistic.StepSize = stepSize
	}
	if flags.Changed("noise") {
		cfg.Logistic.NoiseFrac = noiseFrac
	}
	if flags.Changed("attempts") {
		cfg.Logistic.MaxAttempts = maxAttempts
	}
	if flags.Changed("seed") || cfg.Logistic.Seed == 0 {
		cfg.Logistic.Seed = seed
	}
	if flags.Changed("mu-x") {
		cfg.Logistic.MuX = &muX
	}
	if flags.Changed("mu-y") {
		cfg.Logistic.MuY = &muY
	}
	if flags.Changed("alpha-xy") {
		cfg.Logistic.AlphaXY = &alphaXY
	}
	if flags.Changed("alpha-yx") {
		cfg.Logistic.AlphaYX = &alphaYX
	}
	if flags.Changed("x0") {
		cfg.Logistic.X0 = &x0
	}
	if flags.Changed("y0") {
		cfg.Logistic.Y0 = &y0
	}

	if flags.Changed("time") {
		cfg.ODE.Duration = duration
	}
	if flags.Changed("sample-dt") {
		cfg.ODE.SampleDt = sampleDt
	}
	if flags.Changed("substeps") {
		cfg.ODE.SubSteps = subSteps
	}
	if flags.Changed("integrator") {
		cfg.ODE.Integrator = integrator
	}

	return cfg, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	system := "logistic"
	if len(args) == 1 {
		system = args[0]
	}

	cfg, err := resolveConfig(cmd, system)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	if system == "logistic" {
		return generateLogistic(cfg, st)
	}
	return generateODE(cmd, system, cfg, st)
}

func generateLogistic(cfg *config.Config, st *storage.Store) error {
	gen := logistic.NewGenerator(cfg.ParameterSpec(), cfg.RunConfig(), slog.Default())

	start := time.Now()
	res, err := gen.Generate()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	id, err := st.SaveLogistic(res)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", id)
	fmt.Printf("samples: %d\n", len(res.X))
	fmt.Printf("attempts: %d\n", res.Attempts)
	fmt.Printf("seed: %d\n", res.Config.Seed)
	fmt.Println("\nparameters:")
	fmt.Printf("  mu_x: %.6f\n", res.Params.MuX)
	fmt.Printf("  mu_y: %.6f\n", res.Params.MuY)
	fmt.Printf("  alpha_xy: %.6f\n", res.Params.AlphaXY)
	fmt.Printf("  alpha_yx: %.6f\n", res.Params.AlphaYX)
	fmt.Printf("  x0: %.6f\n", res.Params.X0)
	fmt.Printf("  y0: %.6f\n", res.Params.Y0)
	return nil
}

func generateODE(cmd *cobra.Command, system string, cfg *config.Config, st *storage.Store) error {
	sys, err := systems.New(system)
	if err != nil {
		return err
	}

	for name, value := range cfg.ODE.Params {
		sys.SetParam(name, value)
	}
	overrides, err := parseParams(odeParams)
	if err != nil {
		return err
	}
	for name, value := range overrides {
		sys.SetParam(name, value)
	}

	var integ ode.Integrator
	switch cfg.ODE.Integrator {
	case "rk4":
		integ = ode.NewRK4()
	case "euler":
		integ = ode.NewEuler()
	default:
		return fmt.Errorf("unknown integrator: %s", cfg.ODE.Integrator)
	}

	initState := sys.DefaultState()
	if len(cfg.ODE.InitState) > 0 {
		initState = ode.State(cfg.ODE.InitState)
	}

	fmt.Printf("integrating %s for %.1f time units...\n", system, cfg.ODE.Duration)
	start := time.Now()

	sol, err := ode.NewSolver(integ, cfg.ODE.SubSteps).Solve(
		context.Background(), sys, initState, 0, cfg.ODE.Duration, cfg.ODE.SampleDt)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	id, err := st.SaveSolution(system, sys.OrderedParams(), cfg.Logistic.Seed, sol)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", id)
	fmt.Printf("samples: %d\n", len(sol.States))
	return nil
}

func parseParams(pairs []string) (map[string]float64, error) {
	out := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("bad --param %q, want name=value", pair)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("bad --param %q: %w", pair, err)
		}
		out[name] = value
	}
	return out, nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYSTEM\tTIME\tSAMPLES\tSEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			run.ID,
			run.System,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Samples,
			run.Seed,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	header, rows, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("system: %s\n", meta.System)
	fmt.Printf("samples: %d\n\n", len(rows))

	for col, name := range header {
		if name == "time" {
			continue
		}
		data := make([]float64, len(rows))
		for i := range rows {
			data[i] = rows[i][col]
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if exportPath != "" {
		return st.ExportJSONFile(args[0], exportPath)
	}
	return st.ExportJSON(args[0], os.Stdout)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "logistic")
	if err != nil {
		return err
	}

	run := cfg.RunConfig()
	if err := run.Validate(); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(run.Seed))
	params := cfg.ParameterSpec().Resolve(rng)
	return viz.RunLive(params, run)
}
