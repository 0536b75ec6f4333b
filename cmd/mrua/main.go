package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/mrua/internal/audio"
	"github.com/san-kum/mrua/internal/config"
	"github.com/san-kum/mrua/internal/gui"
	"github.com/san-kum/mrua/internal/logging"
	"github.com/san-kum/mrua/internal/loop"
	"github.com/san-kum/mrua/internal/motion"
	"github.com/san-kum/mrua/internal/viz"
	"github.com/san-kum/mrua/internal/web"
)

var (
	configFile string
	preset     string
	logLevel   string
	logFile    string
	logOut     *os.File

	velocity     float64
	acceleration float64
	target       float64
	total        float64
	timeStep     float64

	addr      string
	framePath string
	svgPath   string
	chartPath string
	jsonPath  string
	plot      bool
	maxFrames int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "mrua",
		Short:         "uniformly accelerated motion simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeLogging()
		},
		RunE: runTUI,
	}

	addConfigFlags(rootCmd)

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run in the terminal",
		RunE:  runTUI,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run in a desktop window",
		RunE:  runGUI,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the simulation to browsers",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless to completion and print the summary",
		RunE:  runHeadless,
	}
	runCmd.Flags().StringVar(&framePath, "frame", "", "write the final frame as PNG")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the final frame as SVG")
	runCmd.Flags().StringVar(&chartPath, "chart", "", "write a distance/velocity chart as PNG")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "write the trace as JSON (- for stdout)")
	runCmd.Flags().BoolVar(&plot, "plot", false, "plot velocity in the terminal")
	runCmd.Flags().IntVar(&maxFrames, "max-frames", 10_000_000, "give up after this many frames")

	estimateCmd := &cobra.Command{
		Use:   "estimate",
		Short: "predict the run and target times without simulating",
		RunE:  runEstimate,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVELOCITY\tACCEL\tTARGET\tTOTAL")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\n", name, p.InitialVelocity, p.Acceleration, p.TargetDistance, p.TotalDistance)
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, serveCmd, runCmd, estimateCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		closeLogging()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", "off", "log level (off, debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.Float64Var(&velocity, "velocity", config.DefaultVelocity, "initial velocity (m/s)")
	pf.Float64Var(&acceleration, "acceleration", 0, "acceleration (m/s²)")
	pf.Float64Var(&target, "target", 0, "target distance (m), 0 for none")
	pf.Float64Var(&total, "total", config.DefaultTotalDistance, "total distance (m)")
	pf.Float64Var(&timeStep, "dt", motion.DefaultTimeStep, "simulated seconds per frame")
}

func setupLogging() error {
	var w io.Writer = os.Stderr
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		logOut = f
		w = f
	}
	return logging.Setup(logLevel, w)
}

// closeLogging routes logging back to stderr before closing the log file.
func closeLogging() error {
	if logOut == nil {
		return nil
	}
	if err := logging.Setup(logLevel, os.Stderr); err != nil {
		return err
	}
	f := logOut
	logOut = nil
	return f.Close()
}

// loadConfig layers the config file, the preset and explicitly set flags, in
// that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("velocity") {
		cfg.Simulation.InitialVelocity = velocity
	}
	if flags.Changed("acceleration") {
		cfg.Simulation.Acceleration = acceleration
	}
	if flags.Changed("target") {
		cfg.Simulation.TargetDistance = target
	}
	if flags.Changed("total") {
		cfg.Simulation.TotalDistance = total
	}
	if flags.Changed("dt") {
		cfg.Simulation.TimeStep = timeStep
	}
	if flags.Changed("addr") {
		cfg.Server.Addr = addr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// chime returns the audio observer when sound is enabled. A missing output
// device only disables sound.
func chime(cfg *config.Config) (*audio.Chime, []loop.Observer) {
	if !cfg.Audio.Enabled {
		return nil, nil
	}
	c := audio.NewChime(cfg.Audio.Volume)
	if err := c.Start(); err != nil {
		logging.For("audio").Warn("sound disabled", "error", err)
		return nil, nil
	}
	return c, []loop.Observer{c}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	c, observers := chime(cfg)
	if c != nil {
		defer c.Stop()
	}
	return viz.Run(viz.Options{Config: cfg, Observers: observers})
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	c, observers := chime(cfg)
	if c != nil {
		defer c.Stop()
	}
	gui.Run(gui.Options{Config: cfg, Observers: observers})
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("serving on http://%s\n", cfg.Server.Addr)
	return web.NewServer(cfg, nil).ListenAndServe(ctx)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m := cfg.Motion()

	fmt.Printf("velocity: %g m/s  acceleration: %g m/s²  total: %g m\n", m.InitialVelocity, m.Acceleration, m.TotalDistance)
	if t, ok := motion.TimeToCover(m.TotalDistance, m.InitialVelocity, m.Acceleration); ok {
		fmt.Printf("estimated run time: %.2f s\n", t)
	}
	if m.HasTarget() {
		if t, ok := motion.EstimateRun(m); ok {
			fmt.Printf("estimated time to target (%gm): %.2f s\n", m.TargetDistance, t)
		}
	}
	return nil
}
