package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/san-kum/quadviz/internal/anim"
	"github.com/san-kum/quadviz/internal/config"
	"github.com/san-kum/quadviz/internal/export"
	"github.com/san-kum/quadviz/internal/logging"
	"github.com/san-kum/quadviz/internal/storage"
	"github.com/san-kum/quadviz/internal/viz"
)

var (
	configFile string
	preset     string
	// Driver overrides
	intervalMs   int
	warmupFrames int
	traceCeiling int
	trimBlock    int
	// Display
	theme    string
	gridStep float64
	// Snapshot
	snapshotFrames int
	outFile        string
	imgWidth       int
	imgHeight      int
	braille        bool
	// Recording
	recordFrames int
	recordDir    string
	listDir      string
)

const (
	defaultSnapshotFrames = 60
	defaultRecordFrames   = 300
	defaultRunsDir        = "runs"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRootCmd registers the commands and flags. The root runs the live view
// when no subcommand is given.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "quadviz",
		Short:         "animated top-down view of quadrotors following pose sequences",
		RunE:          runLive,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "write JSON logs to this file")
	viper.SetEnvPrefix("QUADVIZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))

	addScenarioFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the live animation in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addScenarioFlags(runCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "plot each vehicle's pose sequence",
		Args:  cobra.NoArgs,
		RunE:  inspectScenario,
	}
	addScenarioFlags(inspectCmd)

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "tick the animation headless and save one frame as SVG or PNG",
		Args:  cobra.NoArgs,
		RunE:  snapshot,
	}
	addScenarioFlags(snapshotCmd)
	snapshotCmd.Flags().IntVar(&snapshotFrames, "frames", defaultSnapshotFrames, "number of ticks before capturing")
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "frame.svg", "output file (.svg or .png)")
	snapshotCmd.Flags().IntVar(&imgWidth, "width", 800, "image width in pixels")
	snapshotCmd.Flags().IntVar(&imgHeight, "height", 800, "image height in pixels")
	snapshotCmd.Flags().BoolVar(&braille, "braille", false, "export the terminal Braille rendering instead (svg only)")

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the default scenario as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	addScenarioFlags(initCmd)

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "tick the animation headless and save per-tick poses",
		Args:  cobra.NoArgs,
		RunE:  record,
	}
	addScenarioFlags(recordCmd)
	recordCmd.Flags().IntVar(&recordFrames, "frames", defaultRecordFrames, "number of ticks to record")
	recordCmd.Flags().StringVar(&recordDir, "dir", defaultRunsDir, "directory for recorded runs")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list recorded runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}
	runsCmd.Flags().StringVar(&listDir, "dir", defaultRunsDir, "directory for recorded runs")

	rootCmd.AddCommand(runCmd, presetsCmd, inspectCmd, snapshotCmd, recordCmd, runsCmd, initCmd)
	return rootCmd
}

func addScenarioFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "scenario file path (yaml)")
	f.StringVar(&preset, "preset", "", "use a built-in scenario")
	f.IntVar(&intervalMs, "interval", config.DefaultIntervalMs, "tick interval in milliseconds")
	f.IntVar(&warmupFrames, "warmup", anim.DefaultWarmupFrames, "frames before vehicles start moving")
	f.IntVar(&traceCeiling, "ceiling", anim.DefaultTraceCeiling, "trace segment count that triggers a trim")
	f.IntVar(&trimBlock, "trim", anim.DefaultTrimBlock, "oldest trace segments dropped per trim")
	f.StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	f.Float64Var(&gridStep, "grid", config.DefaultGridStep, "grid spacing in world units (0 disables)")
}

// newLogger picks the log sink. The live view owns stdout, so without a log
// file it logs nowhere.
func newLogger(tui bool) (zerolog.Logger, func(), error) {
	level := viper.GetString("log-level")
	if path := viper.GetString("log-file"); path != "" {
		log, f, err := logging.OpenFile(level, path)
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		return log, func() { f.Close() }, nil
	}
	if tui {
		return zerolog.Nop(), func() {}, nil
	}
	return logging.NewConsole(level, os.Stderr), func() {}, nil
}

// loadScenario applies preset, then config file, then explicitly set flags.
func loadScenario(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("interval") {
		cfg.IntervalMs = intervalMs
	}
	if flags.Changed("warmup") {
		cfg.WarmupFrames = warmupFrames
	}
	if flags.Changed("ceiling") {
		cfg.TraceCeiling = traceCeiling
	}
	if flags.Changed("trim") {
		cfg.TrimBlock = trimBlock
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("grid") {
		cfg.GridStep = gridStep
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newDriver(cfg *config.Config, log zerolog.Logger) (*anim.Driver, error) {
	vehicles, err := cfg.BuildVehicles()
	if err != nil {
		return nil, err
	}
	return anim.New(cfg.DriverConfig(), vehicles, anim.WithLogger(log))
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	log, done, err := newLogger(true)
	if err != nil {
		return err
	}
	defer done()

	d, err := newDriver(cfg, log)
	if err != nil {
		return err
	}
	log.Info().Str("theme", cfg.Theme).Int("vehicles", len(cfg.Vehicles)).Msg("starting live view")
	return viz.Run(d, viz.Options{GridStep: cfg.GridStep, Theme: cfg.Theme, Logger: &log})
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tVEHICLES\tINTERVAL\tCEILING\tTRIM")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%dms\t%d\t%d\n", name, len(cfg.Vehicles), cfg.IntervalMs, cfg.TraceCeiling, cfg.TrimBlock)
	}
	return w.Flush()
}

func inspectScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	vehicles, err := cfg.BuildVehicles()
	if err != nil {
		return err
	}

	for _, v := range vehicles {
		poses := v.Sequence().Poses()
		xs := make([]float64, len(poses))
		ys := make([]float64, len(poses))
		for i, p := range poses {
			xs[i], ys[i] = p.X, p.Y
		}

		fmt.Printf("vehicle: %s\n", v.Label())
		fmt.Printf("poses: %d  radius: %.2f  trace: %s\n\n", len(poses), v.Radius(), v.TraceColor())
		graph := asciigraph.PlotMany([][]float64{xs, ys},
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
			asciigraph.SeriesLegends("x", "y"),
			asciigraph.Caption("position vs sequence index"),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

// snapshotFormat returns the output format for path: "svg", "png" or
// "braille".
func snapshotFormat(path string, braille bool) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case braille && ext == ".svg":
		return "braille", nil
	case braille:
		return "", fmt.Errorf("braille export only supports .svg, got %q", ext)
	case ext == ".svg", ext == ".png":
		return ext[1:], nil
	}
	return "", fmt.Errorf("unsupported output format %q (use .svg or .png)", ext)
}

func snapshot(cmd *cobra.Command, args []string) error {
	format, err := snapshotFormat(outFile, braille)
	if err != nil {
		return err
	}
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	log, done, err := newLogger(false)
	if err != nil {
		return err
	}
	defer done()

	d, err := newDriver(cfg, log)
	if err != nil {
		return err
	}

	frame := d.Initialize()
	for i := 0; i < snapshotFrames; i++ {
		frame = d.OnTick(i)
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "braille":
		canvas := viz.NewCanvas(imgWidth/8, imgHeight/16)
		viz.DrawFrame(canvas, frame, cfg.GridStep, viz.GetTheme(cfg.Theme))
		_, err = io.WriteString(f, export.CanvasToSVG(canvas, 4))
	case "png":
		err = export.WritePNG(f, frame, imgWidth, imgHeight)
	default:
		_, err = io.WriteString(f, export.FrameToSVG(frame, imgWidth, imgHeight))
	}
	if err != nil {
		return err
	}

	log.Info().
		Str("file", outFile).
		Int("frame", frame.Index).
		Int("primitives", frame.Len()).
		Int("traces", len(frame.Traces)).
		Msg("snapshot written")
	return nil
}

func record(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	log, done, err := newLogger(false)
	if err != nil {
		return err
	}
	defer done()

	d, err := newDriver(cfg, log)
	if err != nil {
		return err
	}

	st := storage.New(recordDir)
	if err := st.Init(); err != nil {
		return err
	}
	rec := storage.Record(d, recordFrames)

	name := "custom"
	switch {
	case preset != "":
		name = preset
	case configFile != "":
		name = strings.TrimSuffix(filepath.Base(configFile), filepath.Ext(configFile))
	}
	runID, err := st.Save(name, rec)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	log.Info().
		Str("run", runID).
		Int("frames", rec.Frames).
		Int("samples", len(rec.Samples)).
		Int("trims", rec.Trims).
		Msg("run recorded")
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(listDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tFRAMES\tSAMPLES\tTRIMS\tVEHICLES")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n", r.ID, r.Scenario, r.Frames, r.Samples, r.Trims, strings.Join(r.Vehicles, ","))
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "quadviz.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
