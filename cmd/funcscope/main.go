package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/funcscope/internal/analysis"
	"github.com/san-kum/funcscope/internal/config"
	"github.com/san-kum/funcscope/internal/export"
	"github.com/san-kum/funcscope/internal/expr"
	"github.com/san-kum/funcscope/internal/session"
	"github.com/san-kum/funcscope/internal/store"
	"github.com/san-kum/funcscope/internal/tui"
	"github.com/san-kum/funcscope/internal/viz"
)

var (
	dataDir    string
	configFile string
	xMin       float64
	xMax       float64
	yMin       float64
	yMax       float64
	threshold  float64
	width      int
	height     int
	atPoints   []float64
	saveReport bool
	outFile    string
	stroke     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "funcscope",
		Short: "expression compiler and function analysis lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive explorer when no command given.
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(newSession(cfg))
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [expression]",
		Short: "compile an expression and report its properties",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().BoolVar(&saveReport, "save", false, "persist the report under the data directory")

	evalCmd := &cobra.Command{
		Use:   "eval [expression]",
		Short: "evaluate an expression at one or more points",
		Args:  cobra.ExactArgs(1),
		RunE:  runEval,
	}
	evalCmd.Flags().Float64SliceVar(&atPoints, "at", []float64{0}, "points to evaluate at")

	plotCmd := &cobra.Command{
		Use:   "plot [expression]",
		Short: "plot an expression in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	addWindowFlags(plotCmd)
	plotCmd.Flags().IntVar(&width, "width", 100, "plot width in columns")
	plotCmd.Flags().IntVar(&height, "height", 20, "plot height in rows")

	asymptotesCmd := &cobra.Command{
		Use:   "asymptotes [expression]",
		Short: "scan for vertical asymptote candidates",
		Args:  cobra.ExactArgs(1),
		RunE:  runAsymptotes,
	}
	addWindowFlags(asymptotesCmd)
	asymptotesCmd.Flags().Float64Var(&threshold, "threshold", config.DefaultThreshold, "magnitude threshold for divergence")

	svgCmd := &cobra.Command{
		Use:   "export-svg [expression]",
		Short: "export a plot of an expression to an SVG file",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportSVG,
	}
	addWindowFlags(svgCmd)
	svgCmd.Flags().IntVar(&width, "width", 800, "image width in pixels")
	svgCmd.Flags().IntVar(&height, "height", 600, "image height in pixels")
	svgCmd.Flags().StringVar(&outFile, "out", "plot.svg", "output file")
	svgCmd.Flags().StringVar(&stroke, "stroke", "#00ff88", "curve color")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved analyses",
		RunE:  runList,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "funcscope.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(newSession(cfg))
		},
	}

	rootCmd.AddCommand(analyzeCmd, evalCmd, plotCmd, asymptotesCmd, svgCmd, listCmd, initCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addWindowFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&xMin, "xmin", config.DefaultXMin, "left edge of the window")
	cmd.Flags().Float64Var(&xMax, "xmax", config.DefaultXMax, "right edge of the window")
	cmd.Flags().Float64Var(&yMin, "ymin", config.DefaultYMin, "bottom edge of the window")
	cmd.Flags().Float64Var(&yMax, "ymax", config.DefaultYMax, "top edge of the window")
}

// loadConfig resolves the config file, falling back to defaults. Flags the
// user actually set keep priority over file values.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if cmd.Flags().Changed("xmin") {
		cfg.View.XMin = xMin
	}
	if cmd.Flags().Changed("xmax") {
		cfg.View.XMax = xMax
	}
	if cmd.Flags().Changed("ymin") {
		cfg.View.YMin = yMin
	}
	if cmd.Flags().Changed("ymax") {
		cfg.View.YMax = yMax
	}
	if cmd.Flags().Changed("threshold") {
		cfg.View.YThreshold = threshold
	}
	return cfg, nil
}

func newSession(cfg *config.Config) *session.Session {
	view := session.View{
		XMin: cfg.View.XMin,
		XMax: cfg.View.XMax,
		YMin: cfg.View.YMin,
		YMax: cfg.View.YMax,
	}
	return session.New(cfg.Params(), view)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ev, err := expr.Compile(args[0])
	if err != nil {
		return err
	}
	report := analysis.Analyze(ev, cfg.Params())
	fmt.Println(viz.RenderReport(report))

	if !saveReport {
		return nil
	}
	st := store.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	samples := analysis.Sweep(ev, cfg.View.XMin, cfg.View.XMax, (cfg.View.XMax-cfg.View.XMin)/200)
	id, err := st.Save(report, samples)
	if err != nil {
		return err
	}
	fmt.Printf("saved as %s\n", id)
	return nil
}

func runEval(cmd *cobra.Command, args []string) error {
	ev, err := expr.Compile(args[0])
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "x\tf(x)")
	for _, x := range atPoints {
		fmt.Fprintf(w, "%g\t%g\n", x, ev.Eval(x))
	}
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ev, err := expr.Compile(args[0])
	if err != nil {
		return err
	}
	v := cfg.View
	fmt.Println(viz.Plot(ev, v.XMin, v.XMax, v.YMin, v.YMax, width, height))

	cands := analysis.ScanAsymptotes(ev, v.XMin, v.XMax, v.YThreshold, cfg.Params())
	fmt.Println(viz.RenderAsymptotes(cands))
	return nil
}

func runAsymptotes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ev, err := expr.Compile(args[0])
	if err != nil {
		return err
	}
	cands := analysis.ScanAsymptotes(ev, cfg.View.XMin, cfg.View.XMax, cfg.View.YThreshold, cfg.Params())
	if len(cands) == 0 {
		fmt.Println("no vertical asymptotes detected")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "x\tmethod")
	for _, c := range cands {
		fmt.Fprintf(w, "%.4f\t%s\n", c.X, c.Method)
	}
	return w.Flush()
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ev, err := expr.Compile(args[0])
	if err != nil {
		return err
	}
	v := cfg.View
	svg := export.CurveToSVG(ev, v.XMin, v.XMax, v.YMin, v.YMax, width, height, stroke)
	if svg == "" {
		return fmt.Errorf("nothing to export for window [%g, %g] x [%g, %g]", v.XMin, v.XMax, v.YMin, v.YMax)
	}
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := store.New(cfg.DataDir)
	entries, err := st.List()
	if err != nil {
		return fmt.Errorf("no saved analyses: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("no saved analyses")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\texpression\tdomain\trange")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.ID, e.Report.Expression, e.Report.Domain, e.Report.Range)
	}
	return w.Flush()
}
