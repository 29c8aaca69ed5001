package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/fdgrad/internal/config"
	"github.com/san-kum/fdgrad/internal/engine"
	"github.com/san-kum/fdgrad/internal/render"
	"github.com/san-kum/fdgrad/internal/storage"
	"github.com/san-kum/fdgrad/internal/tui"
)

var (
	dataDir      string
	funcExpr     string
	xMin         float64
	xMax         float64
	yMin         float64
	yMax         float64
	nx           int
	ny           int
	analyticalDx string
	analyticalDy string
	configFile   string
	preset       string
	saveRun      bool
	jsonOut      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fdgrad",
		Short: "partial derivatives of scalar fields via central finite differences",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".fdgrad", "data directory")

	computeCmd := &cobra.Command{
		Use:   "compute",
		Short: "compute df/dx and df/dy for a function f(x,y)",
		RunE:  runCompute,
	}
	addRequestFlags(computeCmd)
	computeCmd.Flags().BoolVar(&saveRun, "save", false, "store the result under the data directory")
	computeCmd.Flags().BoolVar(&jsonOut, "json", false, "print the full result bundle as JSON")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in example fields",
		RunE:  listPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export stored run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "compute and browse the fields interactively",
		RunE:  runView,
	}
	addRequestFlags(viewCmd)

	rootCmd.AddCommand(computeCmd, presetsCmd, listCmd, plotCmd, exportCmd, viewCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRequestFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&funcExpr, "func", "sin(x)*cos(y)", "function f(x,y)")
	cmd.Flags().Float64Var(&xMin, "x-min", config.DefaultXMin, "domain lower bound in x")
	cmd.Flags().Float64Var(&xMax, "x-max", config.DefaultXMax, "domain upper bound in x")
	cmd.Flags().Float64Var(&yMin, "y-min", config.DefaultYMin, "domain lower bound in y")
	cmd.Flags().Float64Var(&yMax, "y-max", config.DefaultYMax, "domain upper bound in y")
	cmd.Flags().IntVar(&nx, "nx", config.DefaultNx, "mesh points in x")
	cmd.Flags().IntVar(&ny, "ny", config.DefaultNy, "mesh points in y")
	cmd.Flags().StringVar(&analyticalDx, "dx", "", "analytical df/dx for validation")
	cmd.Flags().StringVar(&analyticalDy, "dy", "", "analytical df/dy for validation")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a built-in example field")
}

// resolveConfig applies preset, then config file, then explicit flags, the
// same precedence the flags help implies: flags always win.
func resolveConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg := config.DefaultConfig()
	label := "custom"

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			names := make([]string, 0, len(config.Presets))
			for _, pr := range config.ListPresets() {
				names = append(names, pr.Name)
			}
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, names)
		}
		c := p.Config
		cfg = &c
		label = p.Name
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("func") {
		cfg.Function = funcExpr
	}
	if cmd.Flags().Changed("x-min") {
		cfg.Domain.XMin = xMin
	}
	if cmd.Flags().Changed("x-max") {
		cfg.Domain.XMax = xMax
	}
	if cmd.Flags().Changed("y-min") {
		cfg.Domain.YMin = yMin
	}
	if cmd.Flags().Changed("y-max") {
		cfg.Domain.YMax = yMax
	}
	if cmd.Flags().Changed("nx") {
		cfg.Mesh.Nx = nx
	}
	if cmd.Flags().Changed("ny") {
		cfg.Mesh.Ny = ny
	}
	if cmd.Flags().Changed("dx") {
		cfg.Analytical.Dx = analyticalDx
	}
	if cmd.Flags().Changed("dy") {
		cfg.Analytical.Dy = analyticalDy
	}

	return cfg, label, nil
}

func runCompute(cmd *cobra.Command, args []string) error {
	cfg, label, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := engine.Compute(cfg.Request())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(res)
	}

	fmt.Printf("f(x,y) = %s\n", res.Function)
	fmt.Printf("domain: [%g, %g] x [%g, %g]\n",
		res.Domain.XMin, res.Domain.XMax, res.Domain.YMin, res.Domain.YMax)
	fmt.Printf("mesh: %dx%d (hx=%.6g, hy=%.6g)\n", res.Mesh.Nx, res.Mesh.Ny, res.Mesh.Hx, res.Mesh.Hy)
	fmt.Printf("computed in %v\n\n", elapsed)

	fmt.Printf("f:     [%.6g, %.6g]\n", res.Stats.FMin, res.Stats.FMax)
	fmt.Printf("df/dx: [%.6g, %.6g]\n", res.Stats.DfDxMin, res.Stats.DfDxMax)
	fmt.Printf("df/dy: [%.6g, %.6g]\n", res.Stats.DfDyMin, res.Stats.DfDyMax)

	if res.Degenerate {
		fmt.Println("\nwarning: result contains non-finite values (NaN/Inf)")
	}

	if res.ValidationError != "" {
		fmt.Printf("\nvalidation skipped: %s\n", res.ValidationError)
	}
	if res.Validation != nil {
		fmt.Println("\nvalidation against analytical derivatives:")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "\tMAX|ERR|\tMEAN|ERR|\tMAX REL\tMEAN REL\tL2\tRMSE")
		fmt.Fprintf(w, "df/dx\t%.3e\t%.3e\t%.3e\t%.3e\t%.3e\t%.3e\n",
			res.Validation.DfDx.MaxAbs, res.Validation.DfDx.MeanAbs,
			res.Validation.DfDx.MaxRel, res.Validation.DfDx.MeanRel,
			res.Validation.DfDx.L2, res.Validation.DfDx.RMSE)
		fmt.Fprintf(w, "df/dy\t%.3e\t%.3e\t%.3e\t%.3e\t%.3e\t%.3e\n",
			res.Validation.DfDy.MaxAbs, res.Validation.DfDy.MeanAbs,
			res.Validation.DfDy.MaxRel, res.Validation.DfDy.MeanRel,
			res.Validation.DfDy.L2, res.Validation.DfDy.RMSE)
		w.Flush()
	}

	fmt.Println()
	fmt.Println(render.MidSections(res.Z, res.DfDx, res.DfDy, res.FieldData.YVector))

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(label, res)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	res, err := engine.Compute(cfg.Request())
	if err != nil {
		return err
	}

	return tui.View(res)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFUNCTION\tDOMAIN\tMESH\tDESCRIPTION")
	for _, p := range config.ListPresets() {
		fmt.Fprintf(w, "%s\t%s\t[%g,%g]x[%g,%g]\t%dx%d\t%s\n",
			p.Name, p.Config.Function,
			p.Config.Domain.XMin, p.Config.Domain.XMax,
			p.Config.Domain.YMin, p.Config.Domain.YMax,
			p.Config.Mesh.Nx, p.Config.Mesh.Ny,
			p.Description)
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tFUNCTION\tTIME\tMESH\tVALIDATED")
	for _, run := range runs {
		validated := "no"
		if run.Validation != nil {
			validated = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%s\n",
			run.ID,
			run.Function,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Mesh.Nx, run.Mesh.Ny,
			validated,
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
	fs, err := st.LoadFields(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("f(x,y) = %s\n\n", meta.Function)

	fmt.Printf("f(x,y)  [%.4g, %.4g]\n", meta.Stats.FMin, meta.Stats.FMax)
	fmt.Println(render.Heatmap(fs.Z, 72, 18))
	fmt.Printf("\ndf/dx  [%.4g, %.4g]\n", meta.Stats.DfDxMin, meta.Stats.DfDxMax)
	fmt.Println(render.Heatmap(fs.DfDx, 72, 18))
	fmt.Printf("\ndf/dy  [%.4g, %.4g]\n", meta.Stats.DfDyMin, meta.Stats.DfDyMax)
	fmt.Println(render.Heatmap(fs.DfDy, 72, 18))

	fmt.Println()
	fmt.Println(render.MidSections(fs.Z, fs.DfDx, fs.DfDy, fs.Y.Col(0)))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
