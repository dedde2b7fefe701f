package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"frontend/internal/action"
	"frontend/internal/config"
	"frontend/internal/diag"
	"frontend/internal/diagfmt"
	"frontend/internal/frontend"
	"frontend/internal/observ"
)

var errInvalidOptions = errors.New("invalid frontend options")

type checkFlags struct {
	config         string
	noConfig       bool
	action         string
	outputs        []string
	moduleName     string
	modulePath     string
	moduleDocPath  string
	headerPath     string
	depsPath       string
	tracePath      string
	primaries      []string
	diagFormat     string
	maxDiagnostics int
}

func (a *app) checkCmd() *cobra.Command {
	f := &checkFlags{}
	cmd := &cobra.Command{
		Use:   "check [flags] [inputs...]",
		Short: "Check frontend options against the requested action",
		Long: `Build frontend options from frontend.toml (searched upwards from the
current directory) and flags, then report output paths the requested action
would ignore and module names it cannot use.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, f, args)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "path to frontend.toml")
	fl.BoolVar(&f.noConfig, "no-config", false, "do not look for frontend.toml")
	fl.StringVar(&f.action, "action", "", "requested action (e.g. emit-object, typecheck)")
	fl.StringArrayVarP(&f.outputs, "output", "o", nil, "principal output file (repeatable)")
	fl.StringVar(&f.moduleName, "module-name", "", "module name")
	fl.StringVar(&f.modulePath, "emit-module-path", "", "serialized module output path")
	fl.StringVar(&f.moduleDocPath, "emit-module-doc-path", "", "module doc output path")
	fl.StringVar(&f.headerPath, "emit-objc-header-path", "", "generated header output path")
	fl.StringVar(&f.depsPath, "emit-dependencies-path", "", "dependencies file path")
	fl.StringVar(&f.tracePath, "emit-loaded-module-trace-path", "", "loaded module trace path")
	fl.StringArrayVar(&f.primaries, "primary-file", nil, "primary input (repeatable)")
	fl.StringVar(&f.diagFormat, "diag-format", "pretty", "diagnostics format (pretty|json)")
	fl.IntVar(&f.maxDiagnostics, "max-diagnostics", 100, "maximum number of diagnostics to show")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, f *checkFlags, args []string) error {
	switch f.diagFormat {
	case "pretty", "json":
	default:
		return fmt.Errorf("unsupported --diag-format %q (must be pretty or json)", f.diagFormat)
	}

	bag := diag.NewBag(f.maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	timer := observ.NewTimer()
	defer a.reportTimings(cmd, timer)

	step := timer.Begin("config")
	cfg, err := a.loadConfig(f)
	if err != nil {
		return err
	}
	applyFlags(cmd, f, args, &cfg)
	cfg.Inputs.Primary = dropStrayPrimaries(reporter, cfg.Inputs.Files, cfg.Inputs.Primary)

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	timer.End(step, "")
	a.log.Debug("options resolved",
		zap.Stringer("action", opts.RequestedAction),
		zap.Strings("outputs", opts.OutputFilenames),
		zap.String("module", opts.ModuleName))

	step = timer.Begin("validate")
	moduleName, ok := opts.Validate(reporter)
	timer.End(step, fmt.Sprintf("%d diagnostics", bag.Len()))
	a.log.Debug("options validated", zap.Bool("ok", ok), zap.Int("diagnostics", bag.Len()))
	bag.Dedup()
	bag.Sort()

	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}
	step = timer.Begin("render")
	defer timer.End(step, "")
	if f.diagFormat == "json" {
		if err := diagfmt.JSON(cmd.OutOrStdout(), bag, diagfmt.JSONOpts{IncludeNotes: true}); err != nil {
			return err
		}
	} else {
		color, err := useColor(cmd)
		if err != nil {
			return err
		}
		if err := diagfmt.Pretty(cmd.ErrOrStderr(), bag, diagfmt.PrettyOpts{Color: color, ShowNotes: !quiet}); err != nil {
			return err
		}
		if !quiet {
			if err := writeSummary(cmd.OutOrStdout(), &opts, moduleName); err != nil {
				return err
			}
		}
	}
	if bag.HasErrors() || !ok {
		return errInvalidOptions
	}
	return nil
}

func (a *app) reportTimings(cmd *cobra.Command, timer *observ.Timer) {
	a.log.Debug("check timings", timer.Fields()...)
	if show, err := cmd.Flags().GetBool("timings"); err == nil && show {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
}

func (a *app) loadConfig(f *checkFlags) (config.Config, error) {
	path := f.config
	if path == "" && !f.noConfig {
		found, ok, err := config.Find(".")
		if err != nil {
			return config.Config{}, err
		}
		if ok {
			path = found
		}
	}
	if path == "" {
		return config.Config{}, nil
	}
	a.log.Debug("loading config", zap.String("path", path))
	return config.Load(path)
}

// applyFlags overrides config values with flags the user actually set.
func applyFlags(cmd *cobra.Command, f *checkFlags, args []string, cfg *config.Config) {
	fl := cmd.Flags()
	set := func(name string, dst *string, v string) {
		if fl.Changed(name) {
			*dst = v
		}
	}
	set("action", &cfg.Frontend.Action, f.action)
	set("module-name", &cfg.Frontend.ModuleName, f.moduleName)
	set("emit-module-path", &cfg.Outputs.Module, f.modulePath)
	set("emit-module-doc-path", &cfg.Outputs.ModuleDoc, f.moduleDocPath)
	set("emit-objc-header-path", &cfg.Outputs.Header, f.headerPath)
	set("emit-dependencies-path", &cfg.Outputs.Dependencies, f.depsPath)
	set("emit-loaded-module-trace-path", &cfg.Outputs.LoadedModuleTrace, f.tracePath)
	if fl.Changed("output") {
		cfg.Outputs.Files = f.outputs
	}
	if fl.Changed("primary-file") {
		cfg.Inputs.Primary = f.primaries
	}
	if len(args) > 0 {
		cfg.Inputs.Files = args
	}
}

// dropStrayPrimaries reports primaries that name no input and returns the
// rest, spelled as the matching input. Paths from frontend.toml are already
// absolute while flags stay relative to the working directory, so both sides
// are compared in absolute form.
func dropStrayPrimaries(r diag.Reporter, files, primaries []string) []string {
	known := make(map[string]string, len(files))
	for _, p := range files {
		known[absPath(p)] = p
	}
	kept := primaries[:0:0]
	for _, p := range primaries {
		if file, ok := known[absPath(p)]; ok {
			kept = append(kept, file)
			continue
		}
		diag.ReportError(r, diag.CfgNoPrimary, p, "primary file is not among the inputs").Emit()
	}
	return kept
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

func writeSummary(w io.Writer, opts *frontend.Options, moduleName string) error {
	act := opts.RequestedAction
	suffix := "none"
	if s, ok := action.PrincipalOutputSuffix(act); ok {
		suffix = s.Ext()
	}
	if _, err := fmt.Fprintf(w, "action:        %s\nmodule name:   %s\noutput suffix: %s\noriginal path: %s\n",
		act, moduleName, suffix, opts.OriginalPath()); err != nil {
		return err
	}
	if action.CanEmitModule(act) && opts.ModuleOutputPath != "" {
		if _, err := fmt.Fprintf(w, "module doc:    %s\n", opts.ModuleDocPath()); err != nil {
			return err
		}
	}
	paths := opts.OutputPaths()
	if len(paths) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "outputs:"); err != nil {
		return err
	}
	for _, p := range paths {
		if _, err := fmt.Fprintf(w, "  %s\n", p); err != nil {
			return err
		}
	}
	return nil
}
