package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/example/pythonqtwrapper/internal/config"
	"github.com/example/pythonqtwrapper/internal/core/binding"
	"github.com/example/pythonqtwrapper/internal/core/header"
	"github.com/example/pythonqtwrapper/internal/logger"
	"github.com/example/pythonqtwrapper/internal/ports/primary"
	"github.com/example/pythonqtwrapper/internal/version"
	"github.com/example/pythonqtwrapper/internal/wire"
)

const usageHint = "Specify --help for usage."

// ExitError carries the process exit status for an error.
// A nil Err means nothing needs to be printed.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// RootCmd returns the pythonqtwrapper command.
func RootCmd() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:     "pythonqtwrapper [options] -o <output-dir> <path-to-cpp-header-file> [<path-to-cpp-header-file> ...]",
		Short:   "Generate PythonQt wrappers for Qt C++ classes",
		Version: version.String(),
		Long: `PythonQtWrapper inspects Qt C++ headers and, for every class that can be
wrapped, generates a PythonQtWrapper_<Class> decorator and the registration
code exposing it to Python.

A header is wrapped when it:
  - is a regular header (*.h) and not a private one (*_p.h)
  - contains the Q_OBJECT macro
  - declares a constructor taking no argument or a QObject*/QWidget* parent
  - declares no pure virtual method

Files are written to <output-dir>/generated_cpp/<namespace>_<target>/.
Every option can also be set in .pythonqtwrapper.yaml or through
PYTHONQTWRAPPER_<OPTION> environment variables.

Examples:
  pythonqtwrapper -o build ctkSlider.h
  pythonqtwrapper -n org.commontk.widgets -p Widgets -o build ctkSlider.h ctkButton.h
  pythonqtwrapper --check-only -o build ctkSlider_p.h   # exit status = rejected headers`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrap(cmd, args, configFile)
		},
	}

	flags := cmd.Flags()
	flags.BoolP("verbose", "v", false, "Enable verbose output.")
	flags.StringP("wrapping-namespace", "n", binding.DefaultNamespace, "Wrapping namespace (alias: --wns).")
	flags.StringP("target-name", "p", "", "Target name (defaults to the header name when a single header is given).")
	flags.BoolP("check-only", "c", false, "Only check the headers; the exit status is the number of rejected headers.")
	flags.StringP("output-dir", "o", "", "Output directory.")
	flags.Bool("json-log", false, "Write log entries as JSON.")
	flags.StringVar(&configFile, "config", "", "Config file (yaml, json or toml).")
	flags.SetNormalizeFunc(normalizeFlagName)

	return cmd
}

// normalizeFlagName maps the historical --wns spelling to --wrapping-namespace.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "wns" {
		name = "wrapping-namespace"
	}
	return pflag.NormalizedName(name)
}

func runWrap(cmd *cobra.Command, args []string, configFile string) error {
	cfg, err := config.Load(config.LoadOptions{
		Flags:      cmd.Flags(),
		ConfigFile: configFile,
		Dir:        ".",
	})
	if err != nil {
		return err
	}

	if err := logger.Initialize(logger.Options{Verbose: cfg.Verbose, JSON: cfg.JSONLog}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		return errors.WithHint(err, usageHint)
	}

	svc, err := wire.WrapperService()
	if err != nil {
		return err
	}

	resp, err := svc.Run(cmd.Context(), primary.RunRequest{
		Namespace:  cfg.Namespace(),
		TargetName: cfg.TargetName,
		OutputDir:  cfg.OutputDir,
		Paths:      args,
		CheckOnly:  cfg.CheckOnly,
	})

	if resp != nil {
		printRejections(cmd.ErrOrStderr(), resp.Results)
	}

	if err != nil {
		if errors.IsAny(err, primary.ErrNoInputs, primary.ErrTargetNameRequired, binding.ErrNamespaceRequired, binding.ErrInvalidNamespace) {
			return errors.WithHint(err, usageHint)
		}
		return err
	}

	if cfg.CheckOnly {
		printCheckReport(cmd.OutOrStdout(), resp.Results)
		if resp.Rejected > 0 {
			return &ExitError{Code: resp.Rejected}
		}
		return nil
	}

	for _, path := range resp.Files {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Generated %s\n", path)
	}
	return nil
}

// printRejections reports every rejected header on w.
func printRejections(w io.Writer, results []header.Result) {
	prefix := color.New(color.FgRed, color.Bold).Sprint("error:")
	for _, r := range results {
		if err := r.Error(); err != nil {
			fmt.Fprintf(w, "%s %v\n", prefix, err)
		}
	}
}

// printCheckReport prints one line per header with its verdict.
func printCheckReport(w io.Writer, results []header.Result) {
	ok := color.New(color.FgGreen).Sprint("✓")
	rejected := color.New(color.FgRed).Sprint("✗")
	dim := color.New(color.FgHiBlack)

	accepted := 0
	for _, r := range results {
		name := filepath.Base(r.Path)
		if r.Accepted {
			accepted++
			fmt.Fprintf(w, "%s %-32s %s %s\n", ok, name, r.ClassName, dim.Sprintf("(parent: %s)", r.Parent))
			continue
		}
		fmt.Fprintf(w, "%s %-32s %s\n", rejected, name, dim.Sprint(r.Reason))
	}
	fmt.Fprintf(w, "\n%d of %d headers can be wrapped.\n", accepted, len(results))
}

// HandleError prints err to w and returns the process exit status for it.
func HandleError(w io.Writer, err error) int {
	if err == nil {
		return 0
	}

	code := 1
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
		if exitErr.Err == nil {
			return code
		}
	}

	fmt.Fprintf(w, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintln(w, hint)
	}
	return code
}
