package compiler

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/samber/do"

	"lumen/colors"
	"lumen/internal/config"
	"lumen/internal/diagnostics"
	"lumen/internal/pipeline"
	"lumen/internal/utils/fs"
)

// Options for compilation. Non-zero fields override the configuration file.
type Options struct {
	// For file-based compilation
	EntryFile string
	// For in-memory compilation; nothing is written to disk
	Code string

	// Config file to load. When empty, lumen.toml next to EntryFile is used
	// if present.
	ConfigFile string
	Backend    string
	Output     string

	Debug   bool
	Tokens  bool
	SaveAST bool

	// Diagnostics and debug output. Defaults to os.Stdout.
	Stdout io.Writer
}

// Result of compilation
type Result struct {
	Success bool
	BuildID string
	Backend string

	// Generated text, also written to OutputPath in file mode
	Output     string
	OutputPath string

	Diagnostics *diagnostics.DiagnosticBag
}

const memoryFile = "<memory>"

// Compile compiles lumen code. The returned error covers problems that stop
// compilation before any source is read (bad configuration, unknown backend,
// unwritable output); source errors are reported through Result.Diagnostics
// and Success.
func Compile(opts *Options) (*Result, error) {
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	if opts.EntryFile == "" && opts.Code == "" {
		return nil, errors.New("nothing to compile: no entry file or code given")
	}
	if opts.Code == "" && fs.IsDir(opts.EntryFile) {
		return nil, fmt.Errorf("%s is a directory, not a source file", opts.EntryFile)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	bag := diagnostics.NewDiagnosticBag()
	injector := NewContainer(cfg, bag)
	defer injector.Shutdown()

	p, err := do.Invoke[*pipeline.Pipeline](injector)
	if err != nil {
		return nil, err
	}
	p.SetOutput(out)

	result := &Result{
		BuildID:     uuid.New().String(),
		Backend:     p.Backend().Name(),
		Diagnostics: bag,
	}
	if cfg.Debug.Enabled {
		colors.GREY.Fprintf(out, "build %s (backend %s)\n", result.BuildID, result.Backend)
	}

	var unit *pipeline.Unit
	if opts.Code != "" {
		unit, err = p.Run(memoryFile, opts.Code)
	} else {
		unit, err = p.RunFile(opts.EntryFile)
	}

	if unit != nil && unit.AST != nil && opts.SaveAST && opts.Code == "" {
		if saveErr := unit.AST.SaveAST(); saveErr != nil {
			bag.Add(diagnostics.NewWarning(fmt.Sprintf("could not save AST: %v", saveErr)))
		}
	}

	if err != nil {
		if !errors.Is(err, pipeline.ErrCompilationFailed) {
			return nil, err
		}
		bag.EmitAll(out)
		return result, nil
	}

	result.Output = unit.Output
	if opts.Code == "" {
		result.OutputPath = outputPath(cfg, opts.EntryFile, p.Backend().Extension())
		if err := p.Emit(unit, result.OutputPath); err != nil {
			return nil, err
		}
	}

	if bag.WarningCount() > 0 {
		bag.EmitAll(out)
	}
	if cfg.Debug.Enabled {
		p.PrintSummary(out, unit)
	}

	result.Success = true
	return result, nil
}

func loadConfig(opts *Options) (*config.Config, error) {
	var cfg *config.Config
	var err error

	switch {
	case opts.ConfigFile != "":
		cfg, err = config.Load(opts.ConfigFile)
	case opts.EntryFile != "":
		cfg, err = config.LoadOrDefault(filepath.Dir(opts.EntryFile))
	default:
		cfg = config.Default()
	}
	if err != nil {
		return nil, err
	}

	if opts.Backend != "" {
		cfg.Build.Backend = opts.Backend
	}
	if opts.Output != "" {
		cfg.Build.Output = opts.Output
	}
	cfg.Debug.Enabled = cfg.Debug.Enabled || opts.Debug
	cfg.Debug.Tokens = cfg.Debug.Tokens || opts.Tokens

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// outputPath is the configured output, or the entry file with its
// extension replaced by the backend's.
func outputPath(cfg *config.Config, entry, ext string) string {
	if cfg.Build.Output != "" {
		return cfg.Build.Output
	}
	return fs.ReplaceExt(entry, ext)
}
