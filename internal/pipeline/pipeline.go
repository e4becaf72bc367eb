package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/sanity-io/litter"

	"lumen/colors"
	"lumen/internal/codegen"
	"lumen/internal/config"
	"lumen/internal/diagnostics"
	"lumen/internal/frontend/ast"
	"lumen/internal/frontend/lexer"
	"lumen/internal/frontend/parser"
	"lumen/internal/phase"
	"lumen/internal/tokens"
	ustrings "lumen/internal/utils/strings"
)

// ErrCompilationFailed is returned whenever a unit stops with diagnostics.
// The diagnostics themselves live in the bag.
var ErrCompilationFailed = errors.New("compilation failed")

// Unit is one source file moving through the pipeline
type Unit struct {
	Path   string
	Source string
	Phase  phase.UnitPhase

	Tokens []tokens.Token
	AST    *ast.Module
	Output string
}

func (u *Unit) advance(to phase.UnitPhase) error {
	if !phase.CanAdvance(u.Phase, to) {
		return fmt.Errorf("cannot advance %s from %v to %v", u.Path, u.Phase, to)
	}
	u.Phase = to
	return nil
}

// Pipeline coordinates the compilation of a single file
type Pipeline struct {
	config      *config.Config
	diagnostics *diagnostics.DiagnosticBag
	backend     codegen.Backend

	// debug output goes here
	out io.Writer
}

func New(cfg *config.Config, diag *diagnostics.DiagnosticBag, backend codegen.Backend) *Pipeline {
	return &Pipeline{
		config:      cfg,
		diagnostics: diag,
		backend:     backend,
		out:         os.Stdout,
	}
}

func (p *Pipeline) SetOutput(w io.Writer) {
	p.out = w
}

func (p *Pipeline) Backend() codegen.Backend {
	return p.backend
}

func (p *Pipeline) debug() bool {
	return p.config.Debug.Enabled
}

// RunFile reads path and runs it through Run.
func (p *Pipeline) RunFile(path string) (*Unit, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		p.diagnostics.Add(diagnostics.NewError(fmt.Sprintf("cannot read file %s: %v", path, err)))
		return nil, fmt.Errorf("%w: %w", ErrCompilationFailed, err)
	}
	return p.Run(path, string(content))
}

// Run lexes, parses and generates content. Parsing reports every syntax
// error it finds; generation stops at the first one.
func (p *Pipeline) Run(path, content string) (*Unit, error) {
	unit := &Unit{Path: path, Source: content}
	p.diagnostics.AddSourceContent(path, content)

	if p.debug() {
		colors.CYAN.Fprintf(p.out, "\n[Phase 1] Lex\n")
	}
	if err := p.lex(unit); err != nil {
		return unit, err
	}

	if p.debug() {
		colors.CYAN.Fprintf(p.out, "\n[Phase 2] Parse\n")
	}
	if err := p.parse(unit); err != nil {
		return unit, err
	}

	if p.debug() {
		colors.CYAN.Fprintf(p.out, "\n[Phase 3] Generate (%s)\n", p.backend.Name())
	}
	if err := p.generate(unit); err != nil {
		return unit, err
	}

	if p.debug() {
		colors.GREEN.Fprintf(p.out, "\n✓ Generated %s for %s\n", ustrings.Count(len(unit.AST.Functions), "function", "functions"), path)
	}
	return unit, nil
}

func (p *Pipeline) lex(unit *Unit) error {
	unit.Tokens = lexer.New(unit.Path, unit.Source).Tokenize(false)

	if p.config.Debug.Tokens {
		for _, tok := range unit.Tokens {
			tok.Debug(p.out, unit.Path)
		}
	}
	if p.debug() {
		colors.PURPLE.Fprintf(p.out, "  ✓ %s\n", ustrings.Count(len(unit.Tokens), "token", "tokens"))
	}
	return unit.advance(phase.PhaseLexed)
}

func (p *Pipeline) parse(unit *Unit) error {
	unit.AST = parser.Parse(unit.Tokens, unit.Path, p.diagnostics)
	if p.diagnostics.HasErrors() {
		return fmt.Errorf("%w: %s in %s", ErrCompilationFailed, ustrings.Count(p.diagnostics.ErrorCount(), "syntax error", "syntax errors"), unit.Path)
	}

	if p.debug() {
		colors.PURPLE.Fprintf(p.out, "  ✓ %s\n", ustrings.Count(len(unit.AST.Functions), "function", "functions"))
		fmt.Fprintln(p.out, dumpAST(unit.AST))
	}
	return unit.advance(phase.PhaseParsed)
}

func (p *Pipeline) generate(unit *Unit) error {
	output, err := p.backend.Generate(unit.AST)
	if err != nil {
		p.diagnostics.Add(generatorDiagnostic(unit.Path, err))
		return fmt.Errorf("%w: %w", ErrCompilationFailed, err)
	}
	unit.Output = output
	return unit.advance(phase.PhaseGenerated)
}

// Emit writes the generated text of unit to path, creating the parent
// directory when needed.
func (p *Pipeline) Emit(unit *Unit, path string) error {
	if unit.Phase != phase.PhaseGenerated {
		return fmt.Errorf("cannot emit %s: unit is %v", unit.Path, unit.Phase)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(unit.Output), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if p.debug() {
		colors.PURPLE.Fprintf(p.out, "  ✓ wrote %s\n", path)
	}
	return unit.advance(phase.PhaseEmitted)
}

var locationFields = regexp.MustCompile(`^(Location|Start|End)$`)

func dumpAST(mod *ast.Module) string {
	opts := litter.Options{
		StripPackageNames: true,
		HidePrivateFields: true,
		FieldExclusions:   locationFields,
	}
	return opts.Sdump(mod)
}
