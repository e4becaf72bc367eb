package compiler

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/samber/do"

	"lumen/colors"
	"lumen/internal/codegen"
	"lumen/internal/config"
	"lumen/internal/diagnostics"
	"lumen/internal/pipeline"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create %s: %v", name, err)
	}
	return path
}

func TestCompile_InMemorySimpleCode(t *testing.T) {
	var out bytes.Buffer
	result, err := Compile(&Options{Code: "fn main() {}", Stdout: &out})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Success {
		t.Fatalf("Expected successful compilation:\n%s", out.String())
	}
	if result.Output != "export function $main() {\n@start\n\tret\n}\n" {
		t.Errorf("unexpected output %q", result.Output)
	}
	if result.OutputPath != "" {
		t.Errorf("in-memory compilation should not write, got %s", result.OutputPath)
	}
	if _, err := uuid.Parse(result.BuildID); err != nil {
		t.Errorf("build id %q is not a uuid: %v", result.BuildID, err)
	}
}

func TestCompile_BuildIDsAreUnique(t *testing.T) {
	first, err := Compile(&Options{Code: "fn main() {}", Stdout: &bytes.Buffer{}})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Compile(&Options{Code: "fn main() {}", Stdout: &bytes.Buffer{}})
	if err != nil {
		t.Fatal(err)
	}
	if first.BuildID == second.BuildID {
		t.Errorf("two builds share id %s", first.BuildID)
	}
}

func TestCompile_InMemoryWithSyntaxError(t *testing.T) {
	colors.SetEnabled(false)
	defer colors.SetEnabled(true)

	var out bytes.Buffer
	result, err := Compile(&Options{Code: "fn main( {", Stdout: &out})
	if err != nil {
		t.Fatal(err)
	}
	if result.Success {
		t.Error("Expected compilation failure for syntax error")
	}
	if !strings.Contains(out.String(), "error[") {
		t.Errorf("diagnostics were not emitted:\n%s", out.String())
	}
}

func TestCompile_GeneratorErrorIsDiagnostic(t *testing.T) {
	colors.SetEnabled(false)
	defer colors.SetEnabled(true)

	var out bytes.Buffer
	result, err := Compile(&Options{Code: "fn f(a) {}", Stdout: &out})
	if err != nil {
		t.Fatal(err)
	}
	if result.Success {
		t.Fatal("Expected failure for missing argument type")
	}
	if !strings.Contains(out.String(), "error["+diagnostics.ErrGenMissingType+"]") {
		t.Errorf("missing %s diagnostic:\n%s", diagnostics.ErrGenMissingType, out.String())
	}
}

func TestCompile_FileMode_NonExistentFile(t *testing.T) {
	result, err := Compile(&Options{EntryFile: filepath.Join(t.TempDir(), "missing.lm"), Stdout: &bytes.Buffer{}})
	if err != nil {
		t.Fatal(err)
	}
	if result.Success {
		t.Error("Expected failure for non-existent file")
	}
	if result.Diagnostics.ErrorCount() != 1 {
		t.Errorf("got %d errors, want 1", result.Diagnostics.ErrorCount())
	}
}

func TestCompile_FileMode_WritesOutput(t *testing.T) {
	tests := []struct {
		backend string
		ext     string
		want    string
	}{
		{"qbe", ".ssa", "export function w $answer() {"},
		{"llvm", ".ll", "define i32 @answer()"},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			dir := t.TempDir()
			entry := writeFile(t, dir, "main.lm", "fn answer(): int { return 42; }\n")

			result, err := Compile(&Options{EntryFile: entry, Backend: tt.backend, Stdout: &bytes.Buffer{}})
			if err != nil {
				t.Fatal(err)
			}
			if !result.Success {
				t.Fatalf("compilation failed:\n%s", result.Diagnostics.EmitAllToString())
			}

			wantPath := filepath.Join(dir, "main"+tt.ext)
			if result.OutputPath != wantPath {
				t.Errorf("output path = %s, want %s", result.OutputPath, wantPath)
			}
			written, err := os.ReadFile(wantPath)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(written), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, written)
			}
			if result.Backend != tt.backend {
				t.Errorf("backend = %s, want %s", result.Backend, tt.backend)
			}
		})
	}
}

func TestCompile_ConfigFileNextToSource(t *testing.T) {
	dir := t.TempDir()
	entry := writeFile(t, dir, "main.lm", "fn main() {}\n")
	writeFile(t, dir, config.FileName, "[build]\nbackend = \"llvm\"\noutput = \""+filepath.ToSlash(filepath.Join(dir, "build", "out.ll"))+"\"\n")

	result, err := Compile(&Options{EntryFile: entry, Stdout: &bytes.Buffer{}})
	if err != nil {
		t.Fatal(err)
	}
	if !result.Success || result.Backend != "llvm" {
		t.Fatalf("result = %+v, want llvm success", result)
	}
	if _, err := os.Stat(filepath.Join(dir, "build", "out.ll")); err != nil {
		t.Errorf("configured output not written: %v", err)
	}
}

func TestCompile_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	entry := writeFile(t, dir, "main.lm", "fn main() {}\n")
	writeFile(t, dir, config.FileName, "[build]\nbackend = \"llvm\"\n")

	result, err := Compile(&Options{EntryFile: entry, Backend: "qbe", Stdout: &bytes.Buffer{}})
	if err != nil {
		t.Fatal(err)
	}
	if result.Backend != "qbe" {
		t.Errorf("backend = %s, want the flag value qbe", result.Backend)
	}
}

func TestCompile_InvalidConfiguration(t *testing.T) {
	_, err := Compile(&Options{Code: "fn main() {}", Backend: "wasm", Stdout: &bytes.Buffer{}})
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}

	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.toml", "[build\n")
	if _, err := Compile(&Options{Code: "fn main() {}", ConfigFile: bad, Stdout: &bytes.Buffer{}}); err == nil {
		t.Error("expected an error for a malformed config file")
	}
}

func TestCompile_NothingToCompile(t *testing.T) {
	if _, err := Compile(&Options{}); err == nil {
		t.Error("expected an error without entry file or code")
	}
	if _, err := Compile(&Options{EntryFile: t.TempDir()}); err == nil {
		t.Error("expected an error for a directory entry")
	}
}

func TestCompile_DebugMode(t *testing.T) {
	colors.SetEnabled(false)
	defer colors.SetEnabled(true)

	var out bytes.Buffer
	result, err := Compile(&Options{Code: "fn main() {}", Debug: true, Stdout: &out})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"build " + result.BuildID, "[Phase 2] Parse", "COMPILATION SUMMARY"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("debug output missing %q", want)
		}
	}
}

func TestCompile_SaveAST(t *testing.T) {
	dir := t.TempDir()
	entry := writeFile(t, dir, "main.lm", "fn main() {}\n")

	if _, err := Compile(&Options{EntryFile: entry, SaveAST: true, Stdout: &bytes.Buffer{}}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(entry + ".ast.json"); err != nil {
		t.Errorf("AST was not saved: %v", err)
	}
}

func TestContainer_ResolvesConfiguredBackend(t *testing.T) {
	for _, name := range config.Backends {
		cfg := config.Default()
		cfg.Build.Backend = name
		injector := NewContainer(cfg, diagnostics.NewDiagnosticBag())

		backend, err := do.InvokeNamed[codegen.Backend](injector, name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if backend.Name() != name {
			t.Errorf("backend registered as %s reports %s", name, backend.Name())
		}

		p, err := do.Invoke[*pipeline.Pipeline](injector)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if p.Backend().Name() != name {
			t.Errorf("pipeline uses %s, want %s", p.Backend().Name(), name)
		}
	}
}

func TestContainer_UnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Build.Backend = "wasm"
	injector := NewContainer(cfg, diagnostics.NewDiagnosticBag())

	if _, err := do.Invoke[*pipeline.Pipeline](injector); err == nil {
		t.Error("expected an error resolving an unregistered backend")
	}
}
