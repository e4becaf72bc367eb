package qbegen

import (
	"errors"
	"strings"
	"testing"

	"lumen/internal/codegen"
	"lumen/internal/frontend/ast"
	"lumen/internal/qbe"
	"lumen/internal/types"
)

func function(name string, ret *types.Type, body ast.Statement, args ...ast.Argument) *ast.Function {
	return &ast.Function{Name: name, ReturnType: ret, Body: body, Arguments: args}
}

func block(stmts ...ast.Statement) *ast.Block {
	return &ast.Block{Statements: stmts}
}

func arg(name string, typ *types.Type) ast.Argument {
	return ast.Argument{Name: name, Type: typ}
}

func ret(value ast.Expression) *ast.Return {
	return &ast.Return{Value: value}
}

func intLit(v int64) *ast.IntLiteral {
	return &ast.IntLiteral{Value: v}
}

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

func let(name string, typ *types.Type, value ast.Expression) *ast.Declare {
	return &ast.Declare{Name: name, Type: typ, Value: value}
}

func lines(s ...string) string {
	return strings.Join(s, "\n")
}

func module(fns ...*ast.Function) *ast.Module {
	return &ast.Module{Functions: fns}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		fn   *ast.Function
		want string
	}{
		{
			name: "void function gets implicit ret",
			fn:   function("main", nil, block()),
			want: lines("export function $main() {", "@start", "\tret", "}", ""),
		},
		{
			name: "explicit ret is not doubled",
			fn:   function("main", nil, block(ret(nil))),
			want: lines("export function $main() {", "@start", "\tret", "}", ""),
		},
		{
			name: "trailing bare block",
			fn:   function("main", nil, block(block())),
			want: lines("export function $main() {", "@start", "\tret", "}", ""),
		},
		{
			name: "integer return",
			fn:   function("answer", types.TypeInt, block(ret(intLit(42)))),
			want: lines(
				"export function w $answer() {",
				"@start",
				"\t%tmp.1 =w copy 42",
				"\tret %tmp.1",
				"}",
				"",
			),
		},
		{
			name: "arguments are widened and readable",
			fn: function("first", types.TypeInt, block(ret(ident("a"))),
				arg("a", types.TypeInt), arg("b", types.TypeBool)),
			want: lines(
				"export function w $first(w %tmp.1, w %tmp.2) {",
				"@start",
				"\t%tmp.3 =w copy %tmp.1",
				"\tret %tmp.3",
				"}",
				"",
			),
		},
		{
			name: "nested block may shadow an argument",
			fn: function("shadow", nil, block(block(let("a", nil, intLit(7)))),
				arg("a", types.TypeInt)),
			want: lines(
				"export function $shadow(w %tmp.1) {",
				"@start",
				"\t%tmp.2 =w copy 7",
				"\t%tmp.3 =w copy %tmp.2",
				"\tret",
				"}",
				"",
			),
		},
		{
			name: "typed let without value",
			fn:   function("zero", nil, block(let("x", types.TypeInt, nil))),
			want: lines("export function $zero() {", "@start", "\t%tmp.1 =w copy 0", "\tret", "}", ""),
		},
		{
			name: "bool let is stored as a word",
			fn:   function("flag", nil, block(let("ok", types.TypeBool, intLit(1)))),
			want: lines("export function $flag() {", "@start", "\t%tmp.1 =w copy 1", "\t%tmp.2 =w copy %tmp.1", "\tret", "}", ""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(module(tt.fn))
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		fn   *ast.Function
		want error
	}{
		{"missing argument type", function("f", nil, block(), arg("a", nil)), codegen.ErrMissingType},
		{"duplicate argument", function("f", nil, block(), arg("a", types.TypeInt), arg("a", types.TypeInt)), codegen.ErrRedeclaration},
		{"duplicate let", function("f", nil, block(let("x", nil, intLit(1)), let("x", nil, intLit(2)))), codegen.ErrRedeclaration},
		{"let shadowing an argument in the same frame", function("f", nil, let("a", nil, intLit(1)), arg("a", types.TypeInt)), codegen.ErrRedeclaration},
		{"undefined name", function("f", types.TypeInt, block(ret(ident("y")))), codegen.ErrUndefined},
		{"binding does not outlive its block", function("f", types.TypeInt, block(block(let("x", nil, intLit(1))), ret(ident("x")))), codegen.ErrUndefined},
		{"any argument", function("f", nil, block(), arg("a", types.TypeAny)), codegen.ErrUnsupportedType},
		{"string return type", function("f", types.TypeStr, block()), codegen.ErrUnsupportedType},
		{"array argument", function("f", nil, block(), arg("xs", types.NewArray(types.TypeInt))), codegen.ErrUnsupportedType},
		{"struct let", function("f", nil, block(let("p", types.NewStruct("Point"), nil))), codegen.ErrUnsupportedType},
		{"untyped let without value", function("f", nil, block(let("x", nil, nil))), codegen.ErrMissingType},
		{"string literal", function("f", nil, block(ret(&ast.StrLiteral{Value: "hi"}))), codegen.ErrUnimplemented},
		{"bool literal", function("f", nil, block(&ast.ExpressionStatement{Expr: &ast.BoolLiteral{Value: true}})), codegen.ErrUnimplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(module(tt.fn))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Generate() error = %v, want %v", err, tt.want)
			}
			if got != "" {
				t.Errorf("failed generation must not produce output, got %q", got)
			}
			var genErr *codegen.Error
			if !errors.As(err, &genErr) || genErr.Function != "f" {
				t.Errorf("error should name the function: %v", err)
			}
		})
	}
}

func TestAggregateErrorNamesAggregate(t *testing.T) {
	_, err := Generate(module(function("f", types.TypeStr, block())))
	if err == nil || !strings.Contains(err.Error(), "aggregate string") {
		t.Errorf("error = %v, want it to mention the aggregate", err)
	}
}

func TestGenerateAbortsOnFirstError(t *testing.T) {
	good := function("good", nil, block())
	bad := function("bad", nil, block(), arg("a", nil))

	out, err := Generate(module(good, bad, good))
	if !errors.Is(err, codegen.ErrMissingType) {
		t.Fatalf("err = %v, want ErrMissingType", err)
	}
	if out != "" {
		t.Errorf("partial output %q", out)
	}
}

func TestScopesReleasedOnError(t *testing.T) {
	g := New()
	_, err := g.GenerateFunction(function("f", nil, block(block(ret(ident("nope"))))))
	if !errors.Is(err, codegen.ErrUndefined) {
		t.Fatalf("err = %v, want ErrUndefined", err)
	}
	if g.scopes.Depth() != 0 {
		t.Errorf("scope depth = %d after failed function, want 0", g.scopes.Depth())
	}
}

func TestTemporariesAreUniqueAcrossFunctions(t *testing.T) {
	mod := module(
		function("a", types.TypeInt, block(ret(intLit(1)))),
		function("b", types.TypeInt, block(ret(intLit(2)))),
	)
	got, err := Generate(mod)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "%tmp.1 =w copy 1") || !strings.Contains(got, "%tmp.2 =w copy 2") {
		t.Errorf("unexpected temporaries:\n%s", got)
	}
}

func TestGenerateParallel(t *testing.T) {
	var fns []*ast.Function
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		fns = append(fns, function(name, types.TypeInt, block(ret(intLit(1)))))
	}

	got, err := Generate(module(fns...), WithParallel(3))
	if err != nil {
		t.Fatal(err)
	}

	last := -1
	for i, name := range []string{"a", "b", "c", "d", "e"} {
		at := strings.Index(got, "$"+name+"(")
		if at < last {
			t.Errorf("function %s out of order", name)
		}
		last = at
		want := "%tmp." + string(rune('0'+i)) + ".1 =w copy 1"
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}

	again, _ := Generate(module(fns...), WithParallel(3))
	if again != got {
		t.Errorf("parallel output is not deterministic")
	}
}

func TestGenerateParallelError(t *testing.T) {
	mod := module(
		function("ok", nil, block()),
		function("broken", nil, block(ret(ident("x")))),
	)
	if _, err := Generate(mod, WithParallel(2)); !errors.Is(err, codegen.ErrUndefined) {
		t.Errorf("err = %v, want ErrUndefined", err)
	}
}

func TestLowerType(t *testing.T) {
	tests := []struct {
		typ  *types.Type
		want qbe.Type
		err  error
	}{
		{types.TypeInt, qbe.TypeWord, nil},
		{types.TypeBool, qbe.TypeByte, nil},
		{types.TypeAny, qbe.Type{}, codegen.ErrUnsupportedType},
		{types.TypeStr, qbe.Type{}, codegen.ErrUnsupportedType},
		{types.NewArray(types.TypeInt), qbe.Type{}, codegen.ErrUnsupportedType},
		{types.NewStruct("S"), qbe.Type{}, codegen.ErrUnsupportedType},
	}

	for _, tt := range tests {
		got, err := LowerType(tt.typ)
		if !errors.Is(err, tt.err) {
			t.Errorf("LowerType(%s) error = %v, want %v", tt.typ, err, tt.err)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("LowerType(%s) = %s, want %s", tt.typ, got, tt.want)
		}
	}

	b, _ := LowerType(types.TypeBool)
	i, _ := LowerType(types.TypeInt)
	if b.ABI() != i.ABI() || b.ABI().Kind != qbe.Word {
		t.Errorf("bool and int must share the word ABI class")
	}
	if b.ABI().ABI() != b.ABI() {
		t.Errorf("ABI must be idempotent")
	}
}

func TestBackend(t *testing.T) {
	var backend codegen.Backend = NewBackend()
	if backend.Name() != "qbe" || backend.Extension() != ".ssa" {
		t.Errorf("unexpected backend identity %s %s", backend.Name(), backend.Extension())
	}
	out, err := backend.Generate(module(function("main", nil, block())))
	if err != nil || !strings.HasPrefix(out, "export function $main()") {
		t.Errorf("Generate() = %q, %v", out, err)
	}
}
