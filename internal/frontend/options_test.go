package frontend_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"frontend/internal/action"
	"frontend/internal/diag"
	"frontend/internal/frontend"
	"frontend/internal/inputs"
)

func mustSet(t *testing.T, paths, primaries []string) inputs.Set {
	t.Helper()
	s, err := inputs.NewSet(paths, primaries)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestOriginalPathFallbackOrder(t *testing.T) {
	withPrimary := mustSet(t, []string{"lib/main.swift", "other.swift"}, []string{"lib/main.swift"})

	tests := []struct {
		name string
		opts frontend.Options
		want string
	}{
		{
			name: "named output",
			opts: frontend.Options{OutputFilenames: []string{"out.o"}, ModuleName: "M", Inputs: withPrimary},
			want: "out.o",
		},
		{
			name: "primary input",
			opts: frontend.Options{ModuleName: "M", Inputs: withPrimary},
			want: "main.swift",
		},
		{
			name: "stdout is not a named output",
			opts: frontend.Options{OutputFilenames: []string{"-"}, ModuleName: "M", Inputs: withPrimary},
			want: "main.swift",
		},
		{
			name: "module name",
			opts: frontend.Options{ModuleName: "M", Inputs: mustSet(t, []string{"a.swift"}, nil)},
			want: "M",
		},
		{
			name: "nil inputs",
			opts: frontend.Options{ModuleName: "M"},
			want: "M",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.OriginalPath(); got != tt.want {
				t.Fatalf("OriginalPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsOutputFileDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "out.o")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		outputs []string
		want    bool
	}{
		{"directory", []string{dir}, true},
		{"regular file", []string{file}, false},
		{"missing", []string{filepath.Join(dir, "missing")}, false},
		{"no output", nil, false},
		{"two outputs", []string{dir, dir}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := frontend.Options{OutputFilenames: tt.outputs}
			if got := o.IsOutputFileDirectory(); got != tt.want {
				t.Fatalf("IsOutputFileDirectory() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestForAllOutputPaths(t *testing.T) {
	base := frontend.Options{
		OutputFilenames:     []string{"a.o", "b.o"},
		ModuleOutputPath:    "M.swiftmodule",
		ModuleDocOutputPath: "",
		HeaderOutputPath:    "M-Swift.h",
	}

	obj := base
	obj.RequestedAction = action.EmitObject
	if got, want := obj.OutputPaths(), []string{"a.o", "b.o", "M.swiftmodule", "M-Swift.h"}; !reflect.DeepEqual(got, want) {
		t.Errorf("EmitObject paths = %v, want %v", got, want)
	}

	for _, k := range []action.Kind{action.EmitModuleOnly, action.MergeModules} {
		o := base
		o.RequestedAction = k
		if got, want := o.OutputPaths(), []string{"M.swiftmodule", "M-Swift.h"}; !reflect.DeepEqual(got, want) {
			t.Errorf("%s paths = %v, want %v", k, got, want)
		}
	}
}

func TestUnusedHeaderPath(t *testing.T) {
	o := frontend.Options{RequestedAction: action.Parse, HeaderOutputPath: "M-Swift.h"}
	// parse is listed among the header emitters on purpose; the unused
	// case is dump-parse below.
	if o.HasUnusedHeaderOutputPath() {
		t.Fatalf("parse can emit a header")
	}
	o.RequestedAction = action.DumpParse
	if !o.HasUnusedHeaderOutputPath() {
		t.Fatalf("dump-parse cannot emit a header")
	}
	o.RequestedAction = action.MergeModules
	if o.HasUnusedHeaderOutputPath() {
		t.Fatalf("merge-modules can emit a header")
	}
	o.RequestedAction = action.EmitPCH
	if !o.HasUnusedHeaderOutputPath() {
		t.Fatalf("emit-pch cannot emit a header")
	}
	o.HeaderOutputPath = ""
	if o.HasUnusedHeaderOutputPath() {
		t.Fatalf("empty path is never unused")
	}
}

func TestUnusedPathsPerAction(t *testing.T) {
	o := frontend.Options{
		DependenciesFilePath:  "M.d",
		HeaderOutputPath:      "M-Swift.h",
		ModuleOutputPath:      "M.swiftmodule",
		ModuleDocOutputPath:   "M.swiftdoc",
		LoadedModuleTracePath: "M.trace.json",
	}
	type flags struct{ deps, header, module, doc, trace bool }
	tests := []struct {
		kind action.Kind
		want flags
	}{
		{action.None, flags{true, true, true, true, true}},
		{action.Parse, flags{false, false, true, true, true}},
		{action.Typecheck, flags{false, false, true, true, false}},
		{action.EmitSILGen, flags{false, false, true, true, false}},
		{action.EmitPCH, flags{false, true, true, true, true}},
		{action.EmitObject, flags{false, false, false, false, false}},
		{action.REPL, flags{true, true, true, true, true}},
	}
	for _, tt := range tests {
		o.RequestedAction = tt.kind
		got := flags{
			o.HasUnusedDependenciesFilePath(),
			o.HasUnusedHeaderOutputPath(),
			o.HasUnusedModuleOutputPath(),
			o.HasUnusedModuleDocOutputPath(),
			o.HasUnusedLoadedModuleTracePath(),
		}
		if got != tt.want {
			t.Errorf("%s: unused = %+v, want %+v", tt.kind, got, tt.want)
		}
	}
}

func TestPrincipalOutputPath(t *testing.T) {
	o := frontend.Options{RequestedAction: action.EmitIR}
	got, ok := o.PrincipalOutputPath("build/main.swift")
	if !ok || got != "build/main.ll" {
		t.Fatalf("PrincipalOutputPath = %q, %v", got, ok)
	}
	o.RequestedAction = action.Typecheck
	if _, ok := o.PrincipalOutputPath("main.swift"); ok {
		t.Fatalf("typecheck has no principal output file")
	}
}

func TestModuleDocPath(t *testing.T) {
	o := frontend.Options{ModuleOutputPath: "out/M.swiftmodule"}
	if got := o.ModuleDocPath(); got != "out/M.swiftdoc" {
		t.Fatalf("ModuleDocPath() = %q", got)
	}
	o.ModuleDocOutputPath = "docs/M.swiftdoc"
	if got := o.ModuleDocPath(); got != "docs/M.swiftdoc" {
		t.Fatalf("explicit ModuleDocPath() = %q", got)
	}
}

func TestValidateReportsUnusedPaths(t *testing.T) {
	bag := diag.NewBag(20)
	o := frontend.Options{
		RequestedAction:      action.DumpAST,
		ModuleName:           "M",
		DependenciesFilePath: "M.d",
		HeaderOutputPath:     "M-Swift.h",
	}
	name, ok := o.Validate(diag.BagReporter{Bag: bag})
	if !ok || name != "M" {
		t.Fatalf("Validate() = %q, %v", name, ok)
	}
	if bag.HasErrors() {
		t.Fatalf("unused paths must be warnings: %v", bag.Items())
	}
	if bag.Count(diag.OptUnusedDependenciesPath) != 1 || bag.Count(diag.OptUnusedHeaderPath) != 1 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if bag.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", bag.Len())
	}
}

func TestValidateOutputDirectory(t *testing.T) {
	dir := t.TempDir()
	bag := diag.NewBag(20)
	o := frontend.Options{RequestedAction: action.EmitObject, ModuleName: "M", OutputFilenames: []string{dir}}
	o.Validate(diag.BagReporter{Bag: bag})
	if bag.Count(diag.OptOutputIsDirectory) != 1 {
		t.Fatalf("expected directory warning, got %v", bag.Items())
	}

	bag = diag.NewBag(20)
	o.RequestedAction = action.Typecheck
	o.Validate(diag.BagReporter{Bag: bag})
	if bag.Count(diag.OptOutputIsDirectory) != 0 {
		t.Fatalf("typecheck writes no file, got %v", bag.Items())
	}
}
