package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"frontend/internal/actiontable"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--color", "off"}, args...))
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestClassifyText(t *testing.T) {
	out, _, err := run(t, "classify", "emit-silgen", "--", "-c")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"emit-silgen\n",
		"principal output suffix:  .sil",
		"serialized module:        no",
		"emit-object\n",
		"principal output suffix:  .o",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestClassifyUnknownAction(t *testing.T) {
	if _, _, err := run(t, "classify", "emit-everything"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestTableCompare(t *testing.T) {
	dir := t.TempDir()
	snapshot := filepath.Join(dir, "table.msgpack")

	out, _, err := run(t, "table", "--format", "msgpack")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(snapshot, []byte(out), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := run(t, "table", "--compare", snapshot); err != nil {
		t.Fatalf("fresh snapshot should match: %v", err)
	}

	rows := actiontable.Rows()
	rows[0].Output = true
	var buf bytes.Buffer
	if err := actiontable.WriteMsgpack(&buf, rows); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(snapshot, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	out, _, err = run(t, "table", "--compare", snapshot)
	if !errors.Is(err, errTableDrift) {
		t.Fatalf("expected drift error, got %v", err)
	}
	if !strings.Contains(out, "none: Output true -> false") {
		t.Fatalf("drift not reported:\n%s", out)
	}
}

func TestCheckWarnsOnUnusedHeader(t *testing.T) {
	out, errOut, err := run(t, "check", "--no-config",
		"--action", "parse", "--emit-objc-header-path", "M-Swift.h",
		"--emit-module-path", "M.swiftmodule", "--module-name", "M", "main.swift")
	if err != nil {
		t.Fatalf("warnings must not fail the check: %v", err)
	}
	if strings.Contains(errOut, "OPT1002") {
		t.Errorf("parse can emit a header:\n%s", errOut)
	}
	if !strings.Contains(errOut, "M.swiftmodule: WARNING OPT1003") {
		t.Errorf("missing unused module warning:\n%s", errOut)
	}
	if !strings.Contains(out, "action:        parse") || !strings.Contains(out, "original path: M") {
		t.Errorf("unexpected summary:\n%s", out)
	}
}

func TestCheckOriginalPathFromPrimary(t *testing.T) {
	out, _, err := run(t, "check", "--no-config", "--action", "emit-object",
		"--primary-file", "src/main.swift", "--module-name", "App", "src/main.swift", "src/util.swift")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "original path: main.swift") || !strings.Contains(out, "output suffix: .o") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
}

func TestCheckFailsOnBadModuleName(t *testing.T) {
	_, errOut, err := run(t, "check", "--no-config", "--action", "emit-module", "--module-name", "my-kit")
	if !errors.Is(err, errInvalidOptions) {
		t.Fatalf("expected invalid options, got %v", err)
	}
	if !strings.Contains(errOut, "MOD2001") {
		t.Fatalf("missing module name error:\n%s", errOut)
	}
}

func TestCheckStrayPrimary(t *testing.T) {
	_, errOut, err := run(t, "check", "--no-config", "--action", "typecheck",
		"--primary-file", "other.swift", "main.swift")
	if !errors.Is(err, errInvalidOptions) {
		t.Fatalf("expected invalid options, got %v", err)
	}
	if !strings.Contains(errOut, "other.swift: ERROR CFG3001") {
		t.Fatalf("missing stray primary error:\n%s", errOut)
	}
}

func TestCheckUsesConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "frontend.toml")
	body := "[frontend]\naction = \"dump-ast\"\nmodule-name = \"M\"\n\n[outputs]\ndependencies = \"M.d\"\n"
	if err := os.WriteFile(cfg, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	out, _, err := run(t, "check", "--config", cfg, "--diag-format", "json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"code": "OPT1001"`) || !strings.Contains(out, `"count": 1`) {
		t.Fatalf("unexpected json:\n%s", out)
	}

	// a flag overrides the config action
	_, errOut, err := run(t, "check", "--config", cfg, "--action", "typecheck")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(errOut, "OPT1001") {
		t.Fatalf("typecheck writes dependencies:\n%s", errOut)
	}
}

func TestCheckConfigInputsWithPrimaryFlag(t *testing.T) {
	dir := t.TempDir()
	body := "[frontend]\naction = \"emit-object\"\nmodule-name = \"App\"\n\n" +
		"[inputs]\nfiles = [\"src/main.swift\", \"src/util.swift\"]\n"
	if err := os.WriteFile(filepath.Join(dir, "frontend.toml"), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	out, errOut, err := run(t, "check", "--primary-file", "src/util.swift")
	if err != nil {
		t.Fatalf("primary naming a configured input was rejected: %v\n%s", err, errOut)
	}
	if strings.Contains(errOut, "CFG3001") {
		t.Fatalf("unexpected stray primary error:\n%s", errOut)
	}
	if !strings.Contains(out, "original path: util.swift") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "frontend ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestInvalidColorFlag(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--color", "sometimes", "version"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for bad --color")
	}
}

func TestCheckTimings(t *testing.T) {
	_, errOut, err := run(t, "check", "--no-config", "--timings", "--action", "parse", "--module-name", "M")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"timings:", "config", "validate", "render", "total"} {
		if !strings.Contains(errOut, want) {
			t.Errorf("stderr lacks %q:\n%s", want, errOut)
		}
	}
}
