package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"frontend/internal/diag"
	"frontend/internal/diagfmt"
)

func sampleBag() *diag.Bag {
	bag := diag.NewBag(10)
	bag.Add(diag.NewWarning(diag.OptUnusedHeaderPath, "M-Swift.h", "-emit-objc-header-path is ignored").
		WithNote("dump-ast", "this action writes no header"))
	bag.Add(diag.NewError(diag.ModBadModuleName, "-module-name", "module name \"1x\" is not a valid identifier"))
	bag.Sort()
	return bag
}

func TestPrettyPlain(t *testing.T) {
	var buf bytes.Buffer
	if err := diagfmt.Pretty(&buf, sampleBag(), diagfmt.PrettyOpts{ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		`-module-name: ERROR MOD2001: module name "1x" is not a valid identifier`,
		`M-Swift.h: WARNING OPT1002: -emit-objc-header-path is ignored`,
		`  note: dump-ast: this action writes no header`,
		``,
	}, "\n")
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPrettyColor(t *testing.T) {
	var buf bytes.Buffer
	if err := diagfmt.Pretty(&buf, sampleBag(), diagfmt.PrettyOpts{Color: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escapes: %q", buf.String())
	}
	if strings.Contains(buf.String(), "note:") {
		t.Fatalf("notes must be hidden")
	}
}

func TestJSONMaxKeepsCount(t *testing.T) {
	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, sampleBag(), diagfmt.JSONOpts{Max: 1, IncludeNotes: true}); err != nil {
		t.Fatal(err)
	}
	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 2 || len(out.Diagnostics) != 1 {
		t.Fatalf("count=%d len=%d", out.Count, len(out.Diagnostics))
	}
	if out.Diagnostics[0].Code != "MOD2001" || out.Diagnostics[0].Severity != "ERROR" {
		t.Fatalf("unexpected first diagnostic: %+v", out.Diagnostics[0])
	}
}
