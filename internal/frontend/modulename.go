package frontend

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"frontend/internal/action"
	"frontend/internal/diag"
)

const (
	// FallbackModuleName replaces an unusable name for actions that only
	// need a file name.
	FallbackModuleName = "main"
	// StdlibModuleName is reserved for the standard library.
	StdlibModuleName = "Swift"
)

// IsValidModuleName reports whether name, in NFC form, is an identifier.
func IsValidModuleName(name string) bool {
	name = norm.NFC.String(name)
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 && r != '_' && !unicode.IsLetter(r) {
			return false
		}
		if i > 0 && r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// defaultModuleName picks a name when none was given: the stem of the named
// output file, the stem of the only input, or the fallback.
func (o *Options) defaultModuleName() string {
	if o.HasNamedOutputFile() {
		base := filepath.Base(o.SingleOutputFilename())
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	if o.Inputs != nil && o.Inputs.Len() == 1 {
		if f, ok := o.Inputs.First(); ok {
			return f.Stem()
		}
	}
	return FallbackModuleName
}

// ResolveModuleName returns the module name this invocation will use.
// An invalid or reserved name is replaced by FallbackModuleName when the
// action does not need a proper module name; otherwise an error is reported
// and ok is false.
func (o *Options) ResolveModuleName(r diag.Reporter) (name string, ok bool) {
	name = norm.NFC.String(o.ModuleName)
	subject := "-module-name"
	if name == "" {
		name = o.defaultModuleName()
		subject = name
	}

	var (
		code diag.Code
		why  string
	)
	switch {
	case !IsValidModuleName(name):
		code = diag.ModBadModuleName
		why = fmt.Sprintf("module name %q is not a valid identifier", name)
	case name == StdlibModuleName:
		code = diag.ModStdlibModuleName
		why = fmt.Sprintf("module name %q is reserved for the standard library", name)
	default:
		return name, true
	}

	if action.NeedsProperModuleName(o.RequestedAction) {
		diag.ReportError(r, code, subject, why).
			WithNote(o.RequestedAction.String(), "this action needs a proper module name").
			Emit()
		return name, false
	}
	diag.ReportInfo(r, diag.ModFallbackModuleName, subject,
		fmt.Sprintf("%s; using %q", why, FallbackModuleName)).Emit()
	return FallbackModuleName, true
}
