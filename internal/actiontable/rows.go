// Package actiontable renders the action classification table for humans
// (text), tools (json) and caches (msgpack).
package actiontable

import (
	"fmt"
	"strings"

	"frontend/internal/action"
)

// Row is the exported form of one classification.
type Row struct {
	Action                string `json:"action" msgpack:"action"`
	NeedsProperModuleName bool   `json:"needs_proper_module_name" msgpack:"needs_proper_module_name"`
	Immediate             bool   `json:"immediate" msgpack:"immediate"`
	Suffix                string `json:"suffix,omitempty" msgpack:"suffix,omitempty"`
	Dependencies          bool   `json:"dependencies" msgpack:"dependencies"`
	Header                bool   `json:"header" msgpack:"header"`
	LoadedModuleTrace     bool   `json:"loaded_module_trace" msgpack:"loaded_module_trace"`
	Module                bool   `json:"module" msgpack:"module"`
	ModuleDoc             bool   `json:"module_doc" msgpack:"module_doc"`
	Output                bool   `json:"output" msgpack:"output"`
	Textual               bool   `json:"textual" msgpack:"textual"`
}

// RowFor builds the row of k through the public predicates.
func RowFor(k action.Kind) Row {
	suffix, _ := action.PrincipalOutputSuffix(k)
	return Row{
		Action:                k.String(),
		NeedsProperModuleName: action.NeedsProperModuleName(k),
		Immediate:             action.IsImmediate(k),
		Suffix:                string(suffix),
		Dependencies:          action.CanEmitDependencies(k),
		Header:                action.CanEmitHeader(k),
		LoadedModuleTrace:     action.CanEmitLoadedModuleTrace(k),
		Module:                action.CanEmitModule(k),
		ModuleDoc:             action.CanEmitModuleDoc(k),
		Output:                action.ProducesOutput(k),
		Textual:               action.ProducesTextualOutput(k),
	}
}

// Rows returns rows for kinds, or for every kind when none are given.
func Rows(kinds ...action.Kind) []Row {
	if len(kinds) == 0 {
		kinds = action.All()
	}
	rows := make([]Row, 0, len(kinds))
	for _, k := range kinds {
		rows = append(rows, RowFor(k))
	}
	return rows
}

// Format selects an output encoding.
type Format uint8

const (
	FormatText Format = iota
	FormatJSON
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	}
	return "unknown"
}

// ParseFormat accepts text, json or msgpack.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "pretty":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	}
	return FormatText, fmt.Errorf("unknown format %q (want text, json or msgpack)", s)
}
