package action

import (
	"fmt"
	"strings"
)

// Kind is a pipeline stage the frontend can be asked to run.
type Kind uint8

const (
	// None means no action was requested.
	None Kind = iota
	// Parse parses input files and stops.
	Parse
	// Typecheck parses and type-checks input files.
	Typecheck
	// DumpParse dumps the parsed AST.
	DumpParse
	// DumpAST dumps the type-checked AST.
	DumpAST
	// EmitSyntax emits the syntax tree.
	EmitSyntax
	// DumpInterfaceHash dumps the interface hash of the primary file.
	DumpInterfaceHash
	// PrintAST pretty-prints the AST as source.
	PrintAST
	// DumpScopeMaps dumps scope maps.
	DumpScopeMaps
	// DumpTypeRefinementContexts dumps type refinement contexts.
	DumpTypeRefinementContexts

	// EmitPCH emits a precompiled bridging header.
	EmitPCH
	// EmitSILGen emits raw SIL.
	EmitSILGen
	// EmitSIL emits canonical SIL.
	EmitSIL
	// EmitSIBGen emits serialized raw SIL.
	EmitSIBGen
	// EmitSIB emits serialized canonical SIL.
	EmitSIB
	// EmitModuleOnly emits the serialized module and nothing else.
	EmitModuleOnly
	// MergeModules merges partial modules into one serialized module.
	MergeModules

	// Immediate runs the compiled code in-process.
	Immediate
	// REPL starts an interactive session.
	REPL

	// EmitAssembly emits native assembly.
	EmitAssembly
	// EmitIR emits textual LLVM IR.
	EmitIR
	// EmitBC emits LLVM bitcode.
	EmitBC
	// EmitObject emits a native object file.
	EmitObject
	// EmitImportedModules emits the list of imported modules.
	EmitImportedModules

	kindCount
)

var kindNames = [...]string{
	None:                       "none",
	Parse:                      "parse",
	Typecheck:                  "typecheck",
	DumpParse:                  "dump-parse",
	DumpAST:                    "dump-ast",
	EmitSyntax:                 "emit-syntax",
	DumpInterfaceHash:          "dump-interface-hash",
	PrintAST:                   "print-ast",
	DumpScopeMaps:              "dump-scope-maps",
	DumpTypeRefinementContexts: "dump-type-refinement-contexts",
	EmitPCH:                    "emit-pch",
	EmitSILGen:                 "emit-silgen",
	EmitSIL:                    "emit-sil",
	EmitSIBGen:                 "emit-sibgen",
	EmitSIB:                    "emit-sib",
	EmitModuleOnly:             "emit-module",
	MergeModules:               "merge-modules",
	Immediate:                  "immediate",
	REPL:                       "repl",
	EmitAssembly:               "emit-assembly",
	EmitIR:                     "emit-ir",
	EmitBC:                     "emit-bc",
	EmitObject:                 "emit-object",
	EmitImportedModules:        "emit-imported-modules",
}

// compile-time check: one name per kind
var _ = [1]struct{}{}[len(kindNames)-int(kindCount)]

// driver flag spellings that differ from the canonical name
var flagAliases = map[string]Kind{
	"S":         EmitAssembly,
	"c":         EmitObject,
	"interpret": Immediate,
	"i":         Immediate,
}

// All returns every kind in declaration order.
func All() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Count reports the number of kinds in the enumeration.
func Count() int {
	return int(kindCount)
}

// Valid reports whether k belongs to the enumeration.
func (k Kind) Valid() bool {
	return k < kindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("action: unknown kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind resolves a canonical action name or a driver flag spelling
// ("-emit-silgen", "-c", "-S") to a Kind.
func ParseKind(name string) (Kind, error) {
	trimmed := strings.TrimLeft(strings.TrimSpace(name), "-")
	if trimmed == "" {
		return None, fmt.Errorf("action: empty action name")
	}
	if k, ok := flagAliases[trimmed]; ok {
		return k, nil
	}
	lower := strings.ToLower(trimmed)
	for k, n := range kindNames {
		if n == lower {
			return Kind(k), nil
		}
	}
	return None, fmt.Errorf("action: unknown action %q", name)
}
