package action

import "fmt"

// Class is the full classification of one action.
type Class struct {
	// NeedsProperModuleName is set when the output is keyed by a
	// semantically valid module name.
	NeedsProperModuleName bool
	// Immediate actions execute code and never write a principal output.
	Immediate bool
	// Suffix of the principal output file; empty when there is none.
	Suffix Suffix

	EmitsDependencies      bool
	EmitsHeader            bool
	EmitsLoadedModuleTrace bool
	// EmitsModule also covers the module doc sidecar.
	EmitsModule bool

	ProducesOutput        bool
	ProducesTextualOutput bool
}

// HasSuffix reports whether the principal output is file-shaped.
func (c Class) HasSuffix() bool {
	return c.Suffix != ""
}

// Row templates shared by several kinds. The inert subset (none, the dumps
// and the immediate actions) never emits a sidecar of any kind.
var (
	inert = Class{}

	inertDump = Class{
		ProducesOutput:        true,
		ProducesTextualOutput: true,
	}

	inertImmediate = Class{
		Immediate: true,
	}

	// every sidecar, principal output keyed by module identity
	moduleKeyed = Class{
		NeedsProperModuleName:  true,
		EmitsDependencies:      true,
		EmitsHeader:            true,
		EmitsLoadedModuleTrace: true,
		EmitsModule:            true,
		ProducesOutput:         true,
	}

	// every sidecar, principal output only needs a file name
	codegen = Class{
		EmitsDependencies:      true,
		EmitsHeader:            true,
		EmitsLoadedModuleTrace: true,
		EmitsModule:            true,
		ProducesOutput:         true,
	}
)

func (c Class) with(suffix Suffix, textual bool) Class {
	c.Suffix = suffix
	c.ProducesTextualOutput = textual
	return c
}

// table is the single source of truth for every predicate in this package.
// Map literal keys are checked for duplicates by the compiler; init checks
// that every kind has a row.
var table = map[Kind]Class{
	None: inert,

	Parse: {
		EmitsDependencies:     true,
		EmitsHeader:           true,
		ProducesOutput:        true,
		ProducesTextualOutput: true,
	},
	Typecheck: {
		EmitsDependencies:      true,
		EmitsHeader:            true,
		EmitsLoadedModuleTrace: true,
		ProducesOutput:         true,
		ProducesTextualOutput:  true,
	},

	DumpParse:                  inertDump,
	DumpAST:                    inertDump,
	EmitSyntax:                 inertDump,
	DumpInterfaceHash:          inertDump,
	PrintAST:                   inertDump,
	DumpScopeMaps:              inertDump,
	DumpTypeRefinementContexts: inertDump,

	// A PCH carries dependencies only: no header, trace or module.
	EmitPCH: {
		NeedsProperModuleName: true,
		Suffix:                SuffixPCH,
		EmitsDependencies:     true,
		ProducesOutput:        true,
	},
	// Raw SIL cannot be serialized into a module.
	EmitSILGen: {
		NeedsProperModuleName:  true,
		Suffix:                 SuffixSIL,
		EmitsDependencies:      true,
		EmitsHeader:            true,
		EmitsLoadedModuleTrace: true,
		ProducesOutput:         true,
		ProducesTextualOutput:  true,
	},
	EmitSIL:        moduleKeyed.with(SuffixSIL, true),
	EmitSIBGen:     moduleKeyed.with(SuffixSIB, false),
	EmitSIB:        moduleKeyed.with(SuffixSIB, false),
	EmitModuleOnly: moduleKeyed.with(SuffixModule, false),
	MergeModules:   moduleKeyed.with(SuffixModule, false),

	Immediate: inertImmediate,
	REPL:      inertImmediate,

	EmitAssembly:        codegen.with(SuffixAssembly, true),
	EmitIR:              codegen.with(SuffixIR, true),
	EmitBC:              codegen.with(SuffixBitcode, false),
	EmitObject:          codegen.with(SuffixObject, false),
	EmitImportedModules: codegen.with(SuffixImportedModules, true),
}

func init() {
	if err := checkTable(table); err != nil {
		panic(err)
	}
}

func checkTable(t map[Kind]Class) error {
	for k := Kind(0); k < kindCount; k++ {
		if _, ok := t[k]; !ok {
			return fmt.Errorf("action: no classification for %s", k)
		}
	}
	for k := range t {
		if !k.Valid() {
			return fmt.Errorf("action: classification for unknown kind %d", uint8(k))
		}
	}
	return nil
}

// Classify returns the classification of k. It panics when k is outside
// the enumeration.
func Classify(k Kind) Class {
	c, ok := table[k]
	if !ok {
		panic(fmt.Sprintf("action: unknown kind %d", uint8(k)))
	}
	return c
}
