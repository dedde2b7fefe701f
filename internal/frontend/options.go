package frontend

import (
	"os"
	"path/filepath"
	"strings"

	"frontend/internal/action"
	"frontend/internal/inputs"
)

// stdoutPath is the output file name that means "write to stdout".
const stdoutPath = "-"

// InputSet answers the questions Options asks about its inputs.
type InputSet interface {
	UniquePrimaryInput() (inputs.File, bool)
	First() (inputs.File, bool)
	Len() int
}

// Options is the read-only configuration of one frontend invocation.
type Options struct {
	RequestedAction action.Kind
	ModuleName      string

	// OutputFilenames are the principal outputs, one per primary input.
	OutputFilenames []string

	ModuleOutputPath      string
	ModuleDocOutputPath   string
	HeaderOutputPath      string
	DependenciesFilePath  string
	LoadedModuleTracePath string

	Inputs InputSet
}

// HasNamedOutputFile reports whether exactly one output file is given and it
// is not stdout.
func (o *Options) HasNamedOutputFile() bool {
	return len(o.OutputFilenames) == 1 && o.OutputFilenames[0] != stdoutPath
}

// SingleOutputFilename returns the only output filename, or "" when there is
// not exactly one.
func (o *Options) SingleOutputFilename() string {
	if len(o.OutputFilenames) != 1 {
		return ""
	}
	return o.OutputFilenames[0]
}

func (o *Options) uniquePrimaryInput() (inputs.File, bool) {
	if o.Inputs == nil {
		return inputs.File{}, false
	}
	return o.Inputs.UniquePrimaryInput()
}

// ForAllOutputPaths calls fn for every path this invocation may write:
// principal outputs (except for module-only actions, whose principal output
// is the module itself) followed by the non-empty module, module doc and
// header paths.
func (o *Options) ForAllOutputPaths(fn func(path string)) {
	if o.RequestedAction != action.EmitModuleOnly && o.RequestedAction != action.MergeModules {
		for _, name := range o.OutputFilenames {
			fn(name)
		}
	}
	for _, next := range []string{o.ModuleOutputPath, o.ModuleDocOutputPath, o.HeaderOutputPath} {
		if next != "" {
			fn(next)
		}
	}
}

// OutputPaths collects ForAllOutputPaths into a slice.
func (o *Options) OutputPaths() []string {
	var out []string
	o.ForAllOutputPaths(func(p string) { out = append(out, p) })
	return out
}

// OriginalPath is the base name for files placed next to the output, such as
// serialized diagnostics. The named output file wins, then the file name of
// the unique primary input, then the module name.
func (o *Options) OriginalPath() string {
	if o.HasNamedOutputFile() {
		return o.SingleOutputFilename()
	}
	if input, ok := o.uniquePrimaryInput(); ok {
		return filepath.Base(input.Path)
	}
	return o.ModuleName
}

// IsOutputFileDirectory reports whether the named output file is an existing
// directory. Stat failures read as false.
func (o *Options) IsOutputFileDirectory() bool {
	if !o.HasNamedOutputFile() {
		return false
	}
	info, err := os.Stat(o.SingleOutputFilename())
	return err == nil && info.IsDir()
}

// PrincipalOutputPath swaps the extension of base for the suffix of the
// requested action. ok is false when the action has no file-shaped output.
func (o *Options) PrincipalOutputPath(base string) (path string, ok bool) {
	suffix, ok := action.PrincipalOutputSuffix(o.RequestedAction)
	if !ok {
		return "", false
	}
	return replaceExt(base, suffix), true
}

// ModuleDocPath returns the configured module doc path, or one derived from
// the module output path when only that is set.
func (o *Options) ModuleDocPath() string {
	if o.ModuleDocOutputPath != "" || o.ModuleOutputPath == "" {
		return o.ModuleDocOutputPath
	}
	return replaceExt(o.ModuleOutputPath, action.SuffixModuleDoc)
}

func replaceExt(path string, suffix action.Suffix) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + suffix.Ext()
}
