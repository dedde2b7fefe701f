package frontend

import (
	"fmt"

	"frontend/internal/action"
	"frontend/internal/diag"
)

type unusedPath struct {
	code   diag.Code
	flag   string
	path   string
	unused func(*Options) bool
}

func (o *Options) unusedPaths() []unusedPath {
	return []unusedPath{
		{diag.OptUnusedDependenciesPath, "-emit-dependencies-path", o.DependenciesFilePath, (*Options).HasUnusedDependenciesFilePath},
		{diag.OptUnusedHeaderPath, "-emit-objc-header-path", o.HeaderOutputPath, (*Options).HasUnusedHeaderOutputPath},
		{diag.OptUnusedModulePath, "-emit-module-path", o.ModuleOutputPath, (*Options).HasUnusedModuleOutputPath},
		{diag.OptUnusedModuleDocPath, "-emit-module-doc-path", o.ModuleDocOutputPath, (*Options).HasUnusedModuleDocOutputPath},
		{diag.OptUnusedLoadedModuleTrace, "-emit-loaded-module-trace-path", o.LoadedModuleTracePath, (*Options).HasUnusedLoadedModuleTracePath},
	}
}

// Validate reports configuration the requested action cannot honour and
// resolves the module name. Unused paths are warnings; only a module name
// the action cannot live with makes ok false.
func (o *Options) Validate(r diag.Reporter) (moduleName string, ok bool) {
	act := o.RequestedAction
	for _, u := range o.unusedPaths() {
		if !u.unused(o) {
			continue
		}
		diag.ReportWarning(r, u.code, u.path,
			fmt.Sprintf("%s is ignored: action %s does not write it", u.flag, act)).
			Emit()
	}

	if o.IsOutputFileDirectory() {
		if _, hasFile := action.PrincipalOutputSuffix(act); hasFile {
			diag.ReportWarning(r, diag.OptOutputIsDirectory, o.SingleOutputFilename(),
				fmt.Sprintf("output of %s names a directory", act)).Emit()
		}
	}

	return o.ResolveModuleName(r)
}
