package frontend

import "frontend/internal/action"

// HasUnusedDependenciesFilePath reports a dependencies file path the requested action will not write.
func (o *Options) HasUnusedDependenciesFilePath() bool {
	return o.DependenciesFilePath != "" && !action.CanEmitDependencies(o.RequestedAction)
}

// HasUnusedHeaderOutputPath reports a header path the requested action will not write.
func (o *Options) HasUnusedHeaderOutputPath() bool {
	return o.HeaderOutputPath != "" && !action.CanEmitHeader(o.RequestedAction)
}

// HasUnusedLoadedModuleTracePath reports a loaded module trace path the requested action will not write.
func (o *Options) HasUnusedLoadedModuleTracePath() bool {
	return o.LoadedModuleTracePath != "" && !action.CanEmitLoadedModuleTrace(o.RequestedAction)
}

// HasUnusedModuleOutputPath reports a module output path the requested action will not write.
func (o *Options) HasUnusedModuleOutputPath() bool {
	return o.ModuleOutputPath != "" && !action.CanEmitModule(o.RequestedAction)
}

// HasUnusedModuleDocOutputPath reports a module doc path the requested action will not write.
func (o *Options) HasUnusedModuleDocOutputPath() bool {
	return o.ModuleDocOutputPath != "" && !action.CanEmitModuleDoc(o.RequestedAction)
}
