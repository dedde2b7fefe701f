package action

// NeedsProperModuleName reports whether k requires a semantically valid
// module name. Final codegen actions (assembly, IR, bitcode, object,
// imported modules) only need a file name and report false.
func NeedsProperModuleName(k Kind) bool {
	return Classify(k).NeedsProperModuleName
}

// IsImmediate reports whether k runs compiled code directly without
// writing a principal output file.
func IsImmediate(k Kind) bool {
	return Classify(k).Immediate
}

// PrincipalOutputSuffix returns the suffix of the principal output of k.
// ok is false when k has no file-shaped principal output.
func PrincipalOutputSuffix(k Kind) (suffix Suffix, ok bool) {
	c := Classify(k)
	return c.Suffix, c.HasSuffix()
}

// CanEmitDependencies reports whether k can write a dependencies file.
func CanEmitDependencies(k Kind) bool {
	return Classify(k).EmitsDependencies
}

// CanEmitHeader reports whether k can write a generated header.
func CanEmitHeader(k Kind) bool {
	return Classify(k).EmitsHeader
}

// CanEmitLoadedModuleTrace reports whether k can write a loaded module trace.
func CanEmitLoadedModuleTrace(k Kind) bool {
	return Classify(k).EmitsLoadedModuleTrace
}

// CanEmitModule reports whether k can write a serialized module.
func CanEmitModule(k Kind) bool {
	return Classify(k).EmitsModule
}

// CanEmitModuleDoc follows CanEmitModule: the doc file is a module sidecar.
func CanEmitModuleDoc(k Kind) bool {
	return CanEmitModule(k)
}

// ProducesOutput reports whether k produces any output at all.
func ProducesOutput(k Kind) bool {
	return Classify(k).ProducesOutput
}

// ProducesTextualOutput reports whether the output of k is text.
func ProducesTextualOutput(k Kind) bool {
	return Classify(k).ProducesTextualOutput
}
