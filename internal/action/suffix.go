package action

// Suffix is the file extension (without the dot) of a principal output.
type Suffix string

const (
	SuffixPCH             Suffix = "pch"
	SuffixSIL             Suffix = "sil"
	SuffixSIB             Suffix = "sib"
	SuffixModule          Suffix = "swiftmodule"
	SuffixModuleDoc       Suffix = "swiftdoc"
	SuffixAssembly        Suffix = "s"
	SuffixIR              Suffix = "ll"
	SuffixBitcode         Suffix = "bc"
	SuffixObject          Suffix = "o"
	SuffixImportedModules Suffix = "importedmodules"
)

// Ext returns the suffix with a leading dot, or "" for the empty suffix.
func (s Suffix) Ext() string {
	if s == "" {
		return ""
	}
	return "." + string(s)
}
