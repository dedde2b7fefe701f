package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Неиспользуемые пути вывода
	OptInfo                    Code = 1000
	OptUnusedDependenciesPath  Code = 1001
	OptUnusedHeaderPath        Code = 1002
	OptUnusedModulePath        Code = 1003
	OptUnusedModuleDocPath     Code = 1004
	OptUnusedLoadedModuleTrace Code = 1005
	OptOutputIsDirectory       Code = 1006

	// Имя модуля
	ModInfo               Code = 2000
	ModBadModuleName      Code = 2001
	ModStdlibModuleName   Code = 2002
	ModFallbackModuleName Code = 2003

	// Конфигурация
	CfgInfo      Code = 3000
	CfgNoPrimary Code = 3001
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	OptInfo:                    "Output option information",
	OptUnusedDependenciesPath:  "Dependencies file path is not used by this action",
	OptUnusedHeaderPath:        "Generated header path is not used by this action",
	OptUnusedModulePath:        "Module output path is not used by this action",
	OptUnusedModuleDocPath:     "Module doc output path is not used by this action",
	OptUnusedLoadedModuleTrace: "Loaded module trace path is not used by this action",
	OptOutputIsDirectory:       "Output file is a directory",

	ModInfo:               "Module name information",
	ModBadModuleName:      "Module name is not a valid identifier",
	ModStdlibModuleName:   "Module name is reserved for the standard library",
	ModFallbackModuleName: "Module name replaced by fallback",

	CfgInfo:      "Configuration information",
	CfgNoPrimary: "Primary input does not name an input file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("OPT%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("MOD%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("CFG%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
