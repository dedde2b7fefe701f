// Package config loads frontend.toml, the file form of frontend options.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"frontend/internal/action"
	"frontend/internal/frontend"
	"frontend/internal/inputs"
)

// FileName is the name of the config file looked up by Find.
const FileName = "frontend.toml"

// Config mirrors frontend.toml.
type Config struct {
	Frontend FrontendSection `toml:"frontend"`
	Outputs  OutputsSection  `toml:"outputs"`
	Inputs   InputsSection   `toml:"inputs"`
}

type FrontendSection struct {
	Action     string `toml:"action"`
	ModuleName string `toml:"module-name"`
}

type OutputsSection struct {
	Files             []string `toml:"files"`
	Module            string   `toml:"module"`
	ModuleDoc         string   `toml:"module-doc"`
	Header            string   `toml:"header"`
	Dependencies      string   `toml:"dependencies"`
	LoadedModuleTrace string   `toml:"loaded-module-trace"`
}

type InputsSection struct {
	Files   []string `toml:"files"`
	Primary []string `toml:"primary"`
}

// Find walks up from startDir to locate frontend.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes the config at path. Relative paths inside the file are
// resolved against its directory.
func Load(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("frontend", "action") {
		if _, err := action.ParseKind(cfg.Frontend.Action); err != nil {
			return Config{}, fmt.Errorf("%s: [frontend].action: %w", path, err)
		}
	}
	cfg.resolve(filepath.Dir(path))
	return cfg, nil
}

func (c *Config) resolve(base string) {
	abs := func(p string) string {
		if p == "" || p == "-" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, filepath.FromSlash(p))
	}
	absAll := func(ps []string) {
		for i := range ps {
			ps[i] = abs(ps[i])
		}
	}
	absAll(c.Outputs.Files)
	c.Outputs.Module = abs(c.Outputs.Module)
	c.Outputs.ModuleDoc = abs(c.Outputs.ModuleDoc)
	c.Outputs.Header = abs(c.Outputs.Header)
	c.Outputs.Dependencies = abs(c.Outputs.Dependencies)
	c.Outputs.LoadedModuleTrace = abs(c.Outputs.LoadedModuleTrace)
	absAll(c.Inputs.Files)
	absAll(c.Inputs.Primary)
}

// Options converts the config into frontend options. An empty action
// means action.None.
func (c Config) Options() (frontend.Options, error) {
	kind := action.None
	if c.Frontend.Action != "" {
		k, err := action.ParseKind(c.Frontend.Action)
		if err != nil {
			return frontend.Options{}, err
		}
		kind = k
	}
	set, err := inputs.NewSet(c.Inputs.Files, c.Inputs.Primary)
	if err != nil {
		return frontend.Options{}, err
	}
	return frontend.Options{
		RequestedAction:       kind,
		ModuleName:            c.Frontend.ModuleName,
		OutputFilenames:       append([]string(nil), c.Outputs.Files...),
		ModuleOutputPath:      c.Outputs.Module,
		ModuleDocOutputPath:   c.Outputs.ModuleDoc,
		HeaderOutputPath:      c.Outputs.Header,
		DependenciesFilePath:  c.Outputs.Dependencies,
		LoadedModuleTracePath: c.Outputs.LoadedModuleTrace,
		Inputs:                set,
	}, nil
}
