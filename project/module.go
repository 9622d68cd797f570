// Package project inspects the host project to derive generation defaults.
package project

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"unicode"

	"golang.org/x/mod/modfile"
)

// ModuleInfo contains information from go.mod.
type ModuleInfo struct {
	Path      string // Module path (e.g., "github.com/user/repo")
	GoVersion string // Go version requirement (e.g., "1.25")
}

// DetectModule reads go.mod and returns module information.
// Returns an error if go.mod doesn't exist or is invalid.
func DetectModule(rootPath string) (*ModuleInfo, error) {
	modPath := filepath.Join(rootPath, "go.mod")
	data, err := os.ReadFile(modPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("go.mod not found in %s", rootPath)
		}
		return nil, fmt.Errorf("reading go.mod: %w", err)
	}

	modFile, err := modfile.Parse(modPath, data, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing go.mod: %w", err)
	}

	info := &ModuleInfo{
		Path: modFile.Module.Mod.Path,
	}

	if modFile.Go != nil {
		info.GoVersion = modFile.Go.Version
	}

	return info, nil
}

// RootNamespace derives a default root namespace from the module path:
// the final path element with non-alphanumeric characters replaced by
// underscores, guarded against a leading digit. Used when razorgen.yml
// doesn't set one explicitly.
func (m *ModuleInfo) RootNamespace() string {
	base := path.Base(m.Path)
	if base == "." || base == "/" || base == "" {
		return ""
	}

	runes := []rune(base)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			runes[i] = '_'
		}
	}
	if unicode.IsDigit(runes[0]) {
		return "_" + string(runes)
	}
	return string(runes)
}
