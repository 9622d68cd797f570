// Package filesystem discovers template inputs in a project tree.
package filesystem

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// defaultIgnoreDirs are directories that never contain template inputs.
var defaultIgnoreDirs = []string{
	"node_modules", "vendor", ".git", ".svn", ".hg",
	"dist", "build", "bin", "tmp", "temp",
	".idea", ".vscode", ".vs",
}

// DiscoverOptions configures template discovery.
type DiscoverOptions struct {
	Extension  string   // template extension to match (default ".tmpl")
	IgnoreDirs []string // extra directories to skip, beyond the defaults
}

// DiscoverTemplates walks rootPath and returns the absolute paths of every
// template file, in deterministic (sorted) order. Hidden directories, common
// build/tool directories, and any extra ignores are skipped — in particular
// callers should pass the generation cache directory so previously generated
// files are never picked up as inputs.
func DiscoverTemplates(rootPath string, opts DiscoverOptions) ([]string, error) {
	ext := opts.Extension
	if ext == "" {
		ext = ".tmpl"
	}

	ignore := make(map[string]bool, len(defaultIgnoreDirs)+len(opts.IgnoreDirs))
	for _, d := range defaultIgnoreDirs {
		ignore[d] = true
	}
	for _, d := range opts.IgnoreDirs {
		ignore[d] = true
	}

	var templates []string
	err := filepath.Walk(rootPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path == rootPath {
				return nil
			}
			if strings.HasPrefix(info.Name(), ".") || ignore[info.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(info.Name(), ext) {
			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			templates = append(templates, abs)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(templates)
	return templates, nil
}
