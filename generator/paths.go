package generator

import (
	"path/filepath"
	"strings"
)

const (
	// TemplateExt is the extension marker that identifies template inputs.
	TemplateExt = ".tmpl"

	// generatedMarker replaces TemplateExt in output file names, so that
	// generated artifacts are recognizable at a glance.
	generatedMarker = ".generated"
)

// RelativePath strips the project root prefix from an absolute input path.
// The comparison is case-insensitive to tolerate host filesystems that
// preserve but ignore case. A path outside the project root is returned
// unchanged rather than treated as an error.
func RelativePath(absPath, projectRoot string) string {
	if projectRoot == "" {
		return absPath
	}
	if strings.HasPrefix(strings.ToLower(absPath), strings.ToLower(projectRoot)) {
		return absPath[len(projectRoot):]
	}
	return absPath
}

// OutputPath computes where the generated artifact for relPath lives.
// The result is always rooted under cacheDir: the relative path is stripped
// of any leading separator, the template extension marker (templateExt, or
// TemplateExt when empty) is replaced with the generated marker, "." and
// ".." segments are dropped so the join can never climb out of the cache
// root, and the backend's output extension is appended.
func OutputPath(relPath, cacheDir, templateExt, outputExt string) string {
	if templateExt == "" {
		templateExt = TemplateExt
	}

	trimmed := strings.TrimLeft(relPath, "/\\")
	renamed := strings.ReplaceAll(trimmed, templateExt, generatedMarker)

	segs := strings.FieldsFunc(renamed, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	kept := segs[:0]
	for _, seg := range segs {
		if seg != "." && seg != ".." {
			kept = append(kept, seg)
		}
	}

	return filepath.Join(cacheDir, filepath.Join(kept...)) + outputExt
}
