package generator

import (
	"strings"
	"unicode"
)

// DeriveNamespace computes the dotted namespace for a generated file.
//
// An explicit override from the input descriptor always wins, verbatim.
// Otherwise the namespace is derived from the directory portion of the
// project-relative path: separators become dots, any other non-alphanumeric
// character becomes an underscore, and segments that would start with a
// digit get an underscore prepended so every segment stays a legal
// identifier. A file at the project root gets exactly rootNamespace, even
// when that is empty.
//
// Consecutive separators are preserved as consecutive dots rather than
// collapsed; callers that care should normalize their paths first.
func DeriveNamespace(override, relPath, rootNamespace string) string {
	if override != "" {
		return override
	}

	dir := directoryOf(relPath)
	dir = strings.Trim(dir, "/\\")
	if dir == "" {
		return rootNamespace
	}

	var b strings.Builder
	b.Grow(len(dir) + 2)
	prevBoundary := true // start of string counts as a segment boundary
	for _, r := range dir {
		switch {
		case r == '/' || r == '\\':
			b.WriteRune('.')
			prevBoundary = true
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if prevBoundary && unicode.IsDigit(r) {
				b.WriteRune('_')
			}
			b.WriteRune(r)
			prevBoundary = false
		default:
			b.WriteRune('_')
			prevBoundary = false
		}
	}

	ns := b.String()
	if rootNamespace != "" {
		return rootNamespace + "." + ns
	}
	return ns
}

// directoryOf returns the directory portion of a relative path, handling
// both separator styles without touching the rest of the string.
func directoryOf(relPath string) string {
	idx := strings.LastIndexAny(relPath, "/\\")
	if idx < 0 {
		return ""
	}
	return relPath[:idx]
}
