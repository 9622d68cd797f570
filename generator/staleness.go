package generator

import "os"

// NeedsRegeneration reports whether inputPath must be regenerated.
// True when the output does not exist, or when the input was modified
// strictly after the output (UTC comparison). Purely timestamp-based;
// content is never hashed.
func NeedsRegeneration(inputPath, outputPath string) bool {
	outInfo, err := os.Stat(outputPath)
	if err != nil {
		return true
	}
	inInfo, err := os.Stat(inputPath)
	if err != nil {
		// Unreadable input surfaces later as a generation failure; from the
		// staleness oracle's point of view it is simply stale.
		return true
	}
	return inInfo.ModTime().UTC().After(outInfo.ModTime().UTC())
}
