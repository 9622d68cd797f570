package generator

import (
	"fmt"
	"os"
	"path/filepath"
)

// utf8BOM is the byte-order-mark preamble downstream consumers sniff to
// recognize generated artifacts. The exact byte layout is a compatibility
// requirement.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Encode serializes generated text as UTF-8 prefixed with the BOM.
func Encode(text string) []byte {
	buf := make([]byte, 0, len(utf8BOM)+len(text))
	buf = append(buf, utf8BOM...)
	return append(buf, text...)
}

// WriteOutput writes the full byte sequence to path, creating parent
// directories as needed and replacing any existing file.
func WriteOutput(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
