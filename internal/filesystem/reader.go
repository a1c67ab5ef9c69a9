package filesystem

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// ReadText reads the whole file in one operation and decodes it as
// UTF-8 text.
func ReadText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	if !utf8.Valid(content) {
		return "", fmt.Errorf("invalid UTF-8 content in %s", path)
	}

	return string(content), nil
}
