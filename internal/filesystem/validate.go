package filesystem

import (
	"os"

	"github.com/M-D-Ai-Academy-LLC/open-agent-system/pkg/models"
)

// Validate confirms that path exists and points at a regular file.
func Validate(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &models.NotFoundError{Path: path}
	}

	if !info.Mode().IsRegular() {
		return &models.NotAFileError{Path: path}
	}

	return nil
}
