package report

import (
	"fmt"
	"strings"

	"github.com/M-D-Ai-Academy-LLC/open-agent-system/pkg/models"
)

// renderText formats a result as one "key: value" line per field, in
// the same field order as the JSON rendering, with no trailing newline.
func renderText(result *models.AnalysisResult) string {
	lines := []string{
		fmt.Sprintf("file: %s", result.File),
		fmt.Sprintf("lines: %d", result.Lines),
		fmt.Sprintf("words: %d", result.Words),
		fmt.Sprintf("characters: %d", result.Characters),
		fmt.Sprintf("encoding: %s", result.Encoding),
		fmt.Sprintf("status: %s", result.Status),
	}

	return strings.Join(lines, "\n")
}
