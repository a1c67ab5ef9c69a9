package report

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/M-D-Ai-Academy-LLC/open-agent-system/pkg/models"
)

// renderJSON serializes a result as a pretty-printed JSON object with
// two-space indentation. HTML escaping is disabled so non-ASCII and
// markup characters survive literally.
func renderJSON(result *models.AnalysisResult) (string, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return "", err
	}

	// Encode appends a newline the renderer does not want.
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
