package analyzer

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/M-D-Ai-Academy-LLC/open-agent-system/internal/config"
	"github.com/M-D-Ai-Academy-LLC/open-agent-system/internal/filesystem"
	"github.com/M-D-Ai-Academy-LLC/open-agent-system/pkg/models"
)

// Analyzer computes content metrics for the configured input file.
type Analyzer struct {
	config *config.Config
	logger *zap.Logger
}

// New creates a new analyzer.
func New(cfg *config.Config, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		config: cfg,
		logger: logger,
	}
}

// Analyze reads the input file once and derives all metrics from the
// same content snapshot.
func (a *Analyzer) Analyze() (*models.AnalysisResult, error) {
	path := a.config.InputPath
	a.logger.Debug("Processing file", zap.String("path", path))

	content, err := filesystem.ReadText(path)
	if err != nil {
		return nil, &models.ProcessingError{Err: err}
	}

	result := &models.AnalysisResult{
		File:       path,
		Lines:      countLines(content),
		Words:      len(strings.Fields(content)),
		Characters: utf8.RuneCountInString(content),
		Encoding:   models.EncodingUTF8,
		Status:     models.StatusSuccess,
	}

	a.logger.Debug("Processing complete",
		zap.Int("lines", result.Lines),
		zap.Int("words", result.Words),
		zap.Int("characters", result.Characters))

	return result, nil
}

// countLines counts newline-delimited segments. \n, \r\n and \r each
// terminate a line; a final separator does not open an empty segment,
// and an unterminated last line still counts.
func countLines(content string) int {
	if content == "" {
		return 0
	}

	n := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			n++
		case '\r':
			n++
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
		}
	}

	if last := content[len(content)-1]; last != '\n' && last != '\r' {
		n++
	}

	return n
}
