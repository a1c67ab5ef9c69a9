package report

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/M-D-Ai-Academy-LLC/open-agent-system/internal/config"
	"github.com/M-D-Ai-Academy-LLC/open-agent-system/pkg/models"
)

// Generator renders analysis results in the configured output format.
type Generator struct {
	config *config.Config
	logger *zap.Logger
}

// NewGenerator creates a new report generator.
func NewGenerator(cfg *config.Config, logger *zap.Logger) *Generator {
	return &Generator{
		config: cfg,
		logger: logger,
	}
}

// Generate serializes the result and writes it to the configured
// destination. With no output file configured the serialized text goes
// to stdout followed by a newline.
func (g *Generator) Generate(result *models.AnalysisResult) error {
	var output string
	var err error

	switch g.config.GetFormat() {
	case config.FormatText:
		output = renderText(result)
	default:
		output, err = renderJSON(result)
	}
	if err != nil {
		return &models.ProcessingError{Err: err}
	}

	if g.config.OutputFile != "" {
		if err := os.WriteFile(g.config.OutputFile, []byte(output), 0644); err != nil {
			return &models.ProcessingError{Err: err}
		}
		g.logger.Info("Output written", zap.String("path", g.config.OutputFile))
		return nil
	}

	fmt.Println(output)
	return nil
}
