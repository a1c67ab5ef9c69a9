package models

// Values reported for every successfully analyzed file.
const (
	EncodingUTF8  = "utf-8"
	StatusSuccess = "success"
)

// AnalysisResult contains the metrics computed for one input file.
// It is created once by the analyzer and never mutated afterwards.
type AnalysisResult struct {
	File       string `json:"file"`
	Lines      int    `json:"lines"`
	Words      int    `json:"words"`
	Characters int    `json:"characters"`
	Encoding   string `json:"encoding"`
	Status     string `json:"status"`
}
