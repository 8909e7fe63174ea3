package vision

import (
	"strings"

	"github.com/vinolens/backend/internal/domain"
)

// minBlockConfidence drops recognition blocks too garbled to help: below
// this the block is more likely reflection glare than label text
const minBlockConfidence = 0.4

// MapToRawText flattens a recognition response into the single raw-text
// string the enrichment pipeline consumes. Blocks keep their reading order;
// low-confidence blocks are skipped.
func MapToRawText(recognition *domain.RecognitionResponse) string {
	if recognition == nil {
		return ""
	}

	var parts []string
	for _, block := range recognition.Blocks {
		text := strings.TrimSpace(block.Text)
		if text == "" || block.Confidence < minBlockConfidence {
			continue
		}
		parts = append(parts, text)
	}

	return strings.Join(parts, " ")
}
