package splitter

import (
	"strings"

	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/internal/models"
)

type SplitterConfig struct {
	ChunkSize int // segment length in runes
}

// Splitter cuts a document into fixed-size non-overlapping segments. The
// chunk set is deterministic for a given corpus; a changed corpus means a
// full rebuild, never an incremental patch.
type Splitter struct {
	config SplitterConfig
}

func NewWithConfig(config SplitterConfig) Splitter {
	if config.ChunkSize == 0 {
		config.ChunkSize = 1000
	}
	return Splitter{config: config}
}

// Split segments the text into chunks of at most ChunkSize runes with zero
// overlap. Positions are dense from zero. A trailing remainder shorter than
// ChunkSize is kept; empty input yields no chunks.
func (s *Splitter) Split(text string) []models.FaqChunk {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var chunks []models.FaqChunk

	for start := 0; start < len(runes); start += s.config.ChunkSize {
		end := start + s.config.ChunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, models.FaqChunk{
			Text:     string(runes[start:end]),
			Position: len(chunks),
		})
	}

	return chunks
}
