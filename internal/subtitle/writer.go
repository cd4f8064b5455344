package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SubRip format
type SRTWriter struct{}

func NewSRTWriter() *SRTWriter {
	return &SRTWriter{}
}

// Render builds the SRT document for the given words, one block per word in
// input order.
func Render(entries []WordTiming) (string, error) {
	var sb strings.Builder
	for i, entry := range entries {
		start, err := FormatTimestamp(entry.TimeStart)
		if err != nil {
			return "", fmt.Errorf("entry %d start: %w", i+1, err)
		}
		end, err := FormatTimestamp(entry.TimeEnd)
		if err != nil {
			return "", fmt.Errorf("entry %d end: %w", i+1, err)
		}

		// index (1-based)
		sb.WriteString(fmt.Sprintf("%d\n", i+1))

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(fmt.Sprintf("%s --> %s\n", start, end))

		sb.WriteString(entry.Word)
		sb.WriteString("\n\n")
	}

	return sb.String(), nil
}

// writes the words to an SRT file, replacing any existing file
func (w *SRTWriter) Write(entries []WordTiming, path string) error {
	content, err := Render(entries)
	if err != nil {
		return err
	}

	if err := ensureDir(path); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(content), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
