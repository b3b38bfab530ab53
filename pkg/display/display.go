package display

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang/glog"
	"github.com/yuin/goldmark"
)

const (
	FormatText = "text"
	FormatHTML = "html"
)

// WriteCompletion writes the model's completion to w in the requested format.
// Text output always ends with exactly one newline. HTML output renders the
// completion as markdown.
func WriteCompletion(w io.Writer, completion, format string) error {
	switch format {
	case "", FormatText:
		_, err := io.WriteString(w, strings.TrimRight(completion, "\n")+"\n")
		return err
	case FormatHTML:
		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(completion), &buf); err != nil {
			glog.Errorf("Failed to render completion as HTML: %v", err)
			return fmt.Errorf("failed to render completion: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// SaveTranscript writes the prompt and completion to a timestamped markdown
// file in dir and returns the file's path.
func SaveTranscript(dir, prompt, completion string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create transcript dir %q: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405.000000000")
	filePath := filepath.Join(dir, fmt.Sprintf("ai_prompt_%s.md", timestamp))

	content := fmt.Sprintf("## Prompt\n\n%s\n\n## Completion\n\n%s\n", prompt, strings.TrimRight(completion, "\n"))
	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		glog.Errorf("Failed to save transcript to %q: %v", filePath, err)
		return "", fmt.Errorf("failed to save transcript: %w", err)
	}
	glog.V(0).Infof("Transcript saved to %q", filePath)
	return filePath, nil
}
