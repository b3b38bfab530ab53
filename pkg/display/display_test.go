package display

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteCompletion(t *testing.T) {
	tests := []struct {
		name       string
		completion string
		format     string
		want       string
		wantErr    bool
	}{
		{name: "text adds newline", completion: "2", format: FormatText, want: "2\n"},
		{name: "text keeps single newline", completion: "2\n\n", format: FormatText, want: "2\n"},
		{name: "empty format is text", completion: "2", format: "", want: "2\n"},
		{name: "html", completion: "**2**", format: FormatHTML, want: "<p><strong>2</strong></p>\n"},
		{name: "unknown", completion: "2", format: "pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := WriteCompletion(&buf, tt.completion, tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatal("WriteCompletion() expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("WriteCompletion() unexpected error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("WriteCompletion() wrote %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestSaveTranscript(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "transcripts")

	path, err := SaveTranscript(dir, "1 + 1 = ?", "2\n")
	if err != nil {
		t.Fatalf("SaveTranscript() unexpected error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("transcript written to %q, want inside %q", path, dir)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read transcript: %v", err)
	}
	want := "## Prompt\n\n1 + 1 = ?\n\n## Completion\n\n2\n"
	if string(content) != want {
		t.Errorf("transcript = %q, want %q", content, want)
	}
	if !strings.HasSuffix(path, ".md") {
		t.Errorf("transcript path %q should end in .md", path)
	}
}
