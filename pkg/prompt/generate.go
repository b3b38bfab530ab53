package prompt

import (
	"strings"

	"github.com/golang/glog"
	"github.com/zicongmei/ai-prompt/pkg/utils"
	"google.golang.org/genai"
)

// DefaultPrompt is sent when no prompt is supplied.
const DefaultPrompt = "1 + 1 = ?"

// Resolve returns the prompt text to send. Surrounding whitespace is dropped
// and an empty input falls back to DefaultPrompt.
func Resolve(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		glog.V(1).Infof("No prompt given, using default %q.", DefaultPrompt)
		return DefaultPrompt
	}
	glog.V(2).Infof("Using prompt (truncated): %q", utils.TruncateString(text, 100))
	return text
}

// Build wraps the prompt text into the single user turn sent to the model.
func Build(text string) []*genai.Content {
	return []*genai.Content{
		{
			Parts: []*genai.Part{
				{Text: text},
			},
			Role: "user",
		},
	}
}
