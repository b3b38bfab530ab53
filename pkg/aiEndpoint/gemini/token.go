package gemini

import (
	"context"
	"fmt"

	"github.com/golang/glog"
	"github.com/zicongmei/ai-prompt/pkg/prompt"
)

// CountTokens asks the Gemini model how many tokens text occupies.
func (c *Client) CountTokens(ctx context.Context, text string) (int, error) {
	glog.V(1).Infof("Requesting token count for prompt in model %q.", c.modelName)

	resp, err := c.client.Models.CountTokens(ctx, c.modelName, prompt.Build(text), nil)
	if err != nil {
		glog.Errorf("Failed to count tokens: %v", err)
		return 0, fmt.Errorf("failed to count tokens: %w", classifyError(err))
	}
	return int(resp.TotalTokens), nil
}
