package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang/glog"
	"github.com/zicongmei/ai-prompt/pkg/aiEndpoint"
	"github.com/zicongmei/ai-prompt/pkg/prompt"
	"github.com/zicongmei/ai-prompt/pkg/utils"
	"google.golang.org/genai"
)

// ErrEmptyModel is returned by NewClient when no model name is given.
var ErrEmptyModel = errors.New("gemini: model name is required")

// Options configures a Client.
type Options struct {
	APIKey     string
	Model      string
	APIVersion string // defaults to v1beta
	BaseURL    string // empty means the public Gemini endpoint
	HTTPClient *http.Client
}

// Client implements the AIEngine interface for the Gemini AI.
type Client struct {
	client    *genai.Client
	modelName string
}

var _ aiEndpoint.AIEngine = (*Client)(nil)

// NewClient initializes a new Gemini AI client bound to opts.APIKey.
// No request is sent until SendPrompt or CountTokens is called.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	if err := validateAPIKey(opts.APIKey); err != nil {
		glog.Errorf("Refusing to create Gemini client: %v", err)
		return nil, err
	}
	if strings.TrimSpace(opts.Model) == "" {
		return nil, ErrEmptyModel
	}

	apiVersion := opts.APIVersion
	if apiVersion == "" {
		apiVersion = "v1beta"
	}

	cfg := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			APIVersion: apiVersion,
			BaseURL:    opts.BaseURL,
		},
	}
	glog.V(1).Infof("Gemini client initializing with API key %s.", utils.RedactSecret(opts.APIKey))
	if opts.BaseURL != "" {
		glog.V(1).Infof("Using custom Gemini base URL %q.", opts.BaseURL)
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		glog.Errorf("Failed to create Gemini client: %v", err)
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	glog.V(0).Infof("Gemini client created, using %q model.", opts.Model)

	return &Client{
		client:    client,
		modelName: opts.Model,
	}, nil
}

// Model returns the model name requests are sent to.
func (c *Client) Model() string {
	return c.modelName
}

// SendPrompt sends a string prompt to the Gemini AI endpoint and returns
// the AI's response as a string.
func (c *Client) SendPrompt(ctx context.Context, text string) (string, error) {
	glog.V(1).Info("Sending prompt to Gemini AI...")
	glog.V(2).Infof("Prompt content (truncated): %q", utils.TruncateString(text, 200))

	resp, err := c.client.Models.GenerateContent(ctx, c.modelName, prompt.Build(text), nil)
	if err != nil {
		glog.Errorf("Failed to generate content from Gemini: %v", err)
		return "", fmt.Errorf("failed to generate content from Gemini: %w", classifyError(err))
	}

	result := resp.Text()
	if strings.TrimSpace(result) == "" {
		glog.Warning("Gemini response was empty.")
		return "", fmt.Errorf("gemini model %q: %w", c.modelName, aiEndpoint.ErrEmptyResponse)
	}

	glog.V(1).Infof("Received response from Gemini (length: %d).", len(result))
	glog.V(2).Infof("Full Gemini response (truncated): %q", utils.TruncateString(result, 200))

	return result, nil
}

// Close is a no-op; the genai client holds no resources that need releasing.
func (c *Client) Close() error {
	return nil
}
