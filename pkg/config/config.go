package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/zicongmei/ai-prompt/pkg/display"
	"github.com/zicongmei/ai-prompt/pkg/prompt"
)

const (
	// APIKeyEnv is the environment variable holding the Gemini credential.
	APIKeyEnv  = "GEMINI_API_KEY"
	ModelEnv   = "GEMINI_MODEL"
	BaseURLEnv = "GEMINI_BASE_URL"

	DefaultModel      = "gemini-2.0-flash"
	DefaultAPIVersion = "v1beta"
)

// ErrCredentialMissing is matched by every CredentialMissingError.
var ErrCredentialMissing = errors.New("credential missing")

var (
	ErrEmptyModel     = errors.New("model must not be empty")
	ErrInvalidTimeout = errors.New("timeout must not be negative")
	ErrUnknownFormat  = errors.New("unknown output format")
)

// CredentialMissingError reports that the named variable was unset or blank.
type CredentialMissingError struct {
	Key string
}

func (e *CredentialMissingError) Error() string {
	return fmt.Sprintf("%s is not set or empty", e.Key)
}

func (e *CredentialMissingError) Is(target error) bool {
	return target == ErrCredentialMissing
}

// Config holds everything the prompt runner needs. It is built once at the
// entry point and passed down explicitly.
type Config struct {
	APIKey      string
	Model       string
	Prompt      string
	APIVersion  string
	BaseURL     string
	Timeout     time.Duration
	Debug       bool
	CountTokens bool
	Format      string
	SaveDir     string
}

// FromEnv builds a Config from the given lookup function, usually os.LookupEnv.
// Values that are not in the environment get their defaults.
func FromEnv(lookup func(string) (string, bool)) Config {
	return Config{
		APIKey:     envOrDefault(lookup, APIKeyEnv, ""),
		Model:      envOrDefault(lookup, ModelEnv, DefaultModel),
		Prompt:     prompt.DefaultPrompt,
		APIVersion: DefaultAPIVersion,
		BaseURL:    envOrDefault(lookup, BaseURLEnv, ""),
		Format:     display.FormatText,
	}
}

// Validate checks the config before any client is constructed.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return &CredentialMissingError{Key: APIKeyEnv}
	}
	if strings.TrimSpace(c.Model) == "" {
		return ErrEmptyModel
	}
	if c.Timeout < 0 {
		return ErrInvalidTimeout
	}
	switch c.Format {
	case display.FormatText, display.FormatHTML:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	return nil
}

func envOrDefault(lookup func(string) (string, bool), key, defaultValue string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return defaultValue
}
