package gemini

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/zicongmei/ai-prompt/pkg/aiEndpoint"
	"github.com/zicongmei/ai-prompt/pkg/config"
	"google.golang.org/genai"
)

// validateAPIKey rejects a blank credential before it reaches the service.
// Unlike the SDK default, there is no fallback to ambient credentials.
func validateAPIKey(apiKey string) error {
	if strings.TrimSpace(apiKey) == "" {
		return &config.CredentialMissingError{Key: config.APIKeyEnv}
	}
	return nil
}

// classifyError maps an SDK error onto the aiEndpoint error classes while
// keeping the original error in the chain.
func classifyError(err error) error {
	code, ok := apiErrorCode(err)
	if !ok {
		return fmt.Errorf("%w: %w", aiEndpoint.ErrRequestFailed, err)
	}
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", aiEndpoint.ErrAuthFailed, err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", aiEndpoint.ErrRateLimit, err)
	default:
		return fmt.Errorf("%w: %w", aiEndpoint.ErrRequestFailed, err)
	}
}

func apiErrorCode(err error) (int, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, true
	}
	return 0, false
}
