package generate

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/easelart/easel/internal/urls"
)

// Error kinds for generation operations

// ErrorKind represents the category of error that occurred
type ErrorKind int

const (
	// ErrKindEmptyPrompt indicates the prompt was empty after trimming
	ErrKindEmptyPrompt ErrorKind = iota
	// ErrKindMissingCredential indicates no usable API token is configured
	ErrKindMissingCredential
	// ErrKindInvalidCredential indicates the endpoint rejected the token (401)
	ErrKindInvalidCredential
	// ErrKindModelLoading indicates the backing model is cold-starting (503)
	ErrKindModelLoading
	// ErrKindBadRequest indicates a malformed prompt or request (400)
	ErrKindBadRequest
	// ErrKindHTTP indicates any other non-2xx response
	ErrKindHTTP
	// ErrKindUnknown indicates a non-HTTP failure (network unreachable, etc.)
	ErrKindUnknown
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrKindEmptyPrompt:
		return "Empty Prompt"
	case ErrKindMissingCredential:
		return "Missing Credential"
	case ErrKindInvalidCredential:
		return "Invalid Credential"
	case ErrKindModelLoading:
		return "Model Loading"
	case ErrKindBadRequest:
		return "Bad Request"
	case ErrKindHTTP:
		return "HTTP Error"
	case ErrKindUnknown:
		return "Unknown Error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// GenerationError represents an error from a generation request
type GenerationError struct {
	Kind       ErrorKind // Category of error
	Message    string    // Human-readable error message
	StatusCode int       // HTTP status code (if applicable)
	Err        error     // Underlying error (if any)
	Retryable  bool      // Whether resubmitting might help
}

// Error implements the error interface
func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewEmptyPromptError creates an empty-prompt error
func NewEmptyPromptError() *GenerationError {
	return &GenerationError{
		Kind:      ErrKindEmptyPrompt,
		Message:   "prompt is empty",
		Retryable: false,
	}
}

// NewMissingCredentialError creates a missing-credential error
func NewMissingCredentialError() *GenerationError {
	return &GenerationError{
		Kind:      ErrKindMissingCredential,
		Message:   "no API token configured",
		Retryable: false,
	}
}

// NewInvalidCredentialError creates an invalid-credential error (HTTP 401)
func NewInvalidCredentialError() *GenerationError {
	return &GenerationError{
		Kind:       ErrKindInvalidCredential,
		Message:    "API token rejected (invalid or insufficient permission)",
		StatusCode: http.StatusUnauthorized,
		Retryable:  false,
	}
}

// NewModelLoadingError creates a model-loading error (HTTP 503)
func NewModelLoadingError() *GenerationError {
	return &GenerationError{
		Kind:       ErrKindModelLoading,
		Message:    "model is loading, retry shortly",
		StatusCode: http.StatusServiceUnavailable,
		Retryable:  true,
	}
}

// NewBadRequestError creates a bad-request error (HTTP 400)
func NewBadRequestError(detail string) *GenerationError {
	msg := "request rejected (malformed prompt or parameters)"
	if detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, detail)
	}
	return &GenerationError{
		Kind:       ErrKindBadRequest,
		Message:    msg,
		StatusCode: http.StatusBadRequest,
		Retryable:  false,
	}
}

// NewHTTPError creates an error for any other non-2xx status
func NewHTTPError(statusCode int, message string) *GenerationError {
	retryable := statusCode >= 500 // Server errors are worth retrying
	return &GenerationError{
		Kind:       ErrKindHTTP,
		Message:    message,
		StatusCode: statusCode,
		Retryable:  retryable,
	}
}

// NewUnknownError creates a catch-all error for non-HTTP failures
func NewUnknownError(message string, err error) *GenerationError {
	return &GenerationError{
		Kind:      ErrKindUnknown,
		Message:   message,
		Err:       err,
		Retryable: true,
	}
}

// IsEmptyPromptError checks if an error is an empty-prompt error
func IsEmptyPromptError(err error) bool {
	if genErr, ok := err.(*GenerationError); ok {
		return genErr.Kind == ErrKindEmptyPrompt
	}
	return false
}

// IsMissingCredentialError checks if an error is a missing-credential error
func IsMissingCredentialError(err error) bool {
	if genErr, ok := err.(*GenerationError); ok {
		return genErr.Kind == ErrKindMissingCredential
	}
	return false
}

// IsInvalidCredentialError checks if an error is an invalid-credential error
func IsInvalidCredentialError(err error) bool {
	if genErr, ok := err.(*GenerationError); ok {
		return genErr.Kind == ErrKindInvalidCredential
	}
	return false
}

// IsModelLoadingError checks if an error is a model-loading error
func IsModelLoadingError(err error) bool {
	if genErr, ok := err.(*GenerationError); ok {
		return genErr.Kind == ErrKindModelLoading
	}
	return false
}

// IsBadRequestError checks if an error is a bad-request error
func IsBadRequestError(err error) bool {
	if genErr, ok := err.(*GenerationError); ok {
		return genErr.Kind == ErrKindBadRequest
	}
	return false
}

// IsHTTPError checks if an error is a generic HTTP error
func IsHTTPError(err error) bool {
	if genErr, ok := err.(*GenerationError); ok {
		return genErr.Kind == ErrKindHTTP
	}
	return false
}

// IsUnknownError checks if an error is the catch-all unknown kind
func IsUnknownError(err error) bool {
	if genErr, ok := err.(*GenerationError); ok {
		return genErr.Kind == ErrKindUnknown
	}
	return false
}

// IsRetryable checks whether resubmitting the same request might succeed.
// Nothing is retried automatically; this only shapes the advice shown to
// the user.
func IsRetryable(err error) bool {
	if genErr, ok := err.(*GenerationError); ok {
		return genErr.Retryable
	}
	return false
}

// GetTroubleshootingHint returns user-friendly troubleshooting advice for an error
func GetTroubleshootingHint(err error) string {
	genErr, ok := err.(*GenerationError)
	if !ok {
		return "An unexpected error occurred. Please try again."
	}

	switch genErr.Kind {
	case ErrKindEmptyPrompt:
		return "Type a prompt describing the image you want before generating."

	case ErrKindMissingCredential:
		return strings.Join([]string{
			"No Hugging Face API token is configured.",
			"To fix:",
			"  1. Create a token (read access is enough): " + urls.TokenSettings,
			"  2. Run 'easel config set-token', or export EASEL_HF_TOKEN",
			"  3. Restart easel so the new token is picked up",
		}, "\n")

	case ErrKindInvalidCredential:
		return strings.Join([]string{
			"The endpoint rejected your API token.",
			"Troubleshooting:",
			"  • Check the token at " + urls.TokenSettings,
			"  • Tokens can be revoked or expire; create a fresh one if unsure",
			"  • Fine-grained tokens need the Inference API permission",
		}, "\n")

	case ErrKindModelLoading:
		return strings.Join([]string{
			"The model is cold-starting on the inference servers.",
			"Troubleshooting:",
			"  • Wait 20-60 seconds and press generate again",
			"  • Cold starts are normal on the free tier: " + urls.RateLimits,
		}, "\n")

	case ErrKindBadRequest:
		return strings.Join([]string{
			"The endpoint rejected the request as malformed.",
			"Troubleshooting:",
			"  • Try a shorter or simpler prompt",
			"  • Some content is refused by the model's filters",
			"  • Model limits are described on the model card: " + urls.ModelCard,
		}, "\n")

	case ErrKindHTTP:
		if genErr.StatusCode == http.StatusTooManyRequests {
			return "You are being rate limited. Wait a minute before generating again: " + urls.RateLimits
		}
		if genErr.StatusCode >= 500 {
			return fmt.Sprintf("The inference service returned HTTP %d. This is a service-side problem; try again in a few minutes.", genErr.StatusCode)
		}
		return fmt.Sprintf("The inference service returned HTTP %d. Check the endpoint URL and request parameters.", genErr.StatusCode)

	case ErrKindUnknown:
		return strings.Join([]string{
			"Could not reach the inference endpoint.",
			"Troubleshooting:",
			"  • Check your internet connection",
			"  • Verify any proxy or VPN settings",
			"  • If you configured a custom endpoint, verify the URL",
		}, "\n")

	default:
		return "An error occurred. Please check the error message for details."
	}
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	genErr, ok := err.(*GenerationError)
	if !ok {
		return err.Error()
	}

	switch genErr.Kind {
	case ErrKindEmptyPrompt:
		return "Enter a prompt first"
	case ErrKindMissingCredential:
		return "No API token configured - run 'easel config set-token'"
	case ErrKindInvalidCredential:
		return "API token rejected - check your token"
	case ErrKindModelLoading:
		return "Model is warming up - try again shortly"
	case ErrKindBadRequest:
		return "Request rejected - try a different prompt"
	case ErrKindHTTP:
		return fmt.Sprintf("Generation failed (HTTP %d)", genErr.StatusCode)
	case ErrKindUnknown:
		return "Network error - check your connection"
	default:
		return genErr.Message
	}
}
