package generate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/easelart/easel/internal/config"
	"github.com/easelart/easel/internal/logging"
	"github.com/easelart/easel/internal/settings"
)

const (
	// DefaultEndpoint is the hosted inference route for the default model.
	DefaultEndpoint = "https://api-inference.huggingface.co/models/stabilityai/stable-diffusion-xl-base-1.0"

	// DefaultTimeout is the HTTP request timeout. Image models can take
	// tens of seconds when warm and longer when cold-starting.
	DefaultTimeout = 120 * time.Second

	// maxErrorBody bounds how much of an error response body is read for
	// the error message.
	maxErrorBody = 512
)

// inferenceRequest is the JSON payload the hosted inference endpoint
// accepts in its simple form.
type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

// ImageResource is an addressable handle to generated image bytes, backed
// by the blob store.
type ImageResource struct {
	// Handle is the opaque blob store reference
	Handle string

	// ContentType is the image MIME type reported by the endpoint
	ContentType string

	// Size is the image size in bytes
	Size int
}

// ResourceStore is where generated image bytes land. The blob store
// satisfies it; tests substitute an in-memory fake.
type ResourceStore interface {
	Acquire(data []byte, contentType string) (string, error)
}

// Client issues generation requests against a hosted inference endpoint
type Client struct {
	// Endpoint is the full model route URL
	Endpoint string

	// Token is the bearer credential sent in the Authorization header
	Token string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	resources ResourceStore
}

// NewClient creates a client against the default endpoint.
// token: API token (empty or the placeholder means not configured)
// resources: destination for generated image bytes
func NewClient(token string, resources ResourceStore) *Client {
	return NewClientWithURL(DefaultEndpoint, token, resources)
}

// NewClientWithURL creates a client with a full endpoint URL.
// endpoint: full model route (e.g. a test server URL)
func NewClientWithURL(endpoint, token string, resources ResourceStore) *Client {
	return &Client{
		Endpoint:   endpoint,
		Token:      token,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		resources:  resources,
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// HasCredential reports whether a usable token is configured. The unset
// placeholder counts as not configured.
func (c *Client) HasCredential() bool {
	return c.Token != "" && c.Token != config.TokenPlaceholder
}

// BuildPrompt returns the prompt actually transmitted: the user prompt
// plus a ", <preset> style" suffix. The baseline photographic preset
// transmits the prompt unchanged.
func BuildPrompt(prompt string, preset settings.StylePreset) string {
	if preset == settings.StylePhotographic {
		return prompt
	}
	return fmt.Sprintf("%s, %s style", prompt, preset)
}

// Generate issues exactly one inference request and returns the stored
// image resource. No retries are performed; the caller decides whether to
// invoke again. The negative prompt is accepted for interface completeness
// but the simple payload form carries only the prompt, so it is not
// transmitted.
//
// The prompt must be non-empty after trimming and a usable token must be
// configured; both are checked before any network activity.
func (c *Client) Generate(ctx context.Context, prompt, negativePrompt string, s settings.Settings) (*ImageResource, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, NewEmptyPromptError()
	}
	if !c.HasCredential() {
		return nil, NewMissingCredentialError()
	}

	fullPrompt := BuildPrompt(prompt, s.StylePreset)

	payload, err := json.Marshal(inferenceRequest{Inputs: fullPrompt})
	if err != nil {
		return nil, NewUnknownError("failed to encode request payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, NewUnknownError("failed to create request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Content-Type", "application/json")

	logging.LogGenerationStart(c.Endpoint, fullPrompt, string(s.StylePreset), string(s.AspectRatio))
	start := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		genErr := NewUnknownError("inference request failed", err)
		logging.LogGenerationFailure(genErr.Kind.String(), 0, err)
		return nil, genErr
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		genErr := classifyStatus(resp.StatusCode, resp.Body)
		logging.LogGenerationFailure(genErr.Kind.String(), resp.StatusCode, genErr)
		return nil, genErr
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewUnknownError("failed to read image bytes", err)
	}

	contentType := resp.Header.Get("Content-Type")
	handle, err := c.resources.Acquire(data, contentType)
	if err != nil {
		return nil, NewUnknownError("failed to store image", err)
	}

	logging.LogGenerationSuccess(handle, contentType, len(data), time.Since(start))
	return &ImageResource{
		Handle:      handle,
		ContentType: contentType,
		Size:        len(data),
	}, nil
}

// classifyStatus maps a non-2xx response to a typed error. The mapping is
// fixed: 401 invalid credential, 503 model loading, 400 bad request,
// anything else a generic HTTP error carrying the literal status code.
func classifyStatus(statusCode int, body io.Reader) *GenerationError {
	// Error bodies are small JSON blobs; read a bounded amount for detail.
	detail, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))

	switch statusCode {
	case http.StatusUnauthorized:
		return NewInvalidCredentialError()
	case http.StatusServiceUnavailable:
		return NewModelLoadingError()
	case http.StatusBadRequest:
		return NewBadRequestError(strings.TrimSpace(string(detail)))
	default:
		return NewHTTPError(statusCode, fmt.Sprintf("inference request failed with status %d", statusCode))
	}
}
