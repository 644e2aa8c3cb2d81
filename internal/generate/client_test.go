package generate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/easelart/easel/internal/config"
	"github.com/easelart/easel/internal/settings"
)

const testToken = "hf_test_token_1234567890"

// fakeResources is an in-memory ResourceStore for tests.
type fakeResources struct {
	data  [][]byte
	types []string
	fail  bool
}

func (f *fakeResources) Acquire(data []byte, contentType string) (string, error) {
	if f.fail {
		return "", fmt.Errorf("disk full")
	}
	f.data = append(f.data, data)
	f.types = append(f.types, contentType)
	return fmt.Sprintf("img-%d.png", len(f.data)), nil
}

func TestNewClient(t *testing.T) {
	client := NewClient(testToken, &fakeResources{})

	if client.Endpoint != DefaultEndpoint {
		t.Errorf("Endpoint = %s, want %s", client.Endpoint, DefaultEndpoint)
	}

	if client.Token != testToken {
		t.Errorf("Token = %s, want %s", client.Token, testToken)
	}

	if client.HTTPClient == nil {
		t.Error("HTTPClient should not be nil")
	}
}

func TestNewClientWithURL(t *testing.T) {
	client := NewClientWithURL("http://127.0.0.1:9999/models/x", testToken, &fakeResources{})

	if client.Endpoint != "http://127.0.0.1:9999/models/x" {
		t.Errorf("Endpoint = %s, want http://127.0.0.1:9999/models/x", client.Endpoint)
	}
}

func TestSetTimeout(t *testing.T) {
	client := NewClient(testToken, &fakeResources{})
	client.SetTimeout(5 * time.Second)

	if client.HTTPClient.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", client.HTTPClient.Timeout)
	}
}

func TestHasCredential(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"real token", testToken, true},
		{"empty token", "", false},
		{"placeholder token", config.TokenPlaceholder, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.token, &fakeResources{})
			if got := client.HasCredential(); got != tt.want {
				t.Errorf("HasCredential() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		preset settings.StylePreset
		want   string
	}{
		{"photographic omits suffix", "a red fox", settings.StylePhotographic, "a red fox"},
		{"anime adds suffix", "a red fox", settings.StyleAnime, "a red fox, anime style"},
		{"neon punk adds suffix", "city at night", settings.StyleNeonPunk, "city at night, neon-punk style"},
		{"prompt passed through untouched", "  spaced out  ", settings.StylePhotographic, "  spaced out  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildPrompt(tt.prompt, tt.preset); got != tt.want {
				t.Errorf("BuildPrompt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerate_Success(t *testing.T) {
	imageBytes := []byte("\x89PNG\r\n\x1a\nfake image data")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer "+testToken {
			t.Errorf("Authorization = %q, want %q", got, "Bearer "+testToken)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", got)
		}

		var req inferenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		if req.Inputs != "a lighthouse in a storm" {
			t.Errorf("inputs = %q, want %q", req.Inputs, "a lighthouse in a storm")
		}

		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(imageBytes)
	}))
	defer server.Close()

	resources := &fakeResources{}
	client := NewClientWithURL(server.URL, testToken, resources)

	res, err := client.Generate(context.Background(), "a lighthouse in a storm", "", settings.Default())
	if err != nil {
		t.Fatalf("Generate() error = %v, want nil", err)
	}

	if res.Handle == "" {
		t.Error("Generate() returned empty handle")
	}
	if res.ContentType != "image/png" {
		t.Errorf("ContentType = %q, want image/png", res.ContentType)
	}
	if res.Size != len(imageBytes) {
		t.Errorf("Size = %d, want %d", res.Size, len(imageBytes))
	}

	if len(resources.data) != 1 {
		t.Fatalf("resource store received %d acquisitions, want 1", len(resources.data))
	}
	if string(resources.data[0]) != string(imageBytes) {
		t.Error("resource store received different bytes than the response body")
	}
}

func TestGenerate_EmptyPrompt(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL, testToken, &fakeResources{})

	for _, prompt := range []string{"", "   ", "\t\n  "} {
		_, err := client.Generate(context.Background(), prompt, "", settings.Default())
		if err == nil {
			t.Fatalf("Generate(%q) should fail", prompt)
		}
		if !IsEmptyPromptError(err) {
			t.Errorf("Generate(%q) error = %v, want empty prompt error", prompt, err)
		}
	}

	if calls.Load() != 0 {
		t.Errorf("empty prompts issued %d network calls, want 0", calls.Load())
	}
}

func TestGenerate_MissingCredential(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	for _, token := range []string{"", config.TokenPlaceholder} {
		client := NewClientWithURL(server.URL, token, &fakeResources{})
		_, err := client.Generate(context.Background(), "a prompt", "", settings.Default())
		if err == nil {
			t.Fatalf("Generate() with token %q should fail", token)
		}
		if !IsMissingCredentialError(err) {
			t.Errorf("Generate() with token %q error = %v, want missing credential error", token, err)
		}
	}

	if calls.Load() != 0 {
		t.Errorf("unconfigured tokens issued %d network calls, want 0", calls.Load())
	}
}

func TestGenerate_StatusMapping(t *testing.T) {
	tests := []struct {
		status     int
		check      func(error) bool
		checkName  string
		wantStatus int
	}{
		{http.StatusUnauthorized, IsInvalidCredentialError, "invalid credential", 401},
		{http.StatusServiceUnavailable, IsModelLoadingError, "model loading", 503},
		{http.StatusBadRequest, IsBadRequestError, "bad request", 400},
		{http.StatusInternalServerError, IsHTTPError, "http", 500},
		{http.StatusTeapot, IsHTTPError, "http", 418},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status_%d", tt.status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":"nope"}`))
			}))
			defer server.Close()

			client := NewClientWithURL(server.URL, testToken, &fakeResources{})
			_, err := client.Generate(context.Background(), "a prompt", "", settings.Default())
			if err == nil {
				t.Fatalf("Generate() should fail for status %d", tt.status)
			}
			if !tt.check(err) {
				t.Errorf("Generate() error = %v, want %s error", err, tt.checkName)
			}

			genErr, ok := err.(*GenerationError)
			if !ok {
				t.Fatalf("Generate() error type = %T, want *GenerationError", err)
			}
			if genErr.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", genErr.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestGenerate_StyleSuffix(t *testing.T) {
	var received string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req inferenceRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		received = req.Inputs
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("img"))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL, testToken, &fakeResources{})

	// Baseline preset transmits the raw prompt.
	s := settings.Default()
	if _, err := client.Generate(context.Background(), "a quiet harbor", "", s); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if received != "a quiet harbor" {
		t.Errorf("transmitted prompt = %q, want raw prompt", received)
	}

	// Any other preset appends the style suffix.
	s.SetStylePreset(settings.StyleCinematic)
	if _, err := client.Generate(context.Background(), "a quiet harbor", "", s); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if received != "a quiet harbor, cinematic style" {
		t.Errorf("transmitted prompt = %q, want %q", received, "a quiet harbor, cinematic style")
	}
}

func TestGenerate_NegativePromptNotTransmitted(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("img"))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL, testToken, &fakeResources{})
	if _, err := client.Generate(context.Background(), "a cat", "blurry, low quality", settings.Default()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(body) != 1 {
		t.Errorf("payload has %d keys, want just inputs: %v", len(body), body)
	}
	if _, ok := body["inputs"]; !ok {
		t.Error("payload missing inputs key")
	}
}

func TestGenerate_ExactlyOneAttempt(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL, testToken, &fakeResources{})
	if _, err := client.Generate(context.Background(), "a prompt", "", settings.Default()); err == nil {
		t.Fatal("Generate() should fail on 503")
	}

	if calls.Load() != 1 {
		t.Errorf("Generate() issued %d attempts, want exactly 1", calls.Load())
	}
}

func TestGenerate_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	client := NewClientWithURL(endpoint, testToken, &fakeResources{})
	_, err := client.Generate(context.Background(), "a prompt", "", settings.Default())
	if err == nil {
		t.Fatal("Generate() should fail when the endpoint is unreachable")
	}
	if !IsUnknownError(err) {
		t.Errorf("Generate() error = %v, want unknown (transport) error", err)
	}
}

func TestGenerate_ContextCancellation(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewClientWithURL(server.URL, testToken, &fakeResources{})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := client.Generate(ctx, "a prompt", "", settings.Default())
	if err == nil {
		t.Fatal("Generate() should fail when context is cancelled")
	}
	if !IsUnknownError(err) {
		t.Errorf("Generate() error = %v, want unknown error for cancellation", err)
	}
}

func TestGenerate_ResourceStoreFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("img"))
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL, testToken, &fakeResources{fail: true})
	_, err := client.Generate(context.Background(), "a prompt", "", settings.Default())
	if err == nil {
		t.Fatal("Generate() should fail when the resource store fails")
	}
	if !IsUnknownError(err) {
		t.Errorf("Generate() error = %v, want unknown error", err)
	}
}

func BenchmarkBuildPrompt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = BuildPrompt("a lighthouse in a storm at golden hour", settings.StyleCinematic)
	}
}
