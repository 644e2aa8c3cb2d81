// Package generate provides the HTTP client for the hosted text-to-image
// inference endpoint.
//
// This package builds the request payload from a prompt plus generation
// settings, issues exactly one POST per call, maps response status codes
// to a typed error taxonomy, and turns a successful binary response into
// an addressable ImageResource via the blob store.
//
// # Request Shape
//
// The endpoint accepts the Inference API's simple form:
//
//	POST <endpoint>
//	Authorization: Bearer <token>
//	Content-Type: application/json
//
//	{"inputs": "<prompt>, <style> style"}
//
// The style suffix is omitted for the baseline photographic preset. On
// success the response body is raw image bytes (Content-Type image/*).
//
// # Status Mapping
//
// The mapping from status codes to error kinds is fixed:
//
//	401            -> ErrKindInvalidCredential
//	503            -> ErrKindModelLoading
//	400            -> ErrKindBadRequest
//	other non-2xx  -> ErrKindHTTP (carries the literal status)
//	transport fail -> ErrKindUnknown
//
// # Usage Example
//
//	client := generate.NewClient(token, st.Blobs)
//	res, err := client.Generate(ctx, prompt, negativePrompt, settings.Default())
//	if err != nil {
//	    fmt.Println(generate.GetShortErrorMessage(err))
//	    fmt.Println(generate.GetTroubleshootingHint(err))
//	    return
//	}
//	fmt.Println("stored as", res.Handle)
//
// # No Retries
//
// Exactly one attempt is made per Generate call. The Retryable flag on
// GenerationError only shapes the advice shown to the user; nothing is
// retried automatically.
package generate
