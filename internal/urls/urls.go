package urls

// Reference URLs surfaced in error hints and help text.
// All Hugging Face URLs point at the hosted Inference API surface.

// TokenSettings is where a user creates or revokes an API token.
const TokenSettings = "https://huggingface.co/settings/tokens"

// InferenceAPIDocs is the hosted Inference API reference, including the
// request shape and status code semantics this tool depends on.
const InferenceAPIDocs = "https://huggingface.co/docs/api-inference/index"

// ModelCard is the model card for the default Stable Diffusion XL model,
// useful when prompts are rejected or results look off.
const ModelCard = "https://huggingface.co/stabilityai/stable-diffusion-xl-base-1.0"

// RateLimits documents free-tier quota and cold-start behavior, the usual
// explanation for 503 responses.
const RateLimits = "https://huggingface.co/docs/api-inference/rate-limits"
