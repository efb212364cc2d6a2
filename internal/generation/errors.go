package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when content generation fails for any
	// general reason not covered by a more specific error below.
	ErrGenerationFailed = errors.New("failed to generate learning content")

	// ErrInvalidResponse is returned when the LLM response cannot be used or
	// is malformed (no candidates, empty content).
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to
	// safety filters.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrRateLimited is returned when the provider signals throttling.
	ErrRateLimited = errors.New("rate limited by language model provider")

	// ErrTimeout is returned when the upstream call exceeds its deadline.
	ErrTimeout = errors.New("language model call timed out")

	// ErrInvalidConfig is returned when the generator configuration is
	// invalid (missing or rejected credential, bad model name).
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
