package generation

import (
	"context"

	"github.com/ntvhoang/lingo-api/internal/domain"
)

// Generator defines the interface for producing learning content from a
// request. This interface serves as a boundary between the application core
// and external AI/LLM services, following the hexagonal architecture pattern.
type Generator interface {
	// GenerateContent produces the text content for the given learning
	// request. It returns the generated text or an error if generation
	// fails (see errors.go for the specific kinds).
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - req: The validated learning request to generate content for
	//
	// Returns:
	//   - The generated text content
	//   - An error if the generation fails for any reason
	GenerateContent(ctx context.Context, req domain.LearningRequest) (string, error)
}

// ReadinessChecker is implemented by generators that can report whether they
// are able to reach their configured dependencies. The health endpoint uses
// it to distinguish healthy from unhealthy without issuing a real generation
// call.
type ReadinessChecker interface {
	// Ready returns nil when the generator is configured and able to serve
	// requests, or an error describing why it is not.
	Ready(ctx context.Context) error
}
