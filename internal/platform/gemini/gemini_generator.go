package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ntvhoang/lingo-api/internal/config"
	"github.com/ntvhoang/lingo-api/internal/domain"
	"github.com/ntvhoang/lingo-api/internal/generation"
	"google.golang.org/genai"
)

// modelCaller is the narrow capability the generator needs from the genai
// SDK: send contents to a model, get a response. Hiding the SDK behind it
// lets tests substitute a fake without network access.
type modelCaller interface {
	generate(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		cfg *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// genaiCaller adapts the real genai client to the modelCaller interface.
type genaiCaller struct {
	client *genai.Client
}

func (c *genaiCaller) generate(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	cfg *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	return c.client.Models.GenerateContent(ctx, model, contents, cfg)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API to produce learning content from client requests.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// prompts holds the parsed per-task prompt templates
	prompts *promptSet

	// caller issues the actual model calls
	caller modelCaller

	// model is the name of the Gemini model to use
	model string
}

var _ generation.Generator = (*GeminiGenerator)(nil)
var _ generation.ReadinessChecker = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a new instance of GeminiGenerator with the
// provided dependencies.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name, and other settings
//
// Returns:
//   - A properly initialized GeminiGenerator or an error if initialization fails
func NewGeminiGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", generation.ErrInvalidConfig)
	}

	prompts, err := newPromptSet()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidConfig, err)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		logger:  logger,
		config:  cfg,
		prompts: prompts,
		caller:  &genaiCaller{client: client},
		model:   cfg.ModelName,
	}, nil
}

// GenerateContent produces learning content for the given request by
// rendering the task's prompt template and issuing a single Gemini call with
// a bounded deadline. There is no retry, caching, or batching: one request
// in, one provider call out.
func (g *GeminiGenerator) GenerateContent(
	ctx context.Context,
	req domain.LearningRequest,
) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	prompt, temperature, err := g.prompts.render(req)
	if err != nil {
		return "", err
	}

	g.logger.DebugContext(ctx, "Prompt rendered from template",
		"task_type", req.TaskType,
		"prompt_length", len(prompt))

	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(temperature),
	}
	if g.config.MaxOutputTokens > 0 {
		genCfg.MaxOutputTokens = int32(g.config.MaxOutputTokens)
	}

	callCtx, cancel := context.WithTimeout(ctx, time.Duration(g.config.TimeoutSeconds)*time.Second)
	defer cancel()

	g.logger.InfoContext(ctx, "Making Gemini API call",
		"task_type", req.TaskType,
		"model", g.model)

	resp, err := g.caller.generate(callCtx, g.model, genai.Text(prompt), genCfg)
	if err != nil {
		classified := classifyProviderError(err)
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"task_type", req.TaskType,
			"error", err)
		return "", classified
	}

	text, err := extractText(resp)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API returned unusable response",
			"task_type", req.TaskType,
			"error", err)
		return "", err
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"task_type", req.TaskType,
		"content_length", len(text))

	return text, nil
}

// Ready reports whether the generator can serve requests. It checks the
// configured credential and client without issuing a real generation call, so
// the health endpoint stays side-effect free.
func (g *GeminiGenerator) Ready(ctx context.Context) error {
	if g.config.GeminiAPIKey == "" {
		return fmt.Errorf("%w: gemini API key is not configured", generation.ErrInvalidConfig)
	}

	if g.caller == nil {
		return fmt.Errorf("%w: gemini client is not initialized", generation.ErrInvalidConfig)
	}

	return nil
}

// classifyProviderError maps a raw genai SDK error to one of the generation
// package's sentinel errors so callers never depend on SDK types.
func classifyProviderError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", generation.ErrTimeout, err)
	}

	if errors.Is(err, context.Canceled) {
		// Client disconnected; the in-flight call is abandoned.
		return fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", generation.ErrRateLimited, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: provider rejected credential: %v", generation.ErrInvalidConfig, err)
		case http.StatusGatewayTimeout:
			return fmt.Errorf("%w: %v", generation.ErrTimeout, err)
		}
	}

	return fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
}

// extractText pulls the generated text out of a Gemini response, mapping the
// degenerate shapes (nil response, no candidates, safety block, empty parts)
// to the generation package's sentinel errors.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: finish reason %q", generation.ErrContentBlocked, candidate.FinishReason)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	text := ""
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text += part.Text
		}
	}

	if text == "" {
		return "", fmt.Errorf("%w: response contained no text parts", generation.ErrInvalidResponse)
	}

	return text, nil
}
