package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ntvhoang/lingo-api/internal/api/shared"
	"github.com/ntvhoang/lingo-api/internal/domain"
	"github.com/ntvhoang/lingo-api/internal/generation"
)

// LearningHandler handles content-generation HTTP requests.
type LearningHandler struct {
	generator generation.Generator
	validator *validator.Validate
	logger    *slog.Logger
}

// NewLearningHandler creates a new LearningHandler.
func NewLearningHandler(generator generation.Generator, logger *slog.Logger) *LearningHandler {
	return &LearningHandler{
		generator: generator,
		validator: validator.New(),
		logger:    logger,
	}
}

// Process handles POST /api/process requests. Requests that fail validation
// are rejected with the error envelope before the generator is contacted;
// valid requests are forwarded and the generator's result is relayed
// unchanged.
func (h *LearningHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req ProcessRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			domain.NewErrorResponse(msgInvalidRequest), msgInvalidRequest, err)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			domain.NewErrorResponse(msgInvalidRequest), msgInvalidRequest, err)
		return
	}

	learningReq := domain.LearningRequest{
		TaskType: domain.TaskType(req.TaskType),
		Payload:  req.Payload,
	}
	if err := learningReq.Validate(); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			domain.NewErrorResponse(msgInvalidRequest), msgInvalidRequest, err)
		return
	}

	content, err := h.generator.GenerateContent(r.Context(), learningReq)
	if err != nil {
		status := MapErrorToStatusCode(err)
		message := GetSafeErrorMessage(err)
		shared.RespondWithErrorAndLog(w, r, status,
			domain.NewErrorResponse(message), message, err)
		return
	}

	h.logger.DebugContext(r.Context(), "learning request processed",
		"task_type", learningReq.TaskType,
		"content_length", len(content))

	shared.RespondWithJSON(w, r, http.StatusOK, domain.NewOKResponse(content))
}
