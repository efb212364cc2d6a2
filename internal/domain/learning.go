package domain

import "errors"

// TaskType identifies the kind of learning content a request asks for.
type TaskType string

// Recognized learning task types.
const (
	TaskStudyPlan      TaskType = "study_plan"
	TaskGrammarCheck   TaskType = "grammar_check"
	TaskReadingPassage TaskType = "reading_passage"
	TaskVocabulary     TaskType = "vocabulary"
	TaskPronunciation  TaskType = "pronunciation"
)

// Common validation errors for LearningRequest
var (
	ErrInvalidTaskType = errors.New("unrecognized task type")
	ErrEmptyPayload    = errors.New("payload cannot be empty")
)

// LearningRequest represents a single content-generation request submitted
// by a client. It is created per incoming HTTP call, never mutated, and
// discarded once a response has been produced.
type LearningRequest struct {
	TaskType TaskType `json:"task_type"`
	Payload  string   `json:"payload"`
}

// NewLearningRequest creates a LearningRequest with the given task type and
// payload. Returns an error if validation fails.
func NewLearningRequest(taskType TaskType, payload string) (*LearningRequest, error) {
	req := &LearningRequest{
		TaskType: taskType,
		Payload:  payload,
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

// Validate checks if the LearningRequest has valid data.
// Returns an error if any field fails validation.
func (r *LearningRequest) Validate() error {
	if !r.TaskType.IsValid() {
		return ErrInvalidTaskType
	}

	if r.Payload == "" {
		return ErrEmptyPayload
	}

	return nil
}

// IsValid reports whether the task type is one of the recognized values.
func (t TaskType) IsValid() bool {
	switch t {
	case TaskStudyPlan, TaskGrammarCheck, TaskReadingPassage,
		TaskVocabulary, TaskPronunciation:
		return true
	default:
		return false
	}
}

// TaskTypes returns all recognized task types in a stable order.
func TaskTypes() []TaskType {
	return []TaskType{
		TaskStudyPlan,
		TaskGrammarCheck,
		TaskReadingPassage,
		TaskVocabulary,
		TaskPronunciation,
	}
}
