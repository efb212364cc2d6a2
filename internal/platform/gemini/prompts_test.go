package gemini

import (
	"strings"
	"testing"

	"github.com/ntvhoang/lingo-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPromptSetCoversAllTaskTypes(t *testing.T) {
	prompts, err := newPromptSet()
	require.NoError(t, err)

	for _, taskType := range domain.TaskTypes() {
		_, ok := prompts.prompts[taskType]
		assert.True(t, ok, "missing prompt template for task %q", taskType)
	}
}

func TestRenderIncludesPayload(t *testing.T) {
	prompts, err := newPromptSet()
	require.NoError(t, err)

	for _, taskType := range domain.TaskTypes() {
		t.Run(string(taskType), func(t *testing.T) {
			payload := "the quick brown fox"
			prompt, temperature, err := prompts.render(domain.LearningRequest{
				TaskType: taskType,
				Payload:  payload,
			})

			require.NoError(t, err)
			assert.True(t, strings.Contains(prompt, payload),
				"prompt for %q should contain the payload", taskType)
			assert.Greater(t, temperature, float32(0))
		})
	}
}

func TestRenderTemperaturePerTask(t *testing.T) {
	prompts, err := newPromptSet()
	require.NoError(t, err)

	_, vocabTemp, err := prompts.render(domain.LearningRequest{
		TaskType: domain.TaskVocabulary,
		Payload:  "apple",
	})
	require.NoError(t, err)

	_, planTemp, err := prompts.render(domain.LearningRequest{
		TaskType: domain.TaskStudyPlan,
		Payload:  "reach B2 in six months",
	})
	require.NoError(t, err)

	assert.Less(t, vocabTemp, planTemp,
		"vocabulary explanations should use a lower temperature than study plans")
}

func TestRenderUnknownTaskType(t *testing.T) {
	prompts, err := newPromptSet()
	require.NoError(t, err)

	_, _, err = prompts.render(domain.LearningRequest{
		TaskType: domain.TaskType("poetry"),
		Payload:  "anything",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidTaskType)
}
