package gemini

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/ntvhoang/lingo-api/internal/domain"
)

// Prompt templates per learning task. The payload is the free-form text the
// client submitted: a goal description, a text to correct, a topic, a word,
// or a speech transcript depending on the task.
const (
	studyPlanPrompt = `You are an experienced English teacher. Create a personalized English study plan
based on the following description of the learner's current level and goals.
Structure the plan week by week, name concrete activities and materials, and
keep it achievable.

Learner description:
{{.Payload}}`

	grammarCheckPrompt = `Correct the grammar, spelling, and word choice in the following English text.
After the corrected text, list each correction with a short explanation of
the error and why the correction is right.

Text to correct:
---
{{.Payload}}
---`

	readingPassagePrompt = `Generate a short English reading passage on the topic of '{{.Payload}}'
suitable for an intermediate level learner. The passage should be engaging
and well-structured. After the passage, add a few comprehension questions
about it.`

	vocabularyPrompt = `Explain the English word or phrase '{{.Payload}}' in detail. Provide:
1. Part of speech.
2. Primary meaning(s).
3. At least 2 example sentences showing its usage.
4. Common synonyms and antonyms, if any.`

	pronunciationPrompt = `The following is a transcript of an English learner speaking. Give friendly
feedback on their pronunciation and fluency: point out words that are often
mispronounced, suggest how to practice them, and end with one encouraging
remark.

Transcript:
{{.Payload}}`
)

// Sampling temperatures per task. Definitions and corrections want less
// creative output than open-ended content.
const (
	creativeTemperature = 0.7
	factualTemperature  = 0.5
)

// taskPrompt couples a parsed prompt template with the sampling temperature
// used for that task.
type taskPrompt struct {
	tmpl        *template.Template
	temperature float32
}

// promptSet holds one taskPrompt per recognized task type.
type promptSet struct {
	prompts map[domain.TaskType]taskPrompt
}

// newPromptSet parses all task templates. Returns an error if any template
// fails to parse, so a broken prompt is caught at startup rather than on the
// first request.
func newPromptSet() (*promptSet, error) {
	sources := map[domain.TaskType]struct {
		text        string
		temperature float32
	}{
		domain.TaskStudyPlan:      {studyPlanPrompt, creativeTemperature},
		domain.TaskGrammarCheck:   {grammarCheckPrompt, factualTemperature},
		domain.TaskReadingPassage: {readingPassagePrompt, creativeTemperature},
		domain.TaskVocabulary:     {vocabularyPrompt, factualTemperature},
		domain.TaskPronunciation:  {pronunciationPrompt, creativeTemperature},
	}

	prompts := make(map[domain.TaskType]taskPrompt, len(sources))
	for taskType, src := range sources {
		tmpl, err := template.New(string(taskType)).Parse(src.text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse prompt template for task %q: %w", taskType, err)
		}
		prompts[taskType] = taskPrompt{tmpl: tmpl, temperature: src.temperature}
	}

	return &promptSet{prompts: prompts}, nil
}

// render executes the template for the request's task type with the request
// payload and returns the prompt text plus the task's sampling temperature.
func (p *promptSet) render(req domain.LearningRequest) (string, float32, error) {
	tp, ok := p.prompts[req.TaskType]
	if !ok {
		return "", 0, fmt.Errorf("no prompt template for task %q: %w", req.TaskType, domain.ErrInvalidTaskType)
	}

	var buf bytes.Buffer
	if err := tp.tmpl.Execute(&buf, promptData{Payload: req.Payload}); err != nil {
		return "", 0, fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), tp.temperature, nil
}
