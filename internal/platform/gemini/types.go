package gemini

// promptData represents the data passed to a task prompt template
type promptData struct {
	Payload string
}
