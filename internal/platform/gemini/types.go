package gemini

// promptData represents the data passed to the prompt template
type promptData struct {
	// Prompt is the user's story starter, embedded verbatim
	Prompt string
}

// defaultPromptTemplate wraps the user's story starter in the fixed
// storyteller instruction. The user text is quoted verbatim.
const defaultPromptTemplate = `You are a creative storyteller.
User's story starter: "{{.Prompt}}"
Continue this story, making it engaging and imaginative. Keep the continuation concise, around 150-200 words.
Story continuation:`

// fallbackStory is returned as a successful result when a candidate exists
// but its text trims to nothing.
const fallbackStory = "The AI couldn't come up with a story continuation this time. Try a different prompt!"

// Fixed sampling configuration sent with every generation request.
const (
	maxOutputTokens = 300
	temperature     = 0.8
	topP            = 0.95
	topK            = 40
	candidateCount  = 1
)
