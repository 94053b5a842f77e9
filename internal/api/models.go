package api

// Common request/response structures

// GenerateStoryRequest defines the payload for the story generation endpoint.
// The 2000-character cap is a soft demo limit, not a protocol requirement.
type GenerateStoryRequest struct {
	Prompt string `json:"prompt" validate:"required,max=2000"`
}

// GenerateStoryResponse defines the successful response for the story
// generation endpoint.
type GenerateStoryResponse struct {
	Story string `json:"story"`
}
