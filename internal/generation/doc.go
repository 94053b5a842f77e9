// Package generation provides the interface and error taxonomy for
// interacting with external AI/LLM services for story continuation. It
// abstracts the details of the LLM API integration (Gemini), allowing the
// HTTP layer to generate story text without coupling to a specific
// external service.
package generation
