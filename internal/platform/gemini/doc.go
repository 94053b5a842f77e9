// Package gemini implements the generation.StoryGenerator interface using
// Google's Gemini API.
package gemini
