// Package gemini provides the generation.Generator implementation backed by
// Google's Gemini API.
package gemini
