// Package generation provides interfaces and implementations for interacting
// with external AI/LLM services for content generation. It abstracts the
// details of LLM API integration (Gemini), allowing the application to produce
// learning content from client requests without coupling to specific external
// services.
package generation
