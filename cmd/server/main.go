// Package main implements the entry point for the lingo-api server, a thin
// HTTP API that turns English-learning requests into Gemini-generated
// content.
package main

import (
	"context"
	"log"
)

// main is the entry point for the lingo-api server. It initializes
// configuration, sets up logging, constructs the content generator, injects
// dependencies into the HTTP layer, and starts the server.
func main() {
	ctx := context.Background()

	app, err := newApplication(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
