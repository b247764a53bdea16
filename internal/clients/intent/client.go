// Package intent is the location for the natural language intent
// interpreter client. Player commands arrive as free text and are
// classified into structured intents before resolution.
package intent

//go:generate mockgen -destination=mock/mock_client.go -package=intentmock github.com/crawlhq/crawl-api/internal/clients/intent Client

import (
	"context"

	"github.com/crawlhq/crawl-api/internal/entities"
)

// InterpretInput carries the raw command text plus the vocabulary the
// interpreter may match against.
type InterpretInput struct {
	Text string

	// Skills are the skill identifiers known to the content catalog.
	Skills []string

	// Enemies are the names of living enemies in the current room, used
	// for target matching.
	Enemies []string
}

// InterpretOutput is the classified intent.
type InterpretOutput struct {
	Intent *entities.Intent
}

// Client defines the interface for intent interpretation
type Client interface {
	// Interpret classifies free-form command text into a structured intent.
	// Implementations must always return a usable intent for non-empty
	// input, falling back to IntentUnknown when classification fails.
	Interpret(ctx context.Context, input *InterpretInput) (*InterpretOutput, error)
}
