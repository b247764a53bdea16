// Package dungeon provides read access to dungeon templates. Templates
// are immutable content; live enemy state lives in the room repository.
package dungeon

//go:generate mockgen -destination=mock/mock_repository.go -package=dungeonmock github.com/crawlhq/crawl-api/internal/repositories/dungeon Repository

import (
	"context"

	"github.com/crawlhq/crawl-api/internal/entities"
)

// Repository defines the interface for dungeon template access
type Repository interface {
	// Get retrieves a dungeon template by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if dungeon doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns all dungeon templates
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// GetInput defines the input for getting a dungeon
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a dungeon
type GetOutput struct {
	Dungeon *entities.Dungeon
}

// ListInput defines the input for listing dungeons
type ListInput struct{}

// ListOutput defines the output for listing dungeons
type ListOutput struct {
	Dungeons []*entities.Dungeon
}
