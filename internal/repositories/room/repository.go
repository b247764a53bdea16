// Package room provides persistence for live room state. Dungeon
// templates are immutable; when a party enters a room the template is
// copied here and enemy health is tracked against the copy.
package room

//go:generate mockgen -destination=mock/mock_repository.go -package=roommock github.com/crawlhq/crawl-api/internal/repositories/room Repository

import (
	"context"

	"github.com/crawlhq/crawl-api/internal/entities"
)

// Repository defines the interface for live room state persistence
type Repository interface {
	// Save writes the live room state for an instance room index
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves the live room state for an instance room index
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the room was never entered
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete destroys the live room state for an instance room index.
	// Deleting state that does not exist is not an error
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving live room state
type SaveInput struct {
	GameInstanceID string
	RoomIndex      int32
	Room           *entities.Room
}

// SaveOutput defines the output for saving live room state
type SaveOutput struct {
	Room *entities.Room
}

// GetInput defines the input for getting live room state
type GetInput struct {
	GameInstanceID string
	RoomIndex      int32
}

// GetOutput defines the output for getting live room state
type GetOutput struct {
	Room *entities.Room
}

// DeleteInput defines the input for destroying live room state
type DeleteInput struct {
	GameInstanceID string
	RoomIndex      int32
}

// DeleteOutput defines the output for destroying live room state
type DeleteOutput struct{}
