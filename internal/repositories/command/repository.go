// Package command provides the interface for player command persistence.
// Commands are grouped by game instance and tick; within a tick they are
// kept in submission order.
package command

//go:generate mockgen -destination=mock/mock_repository.go -package=commandmock github.com/crawlhq/crawl-api/internal/repositories/command Repository

import (
	"context"

	"github.com/crawlhq/crawl-api/internal/entities"
)

// Repository defines the interface for command persistence
type Repository interface {
	// Create stores a newly submitted command
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the character already submitted a
	// command for this tick
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a command by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if command doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update rewrites a stored command, typically to attach its resolved
	// intent and result
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if command doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// ListForTick returns the commands submitted for an instance tick in
	// submission order
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	ListForTick(ctx context.Context, input ListForTickInput) (*ListForTickOutput, error)

	// DeleteForTick destroys an instance tick's commands along with its
	// ordering and submission-guard keys. Deleting a tick with no
	// commands is not an error
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	DeleteForTick(ctx context.Context, input DeleteForTickInput) (*DeleteForTickOutput, error)
}

// CreateInput defines the input for storing a command
type CreateInput struct {
	Command *entities.Command
}

// CreateOutput defines the output for storing a command
type CreateOutput struct {
	Command *entities.Command
}

// GetInput defines the input for getting a command
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a command
type GetOutput struct {
	Command *entities.Command
}

// UpdateInput defines the input for updating a command
type UpdateInput struct {
	Command *entities.Command
}

// UpdateOutput defines the output for updating a command
type UpdateOutput struct {
	Command *entities.Command
}

// ListForTickInput defines the input for listing a tick's commands
type ListForTickInput struct {
	GameInstanceID string
	Tick           int32
}

// ListForTickOutput defines the output for listing a tick's commands
type ListForTickOutput struct {
	Commands []*entities.Command
}

// DeleteForTickInput defines the input for destroying a tick's commands
type DeleteForTickInput struct {
	GameInstanceID string
	Tick           int32
}

// DeleteForTickOutput defines the output for destroying a tick's commands
type DeleteForTickOutput struct{}
