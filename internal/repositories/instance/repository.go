// Package instance provides the interface for game instance persistence.
// The instance record is the concurrency anchor for tick processing: all
// tick advancement goes through a compare-and-set on the stored tick
// counter so concurrent scheduler invocations cannot both commit.
package instance

//go:generate mockgen -destination=mock/mock_repository.go -package=instancemock github.com/crawlhq/crawl-api/internal/repositories/instance Repository

import (
	"context"

	"github.com/crawlhq/crawl-api/internal/entities"
)

// Repository defines the interface for game instance persistence
type Repository interface {
	// Create creates a new game instance and registers it in the active
	// instance index
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if instance with same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a game instance by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if instance doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// UpdateWithExpectedTick writes the instance only if the stored tick
	// counter still equals ExpectedTick. Terminal instances are removed
	// from the active index in the same transaction.
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if instance doesn't exist
	// Returns errors.Aborted if the stored tick moved, meaning another
	// invocation already committed this tick
	// Returns errors.Internal for storage failures
	UpdateWithExpectedTick(ctx context.Context, input UpdateWithExpectedTickInput) (*UpdateWithExpectedTickOutput, error)

	// ListActive returns every instance still registered as active
	// Returns errors.Internal for storage failures
	ListActive(ctx context.Context, input ListActiveInput) (*ListActiveOutput, error)
}

// CreateInput defines the input for creating an instance
type CreateInput struct {
	Instance *entities.GameInstance
}

// CreateOutput defines the output for creating an instance
type CreateOutput struct {
	Instance *entities.GameInstance
}

// GetInput defines the input for getting an instance
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an instance
type GetOutput struct {
	Instance *entities.GameInstance
}

// UpdateWithExpectedTickInput defines the input for the guarded update
type UpdateWithExpectedTickInput struct {
	Instance *entities.GameInstance

	// ExpectedTick is the tick counter observed when processing began.
	ExpectedTick int32
}

// UpdateWithExpectedTickOutput defines the output for the guarded update
type UpdateWithExpectedTickOutput struct {
	Instance *entities.GameInstance
}

// ListActiveInput defines the input for listing active instances
type ListActiveInput struct{}

// ListActiveOutput defines the output for listing active instances
type ListActiveOutput struct {
	Instances []*entities.GameInstance
}
