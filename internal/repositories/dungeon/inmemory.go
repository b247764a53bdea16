package dungeon

import (
	"context"
	"sync"

	"github.com/crawlhq/crawl-api/internal/entities"
	"github.com/crawlhq/crawl-api/internal/errors"
)

// InMemoryRepository implements Repository over a fixed template set.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.Dungeon
	order []string
}

// NewInMemory creates a repository seeded with the given templates.
func NewInMemory(dungeons []*entities.Dungeon) *InMemoryRepository {
	store := make(map[string]*entities.Dungeon, len(dungeons))
	order := make([]string, 0, len(dungeons))
	for _, d := range dungeons {
		if _, seen := store[d.ID]; !seen {
			order = append(order, d.ID)
		}
		store[d.ID] = d
	}
	return &InMemoryRepository{store: store, order: order}
}

// Get retrieves a dungeon template by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("dungeon ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	d, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("dungeon with ID %s not found", input.ID)
	}

	return &GetOutput{Dungeon: d}, nil
}

// List returns all dungeon templates in registration order
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dungeons := make([]*entities.Dungeon, 0, len(r.order))
	for _, id := range r.order {
		dungeons = append(dungeons, r.store[id])
	}

	return &ListOutput{Dungeons: dungeons}, nil
}
