// Package character implements character lifecycle operations: creation
// with starting skills and gear, lookup, and per-player listing.
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactersvcmock github.com/crawlhq/crawl-api/internal/orchestrators/character Service

import (
	"context"

	"github.com/crawlhq/crawl-api/internal/content"
	"github.com/crawlhq/crawl-api/internal/engine"
	"github.com/crawlhq/crawl-api/internal/entities"
	"github.com/crawlhq/crawl-api/internal/errors"
	"github.com/crawlhq/crawl-api/internal/pkg/idgen"
	"github.com/crawlhq/crawl-api/internal/repositories/character"
)

// Service defines the interface for character operations
type Service interface {
	// CreateCharacter creates a character seeded with the catalog's
	// starting skills and items
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)

	// GetCharacter returns a character by ID
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)

	// ListCharacters returns all of a player's characters
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
}

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo character.Repository
	Catalog       *content.Catalog
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

type orchestrator struct {
	charRepo character.Repository
	catalog  *content.Catalog
	idGen    idgen.Generator
}

// NewOrchestrator creates a new character orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("")
	}

	return &orchestrator{
		charRepo: cfg.CharacterRepo,
		catalog:  cfg.Catalog,
		idGen:    idGen,
	}, nil
}

// CreateCharacterInput creates a character for a player. Skills may
// override the catalog's starting allocation.
type CreateCharacterInput struct {
	PlayerID string
	Name     string
	Skills   map[string]int32
}

// CreateCharacterOutput is the created character.
type CreateCharacterOutput struct {
	Character *entities.Character
}

// GetCharacterInput requests a character by ID.
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput is the requested character.
type GetCharacterOutput struct {
	Character *entities.Character
}

// ListCharactersInput requests a player's characters.
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput is the player's characters.
type ListCharactersOutput struct {
	Characters []*entities.Character
}

func (o *orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.PlayerID == "" {
		vb.RequiredField("PlayerID")
	}
	if input.Name == "" {
		vb.RequiredField("Name")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	skills, err := o.startingSkills(input.Skills)
	if err != nil {
		return nil, err
	}

	maxHP := engine.MaxHP(skills)
	maxEnergy := engine.MaxEnergy(skills)
	char := &entities.Character{
		ID:        o.idGen.Generate(),
		PlayerID:  input.PlayerID,
		Name:      input.Name,
		CurrentHP: maxHP,
		MaxHP:     maxHP,
		Energy:    maxEnergy,
		MaxEnergy: maxEnergy,
		Skills:    skills,
		Equipment: map[string]string{},
		Inventory: append([]string{}, o.catalog.StartingItems...),
		Status:    entities.CharacterStatusActive,
	}

	created, err := o.charRepo.Create(ctx, character.CreateInput{Character: char})
	if err != nil {
		return nil, err
	}

	return &CreateCharacterOutput{Character: created.Character}, nil
}

func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	output, err := o.charRepo.Get(ctx, character.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}

	return &GetCharacterOutput{Character: output.Character}, nil
}

func (o *orchestrator) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	output, err := o.charRepo.ListByPlayerID(ctx, character.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	return &ListCharactersOutput{Characters: output.Characters}, nil
}

// startingSkills returns the catalog's starting allocation, or a validated
// copy of the caller's override.
func (o *orchestrator) startingSkills(override map[string]int32) (map[string]int32, error) {
	source := override
	if len(source) == 0 {
		source = o.catalog.StartingSkills
	}

	known := make(map[string]struct{}, len(o.catalog.Skills))
	for _, skillID := range o.catalog.Skills {
		known[skillID] = struct{}{}
	}

	skills := make(map[string]int32, len(source))
	for skillID, level := range source {
		if _, ok := known[skillID]; !ok {
			return nil, errors.InvalidArgumentf("unknown skill: %s", skillID)
		}
		if level < 1 || level > engine.MaxSkillLevel {
			return nil, errors.InvalidArgumentf(
				"skill %s level %d out of range 1..%d", skillID, level, engine.MaxSkillLevel)
		}
		skills[skillID] = level
	}
	return skills, nil
}
