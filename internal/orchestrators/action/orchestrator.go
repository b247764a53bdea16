// Package action implements the command resolution pipeline. One command
// plus its owning character and live room state go in; one ActionResult
// comes out. Dispatch is a closed switch over the intent type, so adding
// an intent variant is a compile-checked change here.
package action

//go:generate mockgen -destination=mock/mock_service.go -package=actionmock github.com/crawlhq/crawl-api/internal/orchestrators/action Service

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/crawlhq/crawl-api/internal/content"
	"github.com/crawlhq/crawl-api/internal/entities"
	"github.com/crawlhq/crawl-api/internal/errors"
	"github.com/crawlhq/crawl-api/internal/repositories/character"
	"github.com/crawlhq/crawl-api/internal/repositories/room"
)

// MinIntentConfidence is the floor below which a classified intent is
// treated as unknown. It sits between the keyword classifier's unknown
// confidence and its match confidence, so keyword matches resolve
// normally while low-confidence interpreter guesses fall through to the
// unknown resolver instead of, say, swinging a weapon on a hunch.
const MinIntentConfidence = 0.3

// Service defines the interface for resolving actions within a tick
type Service interface {
	// ResolveCommand resolves one player command into an ActionResult.
	// Storage failures inside a handler are converted into a failed
	// result for that character; an error return means the command could
	// not be resolved at all.
	ResolveCommand(ctx context.Context, input *ResolveCommandInput) (*ResolveCommandOutput, error)

	// ResolveEnemyAttack resolves one enemy's attack against a character
	// and persists the character's new health.
	ResolveEnemyAttack(ctx context.Context, input *ResolveEnemyAttackInput) (*ResolveEnemyAttackOutput, error)
}

// Config holds the dependencies for the action orchestrator
type Config struct {
	CharacterRepo character.Repository
	RoomRepo      room.Repository
	Catalog       *content.Catalog
	Roller        dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.RoomRepo == nil {
		vb.RequiredField("RoomRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type orchestrator struct {
	charRepo character.Repository
	roomRepo room.Repository
	catalog  *content.Catalog
	roller   dice.Roller
}

// NewOrchestrator creates a new action orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		charRepo: cfg.CharacterRepo,
		roomRepo: cfg.RoomRepo,
		catalog:  cfg.Catalog,
		roller:   cfg.Roller,
	}, nil
}

// ResolveCommandInput carries one command with its resolution context.
// Character and Room are live state shared across the tick: mutations made
// here are visible to later commands in the same tick.
type ResolveCommandInput struct {
	Command   *entities.Command
	Character *entities.Character
	Instance  *entities.GameInstance
	Room      *entities.Room
}

// ResolveCommandOutput is the resolved result.
type ResolveCommandOutput struct {
	Result *entities.ActionResult
}

// ResolveEnemyAttackInput carries one enemy attack against a character.
type ResolveEnemyAttackInput struct {
	Enemy     *entities.Enemy
	Character *entities.Character
	Instance  *entities.GameInstance
}

// ResolveEnemyAttackOutput is the resolved enemy attack.
type ResolveEnemyAttackOutput struct {
	Result *entities.ActionResult
}

func (o *orchestrator) ResolveCommand(ctx context.Context, input *ResolveCommandInput) (*ResolveCommandOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Command == nil {
		vb.RequiredField("Command")
	}
	if input.Character == nil {
		vb.RequiredField("Character")
	}
	if input.Instance == nil {
		vb.RequiredField("Instance")
	}
	if input.Room == nil {
		vb.RequiredField("Room")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	intent := input.Command.Intent
	if intent == nil {
		intent = &entities.Intent{Type: entities.IntentUnknown}
	}
	if intent.Type != entities.IntentUnknown && intent.Confidence < MinIntentConfidence {
		intent = &entities.Intent{Type: entities.IntentUnknown, Confidence: intent.Confidence}
	}

	var (
		result *entities.ActionResult
		err    error
	)
	switch intent.Type {
	case entities.IntentAttack:
		result, err = o.resolveAttack(ctx, input, intent)
	case entities.IntentMove:
		result, err = o.resolveMove(ctx, input, intent)
	case entities.IntentUseSkill:
		result, err = o.resolveSkillCheck(ctx, input, intent)
	case entities.IntentUseItem:
		result, err = o.resolveItemUse(ctx, input, intent)
	case entities.IntentInteract:
		result = o.resolveInteract(input)
	case entities.IntentUnknown:
		result = o.resolveUnknown(input)
	default:
		result = o.resolveUnknown(input)
	}
	if err != nil {
		return nil, err
	}

	return &ResolveCommandOutput{Result: result}, nil
}
