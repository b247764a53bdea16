// Package tick implements the tick scheduler: instance lifecycle, command
// submission, and the resolution of one tick as an atomic step of the
// game's turn progression.
package tick

//go:generate mockgen -destination=mock/mock_service.go -package=tickmock github.com/crawlhq/crawl-api/internal/orchestrators/tick Service

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/crawlhq/crawl-api/internal/clients/intent"
	"github.com/crawlhq/crawl-api/internal/content"
	"github.com/crawlhq/crawl-api/internal/engine"
	"github.com/crawlhq/crawl-api/internal/entities"
	"github.com/crawlhq/crawl-api/internal/errors"
	"github.com/crawlhq/crawl-api/internal/orchestrators/action"
	"github.com/crawlhq/crawl-api/internal/pkg/clock"
	"github.com/crawlhq/crawl-api/internal/pkg/idgen"
	"github.com/crawlhq/crawl-api/internal/repositories/character"
	"github.com/crawlhq/crawl-api/internal/repositories/command"
	"github.com/crawlhq/crawl-api/internal/repositories/dungeon"
	"github.com/crawlhq/crawl-api/internal/repositories/instance"
	"github.com/crawlhq/crawl-api/internal/repositories/room"
)

// DefaultTickInterval is used when an instance is created without one.
const DefaultTickInterval = 30 * time.Second

// Service defines the interface for tick scheduling operations
type Service interface {
	// CreateInstance starts a new adventure for a party
	CreateInstance(ctx context.Context, input *CreateInstanceInput) (*CreateInstanceOutput, error)

	// GetInstance returns an instance with its party and live room state
	GetInstance(ctx context.Context, input *GetInstanceInput) (*GetInstanceOutput, error)

	// SubmitCommand appends a character's command for the current tick.
	// Submission never mutates character state.
	SubmitCommand(ctx context.Context, input *SubmitCommandInput) (*SubmitCommandOutput, error)

	// ProcessTick resolves the current tick if enough commands are in, or
	// reports a waiting outcome. Force resolves with whatever was
	// submitted.
	ProcessTick(ctx context.Context, input *ProcessTickInput) (*ProcessTickOutput, error)
}

// Config holds the dependencies for the tick orchestrator
type Config struct {
	InstanceRepo  instance.Repository
	CharacterRepo character.Repository
	CommandRepo   command.Repository
	RoomRepo      room.Repository
	DungeonRepo   dungeon.Repository
	ActionService action.Service
	IntentClient  intent.Client
	Catalog       *content.Catalog
	Roller        dice.Roller
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.InstanceRepo == nil {
		vb.RequiredField("InstanceRepo")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.CommandRepo == nil {
		vb.RequiredField("CommandRepo")
	}
	if c.RoomRepo == nil {
		vb.RequiredField("RoomRepo")
	}
	if c.DungeonRepo == nil {
		vb.RequiredField("DungeonRepo")
	}
	if c.ActionService == nil {
		vb.RequiredField("ActionService")
	}
	if c.IntentClient == nil {
		vb.RequiredField("IntentClient")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	return vb.Build()
}

type orchestrator struct {
	instanceRepo  instance.Repository
	charRepo      character.Repository
	commandRepo   command.Repository
	roomRepo      room.Repository
	dungeonRepo   dungeon.Repository
	actionService action.Service
	intentClient  intent.Client
	catalog       *content.Catalog
	roller        dice.Roller
	idGen         idgen.Generator
	clock         clock.Clock
}

// NewOrchestrator creates a new tick orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = engine.NewRoller()
	}
	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("")
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &orchestrator{
		instanceRepo:  cfg.InstanceRepo,
		charRepo:      cfg.CharacterRepo,
		commandRepo:   cfg.CommandRepo,
		roomRepo:      cfg.RoomRepo,
		dungeonRepo:   cfg.DungeonRepo,
		actionService: cfg.ActionService,
		intentClient:  cfg.IntentClient,
		catalog:       cfg.Catalog,
		roller:        roller,
		idGen:         idGen,
		clock:         clk,
	}, nil
}

// CreateInstanceInput starts a dungeon run.
type CreateInstanceInput struct {
	DungeonID    string
	CharacterIDs []string
	TickInterval time.Duration
}

// CreateInstanceOutput is the created instance.
type CreateInstanceOutput struct {
	Instance *entities.GameInstance
	Room     *entities.Room
}

// GetInstanceInput requests an instance by ID.
type GetInstanceInput struct {
	GameInstanceID string
}

// GetInstanceOutput is the instance with its current context.
type GetInstanceOutput struct {
	Instance   *entities.GameInstance
	Room       *entities.Room
	Characters []*entities.Character
}

// SubmitCommandInput appends a command for the current tick.
type SubmitCommandInput struct {
	GameInstanceID string
	CharacterID    string
	Input          string
}

// SubmitCommandOutput reports the stored command and how far along the
// tick's submissions are.
type SubmitCommandOutput struct {
	Command   *entities.Command
	Tick      int32
	Submitted int32
	Expected  int32
}

// ProcessTickInput triggers tick resolution.
type ProcessTickInput struct {
	GameInstanceID string

	// Force resolves the tick even when not every expected character has
	// submitted a command.
	Force bool
}

// ProcessTickOutput is the scheduler's verdict for one invocation. When
// Waiting is set, nothing was mutated and only Submitted/Expected are
// meaningful alongside Tick.
type ProcessTickOutput struct {
	Waiting   bool
	Submitted int32
	Expected  int32

	Tick             int32
	NextTick         int32
	Results          []*entities.ActionResult
	RoomCleared      bool
	DungeonCompleted bool
	PartyWiped       bool
	GameState        entities.GameState
}

func (o *orchestrator) CreateInstance(ctx context.Context, input *CreateInstanceInput) (*CreateInstanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.DungeonID == "" {
		vb.RequiredField("DungeonID")
	}
	if len(input.CharacterIDs) == 0 {
		vb.RequiredField("CharacterIDs")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	dungeonOutput, err := o.dungeonRepo.Get(ctx, dungeon.GetInput{ID: input.DungeonID})
	if err != nil {
		return nil, err
	}
	if len(dungeonOutput.Dungeon.Rooms) == 0 {
		return nil, errors.FailedPreconditionf("dungeon %s has no rooms", input.DungeonID)
	}

	for _, charID := range input.CharacterIDs {
		if _, err := o.charRepo.Get(ctx, character.GetInput{ID: charID}); err != nil {
			return nil, err
		}
	}

	interval := input.TickInterval
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	inst := &entities.GameInstance{
		ID:           o.idGen.Generate(),
		DungeonID:    input.DungeonID,
		CharacterIDs: input.CharacterIDs,
		CurrentTick:  1,
		TickInterval: interval,
		State:        entities.GameStateActive,
	}

	liveRoom := instantiateRoom(dungeonOutput.Dungeon.Rooms[0], o.idGen)
	if _, err := o.roomRepo.Save(ctx, room.SaveInput{
		GameInstanceID: inst.ID,
		RoomIndex:      0,
		Room:           liveRoom,
	}); err != nil {
		return nil, err
	}

	created, err := o.instanceRepo.Create(ctx, instance.CreateInput{Instance: inst})
	if err != nil {
		return nil, err
	}

	return &CreateInstanceOutput{
		Instance: created.Instance,
		Room:     liveRoom,
	}, nil
}

func (o *orchestrator) GetInstance(ctx context.Context, input *GetInstanceInput) (*GetInstanceOutput, error) {
	if input == nil || input.GameInstanceID == "" {
		return nil, errors.InvalidArgument("game instance ID is required")
	}

	instOutput, err := o.instanceRepo.Get(ctx, instance.GetInput{ID: input.GameInstanceID})
	if err != nil {
		return nil, err
	}
	inst := instOutput.Instance

	// Live room state is destroyed when the instance ends, so a terminal
	// instance reads back without one.
	var liveRoom *entities.Room
	roomOutput, err := o.roomRepo.Get(ctx, room.GetInput{
		GameInstanceID: inst.ID,
		RoomIndex:      inst.CurrentRoomIndex,
	})
	switch {
	case err == nil:
		liveRoom = roomOutput.Room
	case errors.IsNotFound(err) && !inst.IsActive():
	default:
		return nil, err
	}

	characters, err := o.loadParty(ctx, inst)
	if err != nil {
		return nil, err
	}

	return &GetInstanceOutput{
		Instance:   inst,
		Room:       liveRoom,
		Characters: characters,
	}, nil
}

func (o *orchestrator) SubmitCommand(ctx context.Context, input *SubmitCommandInput) (*SubmitCommandOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.GameInstanceID == "" {
		vb.RequiredField("GameInstanceID")
	}
	if input.CharacterID == "" {
		vb.RequiredField("CharacterID")
	}
	if input.Input == "" {
		vb.RequiredField("Input")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	instOutput, err := o.instanceRepo.Get(ctx, instance.GetInput{ID: input.GameInstanceID})
	if err != nil {
		return nil, err
	}
	inst := instOutput.Instance

	if !inst.IsActive() {
		return nil, errors.FailedPreconditionf("instance %s is %s", inst.ID, inst.State)
	}
	if !containsID(inst.CharacterIDs, input.CharacterID) {
		return nil, errors.InvalidArgumentf(
			"character %s is not part of instance %s", input.CharacterID, inst.ID)
	}

	charOutput, err := o.charRepo.Get(ctx, character.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, err
	}
	// Only active characters act. Knocked out counts toward a party wipe
	// and is excluded from the expected count, so it cannot submit either.
	if !charOutput.Character.IsActive() {
		return nil, errors.FailedPreconditionf(
			"character %s is %s", input.CharacterID, charOutput.Character.Status)
	}

	cmd := &entities.Command{
		ID:             o.idGen.Generate(),
		GameInstanceID: inst.ID,
		CharacterID:    input.CharacterID,
		Tick:           inst.CurrentTick,
		Input:          input.Input,
	}
	created, err := o.commandRepo.Create(ctx, command.CreateInput{Command: cmd})
	if err != nil {
		return nil, err
	}

	submitted, expected, err := o.submissionCounts(ctx, inst)
	if err != nil {
		return nil, err
	}

	return &SubmitCommandOutput{
		Command:   created.Command,
		Tick:      inst.CurrentTick,
		Submitted: submitted,
		Expected:  expected,
	}, nil
}

func (o *orchestrator) loadParty(ctx context.Context, inst *entities.GameInstance) ([]*entities.Character, error) {
	characters := make([]*entities.Character, 0, len(inst.CharacterIDs))
	for _, charID := range inst.CharacterIDs {
		output, err := o.charRepo.Get(ctx, character.GetInput{ID: charID})
		if err != nil {
			return nil, err
		}
		characters = append(characters, output.Character)
	}
	return characters, nil
}

func (o *orchestrator) submissionCounts(ctx context.Context, inst *entities.GameInstance) (submitted, expected int32, err error) {
	listed, err := o.commandRepo.ListForTick(ctx, command.ListForTickInput{
		GameInstanceID: inst.ID,
		Tick:           inst.CurrentTick,
	})
	if err != nil {
		return 0, 0, err
	}

	characters, err := o.loadParty(ctx, inst)
	if err != nil {
		return 0, 0, err
	}
	for _, char := range characters {
		if char.IsActive() {
			expected++
		}
	}

	return int32(len(listed.Commands)), expected, nil
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// instantiateRoom copies a dungeon room template into live state, giving
// the room and its enemies instance-scoped IDs.
func instantiateRoom(template *entities.Room, idGen idgen.Generator) *entities.Room {
	live := &entities.Room{
		ID:          idGen.Generate(),
		Type:        template.Type,
		Name:        template.Name,
		Description: template.Description,
		Width:       template.Width,
		Height:      template.Height,
	}
	for _, tmpl := range template.Enemies {
		skills := make(map[string]int32, len(tmpl.Skills))
		for id, level := range tmpl.Skills {
			skills[id] = level
		}
		live.Enemies = append(live.Enemies, &entities.Enemy{
			ID:        idGen.Generate(),
			Name:      tmpl.Name,
			CurrentHP: tmpl.MaxHP,
			MaxHP:     tmpl.MaxHP,
			Skills:    skills,
			Damage:    tmpl.Damage,
		})
	}
	return live
}
