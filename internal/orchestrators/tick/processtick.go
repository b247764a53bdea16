package tick

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crawlhq/crawl-api/internal/clients/intent"
	"github.com/crawlhq/crawl-api/internal/engine"
	"github.com/crawlhq/crawl-api/internal/entities"
	"github.com/crawlhq/crawl-api/internal/errors"
	"github.com/crawlhq/crawl-api/internal/orchestrators/action"
	"github.com/crawlhq/crawl-api/internal/progress"
	"github.com/crawlhq/crawl-api/internal/repositories/command"
	"github.com/crawlhq/crawl-api/internal/repositories/dungeon"
	"github.com/crawlhq/crawl-api/internal/repositories/instance"
	"github.com/crawlhq/crawl-api/internal/repositories/room"
)

// ProcessTick resolves one tick. The instance record is committed with a
// compare-and-set on the tick counter observed at load: when two
// invocations race, exactly one commits and the other aborts without
// persisting results.
func (o *orchestrator) ProcessTick(ctx context.Context, input *ProcessTickInput) (*ProcessTickOutput, error) {
	if input == nil || input.GameInstanceID == "" {
		return nil, errors.InvalidArgument("game instance ID is required")
	}

	instOutput, err := o.instanceRepo.Get(ctx, instance.GetInput{ID: input.GameInstanceID})
	if err != nil {
		return nil, err
	}
	inst := instOutput.Instance
	if !inst.IsActive() {
		return nil, errors.FailedPreconditionf("instance %s is %s", inst.ID, inst.State)
	}
	observedTick := inst.CurrentTick

	commandsOutput, err := o.commandRepo.ListForTick(ctx, command.ListForTickInput{
		GameInstanceID: inst.ID,
		Tick:           observedTick,
	})
	if err != nil {
		return nil, err
	}
	commands := commandsOutput.Commands

	characters, err := o.loadParty(ctx, inst)
	if err != nil {
		return nil, err
	}
	charsByID := make(map[string]*entities.Character, len(characters))
	expected := int32(0)
	for _, char := range characters {
		charsByID[char.ID] = char
		if char.IsActive() {
			expected++
		}
	}

	if int32(len(commands)) < expected && !input.Force {
		return &ProcessTickOutput{
			Waiting:   true,
			Submitted: int32(len(commands)),
			Expected:  expected,
			Tick:      observedTick,
			NextTick:  observedTick,
			GameState: inst.State,
		}, nil
	}

	dungeonOutput, err := o.dungeonRepo.Get(ctx, dungeon.GetInput{ID: inst.DungeonID})
	if err != nil {
		return nil, err
	}
	roomOutput, err := o.roomRepo.Get(ctx, room.GetInput{
		GameInstanceID: inst.ID,
		RoomIndex:      inst.CurrentRoomIndex,
	})
	if err != nil {
		return nil, err
	}
	liveRoom := roomOutput.Room

	// Resolve player commands in submission order. A failure inside one
	// command becomes a failed result for that character only.
	results := make([]*entities.ActionResult, 0, len(commands))
	for _, cmd := range commands {
		result := o.resolveOne(ctx, cmd, charsByID, inst, liveRoom)
		cmd.Result = result
		results = append(results, result)
	}

	// Living enemies strike back in initiative order.
	retaliation, err := o.resolveRetaliation(ctx, inst, liveRoom, characters)
	if err != nil {
		return nil, err
	}
	results = append(results, retaliation...)

	verdict := progress.Evaluate(inst, characters, liveRoom, dungeonOutput.Dungeon, len(commands))

	updated := *inst
	updated.CurrentTick = observedTick + 1
	updated.CurrentRoomIndex = verdict.NextRoomIndex
	updated.State = verdict.GameState

	if _, err := o.instanceRepo.UpdateWithExpectedTick(ctx, instance.UpdateWithExpectedTickInput{
		Instance:     &updated,
		ExpectedTick: observedTick,
	}); err != nil {
		// On conflict another invocation already advanced this tick; its
		// results stand and ours are discarded.
		return nil, err
	}

	// The tick is committed. Everything past this point is best-effort
	// bookkeeping for an outcome that already happened.
	if updated.IsActive() {
		if verdict.RoomCleared {
			if err := o.seedRoom(ctx, &updated, dungeonOutput.Dungeon); err != nil {
				slog.Error("failed to seed next room",
					"game_instance_id", updated.ID,
					"room_index", updated.CurrentRoomIndex,
					"error", err.Error(),
				)
			}
			// The cleared room's enemies are gone with it.
			if _, err := o.roomRepo.Delete(ctx, room.DeleteInput{
				GameInstanceID: updated.ID,
				RoomIndex:      inst.CurrentRoomIndex,
			}); err != nil {
				slog.Error("failed to delete cleared room",
					"game_instance_id", updated.ID,
					"room_index", inst.CurrentRoomIndex,
					"error", err.Error(),
				)
			}
		}
		for _, cmd := range commands {
			if _, err := o.commandRepo.Update(ctx, command.UpdateInput{Command: cmd}); err != nil {
				slog.Error("failed to persist command result",
					"command_id", cmd.ID,
					"error", err.Error(),
				)
			}
		}
	} else {
		o.cleanupInstance(ctx, &updated, observedTick)
	}

	slog.Info("tick processed",
		"game_instance_id", inst.ID,
		"tick", observedTick,
		"commands", len(commands),
		"results", len(results),
		"room_cleared", verdict.RoomCleared,
		"game_state", string(verdict.GameState),
	)

	return &ProcessTickOutput{
		Submitted:        int32(len(commands)),
		Expected:         expected,
		Tick:             observedTick,
		NextTick:         updated.CurrentTick,
		Results:          results,
		RoomCleared:      verdict.RoomCleared,
		DungeonCompleted: verdict.DungeonCompleted,
		PartyWiped:       verdict.PartyWiped,
		GameState:        verdict.GameState,
	}, nil
}

// resolveOne interprets and resolves a single command. Panics and errors
// are downgraded to a failed result so sibling commands still resolve.
func (o *orchestrator) resolveOne(
	ctx context.Context,
	cmd *entities.Command,
	charsByID map[string]*entities.Character,
	inst *entities.GameInstance,
	liveRoom *entities.Room,
) (result *entities.ActionResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic resolving command",
				"command_id", cmd.ID,
				"panic", fmt.Sprint(r),
			)
			result = failedCommandResult(cmd, "Something went wrong resolving your command.")
		}
	}()

	char, ok := charsByID[cmd.CharacterID]
	if !ok {
		return failedCommandResult(cmd, "Your character is not part of this adventure.")
	}
	if char.Status == entities.CharacterStatusDead {
		return failedCommandResult(cmd, "The dead take no actions.")
	}
	if !char.IsActive() {
		return failedCommandResult(cmd, "You are unconscious and cannot act.")
	}

	interpreted, err := o.intentClient.Interpret(ctx, &intent.InterpretInput{
		Text:    cmd.Input,
		Skills:  o.catalog.Skills,
		Enemies: enemyNames(liveRoom),
	})
	if err != nil {
		slog.Warn("intent interpretation failed",
			"command_id", cmd.ID,
			"error", err.Error(),
		)
		return failedCommandResult(cmd, "Your command could not be understood.")
	}
	cmd.Intent = interpreted.Intent

	resolved, err := o.actionService.ResolveCommand(ctx, &action.ResolveCommandInput{
		Command:   cmd,
		Character: char,
		Instance:  inst,
		Room:      liveRoom,
	})
	if err != nil {
		slog.Error("command resolution failed",
			"command_id", cmd.ID,
			"error", err.Error(),
		)
		return failedCommandResult(cmd, "Something went wrong resolving your command.")
	}

	return resolved.Result
}

// resolveRetaliation gives each living enemy one attack against the first
// character still standing, ordered by initiative.
func (o *orchestrator) resolveRetaliation(
	ctx context.Context,
	inst *entities.GameInstance,
	liveRoom *entities.Room,
	characters []*entities.Character,
) ([]*entities.ActionResult, error) {
	living := liveRoom.LivingEnemies()
	if len(living) == 0 {
		return nil, nil
	}

	combatants := make([]engine.Combatant, 0, len(living))
	for _, enemy := range living {
		combatants = append(combatants, enemy)
	}
	order, err := engine.RollInitiative(o.roller, combatants)
	if err != nil {
		return nil, err
	}

	var results []*entities.ActionResult
	for _, entry := range order {
		enemy := entry.Combatant.(*entities.Enemy)
		target := firstStanding(characters)
		if target == nil {
			break
		}

		output, err := o.actionService.ResolveEnemyAttack(ctx, &action.ResolveEnemyAttackInput{
			Enemy:     enemy,
			Character: target,
			Instance:  inst,
		})
		if err != nil {
			slog.Error("enemy attack resolution failed",
				"enemy_id", enemy.ID,
				"error", err.Error(),
			)
			continue
		}
		results = append(results, output.Result)
	}

	return results, nil
}

func firstStanding(characters []*entities.Character) *entities.Character {
	for _, char := range characters {
		if char.IsActive() {
			return char
		}
	}
	return nil
}

func enemyNames(liveRoom *entities.Room) []string {
	living := liveRoom.LivingEnemies()
	names := make([]string, 0, len(living))
	for _, enemy := range living {
		names = append(names, enemy.Name)
	}
	return names
}

func failedCommandResult(cmd *entities.Command, message string) *entities.ActionResult {
	return &entities.ActionResult{
		Type:    entities.ActionResultUnknown,
		ActorID: cmd.CharacterID,
		Success: false,
		Message: message,
	}
}

// cleanupInstance destroys per-tick and per-room state once an instance
// goes terminal. The instance record itself survives as read-only history.
func (o *orchestrator) cleanupInstance(ctx context.Context, inst *entities.GameInstance, lastTick int32) {
	for idx := int32(0); idx <= inst.CurrentRoomIndex; idx++ {
		if _, err := o.roomRepo.Delete(ctx, room.DeleteInput{
			GameInstanceID: inst.ID,
			RoomIndex:      idx,
		}); err != nil {
			slog.Error("failed to delete room state",
				"game_instance_id", inst.ID,
				"room_index", idx,
				"error", err.Error(),
			)
		}
	}
	for tick := int32(1); tick <= lastTick; tick++ {
		if _, err := o.commandRepo.DeleteForTick(ctx, command.DeleteForTickInput{
			GameInstanceID: inst.ID,
			Tick:           tick,
		}); err != nil {
			slog.Error("failed to delete tick commands",
				"game_instance_id", inst.ID,
				"tick", tick,
				"error", err.Error(),
			)
		}
	}
}

// seedRoom copies the next room's template into live state after the party
// advances.
func (o *orchestrator) seedRoom(ctx context.Context, inst *entities.GameInstance, d *entities.Dungeon) error {
	if int(inst.CurrentRoomIndex) >= len(d.Rooms) {
		return errors.Internalf("room index %d out of range for dungeon %s", inst.CurrentRoomIndex, d.ID)
	}

	live := instantiateRoom(d.Rooms[inst.CurrentRoomIndex], o.idGen)
	_, err := o.roomRepo.Save(ctx, room.SaveInput{
		GameInstanceID: inst.ID,
		RoomIndex:      inst.CurrentRoomIndex,
		Room:           live,
	})
	return err
}
