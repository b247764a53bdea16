package action

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/crawlhq/crawl-api/internal/content"
	"github.com/crawlhq/crawl-api/internal/engine"
	"github.com/crawlhq/crawl-api/internal/entities"
	"github.com/crawlhq/crawl-api/internal/errors"
	"github.com/crawlhq/crawl-api/internal/repositories/character"
	"github.com/crawlhq/crawl-api/internal/repositories/room"
)

// failedResult records a command that resolved but did not succeed. A
// storage failure mid-handler lands here too: the character's command
// fails, the tick goes on.
func failedResult(resultType entities.ActionResultType, actorID, message string) *entities.ActionResult {
	return &entities.ActionResult{
		Type:    resultType,
		ActorID: actorID,
		Success: false,
		Message: message,
	}
}

// persistCharacter saves a mutated character, reporting success.
func (o *orchestrator) persistCharacter(ctx context.Context, char *entities.Character) bool {
	_, err := o.charRepo.Update(ctx, character.UpdateInput{Character: char})
	if err != nil {
		slog.Error("failed to persist character mutation",
			"character_id", char.ID,
			"error", err.Error(),
		)
		return false
	}
	return true
}

// persistRoom saves mutated live room state, reporting success.
func (o *orchestrator) persistRoom(ctx context.Context, input *ResolveCommandInput) bool {
	_, err := o.roomRepo.Save(ctx, room.SaveInput{
		GameInstanceID: input.Instance.ID,
		RoomIndex:      input.Instance.CurrentRoomIndex,
		Room:           input.Room,
	})
	if err != nil {
		slog.Error("failed to persist room mutation",
			"game_instance_id", input.Instance.ID,
			"room_index", input.Instance.CurrentRoomIndex,
			"error", err.Error(),
		)
		return false
	}
	return true
}

// applyProgression exercises a skill and applies any level-up to the
// character, recomputing derived stats. Progression runs on every
// exercise, hit or miss.
func (o *orchestrator) applyProgression(char *entities.Character, skillID string) (*entities.SkillProgress, error) {
	result, err := engine.ProcessSkillProgression(o.roller, char.SkillLevel(skillID))
	if err != nil {
		return nil, err
	}
	if !result.LeveledUp {
		return nil, nil
	}

	if char.Skills == nil {
		char.Skills = make(map[string]int32)
	}
	char.Skills[skillID] = result.NewLevel
	char.MaxHP = engine.MaxHP(char.Skills)
	char.MaxEnergy = engine.MaxEnergy(char.Skills)

	return &entities.SkillProgress{
		SkillID:  skillID,
		OldLevel: result.OldLevel,
		NewLevel: result.NewLevel,
	}, nil
}

// matchEnemy finds the intended target among living enemies, defaulting to
// the first. An unmatched or empty target is not an error.
func matchEnemy(target string, living []*entities.Enemy) *entities.Enemy {
	if target == "" {
		return living[0]
	}
	lower := strings.ToLower(target)
	for _, enemy := range living {
		if enemy.ID == target || strings.Contains(strings.ToLower(enemy.Name), lower) {
			return enemy
		}
	}
	return living[0]
}

func (o *orchestrator) resolveAttack(ctx context.Context, input *ResolveCommandInput, intent *entities.Intent) (*entities.ActionResult, error) {
	char := input.Character

	living := input.Room.LivingEnemies()
	if len(living) == 0 {
		return failedResult(entities.ActionResultAttack, char.ID, "There is nothing here to attack."), nil
	}
	target := matchEnemy(intent.Target, living)

	skillID := intent.Skill
	if skillID == "" {
		skillID = o.catalog.DefaultAttackSkill
	}

	outcome, err := engine.ResolveAttack(
		o.roller, char, target,
		skillID, o.catalog.WeaponDamage(char.Equipment),
		engine.Modifiers{}, engine.Modifiers{},
	)
	if err != nil {
		return nil, err
	}

	progress, err := o.applyProgression(char, skillID)
	if err != nil {
		return nil, err
	}

	attack := &entities.AttackResult{
		TargetID:     target.ID,
		SkillUsed:    skillID,
		AttackRoll:   outcome.AttackRoll.Roll,
		AttackTotal:  outcome.AttackRoll.Total,
		DefenseRoll:  outcome.DefenseRoll.Roll,
		DefenseTotal: outcome.DefenseRoll.Total,
		Hit:          outcome.Hit,
		Critical:     outcome.Critical,
		Fumble:       outcome.Fumble,
		Damage:       outcome.Damage,
	}

	message := fmt.Sprintf("You miss the %s.", target.Name)
	if outcome.Hit {
		attack.ActualDamage = engine.ApplyEnemyDamage(target, outcome.ActualDamage)
		attack.TargetDowned = !target.IsAlive()

		if !o.persistRoom(ctx, input) {
			return failedResult(entities.ActionResultAttack, char.ID,
				"Your attack could not be recorded."), nil
		}

		message = fmt.Sprintf("You hit the %s for %d damage.", target.Name, attack.ActualDamage)
		if attack.Critical {
			message = fmt.Sprintf("Critical hit! You strike the %s for %d damage.", target.Name, attack.ActualDamage)
		}
		if attack.TargetDowned {
			message += fmt.Sprintf(" The %s falls.", target.Name)
		}
	}

	if progress != nil && !o.persistCharacter(ctx, char) {
		return failedResult(entities.ActionResultAttack, char.ID,
			"Your attack could not be recorded."), nil
	}

	return &entities.ActionResult{
		Type:     entities.ActionResultAttack,
		ActorID:  char.ID,
		Success:  outcome.Hit,
		Message:  message,
		Attack:   attack,
		Progress: progress,
	}, nil
}

var directionDeltas = map[string][2]int32{
	"north": {0, -1},
	"south": {0, 1},
	"west":  {-1, 0},
	"east":  {1, 0},
}

var directionOrder = []string{"north", "south", "east", "west"}

func (o *orchestrator) resolveMove(ctx context.Context, input *ResolveCommandInput, intent *entities.Intent) (*entities.ActionResult, error) {
	char := input.Character

	direction := strings.ToLower(intent.Target)
	if _, known := directionDeltas[direction]; !known {
		// No usable direction in the command, wander instead
		pick, err := o.roller.Roll(len(directionOrder))
		if err != nil {
			return nil, err
		}
		direction = directionOrder[pick-1]
	}

	delta := directionDeltas[direction]
	newPos := entities.Position{
		X: clamp(char.Position.X+delta[0], 0, input.Room.Width-1),
		Y: clamp(char.Position.Y+delta[1], 0, input.Room.Height-1),
	}
	char.Position = newPos

	if !o.persistCharacter(ctx, char) {
		return failedResult(entities.ActionResultMove, char.ID,
			"Your move could not be recorded."), nil
	}

	return &entities.ActionResult{
		Type:    entities.ActionResultMove,
		ActorID: char.ID,
		Success: true,
		Message: fmt.Sprintf("You move %s.", direction),
		Move: &entities.MoveResult{
			Direction:   direction,
			NewPosition: newPos,
		},
	}, nil
}

func clamp(v, lo, hi int32) int32 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (o *orchestrator) resolveSkillCheck(ctx context.Context, input *ResolveCommandInput, intent *entities.Intent) (*entities.ActionResult, error) {
	char := input.Character

	skillID := intent.Skill
	if skillID == "" {
		skillID = o.catalog.DefaultCheckSkill
	}

	roll, err := engine.RollDie(o.roller)
	if err != nil {
		return nil, err
	}
	total := roll + char.SkillLevel(skillID)
	success := total >= engine.SkillCheckDifficulty

	progress, err := o.applyProgression(char, skillID)
	if err != nil {
		return nil, err
	}
	if progress != nil && !o.persistCharacter(ctx, char) {
		return failedResult(entities.ActionResultSkillCheck, char.ID,
			"Your skill check could not be recorded."), nil
	}

	message := fmt.Sprintf("Your %s check fails (%d against %d).",
		skillID, total, engine.SkillCheckDifficulty)
	if success {
		message = fmt.Sprintf("Your %s check succeeds (%d against %d).",
			skillID, total, engine.SkillCheckDifficulty)
	}

	return &entities.ActionResult{
		Type:    entities.ActionResultSkillCheck,
		ActorID: char.ID,
		Success: success,
		Message: message,
		SkillCheck: &entities.SkillCheckResult{
			SkillUsed:  skillID,
			Roll:       roll,
			Total:      total,
			Difficulty: engine.SkillCheckDifficulty,
		},
		Progress: progress,
	}, nil
}

func (o *orchestrator) resolveItemUse(ctx context.Context, input *ResolveCommandInput, intent *entities.Intent) (*entities.ActionResult, error) {
	char := input.Character

	index, item := o.findConsumable(char.Inventory, intent.Target)
	if item == nil {
		return failedResult(entities.ActionResultItemUse, char.ID,
			"You have nothing like that to use."), nil
	}

	healing := engine.ApplyHealing(char, item.Heal)
	char.Inventory = append(char.Inventory[:index], char.Inventory[index+1:]...)

	if !o.persistCharacter(ctx, char) {
		return failedResult(entities.ActionResultItemUse, char.ID,
			"The item could not be used."), nil
	}

	message := fmt.Sprintf("You use the %s.", item.Name)
	if healing > 0 {
		message = fmt.Sprintf("You use the %s and recover %d health.", item.Name, healing)
	}

	return &entities.ActionResult{
		Type:    entities.ActionResultItemUse,
		ActorID: char.ID,
		Success: true,
		Message: message,
		ItemUse: &entities.ItemUseResult{
			ItemID:  item.ID,
			Healing: healing,
		},
	}, nil
}

// findConsumable locates the first consumable inventory item matching the
// target text, or the first consumable at all when no target was given.
func (o *orchestrator) findConsumable(inventory []string, target string) (int, *content.Item) {
	normalized := strings.ReplaceAll(strings.ToLower(target), " ", "_")
	for i, itemID := range inventory {
		item, ok := o.catalog.Item(itemID)
		if !ok || !item.Consumable {
			continue
		}
		if normalized == "" ||
			strings.Contains(item.ID, normalized) ||
			strings.Contains(strings.ToLower(item.Name), strings.ToLower(target)) {
			return i, item
		}
	}
	return -1, nil
}

func (o *orchestrator) resolveInteract(input *ResolveCommandInput) *entities.ActionResult {
	return &entities.ActionResult{
		Type:    entities.ActionResultInteract,
		ActorID: input.Character.ID,
		Success: true,
		Message: o.catalog.Narrate(input.Room.Type),
	}
}

func (o *orchestrator) resolveUnknown(input *ResolveCommandInput) *entities.ActionResult {
	return &entities.ActionResult{
		Type:    entities.ActionResultUnknown,
		ActorID: input.Character.ID,
		Success: false,
		Message: o.catalog.UnknownGuidance,
	}
}

// enemyAttackSkills is checked in order when picking the skill an enemy
// attacks with.
var enemyAttackSkills = []string{"swordsmanship", "archery", "brawling"}

func (o *orchestrator) ResolveEnemyAttack(ctx context.Context, input *ResolveEnemyAttackInput) (*ResolveEnemyAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Enemy == nil {
		vb.RequiredField("Enemy")
	}
	if input.Character == nil {
		vb.RequiredField("Character")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	enemy := input.Enemy
	char := input.Character

	skillID := enemyAttackSkills[0]
	for _, candidate := range enemyAttackSkills {
		if enemy.SkillLevel(candidate) > 0 {
			skillID = candidate
			break
		}
	}

	outcome, err := engine.ResolveAttack(
		o.roller, enemy, char,
		skillID, enemy.Damage,
		engine.Modifiers{}, engine.Modifiers{},
	)
	if err != nil {
		return nil, err
	}

	attack := &entities.AttackResult{
		TargetID:     char.ID,
		SkillUsed:    skillID,
		AttackRoll:   outcome.AttackRoll.Roll,
		AttackTotal:  outcome.AttackRoll.Total,
		DefenseRoll:  outcome.DefenseRoll.Roll,
		DefenseTotal: outcome.DefenseRoll.Total,
		Hit:          outcome.Hit,
		Critical:     outcome.Critical,
		Fumble:       outcome.Fumble,
		Damage:       outcome.Damage,
	}

	message := fmt.Sprintf("The %s misses %s.", enemy.Name, char.Name)
	if outcome.Hit {
		attack.ActualDamage = engine.ApplyDamage(char, outcome.ActualDamage)
		attack.TargetDowned = !char.IsActive()

		if !o.persistCharacter(ctx, char) {
			return &ResolveEnemyAttackOutput{
				Result: failedResult(entities.ActionResultAttack, enemy.ID,
					"The attack could not be recorded."),
			}, nil
		}

		message = fmt.Sprintf("The %s hits %s for %d damage.", enemy.Name, char.Name, attack.ActualDamage)
		if attack.TargetDowned {
			message += fmt.Sprintf(" %s goes down.", char.Name)
		}
	}

	return &ResolveEnemyAttackOutput{
		Result: &entities.ActionResult{
			Type:    entities.ActionResultAttack,
			ActorID: enemy.ID,
			Success: outcome.Hit,
			Message: message,
			Attack:  attack,
		},
	}, nil
}
