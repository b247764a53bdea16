// Package progress evaluates party and dungeon progression after a tick
// resolves. It is pure: callers pass the post-resolution state and apply
// the verdict themselves.
package progress

import (
	"github.com/crawlhq/crawl-api/internal/entities"
)

// Verdict is the outcome of evaluating one resolved tick.
type Verdict struct {
	// RoomCleared reports whether the current room's completion condition
	// was met this tick.
	RoomCleared bool

	// DungeonCompleted reports whether the cleared room was the final one.
	DungeonCompleted bool

	// PartyWiped reports whether no character can still act.
	PartyWiped bool

	// NextRoomIndex is the room the party occupies after this tick. It
	// advances only when a non-final room clears.
	NextRoomIndex int32

	// GameState is the instance state after this tick.
	GameState entities.GameState
}

// combatRoom reports whether a room type gates on defeating enemies.
func combatRoom(t entities.RoomType) bool {
	return t == entities.RoomTypeCombat || t == entities.RoomTypeBoss
}

// Evaluate computes the progression verdict for a resolved tick.
// resolvedCount is the number of commands resolved this tick; non-combat
// rooms clear on the first tick that resolves at least one command.
// A party wipe takes precedence over any clear condition met in the
// same tick.
func Evaluate(
	inst *entities.GameInstance,
	characters []*entities.Character,
	room *entities.Room,
	dungeon *entities.Dungeon,
	resolvedCount int,
) Verdict {
	verdict := Verdict{
		NextRoomIndex: inst.CurrentRoomIndex,
		GameState:     inst.State,
	}

	anyStanding := false
	for _, char := range characters {
		if char.IsActive() {
			anyStanding = true
			break
		}
	}
	if !anyStanding {
		verdict.PartyWiped = true
		verdict.GameState = entities.GameStateFailed
		return verdict
	}

	if combatRoom(room.Type) {
		verdict.RoomCleared = len(room.LivingEnemies()) == 0
	} else {
		verdict.RoomCleared = resolvedCount > 0
	}

	if !verdict.RoomCleared {
		return verdict
	}

	lastRoom := int(inst.CurrentRoomIndex) >= len(dungeon.Rooms)-1
	if lastRoom {
		verdict.DungeonCompleted = true
		verdict.GameState = entities.GameStateCompleted
		return verdict
	}

	verdict.NextRoomIndex = inst.CurrentRoomIndex + 1
	return verdict
}
