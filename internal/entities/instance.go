package entities

import "time"

// GameState is the lifecycle state of a game instance.
type GameState string

// Game instance states. Active is initial; completed and failed are terminal.
const (
	GameStateActive    GameState = "active"
	GameStateCompleted GameState = "completed"
	GameStateFailed    GameState = "failed"
)

// GameInstance is one adventure attempt: a party working through a dungeon
// tick by tick. The tick scheduler owns all writes; everything else reads.
type GameInstance struct {
	ID           string   `json:"id"`
	DungeonID    string   `json:"dungeon_id"`
	CharacterIDs []string `json:"character_ids"`

	// CurrentTick starts at 1 and only ever moves forward.
	CurrentTick      int32         `json:"current_tick"`
	CurrentRoomIndex int32         `json:"current_room_index"`
	TickInterval     time.Duration `json:"tick_interval"`
	State            GameState     `json:"state"`
	LastActivityAt   time.Time     `json:"last_activity_at"`
	CreatedAt        time.Time     `json:"created_at"`
}

// IsActive reports whether the instance can still accept and resolve ticks.
func (g *GameInstance) IsActive() bool {
	return g.State == GameStateActive
}
