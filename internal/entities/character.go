// Package entities defines the core data model for the crawl API.
package entities

import "time"

// CharacterStatus is the lifecycle status of a character.
type CharacterStatus string

// Character lifecycle states. Transitions only move forward:
// active -> knocked_out -> dead. Revival is out of scope.
const (
	CharacterStatusActive     CharacterStatus = "active"
	CharacterStatusKnockedOut CharacterStatus = "knocked_out"
	CharacterStatusDead       CharacterStatus = "dead"
)

// Position is a character's location within a room, bounded by the room's
// layout dimensions.
type Position struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Character represents a player character.
//
// MaxHP and MaxEnergy are derived from total skill investment and must be
// recomputed through the engine whenever Skills changes; they are stored
// only so reads don't need the full skill map.
type Character struct {
	ID        string            `json:"id"`
	PlayerID  string            `json:"player_id"`
	Name      string            `json:"name"`
	CurrentHP int32             `json:"current_hp"`
	MaxHP     int32             `json:"max_hp"`
	Energy    int32             `json:"energy"`
	MaxEnergy int32             `json:"max_energy"`
	Skills    map[string]int32  `json:"skills"`
	Equipment map[string]string `json:"equipment"`
	Inventory []string          `json:"inventory"`
	Position  Position          `json:"position"`
	Status    CharacterStatus   `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// GetID implements core.Entity
func (c *Character) GetID() string {
	return c.ID
}

// GetType implements core.Entity
func (c *Character) GetType() string {
	return "character"
}

// SkillLevel returns the character's level in a skill, 0 when untrained.
func (c *Character) SkillLevel(skillID string) int32 {
	if c.Skills == nil {
		return 0
	}
	return c.Skills[skillID]
}

// CurrentHealth returns the character's current health.
func (c *Character) CurrentHealth() int32 {
	return c.CurrentHP
}

// IsActive reports whether the character can still act.
func (c *Character) IsActive() bool {
	return c.Status == CharacterStatusActive
}
