package entities

// RoomType classifies a room's encounter style.
type RoomType string

// Room types.
const (
	RoomTypeCombat   RoomType = "combat"
	RoomTypeTreasure RoomType = "treasure"
	RoomTypeEvent    RoomType = "event"
	RoomTypeTrap     RoomType = "trap"
	RoomTypeRest     RoomType = "rest"
	RoomTypeBoss     RoomType = "boss"
)

// Enemy is a combat participant owned by a room for the room's lifetime.
// It carries only the combat-relevant subset of a character's shape.
type Enemy struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	CurrentHP int32            `json:"current_hp"`
	MaxHP     int32            `json:"max_hp"`
	Skills    map[string]int32 `json:"skills"`
	Damage    int32            `json:"damage"`
}

// GetID implements core.Entity
func (e *Enemy) GetID() string {
	return e.ID
}

// GetType implements core.Entity
func (e *Enemy) GetType() string {
	return "enemy"
}

// SkillLevel returns the enemy's level in a skill, 0 when untrained.
func (e *Enemy) SkillLevel(skillID string) int32 {
	if e.Skills == nil {
		return 0
	}
	return e.Skills[skillID]
}

// CurrentHealth returns the enemy's current health.
func (e *Enemy) CurrentHealth() int32 {
	return e.CurrentHP
}

// IsAlive reports whether the enemy still has health remaining.
func (e *Enemy) IsAlive() bool {
	return e.CurrentHP > 0
}

// Room is a bounded encounter space within a dungeon. A dungeon carries room
// templates; a live copy with generated enemy IDs is made per instance when
// the instance is created.
type Room struct {
	ID          string   `json:"id"`
	Type        RoomType `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Width       int32    `json:"width"`
	Height      int32    `json:"height"`
	Enemies     []*Enemy `json:"enemies"`
}

// LivingEnemies returns the room's enemies with health remaining, in their
// original order.
func (r *Room) LivingEnemies() []*Enemy {
	var living []*Enemy
	for _, e := range r.Enemies {
		if e.IsAlive() {
			living = append(living, e)
		}
	}
	return living
}

// Dungeon is an immutable ordered sequence of room templates forming one
// adventure.
type Dungeon struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Rooms []*Room `json:"rooms"`
}
