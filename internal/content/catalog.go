// Package content defines the game content catalog: skills, items,
// narration templates, and built-in dungeons. The catalog is an explicit
// value handed to orchestrators at construction time; nothing in the
// resolution core relies on a process-wide content cache.
package content

import (
	"github.com/crawlhq/crawl-api/internal/entities"
)

// EquipSlotWeapon is the equipment slot consulted for weapon damage.
const EquipSlotWeapon = "weapon"

// Item is a catalog item definition.
type Item struct {
	ID         string
	Name       string
	Damage     int32
	Heal       int32
	Consumable bool
}

// Catalog is the complete content set for a deployment.
type Catalog struct {
	// Skills lists every known skill identifier, passed to the intent
	// interpreter so it can match skill names in free text.
	Skills []string

	// DefaultAttackSkill backs attacks when no skill was suggested or the
	// suggestion is one the character does not know about.
	DefaultAttackSkill string

	// DefaultCheckSkill backs standalone skill checks with no usable
	// suggestion.
	DefaultCheckSkill string

	Items map[string]*Item

	// Narration holds the interact flavor line per room type.
	Narration map[entities.RoomType]string

	// UnknownGuidance is returned for commands that could not be classified.
	UnknownGuidance string

	// StartingSkills and StartingItems seed newly created characters.
	StartingSkills map[string]int32
	StartingItems  []string

	// Dungeons are the built-in adventure templates.
	Dungeons []*entities.Dungeon
}

// Item looks up an item definition.
func (c *Catalog) Item(id string) (*Item, bool) {
	item, ok := c.Items[id]
	return item, ok
}

// WeaponDamage returns the damage of the equipped weapon, or 1 for bare
// hands.
func (c *Catalog) WeaponDamage(equipment map[string]string) int32 {
	if itemID, ok := equipment[EquipSlotWeapon]; ok {
		if item, found := c.Items[itemID]; found && item.Damage > 0 {
			return item.Damage
		}
	}
	return 1
}

// Narrate returns the interact flavor line for a room type.
func (c *Catalog) Narrate(roomType entities.RoomType) string {
	if line, ok := c.Narration[roomType]; ok {
		return line
	}
	return "You look around, but nothing of note happens."
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Skills: []string{
			"swordsmanship", "archery", "brawling",
			"dodge", "shield_use", "parry",
			"perception", "athletics", "arcana", "lockpicking",
		},
		DefaultAttackSkill: "brawling",
		DefaultCheckSkill:  "athletics",
		Items: map[string]*Item{
			"rusty_sword": {ID: "rusty_sword", Name: "Rusty Sword", Damage: 2},
			"short_bow":   {ID: "short_bow", Name: "Short Bow", Damage: 2},
			"iron_sword":  {ID: "iron_sword", Name: "Iron Sword", Damage: 3},
			"healing_potion": {
				ID: "healing_potion", Name: "Healing Potion", Heal: 15, Consumable: true,
			},
			"bandage": {ID: "bandage", Name: "Bandage", Heal: 5, Consumable: true},
		},
		Narration: map[entities.RoomType]string{
			entities.RoomTypeCombat:   "Claw marks and old bones litter the floor.",
			entities.RoomTypeTreasure: "A battered chest sits half-buried in rubble.",
			entities.RoomTypeEvent:    "A faded mural covers the far wall.",
			entities.RoomTypeTrap:     "The flagstones here look suspiciously clean.",
			entities.RoomTypeRest:     "The air is still. A safe place to catch your breath.",
			entities.RoomTypeBoss:     "Something very large breathes in the dark ahead.",
		},
		UnknownGuidance: "Try commands like 'attack the rat', 'move north', 'use potion', or 'look around'.",
		StartingSkills: map[string]int32{
			"swordsmanship": 1,
			"dodge":         1,
			"perception":    1,
		},
		StartingItems: []string{"healing_potion"},
		Dungeons:      []*entities.Dungeon{defaultDungeon()},
	}
}

func defaultDungeon() *entities.Dungeon {
	return &entities.Dungeon{
		ID:   "dungeon_sunken_crypt",
		Name: "The Sunken Crypt",
		Rooms: []*entities.Room{
			{
				Type:        entities.RoomTypeCombat,
				Name:        "Collapsed Antechamber",
				Description: "Rubble chokes the entrance. Red eyes glint between the stones.",
				Width:       8,
				Height:      6,
				Enemies: []*entities.Enemy{
					{Name: "Crypt Rat", CurrentHP: 8, MaxHP: 8, Damage: 1,
						Skills: map[string]int32{"brawling": 2, "dodge": 3}},
					{Name: "Crypt Rat", CurrentHP: 8, MaxHP: 8, Damage: 1,
						Skills: map[string]int32{"brawling": 2, "dodge": 3}},
				},
			},
			{
				Type:        entities.RoomTypeTreasure,
				Name:        "Flooded Reliquary",
				Description: "Ankle-deep water hides loose coins and older things.",
				Width:       6,
				Height:      6,
			},
			{
				Type:        entities.RoomTypeCombat,
				Name:        "Ossuary Hall",
				Description: "Stacked femurs rattle as something assembles itself.",
				Width:       10,
				Height:      8,
				Enemies: []*entities.Enemy{
					{Name: "Skeleton Guard", CurrentHP: 14, MaxHP: 14, Damage: 3,
						Skills: map[string]int32{"swordsmanship": 8, "parry": 6, "perception": 4}},
				},
			},
			{
				Type:        entities.RoomTypeRest,
				Name:        "Warden's Cell",
				Description: "A dry cell with a barred door that still locks from the inside.",
				Width:       5,
				Height:      5,
			},
			{
				Type:        entities.RoomTypeBoss,
				Name:        "Drowned Vault",
				Description: "The vault's keeper has been waiting a very long time.",
				Width:       12,
				Height:      10,
				Enemies: []*entities.Enemy{
					{Name: "Vault Keeper", CurrentHP: 30, MaxHP: 30, Damage: 5,
						Skills: map[string]int32{"swordsmanship": 15, "shield_use": 12, "perception": 10}},
				},
			},
		},
	}
}
