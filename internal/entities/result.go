package entities

// ActionResultType tags an ActionResult with the kind of action it records.
type ActionResultType string

// Action result types, one per intent variant.
const (
	ActionResultAttack     ActionResultType = "attack"
	ActionResultMove       ActionResultType = "move"
	ActionResultSkillCheck ActionResultType = "skill_check"
	ActionResultItemUse    ActionResultType = "item_use"
	ActionResultInteract   ActionResultType = "interact"
	ActionResultUnknown    ActionResultType = "unknown"
)

// AttackResult carries the combat breakdown of an attack action.
type AttackResult struct {
	TargetID     string `json:"target_id"`
	SkillUsed    string `json:"skill_used"`
	AttackRoll   int32  `json:"attack_roll"`
	AttackTotal  int32  `json:"attack_total"`
	DefenseRoll  int32  `json:"defense_roll"`
	DefenseTotal int32  `json:"defense_total"`
	Hit          bool   `json:"hit"`
	Critical     bool   `json:"critical"`
	Fumble       bool   `json:"fumble"`
	Damage       int32  `json:"damage"`
	ActualDamage int32  `json:"actual_damage"`
	TargetDowned bool   `json:"target_downed"`
}

// MoveResult carries the outcome of a move action.
type MoveResult struct {
	Direction   string   `json:"direction"`
	NewPosition Position `json:"new_position"`
}

// SkillCheckResult carries the outcome of a standalone skill check.
type SkillCheckResult struct {
	SkillUsed  string `json:"skill_used"`
	Roll       int32  `json:"roll"`
	Total      int32  `json:"total"`
	Difficulty int32  `json:"difficulty"`
}

// SkillProgress records level-up-through-use growth applied after a skill
// was exercised, whatever the action's outcome was.
type SkillProgress struct {
	SkillID  string `json:"skill_id"`
	OldLevel int32  `json:"old_level"`
	NewLevel int32  `json:"new_level"`
}

// ItemUseResult carries the outcome of consuming an inventory item.
type ItemUseResult struct {
	ItemID  string `json:"item_id"`
	Healing int32  `json:"healing"`
}

// ActionResult is the record produced by resolving one command (or one enemy
// action). Type selects which variant payload is populated; the others stay
// nil. ActorID is the character or enemy the result is attributed to.
type ActionResult struct {
	Type       ActionResultType  `json:"type"`
	ActorID    string            `json:"actor_id"`
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Attack     *AttackResult     `json:"attack,omitempty"`
	Move       *MoveResult       `json:"move,omitempty"`
	SkillCheck *SkillCheckResult `json:"skill_check,omitempty"`
	ItemUse    *ItemUseResult    `json:"item_use,omitempty"`
	Progress   *SkillProgress    `json:"progress,omitempty"`
}
