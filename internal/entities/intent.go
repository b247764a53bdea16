package entities

// IntentType is the classified purpose of a raw command. The set is closed:
// the action pipeline dispatches over it exhaustively, so adding an intent
// means adding a resolver.
type IntentType string

// Intent types.
const (
	IntentAttack   IntentType = "attack"
	IntentMove     IntentType = "move"
	IntentUseSkill IntentType = "use_skill"
	IntentUseItem  IntentType = "use_item"
	IntentInteract IntentType = "interact"
	IntentUnknown  IntentType = "unknown"
)

// Intent is the interpretation of a raw command: what the player is trying
// to do, against what, with which skill, and how confident the interpreter
// is in that reading.
type Intent struct {
	Type       IntentType `json:"type"`
	Target     string     `json:"target,omitempty"`
	Skill      string     `json:"skill,omitempty"`
	Confidence float64    `json:"confidence"`
}
