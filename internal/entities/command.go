package entities

import "time"

// Command is one submitted free-text order from a character for a specific
// tick. Intent and Result stay nil until the tick that consumes the command
// is resolved. At most one resolved result exists per
// (instance, character, tick).
type Command struct {
	ID             string        `json:"id"`
	GameInstanceID string        `json:"game_instance_id"`
	CharacterID    string        `json:"character_id"`
	Tick           int32         `json:"tick"`
	Input          string        `json:"input"`
	Intent         *Intent       `json:"intent,omitempty"`
	Result         *ActionResult `json:"result,omitempty"`
	SubmittedAt    time.Time     `json:"submitted_at"`
}
