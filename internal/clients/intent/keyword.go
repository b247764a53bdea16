package intent

import (
	"context"
	"strings"

	"github.com/crawlhq/crawl-api/internal/entities"
)

// Confidence levels reported by the keyword classifier. Keyword matches
// are deliberately lower confidence than a real language model would
// report so callers can distinguish the two.
const (
	keywordConfidence = 0.6
	unknownConfidence = 0.2
)

var (
	attackWords = []string{"attack", "hit", "strike", "stab", "slash", "shoot", "fight", "kill", "swing", "punch"}
	moveWords   = []string{"move", "go", "walk", "run", "step", "head", "north", "south", "east", "west"}
	defendWords = []string{"defend", "block", "guard", "evade", "duck"}
	castWords   = []string{"cast", "channel", "invoke"}
	itemWords   = []string{"use", "drink", "quaff", "eat", "apply", "consume"}
	lookWords   = []string{"look", "examine", "search", "inspect", "open", "touch", "read", "listen", "investigate"}
)

// KeywordClassifier classifies commands by keyword matching. It is the
// offline fallback behind the hosted interpreter and the default client
// when no interpreter endpoint is configured.
type KeywordClassifier struct{}

// NewKeywordClassifier creates a keyword-based intent classifier.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{}
}

// Interpret implements Client. It never returns an error.
func (c *KeywordClassifier) Interpret(_ context.Context, input *InterpretInput) (*InterpretOutput, error) {
	if input == nil || strings.TrimSpace(input.Text) == "" {
		return unknownIntent(), nil
	}

	text := strings.ToLower(input.Text)
	words := strings.Fields(text)

	switch {
	case containsAny(words, attackWords):
		return &InterpretOutput{Intent: &entities.Intent{
			Type:       entities.IntentAttack,
			Target:     matchEnemy(text, input.Enemies),
			Skill:      matchSkill(text, input.Skills),
			Confidence: keywordConfidence,
		}}, nil

	case containsAny(words, castWords):
		return &InterpretOutput{Intent: &entities.Intent{
			Type:       entities.IntentUseSkill,
			Skill:      matchSkill(text, input.Skills),
			Confidence: keywordConfidence,
		}}, nil

	case containsAny(words, defendWords):
		return &InterpretOutput{Intent: &entities.Intent{
			Type:       entities.IntentUseSkill,
			Skill:      "dodge",
			Confidence: keywordConfidence,
		}}, nil

	case containsAny(words, itemWords):
		return &InterpretOutput{Intent: &entities.Intent{
			Type:       entities.IntentUseItem,
			Target:     afterKeyword(words, itemWords),
			Confidence: keywordConfidence,
		}}, nil

	case containsAny(words, moveWords):
		return &InterpretOutput{Intent: &entities.Intent{
			Type:       entities.IntentMove,
			Target:     matchDirection(words),
			Confidence: keywordConfidence,
		}}, nil

	case containsAny(words, lookWords):
		return &InterpretOutput{Intent: &entities.Intent{
			Type:       entities.IntentInteract,
			Confidence: keywordConfidence,
		}}, nil

	default:
		return unknownIntent(), nil
	}
}

func unknownIntent() *InterpretOutput {
	return &InterpretOutput{Intent: &entities.Intent{
		Type:       entities.IntentUnknown,
		Confidence: unknownConfidence,
	}}
}

func containsAny(words, keywords []string) bool {
	for _, word := range words {
		for _, keyword := range keywords {
			if word == keyword {
				return true
			}
		}
	}
	return false
}

// matchEnemy finds the first enemy whose name appears in the text.
// Matching is case-insensitive and tolerates partial names ("rat"
// matches "Crypt Rat").
func matchEnemy(text string, enemies []string) string {
	for _, name := range enemies {
		lower := strings.ToLower(name)
		if strings.Contains(text, lower) {
			return name
		}
		for _, part := range strings.Fields(lower) {
			if strings.Contains(text, part) {
				return name
			}
		}
	}
	return ""
}

func matchSkill(text string, skills []string) string {
	for _, skill := range skills {
		if strings.Contains(text, strings.ReplaceAll(skill, "_", " ")) ||
			strings.Contains(text, skill) {
			return skill
		}
	}
	return ""
}

var directions = []string{"north", "south", "east", "west"}

func matchDirection(words []string) string {
	for _, word := range words {
		for _, dir := range directions {
			if word == dir {
				return dir
			}
		}
	}
	return ""
}

// afterKeyword returns the text following the first matched keyword,
// e.g. "drink healing potion" yields "healing potion".
func afterKeyword(words, keywords []string) string {
	for i, word := range words {
		for _, keyword := range keywords {
			if word == keyword && i+1 < len(words) {
				rest := strings.Join(words[i+1:], " ")
				return strings.TrimPrefix(rest, "the ")
			}
		}
	}
	return ""
}
