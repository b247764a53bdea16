package v1alpha1

import (
	"net/http"

	"github.com/crawlhq/crawl-api/internal/errors"
	"github.com/crawlhq/crawl-api/internal/orchestrators/character"
)

// CharacterHandlerConfig holds dependencies for the character handler
type CharacterHandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *CharacterHandlerConfig) Validate() error {
	if c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// CharacterHandler serves character creation and lookup
type CharacterHandler struct {
	characterService character.Service
}

// NewCharacterHandler creates a new character handler with the given configuration
func NewCharacterHandler(cfg *CharacterHandlerConfig) (*CharacterHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &CharacterHandler{
		characterService: cfg.CharacterService,
	}, nil
}

// Register mounts the character routes on the mux.
func (h *CharacterHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1alpha1/characters", h.createCharacter)
	mux.HandleFunc("GET /v1alpha1/characters/{id}", h.getCharacter)
	mux.HandleFunc("GET /v1alpha1/players/{player_id}/characters", h.listCharacters)
}

type createCharacterRequest struct {
	PlayerID string           `json:"player_id"`
	Name     string           `json:"name"`
	Skills   map[string]int32 `json:"skills,omitempty"`
}

func (h *CharacterHandler) createCharacter(w http.ResponseWriter, r *http.Request) {
	var req createCharacterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.characterService.CreateCharacter(r.Context(), &character.CreateCharacterInput{
		PlayerID: req.PlayerID,
		Name:     req.Name,
		Skills:   req.Skills,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output.Character)
}

func (h *CharacterHandler) getCharacter(w http.ResponseWriter, r *http.Request) {
	output, err := h.characterService.GetCharacter(r.Context(), &character.GetCharacterInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Character)
}

func (h *CharacterHandler) listCharacters(w http.ResponseWriter, r *http.Request) {
	output, err := h.characterService.ListCharacters(r.Context(), &character.ListCharactersInput{
		PlayerID: r.PathValue("player_id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output.Characters)
}
