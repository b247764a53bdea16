package v1alpha1

import (
	"context"
	"net/http"
	"time"

	"github.com/crawlhq/crawl-api/internal/entities"
	"github.com/crawlhq/crawl-api/internal/errors"
	"github.com/crawlhq/crawl-api/internal/orchestrators/tick"
)

// GameHandlerConfig holds dependencies for the game handler
type GameHandlerConfig struct {
	TickService tick.Service

	// TickTimeout bounds each ProcessTick request. Optional; defaults to
	// DefaultTickTimeout.
	TickTimeout time.Duration
}

// DefaultTickTimeout bounds an API-triggered tick resolution when the
// config does not say otherwise.
const DefaultTickTimeout = 30 * time.Second

// Validate ensures all required dependencies are present
func (c *GameHandlerConfig) Validate() error {
	if c.TickService == nil {
		return errors.InvalidArgument("tick service is required")
	}
	return nil
}

// GameHandler serves instance lifecycle, command submission, and tick
// processing
type GameHandler struct {
	tickService tick.Service
	tickTimeout time.Duration
}

// NewGameHandler creates a new game handler with the given configuration
func NewGameHandler(cfg *GameHandlerConfig) (*GameHandler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tickTimeout := cfg.TickTimeout
	if tickTimeout <= 0 {
		tickTimeout = DefaultTickTimeout
	}

	return &GameHandler{
		tickService: cfg.TickService,
		tickTimeout: tickTimeout,
	}, nil
}

// Register mounts the game routes on the mux.
func (h *GameHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1alpha1/instances", h.createInstance)
	mux.HandleFunc("GET /v1alpha1/instances/{id}", h.getInstance)
	mux.HandleFunc("POST /v1alpha1/instances/{id}/commands", h.submitCommand)
	mux.HandleFunc("POST /v1alpha1/instances/{id}/tick", h.processTick)
}

type createInstanceRequest struct {
	DungeonID           string   `json:"dungeon_id"`
	CharacterIDs        []string `json:"character_ids"`
	TickIntervalSeconds int32    `json:"tick_interval_seconds,omitempty"`
}

type instanceResponse struct {
	Instance   *entities.GameInstance `json:"instance"`
	Room       *entities.Room         `json:"room,omitempty"`
	Characters []*entities.Character  `json:"characters,omitempty"`
}

func (h *GameHandler) createInstance(w http.ResponseWriter, r *http.Request) {
	var req createInstanceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.tickService.CreateInstance(r.Context(), &tick.CreateInstanceInput{
		DungeonID:    req.DungeonID,
		CharacterIDs: req.CharacterIDs,
		TickInterval: time.Duration(req.TickIntervalSeconds) * time.Second,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, instanceResponse{
		Instance: output.Instance,
		Room:     output.Room,
	})
}

func (h *GameHandler) getInstance(w http.ResponseWriter, r *http.Request) {
	output, err := h.tickService.GetInstance(r.Context(), &tick.GetInstanceInput{
		GameInstanceID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, instanceResponse{
		Instance:   output.Instance,
		Room:       output.Room,
		Characters: output.Characters,
	})
}

type submitCommandRequest struct {
	CharacterID string `json:"character_id"`
	Input       string `json:"input"`
}

type submitCommandResponse struct {
	Command   *entities.Command `json:"command"`
	Tick      int32             `json:"tick"`
	Submitted int32             `json:"submitted"`
	Expected  int32             `json:"expected"`
}

func (h *GameHandler) submitCommand(w http.ResponseWriter, r *http.Request) {
	var req submitCommandRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	output, err := h.tickService.SubmitCommand(r.Context(), &tick.SubmitCommandInput{
		GameInstanceID: r.PathValue("id"),
		CharacterID:    req.CharacterID,
		Input:          req.Input,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, submitCommandResponse{
		Command:   output.Command,
		Tick:      output.Tick,
		Submitted: output.Submitted,
		Expected:  output.Expected,
	})
}

type processTickRequest struct {
	Force bool `json:"force,omitempty"`
}

type processTickResponse struct {
	Waiting          bool                     `json:"waiting"`
	Submitted        int32                    `json:"submitted"`
	Expected         int32                    `json:"expected"`
	Tick             int32                    `json:"tick"`
	NextTick         int32                    `json:"next_tick"`
	Results          []*entities.ActionResult `json:"results,omitempty"`
	RoomCleared      bool                     `json:"room_cleared"`
	DungeonCompleted bool                     `json:"dungeon_completed"`
	PartyWiped       bool                     `json:"party_wiped"`
	GameState        entities.GameState       `json:"game_state"`
}

func (h *GameHandler) processTick(w http.ResponseWriter, r *http.Request) {
	var req processTickRequest
	if r.ContentLength > 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.tickTimeout)
	defer cancel()

	output, err := h.tickService.ProcessTick(ctx, &tick.ProcessTickInput{
		GameInstanceID: r.PathValue("id"),
		Force:          req.Force,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, processTickResponse{
		Waiting:          output.Waiting,
		Submitted:        output.Submitted,
		Expected:         output.Expected,
		Tick:             output.Tick,
		NextTick:         output.NextTick,
		Results:          output.Results,
		RoomCleared:      output.RoomCleared,
		DungeonCompleted: output.DungeonCompleted,
		PartyWiped:       output.PartyWiped,
		GameState:        output.GameState,
	})
}
