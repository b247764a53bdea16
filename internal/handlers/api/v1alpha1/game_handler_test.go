package v1alpha1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/crawlhq/crawl-api/internal/entities"
	"github.com/crawlhq/crawl-api/internal/errors"
	v1alpha1 "github.com/crawlhq/crawl-api/internal/handlers/api/v1alpha1"
	"github.com/crawlhq/crawl-api/internal/orchestrators/tick"
	tickmock "github.com/crawlhq/crawl-api/internal/orchestrators/tick/mock"
)

type GameHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *tickmock.MockService
	mux     *http.ServeMux
}

func (s *GameHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = tickmock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewGameHandler(&v1alpha1.GameHandlerConfig{
		TickService: s.service,
	})
	s.Require().NoError(err)

	s.mux = http.NewServeMux()
	handler.Register(s.mux)
}

func (s *GameHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *GameHandlerTestSuite) TestCreateInstance() {
	s.service.EXPECT().
		CreateInstance(gomock.Any(), &tick.CreateInstanceInput{
			DungeonID:    "dungeon_sunken_crypt",
			CharacterIDs: []string{"char_1", "char_2"},
			TickInterval: 60 * time.Second,
		}).
		Return(&tick.CreateInstanceOutput{
			Instance: &entities.GameInstance{ID: "game_1", State: entities.GameStateActive},
			Room:     &entities.Room{Name: "Rat Nest"},
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/instances",
		strings.NewReader(`{"dungeon_id":"dungeon_sunken_crypt","character_ids":["char_1","char_2"],"tick_interval_seconds":60}`))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"game_1"`)
	s.Contains(rec.Body.String(), `"Rat Nest"`)
}

func (s *GameHandlerTestSuite) TestGetInstance() {
	s.service.EXPECT().
		GetInstance(gomock.Any(), &tick.GetInstanceInput{GameInstanceID: "game_1"}).
		Return(&tick.GetInstanceOutput{
			Instance:   &entities.GameInstance{ID: "game_1"},
			Room:       &entities.Room{Name: "Rat Nest"},
			Characters: []*entities.Character{{ID: "char_1"}},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1alpha1/instances/game_1", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)

	var body struct {
		Instance   *entities.GameInstance `json:"instance"`
		Characters []*entities.Character  `json:"characters"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("game_1", body.Instance.ID)
	s.Len(body.Characters, 1)
}

func (s *GameHandlerTestSuite) TestSubmitCommand() {
	s.service.EXPECT().
		SubmitCommand(gomock.Any(), &tick.SubmitCommandInput{
			GameInstanceID: "game_1",
			CharacterID:    "char_1",
			Input:          "attack the rat",
		}).
		Return(&tick.SubmitCommandOutput{
			Command:   &entities.Command{ID: "cmd_1", Tick: 3},
			Tick:      3,
			Submitted: 1,
			Expected:  2,
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/instances/game_1/commands",
		strings.NewReader(`{"character_id":"char_1","input":"attack the rat"}`))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusAccepted, rec.Code)
	s.Contains(rec.Body.String(), `"submitted":1`)
	s.Contains(rec.Body.String(), `"expected":2`)
}

func (s *GameHandlerTestSuite) TestSubmitCommandDuplicate() {
	s.service.EXPECT().
		SubmitCommand(gomock.Any(), gomock.Any()).
		Return(nil, errors.AlreadyExistsf("character char_1 already submitted for tick 3"))

	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/instances/game_1/commands",
		strings.NewReader(`{"character_id":"char_1","input":"attack"}`))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), "ALREADY_EXISTS")
}

func (s *GameHandlerTestSuite) TestProcessTickWithEmptyBody() {
	s.service.EXPECT().
		ProcessTick(gomock.Any(), &tick.ProcessTickInput{GameInstanceID: "game_1"}).
		Return(&tick.ProcessTickOutput{
			Waiting:   true,
			Submitted: 1,
			Expected:  2,
			GameState: entities.GameStateActive,
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/instances/game_1/tick", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"waiting":true`)
}

func (s *GameHandlerTestSuite) TestProcessTickForced() {
	s.service.EXPECT().
		ProcessTick(gomock.Any(), &tick.ProcessTickInput{GameInstanceID: "game_1", Force: true}).
		Return(&tick.ProcessTickOutput{
			Submitted: 1,
			Expected:  2,
			Tick:      3,
			NextTick:  4,
			Results: []*entities.ActionResult{
				{Type: entities.ActionResultAttack, ActorID: "char_1", Success: true},
			},
			GameState: entities.GameStateActive,
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/instances/game_1/tick",
		strings.NewReader(`{"force":true}`))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"next_tick":4`)
}

func (s *GameHandlerTestSuite) TestProcessTickContextIsBounded() {
	s.service.EXPECT().
		ProcessTick(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *tick.ProcessTickInput) (*tick.ProcessTickOutput, error) {
			deadline, ok := ctx.Deadline()
			s.True(ok, "tick context must carry a deadline")
			s.LessOrEqual(time.Until(deadline), v1alpha1.DefaultTickTimeout)
			return &tick.ProcessTickOutput{GameState: entities.GameStateActive}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/instances/game_1/tick", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *GameHandlerTestSuite) TestProcessTickConflict() {
	s.service.EXPECT().
		ProcessTick(gomock.Any(), gomock.Any()).
		Return(nil, errors.Abortedf("tick moved: expected 3"))

	req := httptest.NewRequest(http.MethodPost, "/v1alpha1/instances/game_1/tick", nil)
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)

	s.Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), "ABORTED")
}

func TestGameHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GameHandlerTestSuite))
}
