package intent_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/crawlhq/crawl-api/internal/clients/intent"
	"github.com/crawlhq/crawl-api/internal/entities"
	"github.com/crawlhq/crawl-api/internal/errors"
)

type HTTPClientTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *HTTPClientTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *HTTPClientTestSuite) TestInterpret() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/v1/interpret", r.URL.Path)

		var req map[string]interface{}
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("attack the rat", req["text"])

		s.Require().NoError(json.NewEncoder(w).Encode(map[string]interface{}{
			"type":       "attack",
			"target":     "Crypt Rat",
			"confidence": 0.95,
		}))
	}))
	defer server.Close()

	client, err := intent.NewHTTPClient(&intent.HTTPConfig{BaseURL: server.URL})
	s.Require().NoError(err)

	output, err := client.Interpret(s.ctx, &intent.InterpretInput{Text: "attack the rat"})
	s.Require().NoError(err)
	s.Equal(entities.IntentAttack, output.Intent.Type)
	s.Equal("Crypt Rat", output.Intent.Target)
	s.InDelta(0.95, output.Intent.Confidence, 0.001)
}

func (s *HTTPClientTestSuite) TestUnrecognizedTypeBecomesUnknown() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		s.Require().NoError(json.NewEncoder(w).Encode(map[string]interface{}{
			"type":       "teleport",
			"confidence": 0.9,
		}))
	}))
	defer server.Close()

	client, err := intent.NewHTTPClient(&intent.HTTPConfig{BaseURL: server.URL})
	s.Require().NoError(err)

	output, err := client.Interpret(s.ctx, &intent.InterpretInput{Text: "teleport home"})
	s.Require().NoError(err)
	s.Equal(entities.IntentUnknown, output.Intent.Type)
}

func (s *HTTPClientTestSuite) TestServerErrorIsUnavailable() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := intent.NewHTTPClient(&intent.HTTPConfig{BaseURL: server.URL})
	s.Require().NoError(err)

	_, err = client.Interpret(s.ctx, &intent.InterpretInput{Text: "attack"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *HTTPClientTestSuite) TestValidatesConfig() {
	_, err := intent.NewHTTPClient(&intent.HTTPConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HTTPClientTestSuite) TestFallbackOnFailure() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	primary, err := intent.NewHTTPClient(&intent.HTTPConfig{BaseURL: server.URL})
	s.Require().NoError(err)
	client := intent.NewFallbackClient(primary, intent.NewKeywordClassifier())

	output, err := client.Interpret(s.ctx, &intent.InterpretInput{Text: "attack the rat"})
	s.Require().NoError(err)
	s.Equal(entities.IntentAttack, output.Intent.Type)
}

func TestHTTPClientTestSuite(t *testing.T) {
	suite.Run(t, new(HTTPClientTestSuite))
}
