package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/crawlhq/crawl-api/internal/config"
	"github.com/crawlhq/crawl-api/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestLoadDefaults() {
	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(":8080", cfg.HTTPAddress)
	s.Equal("localhost:6379", cfg.RedisAddress)
	s.Empty(cfg.IntentServiceURL)
	s.Equal(5*time.Second, cfg.IntentTimeout)
	s.Equal(5*time.Second, cfg.WorkerPollInterval)
	s.Equal(2*time.Minute, cfg.ForceTickAfter)
	s.Equal(30*time.Second, cfg.TickTimeout)
}

func (s *ConfigTestSuite) TestLoadOverrides() {
	s.T().Setenv("HTTP_ADDRESS", ":9090")
	s.T().Setenv("REDIS_ADDRESS", "redis:6379")
	s.T().Setenv("INTENT_SERVICE_URL", "http://intent:8000")
	s.T().Setenv("WORKER_POLL_INTERVAL", "1s")
	s.T().Setenv("TICK_TIMEOUT", "10s")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(":9090", cfg.HTTPAddress)
	s.Equal("redis:6379", cfg.RedisAddress)
	s.Equal("http://intent:8000", cfg.IntentServiceURL)
	s.Equal(time.Second, cfg.WorkerPollInterval)
	s.Equal(10*time.Second, cfg.TickTimeout)
}

func (s *ConfigTestSuite) TestLoadRejectsBadDuration() {
	s.T().Setenv("WORKER_POLL_INTERVAL", "not-a-duration")

	_, err := config.Load()
	s.Error(err)
}

func (s *ConfigTestSuite) TestValidateRejectsNonPositiveIntervals() {
	cfg := &config.Config{
		HTTPAddress:        ":8080",
		RedisAddress:       "localhost:6379",
		WorkerPollInterval: 0,
		ForceTickAfter:     time.Minute,
		TickTimeout:        30 * time.Second,
	}
	s.True(errors.IsInvalidArgument(cfg.Validate()))
}

func (s *ConfigTestSuite) TestValidateRejectsNonPositiveTickTimeout() {
	cfg := &config.Config{
		HTTPAddress:        ":8080",
		RedisAddress:       "localhost:6379",
		WorkerPollInterval: time.Second,
		ForceTickAfter:     time.Minute,
		TickTimeout:        0,
	}
	s.True(errors.IsInvalidArgument(cfg.Validate()))
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
