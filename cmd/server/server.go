package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/crawlhq/crawl-api/internal/clients/intent"
	"github.com/crawlhq/crawl-api/internal/config"
	"github.com/crawlhq/crawl-api/internal/content"
	"github.com/crawlhq/crawl-api/internal/engine"
	v1alpha1 "github.com/crawlhq/crawl-api/internal/handlers/api/v1alpha1"
	"github.com/crawlhq/crawl-api/internal/orchestrators/action"
	characterorch "github.com/crawlhq/crawl-api/internal/orchestrators/character"
	"github.com/crawlhq/crawl-api/internal/orchestrators/tick"
	internalredis "github.com/crawlhq/crawl-api/internal/redis"
	characterrepo "github.com/crawlhq/crawl-api/internal/repositories/character"
	commandrepo "github.com/crawlhq/crawl-api/internal/repositories/command"
	dungeonrepo "github.com/crawlhq/crawl-api/internal/repositories/dungeon"
	instancerepo "github.com/crawlhq/crawl-api/internal/repositories/instance"
	roomrepo "github.com/crawlhq/crawl-api/internal/repositories/room"
	"github.com/crawlhq/crawl-api/internal/worker"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the API server",
	Long:  `Start the crawl API server with an embedded background tick worker.`,
	RunE:  runServer,
}

// services is the wired dependency graph shared by the server and worker
// commands.
type services struct {
	redisClient      internalredis.Client
	tickService      tick.Service
	characterService characterorch.Service
	tickWorker       *worker.Worker
}

func (s *services) Close() {
	_ = s.redisClient.Close()
}

func buildServices(cfg *config.Config) (*services, error) {
	redisClient, err := internalredis.NewClient(cfg.RedisAddress, &internalredis.Options{
		Password: cfg.RedisPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	instanceRepo, err := instancerepo.NewRedis(&instancerepo.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, err
	}
	charRepo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, err
	}
	commandRepo, err := commandrepo.NewRedis(&commandrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, err
	}
	roomRepo, err := roomrepo.NewRedis(&roomrepo.RedisConfig{Client: redisClient})
	if err != nil {
		return nil, err
	}

	catalog := content.Default()
	dungeonRepo := dungeonrepo.NewInMemory(catalog.Dungeons)
	intentClient, err := buildIntentClient(cfg)
	if err != nil {
		return nil, err
	}

	roller := engine.NewRoller()
	actionService, err := action.NewOrchestrator(&action.Config{
		CharacterRepo: charRepo,
		RoomRepo:      roomRepo,
		Catalog:       catalog,
		Roller:        roller,
	})
	if err != nil {
		return nil, err
	}
	tickService, err := tick.NewOrchestrator(&tick.Config{
		InstanceRepo:  instanceRepo,
		CharacterRepo: charRepo,
		CommandRepo:   commandRepo,
		RoomRepo:      roomRepo,
		DungeonRepo:   dungeonRepo,
		ActionService: actionService,
		IntentClient:  intentClient,
		Catalog:       catalog,
		Roller:        roller,
	})
	if err != nil {
		return nil, err
	}
	characterService, err := characterorch.NewOrchestrator(&characterorch.Config{
		CharacterRepo: charRepo,
		Catalog:       catalog,
	})
	if err != nil {
		return nil, err
	}

	tickWorker, err := worker.New(&worker.Config{
		InstanceRepo: instanceRepo,
		TickService:  tickService,
		PollInterval: cfg.WorkerPollInterval,
		ForceAfter:   cfg.ForceTickAfter,
		TickTimeout:  cfg.TickTimeout,
	})
	if err != nil {
		return nil, err
	}

	return &services{
		redisClient:      redisClient,
		tickService:      tickService,
		characterService: characterService,
		tickWorker:       tickWorker,
	}, nil
}

// buildIntentClient prefers the remote interpreter with keyword fallback.
func buildIntentClient(cfg *config.Config) (intent.Client, error) {
	keyword := intent.NewKeywordClassifier()
	if cfg.IntentServiceURL == "" {
		return keyword, nil
	}
	remote, err := intent.NewHTTPClient(&intent.HTTPConfig{
		BaseURL: cfg.IntentServiceURL,
		Timeout: cfg.IntentTimeout,
	})
	if err != nil {
		return nil, err
	}
	return intent.NewFallbackClient(remote, keyword), nil
}

// signalContext cancels when the process receives SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			slog.Info("received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

func runServer(cmd *cobra.Command, args []string) error {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	svcs, err := buildServices(cfg)
	if err != nil {
		return err
	}
	defer svcs.Close()

	characterHandler, err := v1alpha1.NewCharacterHandler(&v1alpha1.CharacterHandlerConfig{
		CharacterService: svcs.characterService,
	})
	if err != nil {
		return err
	}
	gameHandler, err := v1alpha1.NewGameHandler(&v1alpha1.GameHandlerConfig{
		TickService: svcs.tickService,
		TickTimeout: cfg.TickTimeout,
	})
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	characterHandler.Register(mux)
	gameHandler.Register(mux)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := svcs.redisClient.Ping(r.Context()).Err(); err != nil {
			http.Error(w, "redis unreachable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		svcs.tickWorker.Run(ctx)
	}()

	srv := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           mux,
		ReadHeaderTimeout: cfg.ShutdownTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("server starting", "address", cfg.HTTPAddress)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		cancel()
		<-workerDone
		return err
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err.Error())
	}
	<-workerDone
	slog.Info("server stopped")
	return nil
}
