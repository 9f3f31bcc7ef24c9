package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/sos-backend/internal/config"
	"github.com/rocketscienceinc/sos-backend/internal/entity"
	"github.com/rocketscienceinc/sos-backend/internal/replay"
	"github.com/rocketscienceinc/sos-backend/internal/repository"
	"github.com/rocketscienceinc/sos-backend/internal/repository/storage"
	"github.com/rocketscienceinc/sos-backend/internal/service"
	"github.com/rocketscienceinc/sos-backend/internal/sos"
	"github.com/rocketscienceinc/sos-backend/internal/usecase"
	"github.com/rocketscienceinc/sos-backend/transport/rest"
	"github.com/rocketscienceinc/sos-backend/transport/websocket"
)

var (
	ErrAddrNotFound    = errors.New("redis address string is empty")
	ErrUnknownStrategy = errors.New("unknown computer strategy")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	strategy, ok := sos.StrategyByName(conf.Game.ComputerStrategy)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStrategy, conf.Game.ComputerStrategy)
	}

	opt := sos.WithComputerStrategy(strategy)

	replayRepo, closeRepo, err := newReplayRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err = closeRepo(); err != nil {
			log.Error("could not close replay storage", "error", err)
		}
	}()

	gameUseCase := usecase.NewGameUseCase(
		logger,
		service.NewSessionService(logger, opt),
		service.NewReplayService(logger, replayRepo),
		replay.NewPlayer(logger, 0, opt),
		replay.NewPlayer(logger, conf.Replay.Interval, opt),
	)

	defaults := rest.Defaults{
		Size: sos.ClampSize(float64(conf.Game.DefaultSize)),
		Mode: entity.Mode(conf.Game.DefaultMode),
	}
	if !defaults.Mode.IsValid() {
		defaults.Mode = entity.ModeSimple
	}

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		router := rest.NewRouter(logger, rest.NewHandlers(logger, defaults, gameUseCase))
		if httpErr := rest.Start(ctx, conf.HTTPPort, router); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameUseCase)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// newReplayRepository picks redis when enabled and falls back to process memory.
func newReplayRepository(ctx context.Context, conf *config.Config) (repository.ReplayRepository, func() error, error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryReplayRepository(conf.Replay.TTL), func() error { return nil }, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewReplayRepository(redisStorage.Connection, conf.Replay.TTL), redisStorage.Close, nil
}
