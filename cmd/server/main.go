package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"

	"dinesync/internal/config"
	menuhandler "dinesync/internal/modules/menu/application/handler"
	menu "dinesync/internal/modules/menu/domain"
	menutransport "dinesync/internal/modules/menu/interface"
	realtime "dinesync/internal/modules/realtime/application/usecase"
	realtimeinfra "dinesync/internal/modules/realtime/infrastructure"
	realtimetransport "dinesync/internal/modules/realtime/interface"
	"dinesync/internal/modules/reservations/application/port"
	reservations "dinesync/internal/modules/reservations/application/usecase"
	reservationsinfra "dinesync/internal/modules/reservations/infrastructure"
	reservationstransport "dinesync/internal/modules/reservations/interface"
	restauranttransport "dinesync/internal/modules/restaurants/interface"
	theme "dinesync/internal/modules/theme/application/usecase"
	themeinfra "dinesync/internal/modules/theme/infrastructure"
	themetransport "dinesync/internal/modules/theme/interface"
	"dinesync/internal/platform/broker"
	"dinesync/internal/platform/scheduler"
	"dinesync/internal/shared/auth"
	"dinesync/internal/shared/logging"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))
	slog.Info("kafka config resolved", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("group", cfg.Kafka.GroupID), slog.Bool("enabled", cfg.Kafka.Enabled()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		slog.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	catalog := menu.NewDefaultCatalog()
	loop := scheduler.NewLoop()
	defer loop.Close()
	hub := realtimeinfra.NewHub(logger)
	tokens := auth.NewSessionTokens(cfg.Security.SessionSecret, cfg.Security.SessionTTL)

	prefs, err := theme.Init(themeinfra.NewFileStore(cfg.Theme.StorePath), cfg.Theme.SystemHint)
	if err != nil {
		return fmt.Errorf("init theme: %w", err)
	}

	var events port.EventPublisher = reservationsinfra.NoopPublisher{}
	if cfg.Kafka.Enabled() {
		publisher := broker.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.EventsTopic)
		defer publisher.Close()
		events = reservationsinfra.NewBrokerEventPublisher(publisher)
	}

	sessions := reservations.NewSessions(reservations.FlowDeps{
		Catalog:     catalog,
		Scheduler:   loop,
		Events:      events,
		SubmitDelay: cfg.Flow.SubmitDelay,
		ClearDelay:  cfg.Flow.ClearDelay,
		Logger:      logger,
	}, func(sessionID string) port.Notifier {
		return reservationsinfra.Fanout{
			realtime.NewSessionNotifier(hub, sessionID),
			reservationsinfra.NewLogNotifier(logger, sessionID),
		}
	})
	defer hub.Close()
	defer sessions.CloseAll()

	registry := broker.NewHandlerRegistry()
	registry.Register(menuhandler.NewItemUpdatedHandler(cfg.Kafka.MenuTopic, catalog))

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())

	api := e.Group("/api")
	menutransport.NewHandler(catalog).Register(api)
	restauranttransport.NewDefaultHandler().Register(api)
	themetransport.NewHandler(prefs).Register(api)
	reservationstransport.NewHandler(sessions, tokens, hub).Register(api)

	connectUC := realtime.NewConnectSessionUseCase(tokens, sessions)
	e.GET("/ws/notifications", realtimetransport.NewWebsocketHandler(hub, connectUC, cfg.Websocket.SendBuffer))
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"status": "ok", "sessions": sessions.Len()})
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return broker.RunKafkaConsumers(ctx, registry, cfg.Kafka.Brokers, cfg.Kafka.GroupID)
	})
	g.Go(func() error {
		expireSessions(ctx, sessions, cfg.Security.SessionTTL)
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// expireSessions drops flows older than the token lifetime, since nobody can reach
// them any more.
func expireSessions(ctx context.Context, sessions *reservations.Sessions, ttl time.Duration) {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Expire(ttl); n > 0 {
				slog.Info("expired reservation sessions", slog.Int("count", n))
			}
		}
	}
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	dir := cfg.Directory
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	fileName := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
