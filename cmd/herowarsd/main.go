package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MrMalina/Hero-Wars/internal/config"
	"github.com/MrMalina/Hero-Wars/internal/db"
	"github.com/MrMalina/Hero-Wars/internal/game/effect"
	"github.com/MrMalina/Hero-Wars/internal/game/heroes"
	"github.com/MrMalina/Hero-Wars/internal/model"
	"github.com/MrMalina/Hero-Wars/internal/session"
	"github.com/MrMalina/Hero-Wars/internal/tick"
	"github.com/MrMalina/Hero-Wars/internal/world"
)

const ConfigPath = "config/server.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load config FIRST to determine log level
	cfgPath := ConfigPath
	if p := os.Getenv("HEROWARS_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Configure slog based on config.LogLevel
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("hero-wars server starting",
		"log_level", cfg.LogLevel,
		"tick_interval", cfg.TickInterval,
		"autosave_interval", cfg.AutosaveInterval)

	// Connect to database
	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	// Run migrations
	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	store := db.NewPlayerStore(database.Pool())

	// Gameplay core: one queue drives effects and the session loop
	queue := tick.NewQueue()
	roster := world.NewRoster()
	effects := effect.NewEngine(queue)
	chat := &logMessenger{}

	// Register shipped hero content
	reg := model.NewRegistry()
	pack := heroes.NewPack(heroes.Deps{
		Effects: effects,
		World:   roster,
		Chat:    chat,
	})
	if err := pack.RegisterAll(reg); err != nil {
		return fmt.Errorf("registering hero content: %w", err)
	}
	slog.Info("hero content registered",
		"heroes", len(reg.EnabledHeroes()),
		"starting", cfg.StartingHeroes)

	sess := session.New(cfg, session.Deps{
		Registry:     reg,
		Queue:        queue,
		World:        roster,
		Effects:      effects,
		Chat:         chat,
		Store:        store,
		OnHeroUnload: pack.ForgetHero,
	})

	if err := sess.Start(ctx); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	// Final save after the loops unwind
	if err := sess.SaveAll(context.Background()); err != nil {
		slog.Error("shutdown save", "error", err)
	}
	return nil
}

// logMessenger пишет чат в лог: у демона без игрового хоста другого
// канала к игроку нет. Хост-интеграция подставляет свой Messenger.
type logMessenger struct{}

func (logMessenger) Tell(p model.Player, format string, args ...any) {
	slog.Info("chat", "to", p.Name(), "msg", fmt.Sprintf(format, args...))
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
