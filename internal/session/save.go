package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// saveState сохраняет запись и героя одного игрока.
func (s *Session) saveState(ctx context.Context, st *State) error {
	if s.store == nil {
		return nil
	}
	return s.store.SavePlayer(ctx, st.Record, st.Hero)
}

// SaveAll сохраняет всех подключённых игроков. Ошибка одного игрока
// логируется и не мешает остальным.
func (s *Session) SaveAll(ctx context.Context) error {
	if s.store == nil {
		return nil
	}

	states := s.states()
	saved := 0
	for _, st := range states {
		if err := s.saveState(ctx, st); err != nil {
			slog.Error("saving player", "steam_id", st.Record.SteamID, "error", err)
			continue
		}
		saved++
	}
	if saved > 0 {
		slog.Info("players saved", "count", saved)
	}
	if saved < len(states) {
		return fmt.Errorf("saved %d of %d players", saved, len(states))
	}
	return nil
}

// RunSaveLoop периодически сохраняет всех игроков, пока ctx жив,
// и делает финальное сохранение перед выходом.
func (s *Session) RunSaveLoop(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// ctx уже отменён: финальное сохранение на свежем контексте.
			if err := s.SaveAll(context.Background()); err != nil {
				slog.Error("final autosave", "error", err)
			}
			return ctx.Err()
		case <-ticker.C:
			if err := s.SaveAll(ctx); err != nil {
				slog.Error("periodic autosave", "error", err)
			}
		}
	}
}

// Start запускает игровой цикл и автосохранение и блокируется до
// отмены ctx или вызова Stop.
func (s *Session) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Stop() гасит цикл без отмены ctx: остальных останавливаем сами.
		defer cancel()
		if err := s.loop.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	if s.store != nil && s.cfg.AutosaveInterval > 0 {
		g.Go(func() error {
			err := s.RunSaveLoop(ctx, s.cfg.AutosaveInterval.Std())
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	slog.Info("session started",
		"tick_interval", s.cfg.TickInterval,
		"autosave_interval", s.cfg.AutosaveInterval)
	err := g.Wait()
	slog.Info("session stopped")
	return err
}

// Stop останавливает игровой цикл; Start после этого возвращается.
func (s *Session) Stop() {
	s.loop.Stop()
}

// Shutdown останавливает сессию и сохраняет всех игроков.
func (s *Session) Shutdown(ctx context.Context) {
	s.Stop()
	if err := s.SaveAll(ctx); err != nil {
		slog.Error("shutdown save", "error", err)
	}
}

// states снимает срез подключённых игроков под блокировкой.
func (s *Session) states() []*State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*State, 0, len(s.players))
	for _, st := range s.players {
		out = append(out, st)
	}
	return out
}
