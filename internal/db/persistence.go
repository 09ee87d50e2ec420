package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MrMalina/Hero-Wars/internal/model"
)

// PlayerStore атомарно сохраняет/загружает данные игрока.
// Запись игрока и прогресс активного героя пишутся одной транзакцией.
type PlayerStore struct {
	pool     *pgxpool.Pool
	heroRepo *HeroRepository
}

// NewPlayerStore создаёт новый PlayerStore.
func NewPlayerStore(pool *pgxpool.Pool) *PlayerStore {
	return &PlayerStore{
		pool:     pool,
		heroRepo: NewHeroRepository(pool),
	}
}

// Heroes возвращает репозиторий героев.
func (s *PlayerStore) Heroes() *HeroRepository {
	return s.heroRepo
}

// GetPlayer возвращает запись игрока по steam ID.
// Возвращает nil, nil если игрок не найден.
func (s *PlayerStore) GetPlayer(ctx context.Context, steamID string) (*model.PlayerRecord, error) {
	var rec model.PlayerRecord
	err := s.pool.QueryRow(ctx,
		`SELECT steam_id, gold, hero_id, created_at, last_seen
		 FROM players WHERE steam_id = $1`, steamID,
	).Scan(&rec.SteamID, &rec.Gold, &rec.HeroID, &rec.CreatedAt, &rec.LastSeen)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying player %q: %w", steamID, err)
	}
	return &rec, nil
}

// GetOrCreatePlayer атомарно получает существующую или создаёт новую запись.
// Thread-safe: использует INSERT ... ON CONFLICT DO NOTHING для защиты от
// race conditions. Всегда возвращает запись (существующую или только что
// созданную).
func (s *PlayerStore) GetOrCreatePlayer(ctx context.Context, steamID string) (*model.PlayerRecord, error) {
	tag, err := s.pool.Exec(ctx,
		`INSERT INTO players (steam_id, gold, hero_id)
		 VALUES ($1, 0, '')
		 ON CONFLICT (steam_id) DO NOTHING`,
		steamID,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting player %q: %w", steamID, err)
	}
	if tag.RowsAffected() > 0 {
		slog.Info("auto-created player record", "steam_id", steamID)
	}

	rec, err := s.GetPlayer(ctx, steamID)
	if err != nil {
		return nil, fmt.Errorf("getting player after insert %q: %w", steamID, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("player %q not found after insert (unexpected)", steamID)
	}
	return rec, nil
}

// UpdateLastSeen обновляет last_seen при подключении игрока.
func (s *PlayerStore) UpdateLastSeen(ctx context.Context, steamID string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE players SET last_seen = $1 WHERE steam_id = $2`,
		time.Now(), steamID,
	)
	if err != nil {
		return fmt.Errorf("updating last seen for %q: %w", steamID, err)
	}
	return nil
}

// LoadHero загружает активного героя игрока из реестра.
// Возвращает nil, nil если герой не сохранён.
func (s *PlayerStore) LoadHero(ctx context.Context, reg *model.Registry, steamID, heroID string) (*model.Hero, error) {
	return s.heroRepo.LoadHero(ctx, reg, steamID, heroID)
}

// SaveHero сохраняет одного героя без записи игрока (выдача стартовых).
func (s *PlayerStore) SaveHero(ctx context.Context, steamID string, hero *model.Hero) error {
	return s.heroRepo.Save(ctx, steamID, hero)
}

// SavePlayer сохраняет золото, активного героя и его прогресс в одной
// транзакции. hero может быть nil (герой ещё не выдан).
func (s *PlayerStore) SavePlayer(ctx context.Context, rec *model.PlayerRecord, hero *model.Hero) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction for %s: %w", rec.SteamID, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err.Error() != "tx is closed" {
			slog.Error("rollback failed", "steamID", rec.SteamID, "error", err)
		}
	}()

	if _, err := tx.Exec(ctx,
		`UPDATE players SET gold = $1, hero_id = $2, last_seen = $3 WHERE steam_id = $4`,
		rec.Gold, rec.HeroID, time.Now(), rec.SteamID,
	); err != nil {
		return fmt.Errorf("updating player %s: %w", rec.SteamID, err)
	}

	if hero != nil {
		if err := s.heroRepo.SaveTx(ctx, tx, rec.SteamID, hero); err != nil {
			return fmt.Errorf("saving hero for %s: %w", rec.SteamID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing player save for %s: %w", rec.SteamID, err)
	}
	return nil
}
