package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MrMalina/Hero-Wars/internal/model"
)

// HeroRepository управляет сохранённым прогрессом героев в БД.
type HeroRepository struct {
	db *pgxpool.Pool
}

// NewHeroRepository создаёт новый HeroRepository.
func NewHeroRepository(db *pgxpool.Pool) *HeroRepository {
	return &HeroRepository{db: db}
}

// LoadHero загружает прогресс героя и восстанавливает инстанс из реестра.
// Возвращает nil если герой не найден (не ошибка).
func (r *HeroRepository) LoadHero(ctx context.Context, reg *model.Registry, steamID, heroID string) (*model.Hero, error) {
	var level int32
	var exp int64
	err := r.db.QueryRow(ctx,
		`SELECT level, exp FROM heroes WHERE steam_id = $1 AND hero_id = $2`,
		steamID, heroID,
	).Scan(&level, &exp)
	if err == pgx.ErrNoRows {
		return nil, nil // NOT ERROR, just not found
	}
	if err != nil {
		return nil, fmt.Errorf("querying hero %q for %s: %w", heroID, steamID, err)
	}

	spec, ok := reg.HeroByID(heroID)
	if !ok {
		// Контент могли отключить между сессиями.
		return nil, fmt.Errorf("hero %q: %w", heroID, model.ErrNotFound)
	}

	hero := model.NewHero(spec)
	if err := hero.SetLevel(level); err != nil {
		return nil, fmt.Errorf("restoring hero %q level %d: %w", heroID, level, err)
	}
	// Если кривая опыта изменилась между сессиями, SetExp конвертирует
	// излишек в уровни сам.
	if err := hero.SetExp(exp); err != nil {
		return nil, fmt.Errorf("restoring hero %q exp %d: %w", heroID, exp, err)
	}

	if err := r.loadSkills(ctx, hero, steamID, heroID); err != nil {
		return nil, err
	}
	return hero, nil
}

// loadSkills накатывает сохранённые уровни скиллов на инстансы героя.
func (r *HeroRepository) loadSkills(ctx context.Context, hero *model.Hero, steamID, heroID string) error {
	rows, err := r.db.Query(ctx,
		`SELECT skill_id, level
		 FROM hero_skills
		 WHERE steam_id = $1 AND hero_id = $2
		 ORDER BY skill_id`,
		steamID, heroID,
	)
	if err != nil {
		return fmt.Errorf("querying skills for hero %q: %w", heroID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var skillID string
		var level int32
		if err := rows.Scan(&skillID, &level); err != nil {
			return fmt.Errorf("scanning skill row: %w", err)
		}

		skill, ok := hero.FindSkill(skillID)
		if !ok {
			continue // скилл убрали из набора героя, сохранённый уровень сгорает
		}
		if level > skill.MaxLevel() {
			level = skill.MaxLevel()
		}
		if err := skill.SetLevel(level); err != nil {
			return fmt.Errorf("restoring skill %q level %d: %w", skillID, level, err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating skill rows: %w", err)
	}
	return nil
}

// LoadHeroIDs возвращает ID всех сохранённых героев игрока.
func (r *HeroRepository) LoadHeroIDs(ctx context.Context, steamID string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT hero_id FROM heroes WHERE steam_id = $1 ORDER BY hero_id`,
		steamID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying heroes for %s: %w", steamID, err)
	}
	defer rows.Close()

	ids := make([]string, 0, 8)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning hero row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hero rows: %w", err)
	}
	return ids, nil
}

// Save сохраняет героя и его скиллы (полная перезапись скиллов).
func (r *HeroRepository) Save(ctx context.Context, steamID string, hero *model.Hero) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := r.SaveTx(ctx, tx, steamID, hero); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing hero save: %w", err)
	}
	return nil
}

// SaveTx сохраняет героя внутри внешней транзакции.
func (r *HeroRepository) SaveTx(ctx context.Context, tx pgx.Tx, steamID string, hero *model.Hero) error {
	if _, err := tx.Exec(ctx,
		`INSERT INTO heroes (steam_id, hero_id, level, exp)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (steam_id, hero_id)
		 DO UPDATE SET level = $3, exp = $4`,
		steamID, hero.ID(), hero.Level(), hero.Exp(),
	); err != nil {
		return fmt.Errorf("upserting hero %q: %w", hero.ID(), err)
	}

	// Delete existing skills
	if _, err := tx.Exec(ctx,
		`DELETE FROM hero_skills WHERE steam_id = $1 AND hero_id = $2`,
		steamID, hero.ID(),
	); err != nil {
		return fmt.Errorf("deleting existing skills: %w", err)
	}

	// Insert new skills
	for _, s := range hero.Skills() {
		if s.Level() == 0 {
			continue // уровень 0 — значение по умолчанию, строка не нужна
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO hero_skills (steam_id, hero_id, skill_id, level) VALUES ($1, $2, $3, $4)`,
			steamID, hero.ID(), s.ID(), s.Level(),
		); err != nil {
			return fmt.Errorf("inserting skill %q: %w", s.ID(), err)
		}
	}

	return nil
}
