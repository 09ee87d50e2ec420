// Package session связывает ядро воедино: игровой цикл, мир, движок
// эффектов, чат и персистентность. Сессия ведёт состояние каждого
// подключённого игрока и маршрутизирует события его герою.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/MrMalina/Hero-Wars/internal/config"
	"github.com/MrMalina/Hero-Wars/internal/game/effect"
	"github.com/MrMalina/Hero-Wars/internal/model"
	"github.com/MrMalina/Hero-Wars/internal/tick"
	"github.com/MrMalina/Hero-Wars/internal/world"
)

// Messenger — чат-транспорт сессии. Реализация поверх движка живёт в
// хост-интеграции; testutil.ChatRecorder записывает сообщения в тестах.
type Messenger interface {
	Tell(p model.Player, format string, args ...any)
}

// Store — персистентность сессии. *db.PlayerStore реализует интерфейс;
// nil Store отключает сохранения.
type Store interface {
	GetOrCreatePlayer(ctx context.Context, steamID string) (*model.PlayerRecord, error)
	UpdateLastSeen(ctx context.Context, steamID string) error
	LoadHero(ctx context.Context, reg *model.Registry, steamID, heroID string) (*model.Hero, error)
	SaveHero(ctx context.Context, steamID string, hero *model.Hero) error
	SavePlayer(ctx context.Context, rec *model.PlayerRecord, hero *model.Hero) error
}

// State — состояние одного подключённого игрока.
type State struct {
	Player model.Player
	Record *model.PlayerRecord
	Hero   *model.Hero
}

// Deps — внешние зависимости сессии. Nil-поля получают дефолты,
// чтобы простая сборка оставалась простой; Store и Chat могут быть
// nil (без сохранений и без чата).
type Deps struct {
	Registry *model.Registry
	Queue    *tick.Queue
	World    *world.Roster
	Effects  *effect.Engine
	Chat     Messenger
	Store    Store

	// OnHeroUnload вызывается при выгрузке героя — контент сбрасывает
	// runtime-состояние (перезарядки).
	OnHeroUnload func(*model.Hero)
}

// Session владеет игровым состоянием сервера между раундами и картами.
//
// Мутации героев и диспетчеризация событий выполняются в игровой
// горутине; карта игроков защищена мьютексом, поскольку Connect и
// Disconnect приходят из хост-потока.
type Session struct {
	cfg  config.Server
	reg  *model.Registry
	chat Messenger

	store Store

	queue   *tick.Queue
	loop    *tick.Loop
	world   *world.Roster
	effects *effect.Engine

	onHeroUnload func(*model.Hero)

	mu      sync.RWMutex
	players map[int32]*State
}

// New собирает сессию. Кривая опыта и множитель продажи из конфига
// применяются к модели.
func New(cfg config.Server, d Deps) *Session {
	if d.Registry == nil {
		d.Registry = model.Default()
	}
	if d.Queue == nil {
		d.Queue = tick.NewQueue()
	}
	if d.World == nil {
		d.World = world.NewRoster()
	}
	if d.Effects == nil {
		d.Effects = effect.NewEngine(d.Queue)
	}

	model.SetExpCurve(model.LinearCurve(cfg.LevelCurve.Base, cfg.LevelCurve.PerLevel))
	model.SetSellValueMultiplier(cfg.ItemSellValueMultiplier)

	return &Session{
		cfg:          cfg,
		reg:          d.Registry,
		chat:         d.Chat,
		store:        d.Store,
		queue:        d.Queue,
		loop:         tick.NewLoop(d.Queue, cfg.TickInterval.Std()),
		world:        d.World,
		effects:      d.Effects,
		onHeroUnload: d.OnHeroUnload,
		players:      make(map[int32]*State),
	}
}

// Registry возвращает реестр контента сессии.
func (s *Session) Registry() *model.Registry {
	return s.reg
}

// Queue возвращает очередь отложенных задач.
func (s *Session) Queue() *tick.Queue {
	return s.queue
}

// World возвращает ростер игроков.
func (s *Session) World() *world.Roster {
	return s.world
}

// Effects возвращает движок эффектов.
func (s *Session) Effects() *effect.Engine {
	return s.effects
}

// Count возвращает число подключённых игроков.
func (s *Session) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}

// State возвращает состояние подключённого игрока.
func (s *Session) State(index int32) (*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.players[index]
	if !ok {
		return nil, fmt.Errorf("player %d: %w", index, model.ErrNotFound)
	}
	return st, nil
}

// Connect регистрирует игрока: поднимает его запись, восстанавливает
// активного героя или выдаёт стартового, подписывает level-up.
func (s *Session) Connect(ctx context.Context, p model.Player) (*State, error) {
	s.mu.RLock()
	_, dup := s.players[p.Index()]
	s.mu.RUnlock()
	if dup {
		return nil, fmt.Errorf("player %d already connected: %w", p.Index(), model.ErrInvalidArgument)
	}

	st := &State{Player: p}

	if s.store != nil {
		rec, err := s.store.GetOrCreatePlayer(ctx, p.SteamID())
		if err != nil {
			return nil, fmt.Errorf("loading player %s: %w", p.SteamID(), err)
		}
		st.Record = rec
		if err := s.store.UpdateLastSeen(ctx, p.SteamID()); err != nil {
			slog.Warn("updating last seen", "steam_id", p.SteamID(), "error", err)
		}
	} else {
		st.Record = &model.PlayerRecord{SteamID: p.SteamID()}
	}

	hero := s.restoreHero(ctx, p, st.Record)
	if hero == nil {
		hero = s.grantStartingHero(ctx, p, st.Record)
	}
	if hero != nil {
		s.adoptHero(st, hero)
	}

	s.mu.Lock()
	s.players[p.Index()] = st
	s.mu.Unlock()
	s.world.Add(p)

	slog.Info("player connected",
		"index", p.Index(),
		"name", p.Name(),
		"steam_id", p.SteamID())
	if hero != nil {
		s.tell(p, "Welcome to Hero Wars! You are playing %s (level %d).", hero.Name(), hero.Level())
	}
	return st, nil
}

// restoreHero поднимает активного героя из БД. nil — героя нет.
func (s *Session) restoreHero(ctx context.Context, p model.Player, rec *model.PlayerRecord) *model.Hero {
	if s.store == nil || rec.HeroID == "" {
		return nil
	}

	hero, err := s.store.LoadHero(ctx, s.reg, p.SteamID(), rec.HeroID)
	if err != nil {
		slog.Warn("restoring hero failed, falling back to starting hero",
			"steam_id", p.SteamID(),
			"hero", rec.HeroID,
			"error", err)
		return nil
	}
	if hero != nil {
		return hero
	}

	// Запись игрока указывает на героя без строки прогресса: выдаём
	// свежего того же вида.
	spec, ok := s.reg.HeroByID(rec.HeroID)
	if !ok {
		return nil
	}
	return model.NewHero(spec)
}

// grantStartingHero выдаёт первому подключению героев из конфига.
// Активным становится первый подходящий.
func (s *Session) grantStartingHero(ctx context.Context, p model.Player, rec *model.PlayerRecord) *model.Hero {
	var active *model.Hero
	for _, id := range s.cfg.StartingHeroes {
		spec, ok := s.reg.HeroByID(id)
		if !ok {
			slog.Warn("starting hero not registered", "hero", id)
			continue
		}
		if !spec.Allows(p.SteamID()) {
			continue
		}

		hero := model.NewHero(spec)
		if active == nil {
			active = hero
			rec.HeroID = spec.ID
		}
		if s.store != nil {
			if err := s.store.SaveHero(ctx, p.SteamID(), hero); err != nil {
				slog.Error("saving granted hero",
					"steam_id", p.SteamID(),
					"hero", spec.ID,
					"error", err)
			}
		}
	}
	return active
}

// adoptHero делает героя активным и подписывает сессию на level-up:
// сообщение игроку и сохранение прогресса.
func (s *Session) adoptHero(st *State, hero *model.Hero) {
	st.Hero = hero
	st.Record.HeroID = hero.ID()

	hero.OnLevelUp().Subscribe(func(lu model.LevelUp) {
		s.tell(st.Player, "Level up! %s is now level %d (%d skill points available).",
			lu.Hero.Name(), lu.Hero.Level(), lu.Hero.SkillPoints())
		if s.store == nil {
			return
		}
		if err := s.store.SavePlayer(context.Background(), st.Record, lu.Hero); err != nil {
			slog.Error("saving on level up", "steam_id", st.Record.SteamID, "error", err)
		}
	})
}

// Disconnect сохраняет и снимает игрока с учёта. Эффекты снимаются,
// чтобы отложенные таймеры не трогали ушедшего.
func (s *Session) Disconnect(ctx context.Context, index int32) error {
	s.mu.Lock()
	st, ok := s.players[index]
	if ok {
		delete(s.players, index)
	}
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("player %d: %w", index, model.ErrNotFound)
	}

	s.effects.ClearPlayer(st.Player)
	s.world.Remove(index)

	var saveErr error
	if s.store != nil {
		if err := s.store.SavePlayer(ctx, st.Record, st.Hero); err != nil {
			saveErr = fmt.Errorf("saving player %s on disconnect: %w", st.Record.SteamID, err)
		}
	}
	if s.onHeroUnload != nil && st.Hero != nil {
		s.onHeroUnload(st.Hero)
	}

	slog.Info("player disconnected", "index", index, "steam_id", st.Record.SteamID)
	return saveErr
}

// tell отправляет сообщение, если чат подключён.
func (s *Session) tell(p model.Player, format string, args ...any) {
	if s.chat != nil {
		s.chat.Tell(p, format, args...)
	}
}
