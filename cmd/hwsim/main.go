// hwsim прогоняет ядро Hero-Wars без движка и без БД: фейковые игроки,
// консольный чат, настоящие очередь/эффекты/сессия. Утилита разработки
// для наблюдения за полным циклом спавн→бой→ульта→смерть.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/MrMalina/Hero-Wars/internal/config"
	"github.com/MrMalina/Hero-Wars/internal/game/effect"
	"github.com/MrMalina/Hero-Wars/internal/game/heroes"
	"github.com/MrMalina/Hero-Wars/internal/model"
	"github.com/MrMalina/Hero-Wars/internal/session"
	"github.com/MrMalina/Hero-Wars/internal/tick"
	"github.com/MrMalina/Hero-Wars/internal/world"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelWarn, // только проблемы, сценарий говорит через чат
	})))

	cfg := config.DefaultServer()
	cfg.TickInterval = config.Duration(20 * time.Millisecond)
	cfg.AutosaveInterval = 0
	cfg.StartingHeroes = []string{"pyromancer"}

	queue := tick.NewQueue()
	roster := world.NewRoster()
	effects := effect.NewEngine(queue)
	chat := &consoleChat{}

	reg := model.NewRegistry()
	pack := heroes.NewPack(heroes.Deps{
		Effects: effects,
		World:   roster,
		Chat:    chat,
	})
	must(pack.RegisterAll(reg))
	must(reg.RegisterItem(model.ItemSpec{
		Info: model.Info{ID: "lucky_charm", Name: "Lucky Charm", Cost: 10},
	}))

	sess := session.New(cfg, session.Deps{
		Registry:     reg,
		Queue:        queue,
		World:        roster,
		Effects:      effects,
		Chat:         chat,
		OnHeroUnload: pack.ForgetHero,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sess.Start(ctx) }()

	fmt.Println("=== connect ===")
	hunter := newSimPlayer(1, "Hunter", model.TeamT)
	prey := newSimPlayer(2, "Prey", model.TeamCT)
	prey.pos = model.Vector3{X: 300} // в радиусе Flame Nova
	_, err := sess.Connect(ctx, hunter)
	must(err)
	_, err = sess.Connect(ctx, prey)
	must(err)

	fmt.Println("\n=== first spawn: passive speed boost ===")
	must(sess.DispatchEvent(1, model.EventSpawn, nil))
	fmt.Printf("Hunter speed: %.2f\n", hunter.floats["m_flLaggedMovementValue"])

	fmt.Println("\n=== farming kills ===")
	for range 4 {
		must(sess.DispatchEvent(1, model.EventKill, &model.GameEvent{Victim: prey}))
		must(sess.AwardExp(1, config.ReasonKill))
		must(sess.AwardGold(1, config.ReasonKill))
	}
	printHero(sess, 1)

	fmt.Println("\n=== learning Flame Nova, respawning ===")
	must(sess.UpgradeSkill(1, "flame_nova"))
	must(sess.DispatchEvent(1, model.EventSpawn, nil))
	fmt.Printf("Prey burning: %v\n", len(prey.calls["Ignite"]) > 0)

	fmt.Println("\n=== shop round trip ===")
	must(sess.BuyItem(1, "lucky_charm"))
	must(sess.SellItem(1, "lucky_charm"))
	printHero(sess, 1)

	fmt.Println("\n=== ultimate at level 6 ===")
	st, err := sess.State(1)
	must(err)
	must(st.Hero.SetLevel(6)) // администраторский буст ради сценария
	must(sess.UpgradeSkill(1, "phase_shift"))
	must(sess.DispatchEvent(1, model.EventUltimate, nil))
	fmt.Printf("Hunter noclip: %v\n", hunter.flags[effect.NoclipFlag])
	must(sess.DispatchEvent(1, model.EventUltimate, nil)) // в откате

	// Ждём, пока тик-цикл погасит нуклип (1+level секунд не ждём:
	// сценарию хватает увидеть снятие горения у жертвы).
	fmt.Println("\n=== waiting for burn to expire ===")
	time.Sleep(3500 * time.Millisecond)
	fmt.Printf("Prey ignite lifetime calls: %d\n", len(prey.calls["IgniteLifetime"]))

	fmt.Println("\n=== death drops effects ===")
	must(sess.DispatchEvent(2, model.EventDeath, nil))

	fmt.Println("\n=== disconnect ===")
	must(sess.Disconnect(ctx, 1))
	must(sess.Disconnect(ctx, 2))

	cancel()
	if err := <-done; err != nil {
		slog.Error("session", "err", err)
		os.Exit(1)
	}
	fmt.Println("\n✅ simulation finished")
}

func printHero(sess *session.Session, index int32) {
	st, err := sess.State(index)
	must(err)
	fmt.Printf("%s: level %d, exp %d/%d, points %d, gold %d, items %d\n",
		st.Hero.Name(), st.Hero.Level(), st.Hero.Exp(), st.Hero.RequiredExp(),
		st.Hero.SkillPoints(), st.Record.Gold, len(st.Hero.Items()))
}

func must(err error) {
	if err != nil {
		slog.Error("sim step failed", "err", err)
		os.Exit(1)
	}
}

// consoleChat печатает чат в stdout.
type consoleChat struct{}

func (consoleChat) Tell(p model.Player, format string, args ...any) {
	fmt.Printf("[chat → %s] %s\n", p.Name(), fmt.Sprintf(format, args...))
}

// simPlayer — игрок симуляции. Все вызовы идут из одной горутины
// сценария, поэтому без блокировок.
type simPlayer struct {
	index int32
	name  string
	team  int32
	alive bool
	pos   model.Vector3

	floats  map[string]float64
	vectors map[string]model.Vector3
	flags   map[string]bool
	calls   map[string][][]any
}

func newSimPlayer(index int32, name string, team int32) *simPlayer {
	return &simPlayer{
		index:   index,
		name:    name,
		team:    team,
		alive:   true,
		floats:  map[string]float64{"m_flLaggedMovementValue": 1.0},
		vectors: make(map[string]model.Vector3),
		flags:   make(map[string]bool),
		calls:   make(map[string][][]any),
	}
}

func (p *simPlayer) Index() int32            { return p.index }
func (p *simPlayer) Name() string            { return p.name }
func (p *simPlayer) SteamID() string         { return fmt.Sprintf("SIM_%d", p.index) }
func (p *simPlayer) Alive() bool             { return p.alive }
func (p *simPlayer) Team() int32             { return p.team }
func (p *simPlayer) Position() model.Vector3 { return p.pos }

func (p *simPlayer) Float(prop string) (float64, bool) {
	v, ok := p.floats[prop]
	return v, ok
}

func (p *simPlayer) SetFloat(prop string, value float64) {
	p.floats[prop] = value
}

func (p *simPlayer) Vector(prop string) (model.Vector3, bool) {
	v, ok := p.vectors[prop]
	return v, ok
}

func (p *simPlayer) SetVector(prop string, value model.Vector3) {
	p.vectors[prop] = value
}

func (p *simPlayer) Flag(prop string) bool {
	return p.flags[prop]
}

func (p *simPlayer) SetFlag(prop string, on bool) {
	p.flags[prop] = on
}

func (p *simPlayer) Invoke(action string, args ...any) error {
	p.calls[action] = append(p.calls[action], args)
	return nil
}
