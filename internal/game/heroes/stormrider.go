package heroes

import (
	"log/slog"
	"time"

	"github.com/MrMalina/Hero-Wars/internal/game/effect"
	"github.com/MrMalina/Hero-Wars/internal/model"
	"github.com/MrMalina/Hero-Wars/internal/world"
)

// Параметры ультимейта Tempest.
const (
	tempestRadius = 350.0
	tempestForce  = 450.0
	tempestLift   = 250.0
)

// stormrider — второй встроенный герой: морозная контратака, jetpack
// за убийства, расшвыривание врагов ультимейтом.
func (p *Pack) stormrider() model.HeroSpec {
	return model.HeroSpec{
		Info: model.Info{
			ID:          "stormrider",
			Name:        "Stormrider",
			Description: "Rides the winds and turns cold fury on attackers.",
			Category:    "Storm",
		},
		Passives: []model.SkillSpec{p.staticGuard()},
		Skills:   []model.SkillSpec{p.updraft(), p.tempest()},
	}
}

func (p *Pack) staticGuard() model.SkillSpec {
	return model.SkillSpec{
		Info: model.Info{
			ID:          "static_guard",
			Name:        "Static Guard",
			Description: "20% chance to freeze your attacker for a second.",
		},
		Handlers: map[string]model.Handler{
			model.EventDefend: func(s *model.Skill, ev *model.GameEvent) {
				if ev.Attacker == nil || !p.chance(20) {
					return
				}
				p.effects.Apply(effect.Freeze, ev.Attacker, time.Second)
				p.tell(ev.Attacker, "You were frozen by Static Guard!")
			},
		},
	}
}

func (p *Pack) updraft() model.SkillSpec {
	return model.SkillSpec{
		Info: model.Info{
			ID:          "updraft",
			Name:        "Updraft",
			Description: "Gain a jetpack for 3-5 seconds on kill.",
			MaxLevel:    3,
		},
		Handlers: map[string]model.Handler{
			model.EventKill: func(s *model.Skill, ev *model.GameEvent) {
				duration := time.Duration(2+s.Level()) * time.Second
				p.effects.Apply(effect.Jetpack, ev.Player, duration)
				p.tell(ev.Player, "Updraft carries you for %d seconds!", 2+s.Level())
			},
		},
	}
}

func (p *Pack) tempest() model.SkillSpec {
	return model.SkillSpec{
		Info: model.Info{
			ID:            "tempest",
			Name:          "Tempest",
			Description:   "Ultimate: hurl nearby enemies away from you.",
			MaxLevel:      2,
			Cost:          2,
			RequiredLevel: 5,
		},
		Handlers: map[string]model.Handler{
			model.EventUltimate: func(s *model.Skill, ev *model.GameEvent) {
				reuse := time.Duration(16-4*s.Level()) * time.Second
				if !p.cds.Try(s, reuse) {
					p.tell(ev.Player, "Tempest is on cooldown for %.0f seconds.",
						p.cds.Remaining(s).Seconds())
					return
				}

				origin := ev.Player.Position()
				targets, err := p.world.NearPoint(origin, tempestRadius, world.Filter{
					Alive:   true,
					NotTeam: ev.Player.Team(),
				})
				if err != nil {
					slog.Warn("tempest target query failed", "error", err)
					return
				}

				for _, t := range targets {
					dir := t.Position().Sub(origin)
					length := dir.Length()

					// Цель в той же точке летит строго вверх.
					impulse := model.Vector3{Z: tempestForce}
					if length > 0 {
						impulse = dir.Scale(tempestForce / length)
						impulse.Z += tempestLift
					}

					effect.Push(t, impulse)
					p.tell(t, "Tempest hurls you away!")
				}
			},
		},
	}
}
