package heroes

import (
	"log/slog"
	"time"

	"github.com/MrMalina/Hero-Wars/internal/game/effect"
	"github.com/MrMalina/Hero-Wars/internal/model"
	"github.com/MrMalina/Hero-Wars/internal/world"
)

// flameNovaRadius ограничивает поджиг врагами рядом с точкой спавна.
const flameNovaRadius = 600.0

// pyromancer — стартовый герой: скорость и здоровье от пассивки,
// площадный поджиг на спавне, noclip как ультимейт.
func (p *Pack) pyromancer() model.HeroSpec {
	return model.HeroSpec{
		Info: model.Info{
			ID:          "pyromancer",
			Name:        "Pyromancer",
			Description: "Sets the battlefield alight and slips between planes.",
			Authors:     []string{"Mahi", "Kamiqawa"},
			Category:    "Fire",
		},
		Passives: []model.SkillSpec{p.emberStride()},
		Skills:   []model.SkillSpec{p.flameNova(), p.phaseShift()},
	}
}

func (p *Pack) emberStride() model.SkillSpec {
	return model.SkillSpec{
		Info: model.Info{
			ID:          "ember_stride",
			Name:        "Ember Stride",
			Description: "Gain speed on spawn and health on attack.",
		},
		Handlers: map[string]model.Handler{
			model.EventSpawn: func(s *model.Skill, ev *model.GameEvent) {
				if _, err := p.effects.ShiftProperty(ev.Player, movementSpeedProp, 0.3, 0); err != nil {
					slog.Warn("ember stride speed shift failed", "player", ev.Player.Index(), "error", err)
					return
				}
				p.tell(ev.Player, "+30%% speed from Ember Stride.")
			},
			model.EventAttack: func(s *model.Skill, ev *model.GameEvent) {
				if !p.chance(33) {
					return
				}
				hp, ok := ev.Player.Float(healthProp)
				if !ok {
					return
				}
				ev.Player.SetFloat(healthProp, hp+5)
				p.tell(ev.Player, "+5 health from Ember Stride.")
			},
		},
	}
}

func (p *Pack) flameNova() model.SkillSpec {
	return model.SkillSpec{
		Info: model.Info{
			ID:          "flame_nova",
			Name:        "Flame Nova",
			Description: "Ignite nearby enemies for 3-4 seconds when you spawn.",
			MaxLevel:    2,
		},
		Handlers: map[string]model.Handler{
			model.EventSpawn: func(s *model.Skill, ev *model.GameEvent) {
				targets, err := p.world.NearPoint(ev.Player.Position(), flameNovaRadius, world.Filter{
					Alive:   true,
					NotTeam: ev.Player.Team(),
				})
				if err != nil {
					slog.Warn("flame nova target query failed", "error", err)
					return
				}

				duration := time.Duration(2+s.Level()) * time.Second
				for _, t := range targets {
					p.effects.Apply(effect.Burn, t, duration)
					p.tell(t, "You were burned!")
				}
				if len(targets) > 0 {
					p.tell(ev.Player, "You burned your enemies!")
				}
			},
		},
	}
}

func (p *Pack) phaseShift() model.SkillSpec {
	return model.SkillSpec{
		Info: model.Info{
			ID:            "phase_shift",
			Name:          "Phase Shift",
			Description:   "Ultimate: slip out of the physical plane for 2-4 seconds.",
			MaxLevel:      3,
			Cost:          2,
			RequiredLevel: 5,
		},
		Handlers: map[string]model.Handler{
			model.EventUltimate: func(s *model.Skill, ev *model.GameEvent) {
				reuse := time.Duration(20-2*s.Level()) * time.Second
				if !p.cds.Try(s, reuse) {
					p.tell(ev.Player, "Phase Shift is on cooldown for %.0f seconds.",
						p.cds.Remaining(s).Seconds())
					return
				}

				duration := time.Duration(1+s.Level()) * time.Second
				p.effects.Apply(effect.Noclip, ev.Player, duration)
				p.tell(ev.Player, "You got noclip for %d seconds!", 1+s.Level())
			},
		},
	}
}
