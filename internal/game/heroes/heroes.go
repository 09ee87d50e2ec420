// Package heroes содержит встроенный набор героев. Контент — клиент
// ядра: спеки героев собираются из обработчиков событий, замкнутых на
// сервисы сессии (эффекты, мир, чат).
package heroes

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/MrMalina/Hero-Wars/internal/game/effect"
	"github.com/MrMalina/Hero-Wars/internal/model"
	"github.com/MrMalina/Hero-Wars/internal/world"
)

// Имена движковых свойств, которыми оперирует контент.
const (
	movementSpeedProp = "m_flLaggedMovementValue"
	healthProp        = "m_iHealth"
)

// Messenger отправляет сообщение игроку в чат.
type Messenger interface {
	Tell(p model.Player, format string, args ...any)
}

// Deps — сервисы, через которые контент воздействует на мир. Контент
// получает их один раз при создании пака; обработчики замыкаются на
// конкретные экземпляры.
type Deps struct {
	Effects *effect.Engine
	World   *world.Roster
	Chat    Messenger

	// Roll переопределяет бросок шанса (для тестов). nil — rand.Int32N.
	Roll func(n int32) int32
	// Now переопределяет источник времени перезарядок (для тестов).
	// nil — time.Now.
	Now func() time.Time
}

// Pack — встроенные герои вместе с их runtime-состоянием (перезарядки).
type Pack struct {
	effects *effect.Engine
	world   *world.Roster
	chat    Messenger
	roll    func(n int32) int32
	cds     *CooldownGate
}

// NewPack собирает пак контента на заданных сервисах.
func NewPack(d Deps) *Pack {
	roll := d.Roll
	if roll == nil {
		roll = rand.Int32N
	}
	return &Pack{
		effects: d.Effects,
		world:   d.World,
		chat:    d.Chat,
		roll:    roll,
		cds:     NewCooldownGate(d.Now),
	}
}

// RegisterAll регистрирует встроенных героев в реестре.
func (p *Pack) RegisterAll(reg *model.Registry) error {
	for _, spec := range []model.HeroSpec{p.pyromancer(), p.stormrider()} {
		if err := reg.RegisterHero(spec); err != nil {
			return fmt.Errorf("registering hero %q: %w", spec.ID, err)
		}
	}
	return nil
}

// ForgetHero сбрасывает runtime-состояние скиллов героя.
func (p *Pack) ForgetHero(h *model.Hero) {
	for _, s := range h.Skills() {
		p.cds.Forget(s)
	}
}

// chance пробрасывает бросок через подменяемый roll.
func (p *Pack) chance(pct int32) bool {
	return p.roll(100) < pct
}

// tell отправляет сообщение, если чат подключён.
func (p *Pack) tell(pl model.Player, format string, args ...any) {
	if p.chat != nil {
		p.chat.Tell(pl, format, args...)
	}
}
