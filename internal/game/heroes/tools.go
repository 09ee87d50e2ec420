package heroes

import (
	"math/rand/v2"
	"time"

	"github.com/MrMalina/Hero-Wars/internal/model"
)

// Chance возвращает true с вероятностью pct процентов.
func Chance(pct int32) bool {
	return rand.Int32N(100) < pct
}

// CooldownGate отслеживает перезарядку по инстансам скиллов.
// Не потокобезопасен: живёт в игровой горутине.
type CooldownGate struct {
	now   func() time.Time
	until map[*model.Skill]time.Time
}

// NewCooldownGate создаёт gate с внедряемым источником времени.
// nil означает time.Now.
func NewCooldownGate(now func() time.Time) *CooldownGate {
	if now == nil {
		now = time.Now
	}
	return &CooldownGate{
		now:   now,
		until: make(map[*model.Skill]time.Time),
	}
}

// Try сообщает, готов ли скилл, и при готовности взводит перезарядку
// на reuse. Неготовый скилл перезарядку не трогает.
func (g *CooldownGate) Try(s *model.Skill, reuse time.Duration) bool {
	now := g.now()
	if now.Before(g.until[s]) {
		return false
	}
	if reuse > 0 {
		g.until[s] = now.Add(reuse)
	}
	return true
}

// Remaining возвращает остаток перезарядки скилла.
func (g *CooldownGate) Remaining(s *model.Skill) time.Duration {
	d := g.until[s].Sub(g.now())
	if d < 0 {
		return 0
	}
	return d
}

// Forget сбрасывает перезарядку скилла. Вызывается при выгрузке героя,
// чтобы gate не держал ссылки на мёртвые инстансы.
func (g *CooldownGate) Forget(s *model.Skill) {
	delete(g.until, s)
}
