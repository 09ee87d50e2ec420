package effect

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/MrMalina/Hero-Wars/internal/model"
	"github.com/MrMalina/Hero-Wars/internal/tick"
)

// ShiftProperty adds delta to the named float property immediately
// and, when duration > 0, schedules a single revert that subtracts it
// again. Shifts are deliberately uncoordinated: overlapping shifts of
// one property each apply and revert their own delta, nothing more.
// Use the kind engine when exclusive on/off semantics are needed.
//
// Returns the revert task (nil for permanent shifts) so callers may
// cancel it.
func (e *Engine) ShiftProperty(p model.Player, prop string, delta float64, duration time.Duration) (*tick.Task, error) {
	cur, ok := p.Float(prop)
	if !ok {
		return nil, fmt.Errorf("player %d has no property %q: %w", p.Index(), prop, model.ErrInvalidArgument)
	}
	p.SetFloat(prop, cur+delta)

	if duration <= 0 {
		return nil, nil
	}

	task := e.sched.Schedule(duration, func() {
		cur, ok := p.Float(prop)
		if !ok {
			slog.Warn("property shift revert skipped", "player", p.Index(), "property", prop)
			return
		}
		p.SetFloat(prop, cur-delta)
	})
	return task, nil
}
