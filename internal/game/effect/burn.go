package effect

import (
	"log/slog"

	"github.com/MrMalina/Hero-Wars/internal/model"
)

// Burn sets the player on fire until the last application expires.
// Zero-duration burns expire on the next tick: a momentary flame
// flash without a lasting debuff.
var Burn Kind = burnKind{}

type burnKind struct{}

func (burnKind) Name() string           { return "burn" }
func (burnKind) ZeroPolicy() ZeroPolicy { return ExpireNextTick }

func (burnKind) Apply(p model.Player) {
	if err := p.Invoke("Ignite"); err != nil {
		slog.Warn("burn apply failed", "player", p.Index(), "error", err)
		return
	}
	slog.Debug("burn applied", "player", p.Index())
}

func (burnKind) Revert(p model.Player) {
	// Lifetime 0 extinguishes the entity flame.
	if err := p.Invoke("IgniteLifetime", 0.0); err != nil {
		slog.Warn("burn revert failed", "player", p.Index(), "error", err)
		return
	}
	slog.Debug("burn removed", "player", p.Index())
}

func init() { RegisterKind(Burn) }
