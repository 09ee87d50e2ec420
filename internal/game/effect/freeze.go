package effect

import (
	"log/slog"

	"github.com/MrMalina/Hero-Wars/internal/model"
)

// FrozenFlag is the movement flag freezing the player in place.
const FrozenFlag = "frozen"

// Freeze roots the player until the last application expires.
var Freeze Kind = freezeKind{}

type freezeKind struct{}

func (freezeKind) Name() string           { return "freeze" }
func (freezeKind) ZeroPolicy() ZeroPolicy { return ExpireNextTick }

func (freezeKind) Apply(p model.Player) {
	p.SetFlag(FrozenFlag, true)
	slog.Debug("freeze applied", "player", p.Index())
}

func (freezeKind) Revert(p model.Player) {
	p.SetFlag(FrozenFlag, false)
	slog.Debug("freeze removed", "player", p.Index())
}

func init() { RegisterKind(Freeze) }
