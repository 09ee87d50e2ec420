package effect

import (
	"log/slog"

	"github.com/MrMalina/Hero-Wars/internal/model"
)

// NoclipFlag is the movement flag letting the player pass through
// world geometry.
const NoclipFlag = "noclip"

// Noclip lets the player fly through walls. A zero-duration
// application holds until explicitly cleared — ultimates grant it for
// the round, not for a timer.
var Noclip Kind = noclipKind{}

type noclipKind struct{}

func (noclipKind) Name() string           { return "noclip" }
func (noclipKind) ZeroPolicy() ZeroPolicy { return HoldUntilCleared }

func (noclipKind) Apply(p model.Player) {
	p.SetFlag(NoclipFlag, true)
	slog.Debug("noclip applied", "player", p.Index())
}

func (noclipKind) Revert(p model.Player) {
	p.SetFlag(NoclipFlag, false)
	slog.Debug("noclip removed", "player", p.Index())
}

func init() { RegisterKind(Noclip) }
