package effect

import (
	"log/slog"

	"github.com/MrMalina/Hero-Wars/internal/model"
)

// JetpackFlag is the movement flag switching the player to fly mode.
const JetpackFlag = "jetpack"

// Jetpack switches the player to fly movement. Like noclip, a
// zero-duration application holds until explicitly cleared.
var Jetpack Kind = jetpackKind{}

type jetpackKind struct{}

func (jetpackKind) Name() string           { return "jetpack" }
func (jetpackKind) ZeroPolicy() ZeroPolicy { return HoldUntilCleared }

func (jetpackKind) Apply(p model.Player) {
	p.SetFlag(JetpackFlag, true)
	slog.Debug("jetpack applied", "player", p.Index())
}

func (jetpackKind) Revert(p model.Player) {
	p.SetFlag(JetpackFlag, false)
	slog.Debug("jetpack removed", "player", p.Index())
}

func init() { RegisterKind(Jetpack) }
