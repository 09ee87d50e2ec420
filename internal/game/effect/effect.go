// Package effect implements timed status effects on players: burn,
// freeze, noclip and jetpack. Each kind keeps a per-player set of
// pending expiries; the player-visible state flips only on the set's
// empty↔non-empty transitions, so overlapping applications never
// revert early.
package effect

import (
	"time"

	"github.com/MrMalina/Hero-Wars/internal/model"
	"github.com/MrMalina/Hero-Wars/internal/tick"
)

// ZeroPolicy tells the engine what a zero or negative duration means
// for a kind.
type ZeroPolicy int

const (
	// ExpireNextTick schedules the expiry anyway; the application lives
	// less than one tick.
	ExpireNextTick ZeroPolicy = iota

	// HoldUntilCleared applies the effect without a timer; it stays on
	// until Clear or ClearPlayer.
	HoldUntilCleared
)

// Kind defines one status effect: the engine mutation applied when the
// player's pending set becomes non-empty, and the revert applied when
// it drains. Apply and Revert are best-effort against the live player;
// both must tolerate a player that already left the server.
type Kind interface {
	Name() string
	Apply(p model.Player)
	Revert(p model.Player)
	ZeroPolicy() ZeroPolicy
}

// Scheduler is the slice of the tick queue the engine uses.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) *tick.Task
	Cancel(t *tick.Task) bool
}
