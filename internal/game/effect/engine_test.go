package effect

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrMalina/Hero-Wars/internal/testutil"
	"github.com/MrMalina/Hero-Wars/internal/tick"
)

func newTestEngine() (*Engine, *tick.Queue) {
	q := tick.NewQueue()
	return NewEngine(q), q
}

func TestEngine_Apply_Burn(t *testing.T) {
	e, q := newTestEngine()
	p := testutil.NewFakePlayer(1, "Burny")

	e.Apply(Burn, p, 2*time.Second)

	require.Len(t, p.CallsFor("Ignite"), 1)
	assert.True(t, e.Active(Burn, p))

	q.RunDue(time.Now().Add(3 * time.Second))

	assert.False(t, e.Active(Burn, p))
	require.Len(t, p.CallsFor("IgniteLifetime"), 1)
	assert.Equal(t, []any{0.0}, p.CallsFor("IgniteLifetime")[0].Args)
}

func TestEngine_Apply_StackingHoldsUntilLastExpiry(t *testing.T) {
	e, q := newTestEngine()
	p := testutil.NewFakePlayer(1, "Burny")

	e.Apply(Burn, p, 2*time.Second)
	e.Apply(Burn, p, 5*time.Second)

	require.Len(t, p.CallsFor("Ignite"), 1, "reapply while active must not re-ignite")
	assert.Equal(t, 2, e.PendingCount(Burn, p))

	// Первый таймер истёк, но второй ещё держит эффект.
	q.RunDue(time.Now().Add(3 * time.Second))
	assert.True(t, e.Active(Burn, p))
	assert.Empty(t, p.CallsFor("IgniteLifetime"))

	q.RunDue(time.Now().Add(6 * time.Second))
	assert.False(t, e.Active(Burn, p))
	assert.Len(t, p.CallsFor("IgniteLifetime"), 1)
}

func TestEngine_Apply_StackingOrderIndependent(t *testing.T) {
	e, q := newTestEngine()
	p := testutil.NewFakePlayer(1, "Burny")

	// Longest application first this time.
	e.Apply(Burn, p, 5*time.Second)
	e.Apply(Burn, p, 2*time.Second)

	q.RunDue(time.Now().Add(3 * time.Second))
	assert.True(t, e.Active(Burn, p), "short timer expiring must not end the effect early")

	q.RunDue(time.Now().Add(6 * time.Second))
	assert.False(t, e.Active(Burn, p))
}

func TestEngine_Apply_Freeze(t *testing.T) {
	e, q := newTestEngine()
	p := testutil.NewFakePlayer(2, "Frosty")

	e.Apply(Freeze, p, time.Second)
	assert.True(t, p.Flag(FrozenFlag))

	q.RunDue(time.Now().Add(2 * time.Second))
	assert.False(t, p.Flag(FrozenFlag))
}

func TestEngine_Apply_ZeroDuration_ExpireNextTick(t *testing.T) {
	e, q := newTestEngine()
	p := testutil.NewFakePlayer(2, "Frosty")

	// Burn and freeze treat zero durations as one-tick applications.
	e.Apply(Freeze, p, 0)
	assert.True(t, p.Flag(FrozenFlag))

	q.RunDue(time.Now())
	assert.False(t, p.Flag(FrozenFlag))
	assert.False(t, e.Active(Freeze, p))
}

func TestEngine_Apply_ZeroDuration_HoldUntilCleared(t *testing.T) {
	e, q := newTestEngine()
	p := testutil.NewFakePlayer(3, "Ghost")

	// Noclip and jetpack hold zero-duration applications until cleared.
	e.Apply(Noclip, p, 0)
	assert.True(t, p.Flag(NoclipFlag))

	q.RunDue(time.Now().Add(time.Hour))
	assert.True(t, p.Flag(NoclipFlag), "held effect must survive ticks")
	assert.True(t, e.Active(Noclip, p))

	require.True(t, e.Clear(Noclip, p))
	assert.False(t, p.Flag(NoclipFlag))
	assert.False(t, e.Active(Noclip, p))
}

func TestEngine_Apply_NegativeDuration(t *testing.T) {
	e, q := newTestEngine()
	p := testutil.NewFakePlayer(3, "Ghost")

	e.Apply(Burn, p, -time.Second)
	assert.True(t, e.Active(Burn, p))

	q.RunDue(time.Now())
	assert.False(t, e.Active(Burn, p))

	e.Apply(Jetpack, p, -time.Second)
	q.RunDue(time.Now().Add(time.Hour))
	assert.True(t, e.Active(Jetpack, p))
}

func TestEngine_Clear(t *testing.T) {
	e, q := newTestEngine()
	p := testutil.NewFakePlayer(4, "Burny")

	e.Apply(Burn, p, 10*time.Second)

	require.True(t, e.Clear(Burn, p))
	assert.Len(t, p.CallsFor("IgniteLifetime"), 1)
	assert.False(t, e.Active(Burn, p))
	assert.Zero(t, q.Len(), "clear must cancel pending expiries")

	// Clearing an inactive effect reports false.
	assert.False(t, e.Clear(Burn, p))
}

func TestEngine_Clear_StaleExpiryNoOps(t *testing.T) {
	e, q := newTestEngine()
	p := testutil.NewFakePlayer(4, "Burny")

	// Both expiries and the clear land in one due set: the second
	// expiry fires after the clear already reverted and must no-op.
	e.Apply(Burn, p, 50*time.Millisecond)
	q.Schedule(60*time.Millisecond, func() { e.Clear(Burn, p) })
	e.Apply(Burn, p, 70*time.Millisecond)

	q.RunDue(time.Now().Add(time.Second))

	assert.Len(t, p.CallsFor("IgniteLifetime"), 1, "exactly one revert")
	assert.False(t, e.Active(Burn, p))
}

func TestEngine_ReapplyAfterClear(t *testing.T) {
	e, _ := newTestEngine()
	p := testutil.NewFakePlayer(5, "Burny")

	e.Apply(Burn, p, time.Second)
	e.Clear(Burn, p)
	e.Apply(Burn, p, time.Second)

	assert.Len(t, p.CallsFor("Ignite"), 2, "cleared effect reapplies from scratch")
}

func TestEngine_KindsAreIndependent(t *testing.T) {
	e, q := newTestEngine()
	p := testutil.NewFakePlayer(6, "Mixed")

	e.Apply(Burn, p, 5*time.Second)
	e.Apply(Freeze, p, time.Second)

	q.RunDue(time.Now().Add(2 * time.Second))

	assert.False(t, p.Flag(FrozenFlag), "freeze expired")
	assert.True(t, e.Active(Burn, p), "burn unaffected by freeze expiry")
}

func TestEngine_ClearPlayer(t *testing.T) {
	e, q := newTestEngine()
	p := testutil.NewFakePlayer(7, "Leaver")
	other := testutil.NewFakePlayer(8, "Stayer")

	e.Apply(Burn, p, time.Minute)
	e.Apply(Freeze, p, time.Minute)
	e.Apply(Jetpack, p, 0)
	e.Apply(Freeze, other, time.Minute)

	e.ClearPlayer(p)

	assert.False(t, e.Active(Burn, p))
	assert.False(t, e.Active(Freeze, p))
	assert.False(t, e.Active(Jetpack, p))
	assert.False(t, p.Flag(FrozenFlag))
	assert.False(t, p.Flag(JetpackFlag))
	assert.Len(t, p.CallsFor("IgniteLifetime"), 1)

	assert.True(t, e.Active(Freeze, other), "other players keep their effects")

	// Cancelled timers never fire against the removed player.
	q.RunDue(time.Now().Add(2 * time.Minute))
	assert.Len(t, p.CallsFor("IgniteLifetime"), 1)

	// Repeat removal is a no-op.
	e.ClearPlayer(p)
}

func TestEngine_RevertFailureTolerated(t *testing.T) {
	e, _ := newTestEngine()
	p := testutil.NewFakePlayer(9, "Glitchy")
	p.FailInvokeWith("IgniteLifetime", errors.New("entity gone"))

	e.Apply(Burn, p, time.Second)
	e.Clear(Burn, p)

	// Best-effort revert: the engine state is gone either way.
	assert.False(t, e.Active(Burn, p))
}
