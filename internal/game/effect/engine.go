package effect

import (
	"sort"
	"time"

	"github.com/MrMalina/Hero-Wars/internal/model"
	"github.com/MrMalina/Hero-Wars/internal/tick"
)

// Engine owns the per-kind, per-player pending-expiry sets.
//
// Confined to the gameplay goroutine: Apply, Clear and the expiry
// callbacks all run there, so the engine state itself needs no lock
// (the Scheduler does its own locking).
type Engine struct {
	sched  Scheduler
	active map[int32]map[string]*kindState // player index → kind name → state
}

type kindState struct {
	kind   Kind
	player model.Player
	tasks  map[*tick.Task]struct{}
	held   bool // HoldUntilCleared application without a timer
}

func (st *kindState) empty() bool {
	return len(st.tasks) == 0 && !st.held
}

// NewEngine creates an effect engine over the given scheduler.
func NewEngine(sched Scheduler) *Engine {
	return &Engine{
		sched:  sched,
		active: make(map[int32]map[string]*kindState),
	}
}

// Apply adds one application of the kind to the player. The kind's
// engine mutation runs only when the pending set was empty before the
// call; reapplying while active adds a timer without repeating the
// side effect. Zero and negative durations follow the kind's
// ZeroPolicy.
func (e *Engine) Apply(k Kind, p model.Player, duration time.Duration) {
	st := e.state(k, p)

	if st.empty() {
		k.Apply(p)
	}

	if duration <= 0 && k.ZeroPolicy() == HoldUntilCleared {
		st.held = true
		return
	}
	if duration < 0 {
		duration = 0
	}

	var task *tick.Task
	task = e.sched.Schedule(duration, func() { e.expire(st, task) })
	st.tasks[task] = struct{}{}
}

// expire discards one fired timer and reverts iff the set drained.
// Safe against stale fires: a timer already removed by Clear is
// ignored.
func (e *Engine) expire(st *kindState, task *tick.Task) {
	if _, ok := st.tasks[task]; !ok {
		return
	}
	delete(st.tasks, task)

	if st.empty() {
		st.kind.Revert(st.player)
		e.drop(st)
	}
}

// Clear force-ends the kind on the player, cancelling every pending
// expiry and reverting immediately. Returns false if the effect was
// not active.
func (e *Engine) Clear(k Kind, p model.Player) bool {
	st, ok := e.active[p.Index()][k.Name()]
	if !ok {
		return false
	}
	e.clearState(st)
	return true
}

// ClearPlayer force-ends every active effect on the player. Called on
// disconnect so no timer outlives its target. Kinds revert in name
// order.
func (e *Engine) ClearPlayer(p model.Player) {
	kinds := e.active[p.Index()]
	if len(kinds) == 0 {
		return
	}

	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		e.clearState(kinds[name])
	}
}

// Active reports whether the kind is currently applied to the player.
func (e *Engine) Active(k Kind, p model.Player) bool {
	_, ok := e.active[p.Index()][k.Name()]
	return ok
}

// PendingCount returns the number of pending expiries for the kind (for testing)
func (e *Engine) PendingCount(k Kind, p model.Player) int {
	st, ok := e.active[p.Index()][k.Name()]
	if !ok {
		return 0
	}
	return len(st.tasks)
}

func (e *Engine) state(k Kind, p model.Player) *kindState {
	kinds, ok := e.active[p.Index()]
	if !ok {
		kinds = make(map[string]*kindState)
		e.active[p.Index()] = kinds
	}

	st, ok := kinds[k.Name()]
	if !ok {
		st = &kindState{
			kind:   k,
			player: p,
			tasks:  make(map[*tick.Task]struct{}),
		}
		kinds[k.Name()] = st
	}
	return st
}

func (e *Engine) clearState(st *kindState) {
	for task := range st.tasks {
		e.sched.Cancel(task)
	}
	// Fresh map: expiries already popped by the loop must no-op when
	// they fire after this clear.
	st.tasks = make(map[*tick.Task]struct{})
	st.held = false

	st.kind.Revert(st.player)
	e.drop(st)
}

func (e *Engine) drop(st *kindState) {
	kinds := e.active[st.player.Index()]
	delete(kinds, st.kind.Name())
	if len(kinds) == 0 {
		delete(e.active, st.player.Index())
	}
}
