package model

// LevelUp is the payload delivered to level-up listeners.
// Gain is the cumulative number of levels crossed by one exp change:
// a single large grant that crosses two thresholds delivers Gain == 2
// in one notification, never two notifications of Gain == 1.
type LevelUp struct {
	Hero *Hero
	Gain int32
}

// LevelUpListener receives level-up notifications.
type LevelUpListener func(LevelUp)

type levelUpSub struct {
	id int64
	fn LevelUpListener
}

// Event is a minimal ordered observer list for hero level-ups.
// Listeners are invoked in subscription order. The event does not
// recover listener panics — isolating listener failures is the
// caller's responsibility.
//
// Not safe for concurrent use: subscribe, unsubscribe and fire all run
// on the gameplay goroutine.
type Event struct {
	subs   []levelUpSub
	nextID int64
}

// Subscribe appends a listener and returns its subscription id.
func (e *Event) Subscribe(fn LevelUpListener) int64 {
	e.nextID++
	e.subs = append(e.subs, levelUpSub{id: e.nextID, fn: fn})
	return e.nextID
}

// Unsubscribe removes the listener with the given id.
// Удаление несуществующей подписки — no-op.
func (e *Event) Unsubscribe(id int64) {
	for i, sub := range e.subs {
		if sub.id == id {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			return
		}
	}
}

// Fire invokes every subscribed listener, in subscription order,
// with the given payload.
func (e *Event) Fire(v LevelUp) {
	// Snapshot: listeners may unsubscribe themselves during delivery.
	subs := make([]levelUpSub, len(e.subs))
	copy(subs, e.subs)
	for _, sub := range subs {
		sub.fn(v)
	}
}

// Len returns the number of subscribed listeners.
func (e *Event) Len() int {
	return len(e.subs)
}
