package world

import (
	"fmt"
	"sort"
	"sync"

	"github.com/MrMalina/Hero-Wars/internal/model"
)

// Roster tracks the players currently on the server, keyed by entity
// index. The gameplay goroutine reads it on every event; join/leave
// arrive from the transport goroutine, so access is lock-guarded.
type Roster struct {
	mu      sync.RWMutex
	players map[int32]model.Player
}

var (
	instance *Roster
	once     sync.Once
)

// Instance returns the process-wide roster.
func Instance() *Roster {
	once.Do(func() {
		instance = NewRoster()
	})
	return instance
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{
		players: make(map[int32]model.Player),
	}
}

// Add registers a player under its index, replacing any previous entry
// for that index.
func (r *Roster) Add(p model.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players[p.Index()] = p
}

// Remove unregisters the player with the given index. Removing an
// unknown index is a no-op.
func (r *Roster) Remove(index int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.players, index)
}

// Get returns the player with the given index.
func (r *Roster) Get(index int32) (model.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[index]
	if !ok {
		return nil, fmt.Errorf("player %d: %w", index, model.ErrNotFound)
	}
	return p, nil
}

// Players returns a snapshot of every player, ordered by index.
func (r *Roster) Players() []model.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index() < out[j].Index() })
	return out
}

// Count returns the number of registered players.
func (r *Roster) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.players)
}
