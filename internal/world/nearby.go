package world

import (
	"fmt"
	"sort"

	"github.com/MrMalina/Hero-Wars/internal/model"
)

// Filter narrows roster queries. The zero value matches every player.
// Team/NotTeam use the model team constants; TeamUnassigned (0) means
// no constraint.
type Filter struct {
	Alive   bool
	Dead    bool
	Team    int32
	NotTeam int32
}

// Match reports whether the player passes the filter.
func (f Filter) Match(p model.Player) bool {
	if f.Alive && !p.Alive() {
		return false
	}
	if f.Dead && p.Alive() {
		return false
	}
	if f.Team != model.TeamUnassigned && p.Team() != f.Team {
		return false
	}
	if f.NotTeam != model.TeamUnassigned && p.Team() == f.NotTeam {
		return false
	}
	return true
}

// Select returns the players passing the filter, ordered by index.
func (r *Roster) Select(f Filter) []model.Player {
	var out []model.Player
	for _, p := range r.Players() {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

type candidate struct {
	player model.Player
	distSq float64
}

// NearPoint returns the players within radius of point that pass the
// filter, nearest first. Ties are broken by player index. Each player's
// distance is computed once, when the candidate set is built.
func (r *Roster) NearPoint(point model.Vector3, radius float64, f Filter) ([]model.Player, error) {
	if radius < 0 {
		return nil, fmt.Errorf("negative radius %v: %w", radius, model.ErrInvalidArgument)
	}

	radiusSq := radius * radius

	var near []candidate
	for _, p := range r.Players() {
		if !f.Match(p) {
			continue
		}
		distSq := point.DistanceSquared(p.Position())
		if distSq > radiusSq {
			continue
		}
		near = append(near, candidate{player: p, distSq: distSq})
	}

	sort.Slice(near, func(i, j int) bool {
		if near[i].distSq != near[j].distSq {
			return near[i].distSq < near[j].distSq
		}
		return near[i].player.Index() < near[j].player.Index()
	})

	out := make([]model.Player, len(near))
	for i, c := range near {
		out[i] = c.player
	}
	return out, nil
}
