package world

import (
	"errors"
	"testing"

	"github.com/MrMalina/Hero-Wars/internal/model"
	"github.com/MrMalina/Hero-Wars/internal/testutil"
)

func TestRoster_AddGet(t *testing.T) {
	r := NewRoster()
	p := testutil.NewFakePlayer(1, "Alice")

	r.Add(p)

	got, err := r.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name() != "Alice" {
		t.Errorf("Get(1).Name() = %q, want Alice", got.Name())
	}
}

func TestRoster_Get_Unknown(t *testing.T) {
	r := NewRoster()

	_, err := r.Get(42)
	if !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Get(42) error = %v; want %v", err, model.ErrNotFound)
	}
}

func TestRoster_Add_ReplacesIndex(t *testing.T) {
	r := NewRoster()
	r.Add(testutil.NewFakePlayer(1, "Old"))
	r.Add(testutil.NewFakePlayer(1, "New"))

	got, err := r.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name() != "New" {
		t.Errorf("Get(1).Name() = %q, want New", got.Name())
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
}

func TestRoster_Remove(t *testing.T) {
	r := NewRoster()
	r.Add(testutil.NewFakePlayer(1, "Alice"))

	r.Remove(1)
	r.Remove(1) // repeat removal is a no-op

	if r.Count() != 0 {
		t.Errorf("Count() = %d, want 0", r.Count())
	}
	if _, err := r.Get(1); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Get(1) after remove error = %v; want %v", err, model.ErrNotFound)
	}
}

func TestRoster_Players_OrderedByIndex(t *testing.T) {
	r := NewRoster()
	for _, idx := range []int32{7, 2, 5} {
		r.Add(testutil.NewFakePlayer(idx, "p"))
	}

	players := r.Players()
	want := []int32{2, 5, 7}
	if len(players) != len(want) {
		t.Fatalf("len(Players()) = %d, want %d", len(players), len(want))
	}
	for i := range want {
		if players[i].Index() != want[i] {
			t.Errorf("Players()[%d].Index() = %d, want %d", i, players[i].Index(), want[i])
		}
	}
}

func TestFilter_Match(t *testing.T) {
	alive := testutil.NewFakePlayer(1, "Alive")
	dead := testutil.NewFakePlayer(2, "Dead")
	dead.SetAlive(false)
	ct := testutil.NewFakePlayer(3, "CT")
	ct.SetTeam(model.TeamCT)

	tests := []struct {
		name   string
		filter Filter
		player model.Player
		want   bool
	}{
		{"zero matches all", Filter{}, dead, true},
		{"alive passes", Filter{Alive: true}, alive, true},
		{"alive rejects dead", Filter{Alive: true}, dead, false},
		{"dead passes", Filter{Dead: true}, dead, true},
		{"dead rejects alive", Filter{Dead: true}, alive, false},
		{"team match", Filter{Team: model.TeamCT}, ct, true},
		{"team mismatch", Filter{Team: model.TeamCT}, alive, false},
		{"not-team rejects", Filter{NotTeam: model.TeamCT}, ct, false},
		{"not-team passes", Filter{NotTeam: model.TeamCT}, alive, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(tt.player); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoster_Select(t *testing.T) {
	r := NewRoster()
	a := testutil.NewFakePlayer(1, "A")
	b := testutil.NewFakePlayer(2, "B")
	b.SetAlive(false)
	r.Add(a)
	r.Add(b)

	got := r.Select(Filter{Alive: true})
	if len(got) != 1 || got[0].Index() != 1 {
		t.Errorf("Select(alive) returned %d players, want just index 1", len(got))
	}
}

func TestRoster_NearPoint_SortedByDistance(t *testing.T) {
	r := NewRoster()

	far := testutil.NewFakePlayer(1, "Far")
	far.MoveTo(model.Vector3{X: 300})
	nearest := testutil.NewFakePlayer(2, "Close")
	nearest.MoveTo(model.Vector3{X: 50})
	mid := testutil.NewFakePlayer(3, "Mid")
	mid.MoveTo(model.Vector3{X: 150})
	outside := testutil.NewFakePlayer(4, "Outside")
	outside.MoveTo(model.Vector3{X: 1000})

	for _, p := range []model.Player{far, nearest, mid, outside} {
		r.Add(p)
	}

	got, err := r.NearPoint(model.Vector3{}, 500, Filter{})
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"Close", "Mid", "Far"}
	if len(got) != len(want) {
		t.Fatalf("NearPoint returned %d players, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name() != want[i] {
			t.Errorf("NearPoint[%d].Name() = %q, want %q", i, got[i].Name(), want[i])
		}
	}
}

func TestRoster_NearPoint_RadiusBoundary(t *testing.T) {
	r := NewRoster()
	edge := testutil.NewFakePlayer(1, "Edge")
	edge.MoveTo(model.Vector3{X: 100})
	r.Add(edge)

	got, err := r.NearPoint(model.Vector3{}, 100, Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("player exactly at radius should be included, got %d", len(got))
	}
}

func TestRoster_NearPoint_NegativeRadius(t *testing.T) {
	r := NewRoster()

	_, err := r.NearPoint(model.Vector3{}, -1, Filter{})
	if !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("NearPoint(-1) error = %v; want %v", err, model.ErrInvalidArgument)
	}
}

func TestRoster_NearPoint_AppliesFilter(t *testing.T) {
	r := NewRoster()

	enemy := testutil.NewFakePlayer(1, "Enemy")
	enemy.MoveTo(model.Vector3{X: 10})
	ally := testutil.NewFakePlayer(2, "Ally")
	ally.MoveTo(model.Vector3{X: 20})
	ally.SetTeam(model.TeamCT)

	r.Add(enemy)
	r.Add(ally)

	got, err := r.NearPoint(model.Vector3{}, 500, Filter{NotTeam: model.TeamCT})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name() != "Enemy" {
		t.Errorf("filtered NearPoint = %d players, want just Enemy", len(got))
	}
}

func TestInstance_Singleton(t *testing.T) {
	if Instance() != Instance() {
		t.Error("Instance() should return the same roster")
	}
}
