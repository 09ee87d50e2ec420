package testutil

import (
	"fmt"
	"sync"

	"github.com/MrMalina/Hero-Wars/internal/model"
)

// Invocation — одна записанная команда движку (Invoke).
type Invocation struct {
	Action string
	Args   []any
}

// FakePlayer реализует model.Player поверх словарей свойств.
// Все мутации и вызовы записываются, чтобы тесты могли проверять,
// что именно эффекты сделали с игроком.
type FakePlayer struct {
	mu sync.Mutex

	index   int32
	name    string
	steamID string
	alive   bool
	team    int32
	pos     model.Vector3

	floats  map[string]float64
	vectors map[string]model.Vector3
	flags   map[string]bool

	calls     []Invocation
	invokeErr map[string]error
}

// NewFakePlayer создаёт живого игрока команды T с предсказуемым SteamID.
func NewFakePlayer(index int32, name string) *FakePlayer {
	return &FakePlayer{
		index:   index,
		name:    name,
		steamID: fmt.Sprintf("STEAM_0:1:%d", index),
		alive:   true,
		team:    model.TeamT,
		floats:  make(map[string]float64),
		vectors: make(map[string]model.Vector3),
		flags:   make(map[string]bool),
	}
}

func (p *FakePlayer) Index() int32    { return p.index }
func (p *FakePlayer) Name() string    { return p.name }
func (p *FakePlayer) SteamID() string { return p.steamID }

func (p *FakePlayer) Alive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.alive
}

func (p *FakePlayer) Team() int32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.team
}

func (p *FakePlayer) Position() model.Vector3 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pos
}

func (p *FakePlayer) Float(prop string) (float64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.floats[prop]
	return v, ok
}

func (p *FakePlayer) SetFloat(prop string, value float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.floats[prop] = value
}

func (p *FakePlayer) Vector(prop string) (model.Vector3, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.vectors[prop]
	return v, ok
}

func (p *FakePlayer) SetVector(prop string, value model.Vector3) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.vectors[prop] = value
}

func (p *FakePlayer) Flag(prop string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.flags[prop]
}

func (p *FakePlayer) SetFlag(prop string, on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.flags[prop] = on
}

func (p *FakePlayer) Invoke(action string, args ...any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, Invocation{Action: action, Args: args})
	if err, ok := p.invokeErr[action]; ok {
		return err
	}
	return nil
}

// SetAlive управляет состоянием жизни игрока в тесте.
func (p *FakePlayer) SetAlive(alive bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alive = alive
}

// SetTeam управляет командой игрока в тесте.
func (p *FakePlayer) SetTeam(team int32) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.team = team
}

// MoveTo телепортирует игрока в тесте.
func (p *FakePlayer) MoveTo(pos model.Vector3) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pos = pos
}

// SetSteamID переопределяет SteamID (для проверок AllowedUsers).
func (p *FakePlayer) SetSteamID(id string) {
	p.steamID = id
}

// FailInvokeWith заставляет Invoke(action) возвращать ошибку.
func (p *FakePlayer) FailInvokeWith(action string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.invokeErr == nil {
		p.invokeErr = make(map[string]error)
	}
	p.invokeErr[action] = err
}

// Calls returns every recorded Invoke in call order.
func (p *FakePlayer) Calls() []Invocation {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Invocation, len(p.calls))
	copy(out, p.calls)
	return out
}

// CallsFor returns the recorded invocations of one action.
func (p *FakePlayer) CallsFor(action string) []Invocation {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []Invocation
	for _, c := range p.calls {
		if c.Action == action {
			out = append(out, c)
		}
	}
	return out
}
