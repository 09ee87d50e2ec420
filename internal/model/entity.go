package model

import "fmt"

// Default metadata values applied by spec normalization when a field is
// left zero.
const (
	DefaultHeroMaxLevel  int32 = 10000
	DefaultHeroCost      int32 = 20
	DefaultSkillMaxLevel int32 = 6
	DefaultSkillCost     int32 = 1
	DefaultItemCost      int32 = 10
	DefaultCategory            = "Others"
)

// Info carries the display metadata shared by hero, skill and item specs.
// ID is the registry key (unique per registry); Name is the display name
// used for sorting. Immutable after registration.
type Info struct {
	ID          string
	Name        string
	Description string
	Authors     []string
	Category    string

	Cost          int32
	MaxLevel      int32
	RequiredLevel int32

	// Disabled excludes the spec from the enabled-spec queries while
	// keeping it registered. Zero value means enabled.
	Disabled bool

	// AllowedUsers, когда список непуст, ограничивает использование
	// перечисленными SteamID. Проверяется слоем выбора героя, не моделью.
	AllowedUsers []string
}

// Allows reports whether the spec is usable by the given steam ID.
// An empty AllowedUsers list allows everyone.
func (i Info) Allows(steamID string) bool {
	if len(i.AllowedUsers) == 0 {
		return true
	}
	for _, id := range i.AllowedUsers {
		if id == steamID {
			return true
		}
	}
	return false
}

// Leveled is the read capability shared by everything that levels.
type Leveled interface {
	Level() int32
	MaxLevel() int32
}

// Dispatchable is the capability of receiving named gameplay events.
type Dispatchable interface {
	HandleEvent(name string, ev *GameEvent)
}

// Progression holds a level bounded to [0, maxLevel]. It is the single
// place the leveling invariant is enforced: any violating mutation fails
// with ErrInvalidArgument and leaves the level unchanged.
//
// Not safe for concurrent use: all progression state is confined to the
// gameplay goroutine.
type Progression struct {
	level    int32
	maxLevel int32
}

// NewProgression creates a progression at the given starting level.
func NewProgression(level, maxLevel int32) (Progression, error) {
	p := Progression{maxLevel: maxLevel}
	if err := p.SetLevel(level); err != nil {
		return Progression{}, err
	}
	return p, nil
}

// Level returns the current level.
func (p *Progression) Level() int32 {
	return p.level
}

// MaxLevel returns the level cap.
func (p *Progression) MaxLevel() int32 {
	return p.maxLevel
}

// SetLevel устанавливает уровень с валидацией границ.
func (p *Progression) SetLevel(level int32) error {
	if level < 0 {
		return fmt.Errorf("%w: negative level %d", ErrInvalidArgument, level)
	}
	if level > p.maxLevel {
		return fmt.Errorf("%w: level %d over max level %d", ErrInvalidArgument, level, p.maxLevel)
	}
	p.level = level
	return nil
}
