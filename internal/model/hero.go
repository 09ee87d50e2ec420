package model

import "fmt"

// MaxItems bounds how many items a hero can carry at once.
const MaxItems = 6

// CurveFunc maps a hero level to the exp required to reach the next
// level. Must be strictly positive for every level below the cap.
type CurveFunc func(level int32) int64

// LinearCurve returns the curve base + level×perLevel.
func LinearCurve(base, perLevel int64) CurveFunc {
	return func(level int32) int64 {
		return base + int64(level)*perLevel
	}
}

// expCurve is the process-wide leveling curve. Set once from
// configuration at startup, read-only afterwards.
var expCurve = LinearCurve(100, 20)

// SetExpCurve overrides the leveling curve. Called during startup
// before any heroes exist.
func SetExpCurve(fn CurveFunc) {
	if fn != nil {
		expCurve = fn
	}
}

// HeroSpec describes one hero variant: display metadata plus the
// ordered skill and passive lists instantiated at construction.
// The lists are explicit — a hero variant is assembled by passing
// its skills to the spec, not by mutating shared state at load time.
type HeroSpec struct {
	Info
	Skills   []SkillSpec
	Passives []SkillSpec
}

// normalize applies the shipped defaults to zero fields.
func (s HeroSpec) normalize() HeroSpec {
	if s.MaxLevel == 0 {
		s.MaxLevel = DefaultHeroMaxLevel
	}
	if s.Cost == 0 {
		s.Cost = DefaultHeroCost
	}
	if s.Category == "" {
		s.Category = DefaultCategory
	}
	return s
}

// Hero is a player-owned progression character: a leveling core, an
// experience counter, and the owned skill, passive and item instances.
// The hero owns its instances exclusively; they live and die with it.
//
// Not safe for concurrent use: heroes are confined to the gameplay
// goroutine.
type Hero struct {
	Progression
	spec HeroSpec
	exp  int64

	skills   []*Skill
	passives []*Skill
	items    []*Item

	levelUp Event
}

// NewHero instantiates a hero at level 0 with zero exp. Only enabled
// skill and passive specs are instantiated, in spec order.
func NewHero(spec HeroSpec) *Hero {
	spec = spec.normalize()
	h := &Hero{
		Progression: Progression{maxLevel: spec.MaxLevel},
		spec:        spec,
	}
	for _, ss := range spec.Skills {
		if ss.Disabled {
			continue
		}
		h.skills = append(h.skills, NewSkill(ss))
	}
	for _, ps := range spec.Passives {
		if ps.Disabled {
			continue
		}
		h.passives = append(h.passives, NewSkill(ps))
	}
	return h
}

// Spec returns the hero's spec.
func (h *Hero) Spec() HeroSpec {
	return h.spec
}

// ID returns the spec ID.
func (h *Hero) ID() string {
	return h.spec.ID
}

// Name returns the display name.
func (h *Hero) Name() string {
	return h.spec.Name
}

// OnLevelUp returns the hero's level-up notification event.
func (h *Hero) OnLevelUp() *Event {
	return &h.levelUp
}

// Exp returns the current experience points.
func (h *Hero) Exp() int64 {
	return h.exp
}

// RequiredExp возвращает опыт, необходимый для следующего уровня.
// На максимальном уровне всегда 0.
func (h *Hero) RequiredExp() int64 {
	if h.level >= h.maxLevel {
		return 0
	}
	return expCurve(h.level)
}

// SetExp sets the hero's experience, converting surplus exp into levels.
// One call may cross several level thresholds; the level-up event fires
// exactly once with the cumulative gain. At the level cap exp is pinned
// to zero regardless of the argument.
func (h *Hero) SetExp(exp int64) error {
	if exp < 0 {
		return fmt.Errorf("%w: negative exp %d", ErrInvalidArgument, exp)
	}

	if h.level >= h.maxLevel {
		h.exp = 0
		return nil
	}

	if exp == h.exp {
		return nil
	}

	h.exp = exp
	oldLevel := h.level

	for h.exp >= h.RequiredExp() && h.level < h.maxLevel {
		h.exp -= h.RequiredExp()
		h.level++
	}

	if h.level >= h.maxLevel {
		h.level = h.maxLevel
		h.exp = 0
	}

	if h.level > oldLevel {
		h.levelUp.Fire(LevelUp{Hero: h, Gain: h.level - oldLevel})
	}
	return nil
}

// AddExp grants (or removes) experience relative to the current value.
func (h *Hero) AddExp(delta int64) error {
	return h.SetExp(h.exp + delta)
}

// SetLevel is the administrative level override: it bound-checks the
// new level, then zeroes exp. Distinct from exp-driven leveling — it
// never fires the level-up event.
func (h *Hero) SetLevel(level int32) error {
	if err := h.Progression.SetLevel(level); err != nil {
		return err
	}
	h.exp = 0
	return nil
}

// SkillPoints returns the hero's unused skill points:
// level − Σ(skill.level × skill.cost) over owned skills. Derived on
// every read, never stored.
func (h *Hero) SkillPoints() int32 {
	points := h.level
	for _, s := range h.skills {
		points -= s.Level() * s.Cost()
	}
	return points
}

// Skills returns the owned skill instances in spec order.
func (h *Hero) Skills() []*Skill {
	out := make([]*Skill, len(h.skills))
	copy(out, h.skills)
	return out
}

// Passives returns the owned passive instances in spec order.
func (h *Hero) Passives() []*Skill {
	out := make([]*Skill, len(h.passives))
	copy(out, h.passives)
	return out
}

// Items returns the owned item instances in acquisition order.
func (h *Hero) Items() []*Item {
	out := make([]*Item, len(h.items))
	copy(out, h.items)
	return out
}

// FindSkill returns the owned skill with the given spec ID.
func (h *Hero) FindSkill(id string) (*Skill, bool) {
	for _, s := range h.skills {
		if s.ID() == id {
			return s, true
		}
	}
	return nil, false
}

// Upgrade spends skill points to raise the named skill one level.
func (h *Hero) Upgrade(skillID string) error {
	s, ok := h.FindSkill(skillID)
	if !ok {
		return fmt.Errorf("%w: skill %q", ErrNotFound, skillID)
	}
	if s.Level() >= s.MaxLevel() {
		return fmt.Errorf("%w: skill %q already at max level %d", ErrInvalidArgument, skillID, s.MaxLevel())
	}
	if h.level < s.RequiredLevel() {
		return fmt.Errorf("%w: skill %q requires hero level %d", ErrInvalidArgument, skillID, s.RequiredLevel())
	}
	if h.SkillPoints() < s.Cost() {
		return fmt.Errorf("%w: skill %q costs %d, %d points available", ErrInvalidArgument, skillID, s.Cost(), h.SkillPoints())
	}
	return s.SetLevel(s.Level() + 1)
}

// ResetSkills returns every skill to level 0. Points are refunded
// implicitly, поскольку SkillPoints — производное значение.
func (h *Hero) ResetSkills() {
	for _, s := range h.skills {
		s.level = 0
	}
}

// AddItem instantiates the item spec and adds it to the hero,
// honoring the carry cap and the per-item copy limit.
func (h *Hero) AddItem(spec ItemSpec) (*Item, error) {
	if len(h.items) >= MaxItems {
		return nil, fmt.Errorf("%w: hero already carries %d items", ErrInvalidArgument, MaxItems)
	}
	if spec.Limit > 0 {
		owned := int32(0)
		for _, it := range h.items {
			if it.ID() == spec.ID {
				owned++
			}
		}
		if owned >= spec.Limit {
			return nil, fmt.Errorf("%w: item %q limited to %d copies", ErrInvalidArgument, spec.ID, spec.Limit)
		}
	}
	it := NewItem(spec)
	h.items = append(h.items, it)
	return it, nil
}

// RemoveItem removes the given item instance from the hero.
func (h *Hero) RemoveItem(item *Item) error {
	for i, it := range h.items {
		if it == item {
			h.items = append(h.items[:i], h.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: item %q not owned", ErrNotFound, item.ID())
}

// DropExpiring removes and returns every non-permanent item.
// Called when the hero's owner dies.
func (h *Hero) DropExpiring() []*Item {
	var dropped []*Item
	kept := h.items[:0]
	for _, it := range h.items {
		if it.Permanent() {
			kept = append(kept, it)
		} else {
			dropped = append(dropped, it)
		}
	}
	h.items = kept
	return dropped
}

// HandleEvent fans a named gameplay event out to the hero's owned
// instances: passives first (always active), then skills that have
// been learned (level > 0), then items — each in insertion order.
func (h *Hero) HandleEvent(name string, ev *GameEvent) {
	for _, p := range h.passives {
		p.HandleEvent(name, ev)
	}
	for _, s := range h.skills {
		if s.Level() > 0 {
			s.HandleEvent(name, ev)
		}
	}
	for _, it := range h.items {
		it.HandleEvent(name, ev)
	}
}
