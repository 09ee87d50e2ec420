package model

// SkillSpec describes one skill variant: display metadata plus the
// table of gameplay-event handlers it implements. The handler table
// replaces attribute lookup — "does this skill care about event X" is
// answered by the table, declared once at spec construction.
type SkillSpec struct {
	Info
	Handlers map[string]Handler
}

// normalize applies the shipped defaults to zero fields.
func (s SkillSpec) normalize() SkillSpec {
	if s.MaxLevel == 0 {
		s.MaxLevel = DefaultSkillMaxLevel
	}
	if s.Cost == 0 {
		s.Cost = DefaultSkillCost
	}
	if s.Category == "" {
		s.Category = DefaultCategory
	}
	return s
}

// Skill is one owned, level-capable ability instance. A passive is a
// Skill held in the hero's passive list and dispatched regardless of
// level; a regular skill only fires once learned (level > 0).
type Skill struct {
	Progression
	spec SkillSpec
}

// NewSkill instantiates a skill at level 0.
func NewSkill(spec SkillSpec) *Skill {
	spec = spec.normalize()
	return &Skill{
		Progression: Progression{maxLevel: spec.MaxLevel},
		spec:        spec,
	}
}

// Spec returns the skill's spec.
func (s *Skill) Spec() SkillSpec {
	return s.spec
}

// ID returns the spec ID.
func (s *Skill) ID() string {
	return s.spec.ID
}

// Name returns the display name.
func (s *Skill) Name() string {
	return s.spec.Name
}

// Cost returns the skill-point cost of one level.
func (s *Skill) Cost() int32 {
	return s.spec.Cost
}

// RequiredLevel returns the hero level required before the skill can be
// leveled.
func (s *Skill) RequiredLevel() int32 {
	return s.spec.RequiredLevel
}

// HandleEvent выполняет обработчик с именем события, если он объявлен.
// Отсутствующий обработчик — no-op, не ошибка.
func (s *Skill) HandleEvent(name string, ev *GameEvent) {
	if fn, ok := s.spec.Handlers[name]; ok {
		fn(s, ev)
	}
}
