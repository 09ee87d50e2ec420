package model

import (
	"fmt"
	"sort"
)

// Registry holds the hero, skill and item specs known to the process.
// Content packages register their specs at startup; queries return the
// enabled specs sorted by display name (case-sensitive, ties broken by
// registration order).
//
// The package-level Register/Enabled functions operate on a process
// default instance; tests may construct their own Registry.
type Registry struct {
	heroes   []HeroSpec
	heroIDs  map[string]int
	skills   []SkillSpec
	skillIDs map[string]int
	items    []ItemSpec
	itemIDs  map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		heroIDs:  make(map[string]int),
		skillIDs: make(map[string]int),
		itemIDs:  make(map[string]int),
	}
}

// defaultRegistry is the process-wide instance behind the package-level
// registration functions.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// RegisterHero records a hero spec. The spec's skills and passives are
// recorded in the skill registry as well, so the enabled-skill query
// covers them without separate registration.
func (r *Registry) RegisterHero(spec HeroSpec) error {
	spec = spec.normalize()
	if spec.ID == "" {
		return fmt.Errorf("%w: hero spec without ID", ErrInvalidArgument)
	}
	if _, dup := r.heroIDs[spec.ID]; dup {
		return fmt.Errorf("%w: hero %q already registered", ErrInvalidArgument, spec.ID)
	}
	r.heroIDs[spec.ID] = len(r.heroes)
	r.heroes = append(r.heroes, spec)

	for _, ss := range spec.Skills {
		if err := r.RegisterSkill(ss); err != nil {
			return err
		}
	}
	for _, ps := range spec.Passives {
		if err := r.RegisterSkill(ps); err != nil {
			return err
		}
	}
	return nil
}

// RegisterSkill records a skill spec. Re-registering the same ID is a
// no-op so heroes may share skills.
func (r *Registry) RegisterSkill(spec SkillSpec) error {
	spec = spec.normalize()
	if spec.ID == "" {
		return fmt.Errorf("%w: skill spec without ID", ErrInvalidArgument)
	}
	if _, dup := r.skillIDs[spec.ID]; dup {
		return nil
	}
	r.skillIDs[spec.ID] = len(r.skills)
	r.skills = append(r.skills, spec)
	return nil
}

// RegisterItem records an item spec.
func (r *Registry) RegisterItem(spec ItemSpec) error {
	spec = spec.normalize()
	if spec.ID == "" {
		return fmt.Errorf("%w: item spec without ID", ErrInvalidArgument)
	}
	if _, dup := r.itemIDs[spec.ID]; dup {
		return fmt.Errorf("%w: item %q already registered", ErrInvalidArgument, spec.ID)
	}
	r.itemIDs[spec.ID] = len(r.items)
	r.items = append(r.items, spec)
	return nil
}

// EnabledHeroes returns the enabled hero specs sorted by name.
func (r *Registry) EnabledHeroes() []HeroSpec {
	out := make([]HeroSpec, 0, len(r.heroes))
	for _, s := range r.heroes {
		if !s.Disabled {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// EnabledSkills returns the enabled skill specs sorted by name.
func (r *Registry) EnabledSkills() []SkillSpec {
	out := make([]SkillSpec, 0, len(r.skills))
	for _, s := range r.skills {
		if !s.Disabled {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// EnabledItems returns the enabled item specs sorted by name.
func (r *Registry) EnabledItems() []ItemSpec {
	out := make([]ItemSpec, 0, len(r.items))
	for _, s := range r.items {
		if !s.Disabled {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// HeroByID returns the registered hero spec with the given ID.
func (r *Registry) HeroByID(id string) (HeroSpec, bool) {
	idx, ok := r.heroIDs[id]
	if !ok {
		return HeroSpec{}, false
	}
	return r.heroes[idx], true
}

// SkillByID returns the registered skill spec with the given ID.
func (r *Registry) SkillByID(id string) (SkillSpec, bool) {
	idx, ok := r.skillIDs[id]
	if !ok {
		return SkillSpec{}, false
	}
	return r.skills[idx], true
}

// ItemByID returns the registered item spec with the given ID.
func (r *Registry) ItemByID(id string) (ItemSpec, bool) {
	idx, ok := r.itemIDs[id]
	if !ok {
		return ItemSpec{}, false
	}
	return r.items[idx], true
}

// RegisterHero records a hero spec in the process default registry.
func RegisterHero(spec HeroSpec) error { return defaultRegistry.RegisterHero(spec) }

// RegisterSkill records a skill spec in the process default registry.
func RegisterSkill(spec SkillSpec) error { return defaultRegistry.RegisterSkill(spec) }

// RegisterItem records an item spec in the process default registry.
func RegisterItem(spec ItemSpec) error { return defaultRegistry.RegisterItem(spec) }

// EnabledHeroes queries the process default registry.
func EnabledHeroes() []HeroSpec { return defaultRegistry.EnabledHeroes() }

// EnabledSkills queries the process default registry.
func EnabledSkills() []SkillSpec { return defaultRegistry.EnabledSkills() }

// EnabledItems queries the process default registry.
func EnabledItems() []ItemSpec { return defaultRegistry.EnabledItems() }

// HeroByID queries the process default registry.
func HeroByID(id string) (HeroSpec, bool) { return defaultRegistry.HeroByID(id) }

// ItemByID queries the process default registry.
func ItemByID(id string) (ItemSpec, bool) { return defaultRegistry.ItemByID(id) }
