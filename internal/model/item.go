package model

import "math"

// defaultSellMultiplier matches the shipped configuration.
const defaultSellMultiplier = 0.5

// sellMultiplier is the fraction of an item's cost refunded on sale.
// Set once from configuration at process start, read-only afterwards.
var sellMultiplier = defaultSellMultiplier

// SetSellValueMultiplier overrides the sell-value multiplier.
// Called during startup before any items exist.
func SetSellValueMultiplier(m float64) {
	sellMultiplier = m
}

// ItemSpec describes one purchasable item variant. Items carry the same
// level and dispatch capabilities as skills plus shop metadata.
type ItemSpec struct {
	Info

	// Permanent items survive the hero's death; others are dropped.
	Permanent bool

	// Limit bounds how many copies of this item a hero may hold at
	// once. Zero означает «без лимита».
	Limit int32

	Handlers map[string]Handler
}

// normalize applies the shipped defaults to zero fields.
func (s ItemSpec) normalize() ItemSpec {
	if s.MaxLevel == 0 {
		s.MaxLevel = DefaultSkillMaxLevel
	}
	if s.Cost == 0 {
		s.Cost = DefaultItemCost
	}
	if s.Category == "" {
		s.Category = DefaultCategory
	}
	return s
}

// Item is an owned item instance: a skill-capability value with shop
// metadata and a derived resale value, not a separate type hierarchy.
type Item struct {
	Skill
	itemSpec ItemSpec
}

// NewItem instantiates an item at level 0.
func NewItem(spec ItemSpec) *Item {
	spec = spec.normalize()
	return &Item{
		Skill: Skill{
			Progression: Progression{maxLevel: spec.MaxLevel},
			spec:        SkillSpec{Info: spec.Info, Handlers: spec.Handlers},
		},
		itemSpec: spec,
	}
}

// ItemSpec returns the item's spec.
func (i *Item) ItemSpec() ItemSpec {
	return i.itemSpec
}

// Permanent reports whether the item survives the hero's death.
func (i *Item) Permanent() bool {
	return i.itemSpec.Permanent
}

// SellValue returns the gold refunded when the item is sold:
// floor(cost × sell multiplier).
func (i *Item) SellValue() int32 {
	return int32(math.Floor(float64(i.itemSpec.Cost) * sellMultiplier))
}
