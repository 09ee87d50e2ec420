package model

import (
	"errors"
	"testing"
)

func TestRegistry_RegisterHero_Duplicate(t *testing.T) {
	r := NewRegistry()

	if err := r.RegisterHero(HeroSpec{Info: Info{ID: "h", Name: "H"}}); err != nil {
		t.Fatal(err)
	}
	err := r.RegisterHero(HeroSpec{Info: Info{ID: "h", Name: "Other"}})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("duplicate RegisterHero error = %v; want %v", err, ErrInvalidArgument)
	}
}

func TestRegistry_RegisterHero_EmptyID(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterHero(HeroSpec{Info: Info{Name: "No ID"}}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("error = %v; want %v", err, ErrInvalidArgument)
	}
}

func TestRegistry_RegisterHero_RecordsSkills(t *testing.T) {
	r := NewRegistry()

	err := r.RegisterHero(HeroSpec{
		Info:     Info{ID: "h", Name: "H"},
		Skills:   []SkillSpec{{Info: Info{ID: "fireball", Name: "Fireball"}}},
		Passives: []SkillSpec{{Info: Info{ID: "aura", Name: "Aura"}}},
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := r.SkillByID("fireball"); !ok {
		t.Error("hero skill should be registered")
	}
	if _, ok := r.SkillByID("aura"); !ok {
		t.Error("hero passive should be registered")
	}
}

func TestRegistry_SharedSkill(t *testing.T) {
	r := NewRegistry()
	shared := SkillSpec{Info: Info{ID: "dash", Name: "Dash"}}

	if err := r.RegisterHero(HeroSpec{Info: Info{ID: "a", Name: "A"}, Skills: []SkillSpec{shared}}); err != nil {
		t.Fatal(err)
	}
	// Two heroes carrying the same skill must both register cleanly.
	if err := r.RegisterHero(HeroSpec{Info: Info{ID: "b", Name: "B"}, Skills: []SkillSpec{shared}}); err != nil {
		t.Fatal(err)
	}

	if got := len(r.EnabledSkills()); got != 1 {
		t.Errorf("len(EnabledSkills()) = %d, want 1", got)
	}
}

func TestRegistry_EnabledHeroes_Sorted(t *testing.T) {
	r := NewRegistry()

	for _, spec := range []HeroSpec{
		{Info: Info{ID: "c", Name: "Cleric"}},
		{Info: Info{ID: "a", Name: "Archer"}},
		{Info: Info{ID: "hidden", Name: "Hidden", Disabled: true}},
		{Info: Info{ID: "b", Name: "Berserk"}},
	} {
		if err := r.RegisterHero(spec); err != nil {
			t.Fatal(err)
		}
	}

	got := r.EnabledHeroes()
	want := []string{"Archer", "Berserk", "Cleric"}
	if len(got) != len(want) {
		t.Fatalf("len(EnabledHeroes()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("EnabledHeroes()[%d].Name = %q, want %q", i, got[i].Name, want[i])
		}
	}
}

func TestRegistry_EnabledHeroes_StableTies(t *testing.T) {
	r := NewRegistry()

	// Same display name: registration order breaks the tie.
	for _, id := range []string{"first", "second", "third"} {
		if err := r.RegisterHero(HeroSpec{Info: Info{ID: id, Name: "Twin"}}); err != nil {
			t.Fatal(err)
		}
	}

	got := r.EnabledHeroes()
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("EnabledHeroes()[%d].ID = %q, want %q", i, got[i].ID, want[i])
		}
	}
}

func TestRegistry_RegisterItem(t *testing.T) {
	r := NewRegistry()

	if err := r.RegisterItem(ItemSpec{Info: Info{ID: "boots", Name: "Boots"}}); err != nil {
		t.Fatal(err)
	}
	if err := r.RegisterItem(ItemSpec{Info: Info{ID: "boots", Name: "Boots"}}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("duplicate RegisterItem error = %v; want %v", err, ErrInvalidArgument)
	}

	if _, ok := r.ItemByID("boots"); !ok {
		t.Error("ItemByID(boots) not found")
	}
	if _, ok := r.ItemByID("missing"); ok {
		t.Error("ItemByID(missing) found, want miss")
	}
}

func TestRegistry_HeroByID_Normalized(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterHero(HeroSpec{Info: Info{ID: "h", Name: "H"}}); err != nil {
		t.Fatal(err)
	}

	spec, ok := r.HeroByID("h")
	if !ok {
		t.Fatal("HeroByID(h) not found")
	}
	// Registration stores the normalized spec.
	if spec.MaxLevel != DefaultHeroMaxLevel {
		t.Errorf("stored MaxLevel = %d, want %d", spec.MaxLevel, DefaultHeroMaxLevel)
	}
}
