package model

import "testing"

func TestNewItem_Defaults(t *testing.T) {
	it := NewItem(ItemSpec{Info: Info{ID: "i", Name: "I"}})

	if it.ItemSpec().Cost != DefaultItemCost {
		t.Errorf("ItemSpec().Cost = %d, want %d", it.ItemSpec().Cost, DefaultItemCost)
	}
	if it.Permanent() {
		t.Error("items are droppable by default")
	}
}

func TestItem_SellValue(t *testing.T) {
	tests := []struct {
		cost int32
		want int32
	}{
		{10, 5},
		{15, 7}, // floor(7.5)
		{1, 0},  // floor(0.5)
	}

	for _, tt := range tests {
		it := NewItem(ItemSpec{Info: Info{ID: "i", Name: "I", Cost: tt.cost}})
		if got := it.SellValue(); got != tt.want {
			t.Errorf("SellValue() with cost %d = %d, want %d", tt.cost, got, tt.want)
		}
	}
}

func TestItem_SellValue_Multiplier(t *testing.T) {
	SetSellValueMultiplier(0.75)
	defer SetSellValueMultiplier(defaultSellMultiplier)

	it := NewItem(ItemSpec{Info: Info{ID: "i", Name: "I", Cost: 100}})
	if got := it.SellValue(); got != 75 {
		t.Errorf("SellValue() with 0.75 multiplier = %d, want 75", got)
	}
}

func TestItem_DispatchesAsSkill(t *testing.T) {
	var fired bool
	it := NewItem(ItemSpec{
		Info: Info{ID: "i", Name: "I"},
		Handlers: map[string]Handler{
			EventKill: func(s *Skill, ev *GameEvent) { fired = true },
		},
	})

	it.HandleEvent(EventKill, &GameEvent{})
	if !fired {
		t.Error("item handler should fire through HandleEvent")
	}
}
