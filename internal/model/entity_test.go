package model

import (
	"errors"
	"testing"
)

func TestProgression_SetLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   int32
		wantErr error
	}{
		{"negative", -1, ErrInvalidArgument},
		{"zero", 0, nil},
		{"in range", 5, nil},
		{"at max", 10, nil},
		{"over max", 11, ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Progression{maxLevel: 10}
			err := p.SetLevel(tt.level)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SetLevel(%d) error = %v; want %v", tt.level, err, tt.wantErr)
				}
				if p.Level() != 0 {
					t.Errorf("Level() after failed SetLevel = %d, want 0", p.Level())
				}
				return
			}
			if err != nil {
				t.Fatalf("SetLevel(%d) error = %v", tt.level, err)
			}
			if p.Level() != tt.level {
				t.Errorf("Level() = %d, want %d", p.Level(), tt.level)
			}
		})
	}
}

func TestNewProgression(t *testing.T) {
	p, err := NewProgression(3, 10)
	if err != nil {
		t.Fatal(err)
	}
	if p.Level() != 3 {
		t.Errorf("Level() = %d, want 3", p.Level())
	}
	if p.MaxLevel() != 10 {
		t.Errorf("MaxLevel() = %d, want 10", p.MaxLevel())
	}

	if _, err := NewProgression(11, 10); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewProgression(11, 10) error = %v; want %v", err, ErrInvalidArgument)
	}
}

func TestInfo_Allows(t *testing.T) {
	open := Info{ID: "open"}
	if !open.Allows("STEAM_0:1:111") {
		t.Error("empty AllowedUsers should allow everyone")
	}

	restricted := Info{ID: "vip", AllowedUsers: []string{"STEAM_0:1:111", "STEAM_0:1:222"}}
	if !restricted.Allows("STEAM_0:1:222") {
		t.Error("listed steam ID should be allowed")
	}
	if restricted.Allows("STEAM_0:1:333") {
		t.Error("unlisted steam ID should be rejected")
	}
}
