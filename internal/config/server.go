package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Award reasons, matching the yaml keys of the award tables. The host
// integration passes these to the session when a scored event happens.
const (
	ReasonKill        = "kill"
	ReasonHeadshot    = "headshot"
	ReasonAssist      = "assist"
	ReasonWeaponKnife = "weapon_knife"

	ReasonRoundWin  = "round_win"
	ReasonRoundLose = "round_lose"

	ReasonBombPlant       = "bomb_plant"
	ReasonBombPlantTeam   = "bomb_plant_team"
	ReasonBombExplode     = "bomb_explode"
	ReasonBombExplodeTeam = "bomb_explode_team"
	ReasonBombDefuse      = "bomb_defuse"
	ReasonBombDefuseTeam  = "bomb_defuse_team"

	ReasonHostagePickUp     = "hostage_pick_up"
	ReasonHostagePickUpTeam = "hostage_pick_up_team"
	ReasonHostageRescue     = "hostage_rescue"
	ReasonHostageRescueTeam = "hostage_rescue_team"
)

// ExpValues holds the experience granted per objective.
type ExpValues struct {
	// Kill values
	Kill        int64 `yaml:"kill"`
	Headshot    int64 `yaml:"headshot"`
	Assist      int64 `yaml:"assist"`
	WeaponKnife int64 `yaml:"weapon_knife"`

	// Round values
	RoundWin  int64 `yaml:"round_win"`
	RoundLose int64 `yaml:"round_lose"`

	// Bomb values
	BombPlant       int64 `yaml:"bomb_plant"`
	BombPlantTeam   int64 `yaml:"bomb_plant_team"`
	BombExplode     int64 `yaml:"bomb_explode"`
	BombExplodeTeam int64 `yaml:"bomb_explode_team"`
	BombDefuse      int64 `yaml:"bomb_defuse"`
	BombDefuseTeam  int64 `yaml:"bomb_defuse_team"`

	// Hostage values
	HostagePickUp     int64 `yaml:"hostage_pick_up"`
	HostagePickUpTeam int64 `yaml:"hostage_pick_up_team"`
	HostageRescue     int64 `yaml:"hostage_rescue"`
	HostageRescueTeam int64 `yaml:"hostage_rescue_team"`
}

// DefaultExpValues returns the shipped objective rewards.
func DefaultExpValues() ExpValues {
	return ExpValues{
		Kill:        30,
		Headshot:    15,
		Assist:      15,
		WeaponKnife: 30,

		RoundWin:  30,
		RoundLose: 15,

		BombPlant:       15,
		BombPlantTeam:   5,
		BombExplode:     25,
		BombExplodeTeam: 10,
		BombDefuse:      30,
		BombDefuseTeam:  15,

		HostagePickUp:     5,
		HostagePickUpTeam: 0,
		HostageRescue:     25,
		HostageRescueTeam: 10,
	}
}

// Value returns the exp award for the given reason.
// Unknown reasons award nothing.
func (v ExpValues) Value(reason string) (int64, bool) {
	switch reason {
	case ReasonKill:
		return v.Kill, true
	case ReasonHeadshot:
		return v.Headshot, true
	case ReasonAssist:
		return v.Assist, true
	case ReasonWeaponKnife:
		return v.WeaponKnife, true
	case ReasonRoundWin:
		return v.RoundWin, true
	case ReasonRoundLose:
		return v.RoundLose, true
	case ReasonBombPlant:
		return v.BombPlant, true
	case ReasonBombPlantTeam:
		return v.BombPlantTeam, true
	case ReasonBombExplode:
		return v.BombExplode, true
	case ReasonBombExplodeTeam:
		return v.BombExplodeTeam, true
	case ReasonBombDefuse:
		return v.BombDefuse, true
	case ReasonBombDefuseTeam:
		return v.BombDefuseTeam, true
	case ReasonHostagePickUp:
		return v.HostagePickUp, true
	case ReasonHostagePickUpTeam:
		return v.HostagePickUpTeam, true
	case ReasonHostageRescue:
		return v.HostageRescue, true
	case ReasonHostageRescueTeam:
		return v.HostageRescueTeam, true
	}
	return 0, false
}

// GoldValues holds the gold granted per objective.
type GoldValues struct {
	Kill      int32 `yaml:"kill"`
	Assist    int32 `yaml:"assist"`
	RoundWin  int32 `yaml:"round_win"`
	RoundLose int32 `yaml:"round_lose"`
}

// DefaultGoldValues returns the shipped gold rewards.
func DefaultGoldValues() GoldValues {
	return GoldValues{
		Kill:      2,
		Assist:    1,
		RoundWin:  3,
		RoundLose: 2,
	}
}

// Value returns the gold award for the given reason.
// Unknown reasons award nothing.
func (v GoldValues) Value(reason string) (int32, bool) {
	switch reason {
	case ReasonKill:
		return v.Kill, true
	case ReasonAssist:
		return v.Assist, true
	case ReasonRoundWin:
		return v.RoundWin, true
	case ReasonRoundLose:
		return v.RoundLose, true
	}
	return 0, false
}

// LevelCurve holds the linear required-exp curve: base + level×per_level.
type LevelCurve struct {
	Base     int64 `yaml:"base"`
	PerLevel int64 `yaml:"per_level"`
}

// Server holds all configuration for the Hero-Wars server.
type Server struct {
	// Logging: debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// Chat
	ChatCommandPrefix string `yaml:"chat_command_prefix"`
	ShowGoldMessages  bool   `yaml:"show_gold_messages"`

	// Gameplay loop
	TickInterval     Duration `yaml:"tick_interval"`
	AutosaveInterval Duration `yaml:"autosave_interval"` // 0 disables autosave

	// Progression
	LevelCurve LevelCurve `yaml:"level_curve"`
	ExpValues  ExpValues  `yaml:"exp_values"`
	GoldValues GoldValues `yaml:"gold_values"`

	// Heroes granted on a player's first connect
	StartingHeroes []string `yaml:"starting_heroes"`

	// Shop
	ItemSellValueMultiplier float64 `yaml:"item_sell_value_multiplier"`

	// Database
	Database DatabaseConfig `yaml:"database"`
}

// DefaultServer returns Server config with sensible defaults.
func DefaultServer() Server {
	return Server{
		LogLevel: "info",

		ChatCommandPrefix: "!",
		ShowGoldMessages:  true,

		TickInterval:     Duration(100 * time.Millisecond),
		AutosaveInterval: Duration(5 * time.Minute),

		LevelCurve: LevelCurve{Base: 100, PerLevel: 20},
		ExpValues:  DefaultExpValues(),
		GoldValues: DefaultGoldValues(),

		StartingHeroes: []string{"pyromancer"},

		ItemSellValueMultiplier: 0.5,

		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "herowars",
			Password: "herowars",
			DBName:   "herowars",
			SSLMode:  "disable",
		},
	}
}

// LoadServer loads server config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadServer(path string) (Server, error) {
	cfg := DefaultServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values that would break progression invariants.
func (c Server) Validate() error {
	// Required exp must stay positive for every level below the cap.
	if c.LevelCurve.Base <= 0 {
		return fmt.Errorf("level_curve.base must be positive, got %d", c.LevelCurve.Base)
	}
	if c.LevelCurve.PerLevel < 0 {
		return fmt.Errorf("level_curve.per_level must not be negative, got %d", c.LevelCurve.PerLevel)
	}
	if c.ItemSellValueMultiplier < 0 {
		return fmt.Errorf("item_sell_value_multiplier must not be negative, got %v", c.ItemSellValueMultiplier)
	}
	if c.TickInterval < 0 {
		return fmt.Errorf("tick_interval must not be negative, got %v", c.TickInterval)
	}
	if c.AutosaveInterval < 0 {
		return fmt.Errorf("autosave_interval must not be negative, got %v", c.AutosaveInterval)
	}
	return nil
}
