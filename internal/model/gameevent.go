package model

// Gameplay event names routed through hero dispatch. A skill or item
// declares a handler per event name it cares about; names without a
// handler are ignored.
const (
	EventSpawn    = "on_spawn"
	EventDeath    = "on_death"
	EventKill     = "on_kill"
	EventAssist   = "on_assist"
	EventAttack   = "on_attack"
	EventDefend   = "on_defend"
	EventUltimate = "on_ultimate"
)

// GameEvent carries the payload of one gameplay event tick. Player is
// the owner of the hero being dispatched; Attacker and Victim are set
// for combat events and nil otherwise.
type GameEvent struct {
	Player   Player
	Attacker Player
	Victim   Player

	Damage   int32
	Weapon   string
	Headshot bool
}

// Handler is one skill/item reaction to a named gameplay event.
// The receiving skill is passed in so the handler can read its level.
type Handler func(s *Skill, ev *GameEvent)
