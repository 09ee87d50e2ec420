package model

// Engine team IDs, matching the host server's team numbering.
const (
	TeamUnassigned int32 = 0
	TeamSpectator  int32 = 1
	TeamT          int32 = 2
	TeamCT         int32 = 3
)

// Player is the narrow contract the progression core needs from the live
// game-server player object. The host integration supplies the concrete
// implementation; the core only reads and writes through this interface
// and never assumes anything about the object behind it.
//
// Named properties (Float/Vector/Flag) map onto engine entity properties
// such as "m_flLaggedMovementValue"; Invoke maps onto engine-level entity
// inputs such as "Ignite".
type Player interface {
	// Index возвращает стабильный идентификатор игрока на сервере.
	Index() int32
	Name() string
	SteamID() string

	Alive() bool
	Team() int32
	Position() Vector3

	Float(prop string) (float64, bool)
	SetFloat(prop string, value float64)
	Vector(prop string) (Vector3, bool)
	SetVector(prop string, value Vector3)
	Flag(prop string) bool
	SetFlag(prop string, on bool)

	// Invoke triggers an engine action on the player entity.
	// Returns an error if the engine rejects the action; the core treats
	// failures against removed players as no-ops.
	Invoke(action string, args ...any) error
}
