package effect

import (
	"github.com/MrMalina/Hero-Wars/internal/model"
)

// BaseVelocityProp is the engine property carrying impulse movement.
const BaseVelocityProp = "CBasePlayer.localdata.m_vecBaseVelocity"

// Push adds an impulse to the player's base velocity.
func Push(p model.Player, impulse model.Vector3) {
	cur, _ := p.Vector(BaseVelocityProp)
	p.SetVector(BaseVelocityProp, cur.Add(impulse))
}

// PushTo pushes the player toward a point with the given force.
// A point on top of the player is a no-op: direction is undefined.
func PushTo(p model.Player, point model.Vector3, force float64) {
	dir := point.Sub(p.Position())
	length := dir.Length()
	if length == 0 {
		return
	}
	Push(p, dir.Scale(force/length))
}

// BoostVelocity multiplies the player's base velocity componentwise.
func BoostVelocity(p model.Player, xMul, yMul, zMul float64) {
	cur, _ := p.Vector(BaseVelocityProp)
	p.SetVector(BaseVelocityProp, model.Vector3{
		X: cur.X * xMul,
		Y: cur.Y * yMul,
		Z: cur.Z * zMul,
	})
}
