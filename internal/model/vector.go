package model

import "math"

// Vector3 представляет точку или направление в мире движка.
// Value type, передаётся по значению.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Add returns v + other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns v - other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Scale returns v multiplied by factor.
func (v Vector3) Scale(factor float64) Vector3 {
	return Vector3{X: v.X * factor, Y: v.Y * factor, Z: v.Z * factor}
}

// DistanceSquared возвращает квадрат расстояния до другой точки (без sqrt
// для hot path — сравнения и сортировки).
func (v Vector3) DistanceSquared(other Vector3) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

// Distance returns the Euclidean distance to another point.
func (v Vector3) Distance(other Vector3) float64 {
	return math.Sqrt(v.DistanceSquared(other))
}

// Length returns the vector's magnitude.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}
