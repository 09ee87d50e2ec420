package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrMalina/Hero-Wars/internal/model"
	"github.com/MrMalina/Hero-Wars/internal/testutil"
)

func TestPush(t *testing.T) {
	p := testutil.NewFakePlayer(1, "Rocket")
	p.SetVector(BaseVelocityProp, model.Vector3{X: 10})

	Push(p, model.Vector3{X: 5, Z: 100})

	got, _ := p.Vector(BaseVelocityProp)
	assert.Equal(t, model.Vector3{X: 15, Z: 100}, got)
}

func TestPushTo(t *testing.T) {
	p := testutil.NewFakePlayer(2, "Rocket")
	p.MoveTo(model.Vector3{X: 100})

	// Цель строго по -X на расстоянии 100: импульс ровно force в эту сторону.
	PushTo(p, model.Vector3{}, 300)

	got, _ := p.Vector(BaseVelocityProp)
	assert.InDelta(t, -300, got.X, 1e-9)
	assert.InDelta(t, 0, got.Y, 1e-9)
	assert.InDelta(t, 0, got.Z, 1e-9)
}

func TestPushTo_SamePoint(t *testing.T) {
	p := testutil.NewFakePlayer(3, "Rocket")
	p.MoveTo(model.Vector3{X: 1, Y: 2, Z: 3})

	PushTo(p, model.Vector3{X: 1, Y: 2, Z: 3}, 300)

	_, ok := p.Vector(BaseVelocityProp)
	assert.False(t, ok, "push toward own position must be a no-op")
}

func TestBoostVelocity(t *testing.T) {
	p := testutil.NewFakePlayer(4, "Rocket")
	p.SetVector(BaseVelocityProp, model.Vector3{X: 10, Y: -20, Z: 5})

	BoostVelocity(p, 2, 0.5, 1)

	got, _ := p.Vector(BaseVelocityProp)
	assert.Equal(t, model.Vector3{X: 20, Y: -10, Z: 5}, got)
}
