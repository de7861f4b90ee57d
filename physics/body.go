// Package physics resolves motor displacement against a resolv collision space.
//
// The space is a side view: world x maps to screen x and world y (up) maps to
// screen -y, scaled by PixelsPerUnit. World z has no collision and is tracked
// as depth only.
package physics

import (
	"math"

	"github.com/automoto/playermotor/motor"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// SolidTag marks objects that block bodies.
const SolidTag = "solid"

// Body is a motor.Resolver backed by a resolv object.
type Body struct {
	Object        *resolv.Object
	PixelsPerUnit float64

	depth    float64
	grounded bool
}

var _ motor.Resolver = (*Body)(nil)

// NewBody creates a w by h pixel box at (x, y) and adds it to space.
func NewBody(space *resolv.Space, x, y, w, h, pixelsPerUnit float64, tags ...string) *Body {
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	if space != nil {
		space.Add(obj)
	}
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = 1
	}
	return &Body{Object: obj, PixelsPerUnit: pixelsPerUnit}
}

// IsGrounded reports whether the last resolved vertical move ended on a solid.
func (b *Body) IsGrounded() bool {
	return b.grounded
}

// Move resolves delta, in world units, against the solids in the space.
func (b *Body) Move(delta mgl64.Vec3) {
	b.depth += delta.Z()

	dx := delta.X() * b.PixelsPerUnit
	dy := -delta.Y() * b.PixelsPerUnit

	if dx != 0 {
		b.moveHorizontal(dx)
	}
	if dy != 0 {
		b.moveVertical(dy)
	}
	b.Object.Update()
}

// Position returns the body's feet in world units.
func (b *Body) Position() mgl64.Vec3 {
	return mgl64.Vec3{
		(b.Object.X + b.Object.W/2) / b.PixelsPerUnit,
		-b.Object.Bottom() / b.PixelsPerUnit,
		b.depth,
	}
}

// Teleport places the body's top-left corner at (x, y) pixels.
func (b *Body) Teleport(x, y float64) {
	b.Object.X = x
	b.Object.Y = y
	b.grounded = false
	b.Object.Update()
}

func (b *Body) moveHorizontal(dx float64) {
	if check := b.Object.Check(dx, 0, SolidTag); check != nil {
		for _, solid := range check.ObjectsByTags(SolidTag) {
			if !b.overlapsVertically(solid) {
				continue
			}
			// Keep the nearest contact in the direction of travel
			if c := check.ContactWithObject(solid).X(); (dx > 0 && c >= 0 && c < dx) || (dx < 0 && c <= 0 && c > dx) {
				dx = c
			}
		}
	}
	b.Object.X += dx

	// Walking off a ledge drops contact without a vertical move
	if b.grounded && !b.supported() {
		b.grounded = false
	}
}

// supported reports whether a solid touches the body's feet.
func (b *Body) supported() bool {
	check := b.Object.Check(0, 1, SolidTag)
	if check == nil {
		return false
	}
	for _, solid := range check.ObjectsByTags(SolidTag) {
		if b.overlapsHorizontally(solid) && math.Abs(solid.Y-b.Object.Bottom()) < 0.5 {
			return true
		}
	}
	return false
}

func (b *Body) moveVertical(dy float64) {
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	landed := false
	reach := checkDistance
	if check := b.Object.Check(0, checkDistance, SolidTag); check != nil {
		for _, solid := range check.ObjectsByTags(SolidTag) {
			if !b.overlapsHorizontally(solid) {
				continue
			}
			c := check.ContactWithObject(solid).Y()
			switch {
			case dy > 0 && c >= 0 && c <= reach:
				reach = c
				landed = true
			case dy < 0 && c <= 0 && c > dy:
				dy = c
			}
		}
	}

	// Only land on a solid when moving down
	if landed {
		dy = reach
	}
	b.grounded = landed
	b.Object.Y += dy
}

func (b *Body) overlapsVertically(solid *resolv.Object) bool {
	return b.Object.Bottom() > solid.Y && b.Object.Y < solid.Y+solid.H
}

func (b *Body) overlapsHorizontally(solid *resolv.Object) bool {
	return b.Object.X+b.Object.W > solid.X && b.Object.X < solid.X+solid.W
}
