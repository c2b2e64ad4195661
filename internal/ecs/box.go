package ecs

import "github.com/go-gl/mathgl/mgl64"

// Box is an axis-aligned bounding rectangle
type Box struct {
	Center   mgl64.Vec2
	HalfSize mgl64.Vec2
}

// BoxFromTransform derives the hitbox of a transform.
// Position is the box center and Scale its full size; rotation does not exist.
func BoxFromTransform(t Transform) Box {
	return Box{
		Center:   t.Position,
		HalfSize: t.Scale.Mul(0.5),
	}
}

// Min returns the bottom-left corner
func (b Box) Min() mgl64.Vec2 { return b.Center.Sub(b.HalfSize) }

// Max returns the top-right corner
func (b Box) Max() mgl64.Vec2 { return b.Center.Add(b.HalfSize) }

// Size returns the full width and height
func (b Box) Size() mgl64.Vec2 { return b.HalfSize.Mul(2) }

// Intersects reports whether two boxes overlap. Touching edges count.
func (b Box) Intersects(o Box) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := o.Min(), o.Max()
	return bMin[0] <= oMax[0] && bMax[0] >= oMin[0] &&
		bMin[1] <= oMax[1] && bMax[1] >= oMin[1]
}

// ClosestPoint returns the point inside the box nearest to p
func (b Box) ClosestPoint(p mgl64.Vec2) mgl64.Vec2 {
	lo, hi := b.Min(), b.Max()
	return mgl64.Vec2{
		mgl64.Clamp(p[0], lo[0], hi[0]),
		mgl64.Clamp(p[1], lo[1], hi[1]),
	}
}
