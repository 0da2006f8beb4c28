package game

// Body is the controllable square. Y is the distance of its lower edge from
// the floor and grows upward; X is its fixed horizontal centre.
type Body struct {
	X    float64 // Horizontal centre
	Y    float64 // Lower edge, >= 0
	VY   float64 // Vertical velocity, positive = up
	Size float64 // Side length
}

// Left returns the x-coordinate of the left edge.
func (b Body) Left() float64 {
	return b.X - b.Size/2
}

// Right returns the x-coordinate of the right edge.
func (b Body) Right() float64 {
	return b.X + b.Size/2
}

// Top returns the y-coordinate of the upper edge.
func (b Body) Top() float64 {
	return b.Y + b.Size
}

// Grounded reports whether the body rests on the floor.
func (b Body) Grounded() bool {
	return b.Y <= 0
}

// Integrate advances the body by one tick: gravity is applied to the
// velocity first, then the velocity to the position. The position is
// clamped at the floor; ending the session is left to collision checks.
func (b *Body) Integrate(gravity float64) {
	b.VY -= gravity
	b.Y += b.VY
	if b.Y < 0 {
		b.Y = 0
	}
}

// Jump replaces the velocity with the impulse, whatever its current sign.
func (b *Body) Jump(impulse float64) {
	b.VY = impulse
}
