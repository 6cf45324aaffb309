package flappy

// Clock counts simulation ticks. It starts at zero, advances once per frame
// and is never reset, not even between runs.
type Clock struct {
	tick uint64
}

// Now returns the current tick.
func (c Clock) Now() uint64 {
	return c.tick
}

// Advance moves to the next tick.
func (c *Clock) Advance() {
	c.tick++
}

// Every reports whether the current tick is a multiple of n.
// Periods come from validated config, so n is always positive.
func (c Clock) Every(n int) bool {
	return c.tick%uint64(n) == 0
}
