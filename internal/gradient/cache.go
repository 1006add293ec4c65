package gradient

// LowDepthCache holds the once-computed gf-low-depth anchor for a single
// decompression obligation. It mirrors the cache/invalidate shape used
// elsewhere in this codebase for values that are expensive to recompute
// but only valid for the lifetime of one episode — here, one continuous
// decompression obligation rather than one TTL window.
type LowDepthCache struct {
	depthM float64
	valid  bool
}

// Get returns the cached depth and whether it is currently valid.
func (c *LowDepthCache) Get() (float64, bool) {
	return c.depthM, c.valid
}

// Set stores a freshly computed gf-low-depth.
func (c *LowDepthCache) Set(depthM float64) {
	c.depthM = depthM
	c.valid = true
}

// Invalidate clears the cache. Called whenever the dive transitions from
// "in deco" to "not in deco" (spec.md §9's recommended resolution of the
// cache-lifecycle open question).
func (c *LowDepthCache) Invalidate() {
	c.valid = false
}
