// Package config holds the library-wide feature toggles for rasterline.
// It follows agg_go's internal/config package: a small value type plus
// package-level Get/Set accessors, rather than environment variables or a
// file format, since every toggle here only ever changes an internal
// arithmetic path, never the public API surface.
package config

// Options selects between alternative internal implementations of the same
// observable behavior. Every field here is a performance/portability knob;
// flipping one never changes the pixel sequence a cursor yields.
type Options struct {
	// Enable64BitOctant routes geom.OffsetAt/ErrorAt/ReverseErrorAt's widened
	// products -- the Kuzmin entry/exit/seed-error formulae, consulted by
	// clip.LineOctant (including its minor-axis bisection) and by the
	// unclipped octant cursor when it locates its last pixel -- through a
	// math/big intermediate for 64-bit-wide and pointer-width coordinate
	// types, instead of the plain int64 fast path. Narrower coordinate types
	// are exact without it: geom switches them to math/big on its own once a
	// major-axis delta reaches 2^31. For 64-bit inputs the fast path is exact
	// away from the extremes of the type's range; this toggle buys
	// full-domain correctness for those three formulae at the cost of
	// allocating during clipping. It does not affect clip.LineOctant's own
	// bounding-box and offset-clamp arithmetic, which is width-safe
	// unconditionally (it compares and subtracts through T's native
	// ordering and geom.WidenDiff, never through a narrowing int64 cast).
	// Off by default, matching the rationale in the spec this library
	// implements: avoid the cost on callers who never approach the extreme
	// end of a 64-bit coordinate.
	Enable64BitOctant bool

	// EnableFastPaths lets line.New build axis-aligned and diagonal segments
	// with their dedicated raster cursors. Purely a speed optimization;
	// disabling it makes line.New build every non-empty segment through the
	// general midpoint derivation (raster.NewUniform), which is useful when
	// cross-checking the specialized cursors against the general one in
	// tests. The clip package does not read it.
	EnableFastPaths bool
}

// Default returns the library's default Options.
func Default() Options {
	return Options{Enable64BitOctant: false, EnableFastPaths: true}
}

var current = Default()

// Get returns the current process-wide Options.
func Get() Options {
	return current
}

// Set replaces the process-wide Options. Callers should set this once during
// startup; rasterline does not synchronize concurrent Get/Set calls, matching
// the single-threaded model the library is designed for.
func Set(o Options) {
	current = o
}
