package arch

import "fmt"

// BitRange is a half-open span of pin indices [Lo, Hi) on a port.
type BitRange struct {
	Lo int
	Hi int
}

// FullRange returns the range covering every pin of a port of the given width.
func FullRange(width int) BitRange {
	return BitRange{Lo: 0, Hi: width}
}

// Width returns the number of pins the range covers.
func (r BitRange) Width() int {
	return r.Hi - r.Lo
}

// Valid reports whether the range covers at least one pin and starts at a
// non-negative index.
func (r BitRange) Valid() bool {
	return r.Lo >= 0 && r.Hi > r.Lo
}

// FitsWidth reports whether the range is fully contained within a port of
// the given width.
func (r BitRange) FitsWidth(width int) bool {
	return r.Valid() && r.Hi <= width
}

// String formats the range as "lo..hi" for log output.
func (r BitRange) String() string {
	return fmt.Sprintf("%d..%d", r.Lo, r.Hi)
}
