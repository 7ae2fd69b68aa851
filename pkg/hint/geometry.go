// ABOUTME: Plain geometry types shared by markers and the overlap resolver
// ABOUTME: Rect edges are in unzoomed page units; Shape is supplied by the geometry provider

package hint

// Point is a location in element- or frame-local coordinates.
type Point struct {
	X float64
	Y float64
}

// Offset translates frame-local coordinates into top-frame coordinates.
type Offset struct {
	Left float64
	Top  float64
}

// Rect is an axis-aligned rectangle described by its four edges.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Width returns Right - Left.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns Bottom - Top.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Contains reports whether o lies entirely inside r (edges inclusive).
func (r Rect) Contains(o Rect) bool {
	return o.Left >= r.Left && o.Top >= r.Top && o.Right <= r.Right && o.Bottom <= r.Bottom
}

// NonCoveredPoint is the anchor on an element that is not hidden by other
// content, together with the offset of the frame it was measured in.
type NonCoveredPoint struct {
	X      float64
	Y      float64
	Offset Offset
}

// Shape is the immutable geometry descriptor of a candidate element.
type Shape struct {
	Area            float64
	NonCoveredPoint NonCoveredPoint
}
