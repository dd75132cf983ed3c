package model

// Rectangle represents a rectangular region recognized on a scanned form.
// Coordinates are image pixel coordinates: the origin is the top-left corner
// of the image and Y grows downward.
type Rectangle struct {
	StartX float64 // Left edge
	StartY float64 // Top edge
	EndX   float64 // Right edge
	EndY   float64 // Bottom edge

	// Content is the text recognized inside the region.
	Content string
}

// NewRectangle creates a rectangle from its bounds and recognized content.
func NewRectangle(startX, startY, endX, endY float64, content string) Rectangle {
	return Rectangle{
		StartX:  startX,
		StartY:  startY,
		EndX:    endX,
		EndY:    endY,
		Content: content,
	}
}

// Width returns the horizontal extent of the rectangle.
func (r Rectangle) Width() float64 {
	return r.EndX - r.StartX
}

// Height returns the vertical extent of the rectangle.
func (r Rectangle) Height() float64 {
	return r.EndY - r.StartY
}

// CenterX returns the X coordinate of the rectangle's center.
func (r Rectangle) CenterX() float64 {
	return (r.StartX + r.EndX) / 2
}

// CenterY returns the Y coordinate of the rectangle's center.
func (r Rectangle) CenterY() float64 {
	return (r.StartY + r.EndY) / 2
}

// Less reports whether r precedes other in reading order. Rectangles are
// ordered by horizontal center, with vertical center as a tie-break, which
// gives a total order consistent with left-to-right reading within a line.
func (r Rectangle) Less(other Rectangle) bool {
	if r.CenterX() != other.CenterX() {
		return r.CenterX() < other.CenterX()
	}
	return r.CenterY() < other.CenterY()
}

// ROI is a region of interest: the bounded image area within which text for
// one logical field is expected. Coordinates follow the same convention as
// Rectangle (top-left origin, Y downward).
type ROI struct {
	StartX float64
	StartY float64
	EndX   float64
	EndY   float64
}

// NewROI creates a region of interest from its bounds.
func NewROI(startX, startY, endX, endY float64) ROI {
	return ROI{StartX: startX, StartY: startY, EndX: endX, EndY: endY}
}

// Width returns the horizontal extent of the region.
func (roi ROI) Width() float64 {
	return roi.EndX - roi.StartX
}

// Height returns the vertical extent of the region.
func (roi ROI) Height() float64 {
	return roi.EndY - roi.StartY
}

// Contains reports whether the rectangle lies entirely inside the region.
func (roi ROI) Contains(r Rectangle) bool {
	return r.StartX >= roi.StartX && r.EndX <= roi.EndX &&
		r.StartY >= roi.StartY && r.EndY <= roi.EndY
}

// Intersects reports whether any part of the rectangle overlaps the region.
func (roi ROI) Intersects(r Rectangle) bool {
	return !(r.EndX < roi.StartX || r.StartX > roi.EndX ||
		r.EndY < roi.StartY || r.StartY > roi.EndY)
}

// Exceeds reports whether any part of the rectangle extends outside the
// region's bounds. A rectangle can simultaneously intersect the region and
// exceed it; recognition sources frequently disagree about such rectangles,
// which is what boundary reconciliation resolves.
func (roi ROI) Exceeds(r Rectangle) bool {
	return !roi.Contains(r)
}

// Candidate is the set of rectangles one recognition source reports for one
// region of interest, in the order the source emitted them.
type Candidate []Rectangle
