// Package model defines the geometric values shared by the recognition
// fusion pipeline.
//
// All types are immutable values in image pixel coordinates with the origin
// at the top-left corner and Y growing downward, matching the coordinate
// convention of OCR engine output.
//
// # Rectangles
//
// A [Rectangle] is one recognized region: its bounds plus the text the
// source read inside it. Derived properties (center, width, height) are
// exposed as methods:
//
//	r := model.NewRectangle(10, 20, 60, 40, "hello")
//	r.CenterY() // 30
//
// [Rectangle.Less] orders rectangles for left-to-right reading within a
// line.
//
// # Regions of interest
//
// An [ROI] bounds the image area where text for one logical field is
// expected. [ROI.Exceeds] is the predicate the boundary reconciliation step
// is built on: it reports whether a rectangle sticks out of the region.
//
// # Candidates
//
// A [Candidate] is everything a single recognition source reported for one
// ROI. The fusion pipeline takes one Candidate per source.
package model
