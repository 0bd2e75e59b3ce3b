// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ocr

// Rect is a bounding box in normalized page coordinates.
// All components are expected to lie in [0,1].
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	x1 := min(r.X, o.X)
	y1 := min(r.Y, o.Y)
	x2 := max(r.X+r.W, o.X+o.W)
	y2 := max(r.Y+r.H, o.Y+o.H)
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Near reports whether the centers of r and o are within dist of each
// other on both axes. Used for label-adjacency checks.
func (r Rect) Near(o Rect, dist float64) bool {
	dx := r.CenterX() - o.CenterX()
	dy := r.CenterY() - o.CenterY()
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= dist && dy <= dist
}

// Token is a single OCR-recognized text span with its reported
// confidence and normalized bounding box. Tokens are produced by an
// external OCR service and are immutable once created.
type Token struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	BBox       Rect    `json:"bbox"`
}
