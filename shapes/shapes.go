// Package shapes holds simple geometric value types.
package shapes

// Shape is anything with a computable area.
type Shape interface {
	Area() float64
}

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle creates a rectangle with the given dimensions.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns the rectangle area.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}
