package glimpse

import "golang.org/x/exp/constraints"

// Size is the extent of a window, framebuffer or surface in pixels.
type Size[T constraints.Integer] struct {
	Width  T
	Height T
}

func SizeOf[T constraints.Integer](width, height T) Size[T] {
	return Size[T]{Width: width, Height: height}
}

// ConvertSize converts between integer representations. Negative values
// are mapped to zero, as reported by some platforms for minimized windows.
func ConvertSize[U, T constraints.Integer](s Size[T]) Size[U] {
	return Size[U]{
		Width:  U(max(s.Width, 0)),
		Height: U(max(s.Height, 0)),
	}
}

// Empty returns true if either dimension is zero.
func (s Size[T]) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Clamp limits both dimensions to the range [lo, hi].
func (s Size[T]) Clamp(lo, hi T) Size[T] {
	return Size[T]{
		Width:  min(max(s.Width, lo), hi),
		Height: min(max(s.Height, lo), hi),
	}
}

func (s Size[T]) XY() (T, T) {
	return s.Width, s.Height
}
