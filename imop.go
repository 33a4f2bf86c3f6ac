package trimosaic

import (
	"golang.org/x/exp/constraints"
)

// Min returns the smallest value between the provided numbers.
func Min[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v < acc {
			acc = v
		}
	}
	return acc
}

// Max returns the biggest value between the provided numbers.
func Max[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v > acc {
			acc = v
		}
	}
	return acc
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return Max(lo, Min(v, hi))
}

// luma converts an RGB triple to its gray level using the Rec. 601 weights.
func luma(r, g, b uint8) uint8 {
	lum := float32(r)*0.299 + float32(g)*0.587 + float32(b)*0.114
	return uint8(Clamp(lum+0.5, 0, 255))
}
