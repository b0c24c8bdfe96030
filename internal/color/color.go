// Package color converts colors between sRGB and linear light for
// gradient interpolation.
package color

// Space is a color space.
type Space uint8

const (
	// SRGB is the standard gamma-encoded space of image pixels.
	SRGB Space = iota
	// Linear is linear light, where mixing is physically correct.
	Linear
)

// RGB is a color with components in [0,1] in some Space. Alpha is kept
// separately by callers and is always linear.
type RGB struct {
	R, G, B float64
}

// Lerp interpolates a and b, both sRGB, at t. In the Linear space the
// mix happens in linear light and the result is encoded back to sRGB.
func Lerp(a, b RGB, t float64, space Space) RGB {
	if space == Linear {
		a, b = ToLinear(a), ToLinear(b)
	}
	out := RGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
	if space == Linear {
		out = ToSRGB(out)
	}
	return out
}
