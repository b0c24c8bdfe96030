package color

import "math"

// SRGBToLinear decodes one sRGB component.
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB encodes one linear component.
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

// ToLinear decodes every component of c.
func ToLinear(c RGB) RGB {
	return RGB{R: SRGBToLinear(c.R), G: SRGBToLinear(c.G), B: SRGBToLinear(c.B)}
}

// ToSRGB encodes every component of c.
func ToSRGB(c RGB) RGB {
	return RGB{R: LinearToSRGB(c.R), G: LinearToSRGB(c.G), B: LinearToSRGB(c.B)}
}
