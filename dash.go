package tkpath

import "math"

// Dash defines a dash pattern for stroking: alternating dash and gap
// lengths, in user units.
type Dash struct {
	// Array holds dash/gap lengths. An odd-length array is repeated once
	// to make the pattern even, so [5] means [5, 5].
	Array []float64

	// Offset is the distance into the pattern at which the stroke starts.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are taken as absolute values. Returns nil if no length
// is positive.
func NewDash(lengths ...float64) *Dash {
	positive := false
	normalized := make([]float64, len(lengths))
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
		if l > 0 {
			positive = true
		}
	}
	if !positive {
		return nil
	}
	return &Dash{Array: normalized}
}

// PatternLength returns the length of one full cycle.
func (d *Dash) PatternLength() float64 {
	var total float64
	for _, l := range d.Effective() {
		total += l
	}
	return total
}

// IsDashed reports whether d describes a broken line.
func (d *Dash) IsDashed() bool {
	return d != nil && d.PatternLength() > 0
}

// Clone returns a deep copy of d.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: append([]float64(nil), d.Array...), Offset: d.Offset}
}

// Scale returns d with every length multiplied by factor.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}
	out := &Dash{Array: make([]float64, len(d.Array)), Offset: d.Offset * factor}
	for i, l := range d.Array {
		out.Array[i] = l * factor
	}
	return out
}

// Effective returns the even-length pattern.
func (d *Dash) Effective() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	return append(append(make([]float64, 0, 2*len(d.Array)), d.Array...), d.Array...)
}

// NormalizedOffset returns Offset wrapped into [0, PatternLength).
func (d *Dash) NormalizedOffset() float64 {
	if d == nil {
		return 0
	}
	l := d.PatternLength()
	if l <= 0 {
		return 0
	}
	off := math.Mod(d.Offset, l)
	if off < 0 {
		off += l
	}
	return off
}
