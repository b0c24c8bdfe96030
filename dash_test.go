package tkpath

import "testing"

func TestNewDash(t *testing.T) {
	tests := []struct {
		name    string
		lengths []float64
		wantNil bool
		want    []float64
	}{
		{"pair", []float64{5, 3}, false, []float64{5, 3}},
		{"negative taken absolute", []float64{-4, 2}, false, []float64{4, 2}},
		{"odd", []float64{5}, false, []float64{5}},
		{"all zero", []float64{0, 0}, true, nil},
		{"all negative", []float64{-1, -2}, true, nil},
		{"empty", nil, true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDash(tt.lengths...)
			if tt.wantNil {
				if d != nil {
					t.Fatalf("NewDash(%v) = %+v, want nil", tt.lengths, d)
				}
				return
			}
			if d == nil {
				t.Fatalf("NewDash(%v) = nil", tt.lengths)
			}
			if !equalFloats(d.Array, tt.want) {
				t.Errorf("Array = %v, want %v", d.Array, tt.want)
			}
		})
	}
}

func TestDashEffective(t *testing.T) {
	d := NewDash(5)
	if got := d.Effective(); !equalFloats(got, []float64{5, 5}) {
		t.Errorf("Effective() = %v, want [5 5]", got)
	}
	if got := d.PatternLength(); got != 10 {
		t.Errorf("PatternLength() = %v, want 10", got)
	}
	d = NewDash(1, 2, 3)
	if got := d.PatternLength(); got != 12 {
		t.Errorf("odd PatternLength() = %v, want 12", got)
	}
	var none *Dash
	if none.IsDashed() || none.Effective() != nil || none.NormalizedOffset() != 0 {
		t.Error("nil dash should be solid")
	}
}

func TestDashNormalizedOffset(t *testing.T) {
	tests := []struct {
		offset float64
		want   float64
	}{
		{0, 0},
		{3, 3},
		{10, 0},
		{13, 3},
		{-3, 7},
	}
	for _, tt := range tests {
		d := NewDash(6, 4)
		d.Offset = tt.offset
		if got := d.NormalizedOffset(); got != tt.want {
			t.Errorf("NormalizedOffset(%v) = %v, want %v", tt.offset, got, tt.want)
		}
	}
}

func TestDashScaleAndClone(t *testing.T) {
	d := &Dash{Array: []float64{2, 1}, Offset: 1}
	s := d.Scale(3)
	if !equalFloats(s.Array, []float64{6, 3}) || s.Offset != 3 {
		t.Errorf("Scale(3) = %+v", s)
	}
	if d.Scale(0) != d || d.Scale(-1) != d {
		t.Error("non-positive factors must return d unchanged")
	}

	c := d.Clone()
	c.Array[0] = 9
	if d.Array[0] != 2 {
		t.Error("Clone shares its array")
	}
	if (*Dash)(nil).Clone() != nil {
		t.Error("nil Clone should be nil")
	}
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
