package tkpath

import "math"

// singularEpsilon bounds |det| below which a matrix is not invertible.
const singularEpsilon = 1e-12

// TMatrix is a 2D affine transform. It maps
//
//	x' = A*x + C*y + Tx
//	y' = B*x + D*y + Ty
//
// A nil *TMatrix stands for the identity wherever one is accepted.
type TMatrix struct {
	A, B, C, D float64
	Tx, Ty     float64
}

// Identity returns the identity transform.
func Identity() TMatrix {
	return TMatrix{A: 1, D: 1}
}

// Translate returns a translation.
func Translate(tx, ty float64) TMatrix {
	return TMatrix{A: 1, D: 1, Tx: tx, Ty: ty}
}

// Scale returns a scale about the origin.
func Scale(sx, sy float64) TMatrix {
	return TMatrix{A: sx, D: sy}
}

// Rotate returns a rotation by angle radians (clockwise on screen, since
// Y grows downward).
func Rotate(angle float64) TMatrix {
	sin, cos := math.Sincos(angle)
	return TMatrix{A: cos, B: sin, C: -sin, D: cos}
}

// MatrixOrIdentity dereferences m, treating nil as the identity.
func MatrixOrIdentity(m *TMatrix) TMatrix {
	if m == nil {
		return Identity()
	}
	return *m
}

// Compose returns outer∘inner: applying the result equals applying inner
// first and then outer.
func Compose(outer, inner TMatrix) TMatrix {
	return TMatrix{
		A:  outer.A*inner.A + outer.C*inner.B,
		B:  outer.B*inner.A + outer.D*inner.B,
		C:  outer.A*inner.C + outer.C*inner.D,
		D:  outer.B*inner.C + outer.D*inner.D,
		Tx: outer.A*inner.Tx + outer.C*inner.Ty + outer.Tx,
		Ty: outer.B*inner.Tx + outer.D*inner.Ty + outer.Ty,
	}
}

// Determinant returns A*D - B*C.
func (m TMatrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse transform, or ErrSingularMatrix and the
// identity when the determinant is within epsilon of zero.
func (m TMatrix) Invert() (TMatrix, error) {
	det := m.Determinant()
	if math.Abs(det) < singularEpsilon {
		return Identity(), ErrSingularMatrix
	}
	inv := 1 / det
	return TMatrix{
		A:  m.D * inv,
		B:  -m.B * inv,
		C:  -m.C * inv,
		D:  m.A * inv,
		Tx: (m.C*m.Ty - m.D*m.Tx) * inv,
		Ty: (m.B*m.Tx - m.A*m.Ty) * inv,
	}, nil
}

// IsIdentity reports whether m is exactly the identity.
func (m TMatrix) IsIdentity() bool {
	return m == Identity()
}

// IsRectilinear reports whether the off-diagonal terms are exactly zero,
// so axis-aligned rectangles stay axis-aligned.
func (m TMatrix) IsRectilinear() bool {
	return m.B == 0 && m.C == 0
}

// Apply transforms (x, y).
func (m TMatrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.Tx, m.B*x + m.D*y + m.Ty
}

// TransformPoint transforms a point.
func (m TMatrix) TransformPoint(p Point) Point {
	x, y := m.Apply(p.X, p.Y)
	return Point{X: x, Y: y}
}

// TransformVector transforms a vector, ignoring translation.
func (m TMatrix) TransformVector(v Point) Point {
	return Point{X: m.A*v.X + m.C*v.Y, Y: m.B*v.X + m.D*v.Y}
}

// AbsMax returns the largest absolute value of the linear part. It
// estimates how much m magnifies lengths and scales segment budgets.
func (m TMatrix) AbsMax() float64 {
	return max(math.Abs(m.A), math.Abs(m.B), math.Abs(m.C), math.Abs(m.D))
}

// MeanScale returns sqrt(|det|), the mean linear magnification.
func (m TMatrix) MeanScale() float64 {
	return math.Sqrt(math.Abs(m.Determinant()))
}
