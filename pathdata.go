package tkpath

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// pathArgs is the number of arguments each path-data command takes.
var pathArgs = map[byte]int{
	'M': 2, 'Z': 0, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7,
}

func isPathSpace(c byte) bool {
	return c == ' ' || c == ',' || c == '\n' || c == '\r' || c == '\t' || c == '\f'
}

func skipPathSpace(b []byte, i int) int {
	for i < len(b) && isPathSpace(b[i]) {
		i++
	}
	return i
}

func startsNumber(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

// ParsePathData parses SVG path data into atoms. Relative commands are
// resolved to absolute coordinates, H and V become LineTo, S and T have
// their control points reflected, and arcs are kept as Arc atoms. Errors
// wrap ErrBadPathData and report the byte position.
func ParsePathData(d string) (*Path, error) {
	b := []byte(d)
	p := &Path{}
	i := skipPathSpace(b, 0)
	if i == len(b) {
		return p, nil
	}
	if !isPathCommand(b[i]) || upper(b[i]) != 'M' {
		return nil, fmt.Errorf("%w: path must start with a moveto at position %d", ErrBadPathData, i+1)
	}

	var (
		args          [7]float64
		cur, start    Point
		lastCtrl      Point
		prev, command byte
	)
	for {
		i = skipPathSpace(b, i)
		if i >= len(b) {
			break
		}
		implicit := false
		if isPathCommand(b[i]) {
			command = b[i]
			i = skipPathSpace(b, i+1)
		} else if !startsNumber(b[i]) {
			return nil, fmt.Errorf("%w: unknown command %q at position %d", ErrBadPathData, b[i], i+1)
		} else if prev == 0 || upper(prev) == 'Z' {
			return nil, fmt.Errorf("%w: number without command at position %d", ErrBadPathData, i+1)
		} else {
			implicit = true
			// Coordinates after a moveto are implicit linetos.
			switch prev {
			case 'M':
				command = 'L'
			case 'm':
				command = 'l'
			default:
				command = prev
			}
		}

		cmd := upper(command)
		rel := command != cmd
		for j := 0; j < pathArgs[cmd]; j++ {
			if cmd == 'A' && (j == 3 || j == 4) {
				if i >= len(b) || (b[i] != '0' && b[i] != '1') {
					return nil, fmt.Errorf("%w: arc flag must be 0 or 1 at position %d", ErrBadPathData, i+1)
				}
				args[j] = float64(b[i] - '0')
				i = skipPathSpace(b, i+1)
				continue
			}
			v, n := strconv.ParseFloat(b[i:])
			if n == 0 {
				if implicit && j == 0 {
					return nil, fmt.Errorf("%w: unknown command %q at position %d", ErrBadPathData, b[i], i+1)
				}
				return nil, fmt.Errorf("%w: command %q needs %d numbers at position %d", ErrBadPathData, command, pathArgs[cmd], i+1)
			}
			args[j] = v
			i = skipPathSpace(b, i+n)
		}

		var base Point
		if rel {
			base = cur
		}
		pt := func(k int) Point { return Point{X: base.X + args[k], Y: base.Y + args[k+1]} }

		switch cmd {
		case 'M':
			cur = pt(0)
			start = cur
			p.Append(&MoveTo{X: cur.X, Y: cur.Y})
		case 'Z':
			p.Append(&Close{X: start.X, Y: start.Y})
			cur = start
		case 'L':
			cur = pt(0)
			p.Append(&LineTo{X: cur.X, Y: cur.Y})
		case 'H':
			cur.X = base.X + args[0]
			p.Append(&LineTo{X: cur.X, Y: cur.Y})
		case 'V':
			cur.Y = base.Y + args[0]
			p.Append(&LineTo{X: cur.X, Y: cur.Y})
		case 'C':
			c1, c2, end := pt(0), pt(2), pt(4)
			p.Append(&CurveTo{CX1: c1.X, CY1: c1.Y, CX2: c2.X, CY2: c2.Y, X: end.X, Y: end.Y})
			lastCtrl, cur = c2, end
		case 'S':
			c1 := cur
			if u := upper(prev); u == 'C' || u == 'S' {
				c1 = cur.Mul(2).Sub(lastCtrl)
			}
			c2, end := pt(0), pt(2)
			p.Append(&CurveTo{CX1: c1.X, CY1: c1.Y, CX2: c2.X, CY2: c2.Y, X: end.X, Y: end.Y})
			lastCtrl, cur = c2, end
		case 'Q':
			c, end := pt(0), pt(2)
			p.Append(&QuadBezier{CX: c.X, CY: c.Y, X: end.X, Y: end.Y})
			lastCtrl, cur = c, end
		case 'T':
			c := cur
			if u := upper(prev); u == 'Q' || u == 'T' {
				c = cur.Mul(2).Sub(lastCtrl)
			}
			end := pt(0)
			p.Append(&QuadBezier{CX: c.X, CY: c.Y, X: end.X, Y: end.Y})
			lastCtrl, cur = c, end
		case 'A':
			end := pt(5)
			p.Append(&Arc{
				RX: args[0], RY: args[1], Angle: args[2],
				LargeArc: args[3] == 1, Sweep: args[4] == 1,
				X: end.X, Y: end.Y,
			})
			cur = end
		}
		prev = command
	}
	return p, nil
}

// MustParsePathData is like ParsePathData but panics on error. It is meant
// for literals in tests and examples.
func MustParsePathData(d string) *Path {
	p, err := ParsePathData(d)
	if err != nil {
		panic(err)
	}
	return p
}

func isPathCommand(c byte) bool {
	_, ok := pathArgs[upper(c)]
	return ok
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// String formats the path as absolute path data. Rect and Ellipse atoms
// have no path-data form and are written as their equivalent outlines.
func (p *Path) String() string {
	var sb strings.Builder
	for _, a := range p.Atoms() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch a := a.(type) {
		case *MoveTo:
			fmt.Fprintf(&sb, "M%g %g", a.X, a.Y)
		case *LineTo:
			fmt.Fprintf(&sb, "L%g %g", a.X, a.Y)
		case *CurveTo:
			fmt.Fprintf(&sb, "C%g %g %g %g %g %g", a.CX1, a.CY1, a.CX2, a.CY2, a.X, a.Y)
		case *QuadBezier:
			fmt.Fprintf(&sb, "Q%g %g %g %g", a.CX, a.CY, a.X, a.Y)
		case *Arc:
			fmt.Fprintf(&sb, "A%g %g %g %d %d %g %g", a.RX, a.RY, a.Angle, flag(a.LargeArc), flag(a.Sweep), a.X, a.Y)
		case *Close:
			sb.WriteByte('Z')
		case *Rect:
			fmt.Fprintf(&sb, "M%g %g h%g v%g h%g Z", a.X, a.Y, a.Width, a.Height, -a.Width)
		case *Ellipse:
			fmt.Fprintf(&sb, "M%g %g A%g %g 0 1 1 %g %g A%g %g 0 1 1 %g %g Z",
				a.CX+a.RX, a.CY, a.RX, a.RY, a.CX-a.RX, a.CY, a.RX, a.RY, a.CX+a.RX, a.CY)
		}
	}
	return sb.String()
}

func flag(b bool) int {
	if b {
		return 1
	}
	return 0
}
