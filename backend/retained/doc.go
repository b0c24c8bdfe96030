// Package retained registers the "retained" tkpath backend.
//
// The backend follows the GDI+ model: the path is a list of figures kept
// in user coordinates, and the current transform is applied when the path
// is painted, so one path can be filled, stroked and used as a clip in
// turn. Strokes are outlined in user space, which widens them correctly
// under non-uniform scales. Linear gradients are shaded per pixel with all
// spread methods; radial gradients are drawn as bands between adjacent
// stops and support pad only.
//
//	import _ "github.com/gogpu/tkpath/backend/retained"
package retained
