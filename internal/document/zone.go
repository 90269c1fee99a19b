package document

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Zone markers are private CSI sequences. Terminal width functions treat them
// as zero-width escapes, so lipgloss layout is unaffected by them; Scan
// removes them before the frame reaches the terminal.
const (
	markerStart = '<'
	markerEnd   = '>'
	markerFinal = 'z'
)

// Rect is an inclusive cell rectangle.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// In reports whether (x, y) lies inside r.
func (r Rect) In(x, y int) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

type zone struct {
	node *Node
	rect Rect
}

// Mark wraps s in zone markers for n. Marking a nil node returns s unchanged.
func (d *Document) Mark(n *Node, s string) string {
	if n == nil {
		return s
	}
	d.marks[n.id] = n
	id := strconv.Itoa(n.id)
	return "\x1b[" + string(markerStart) + id + string(markerFinal) +
		s +
		"\x1b[" + string(markerEnd) + id + string(markerFinal)
}

// Scan strips zone markers from a composed frame and records where each
// marked node landed. The previous frame's zones are discarded. An
// unterminated zone extends to the end of the frame.
func (d *Document) Scan(view string) string {
	d.zones = d.zones[:0]
	type origin struct{ x, y int }
	open := make(map[int]origin)
	var order []int

	var out strings.Builder
	out.Grow(len(view))
	x, y, maxX := 0, 0, 0

	for i := 0; i < len(view); {
		c := view[i]
		switch {
		case c == '\x1b':
			n := escapeLen(view[i:])
			seq := view[i : i+n]
			i += n
			id, start, ok := parseMarker(seq)
			if !ok {
				out.WriteString(seq)
				continue
			}
			if start {
				open[id] = origin{x, y}
				order = append(order, id)
				continue
			}
			if o, found := open[id]; found {
				d.addZone(id, o.x, o.y, x-1, y)
				delete(open, id)
			}
		case c == '\n':
			out.WriteByte(c)
			x = 0
			y++
			i++
		default:
			r, size := utf8.DecodeRuneInString(view[i:])
			out.WriteString(view[i : i+size])
			x += runewidth.RuneWidth(r)
			if x-1 > maxX {
				maxX = x - 1
			}
			i += size
		}
	}
	for _, id := range order {
		if o, found := open[id]; found {
			d.addZone(id, o.x, o.y, maxX, y)
		}
	}
	d.marks = make(map[int]*Node)
	return out.String()
}

func (d *Document) addZone(id, x0, y0, x1, y1 int) {
	n, ok := d.marks[id]
	if !ok {
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if x0 > x1 {
		if y0 == y1 {
			// empty content on a single line
			return
		}
		x0, x1 = x1, x0
	}
	d.zones = append(d.zones, zone{node: n, rect: Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}})
}

// Bounds returns the rectangle recorded for n by the last Scan.
func (d *Document) Bounds(n *Node) (Rect, bool) {
	for _, z := range d.zones {
		if z.node == n {
			return z.rect, true
		}
	}
	return Rect{}, false
}

// ElementAt returns the deepest attached node whose zone contains (x, y).
// Among equally deep nodes the one rendered last wins. Falls back to Body.
func (d *Document) ElementAt(x, y int) *Node {
	var best *Node
	bestDepth := -1
	for _, z := range d.zones {
		if !z.rect.In(x, y) || !z.node.Attached() {
			continue
		}
		if depth := z.node.Depth(); depth >= bestDepth {
			best, bestDepth = z.node, depth
		}
	}
	if best == nil {
		return d.body
	}
	return best
}

// escapeLen returns the byte length of the escape sequence at the start of s.
func escapeLen(s string) int {
	if len(s) < 2 {
		return len(s)
	}
	switch s[1] {
	case '[':
		for j := 2; j < len(s); j++ {
			if s[j] >= 0x40 && s[j] <= 0x7e {
				return j + 1
			}
		}
		return len(s)
	case ']':
		for j := 2; j < len(s); j++ {
			if s[j] == '\a' {
				return j + 1
			}
			if s[j] == '\x1b' && j+1 < len(s) && s[j+1] == '\\' {
				return j + 2
			}
		}
		return len(s)
	default:
		return 2
	}
}

// parseMarker decodes a zone marker, reporting its node id and whether it
// opens or closes the zone.
func parseMarker(seq string) (id int, start bool, ok bool) {
	if len(seq) < 5 || seq[len(seq)-1] != markerFinal {
		return 0, false, false
	}
	switch seq[2] {
	case markerStart:
		start = true
	case markerEnd:
	default:
		return 0, false, false
	}
	id, err := strconv.Atoi(seq[3 : len(seq)-1])
	if err != nil {
		return 0, false, false
	}
	return id, start, true
}
