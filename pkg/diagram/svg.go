package diagram

import (
	"fmt"
	"strings"
)

// Pixel geometry. A grid column x maps to pixel (x+1)*scale and a grid
// row y to pixel (y+1)*scale*aspect; character cells are twice as tall
// as they are wide.
const (
	scale  = 8
	aspect = 2
)

// svgDoc accumulates SVG elements by plain string concatenation, one
// element per line, in the order they are emitted.
type svgDoc struct {
	b strings.Builder
}

func (d *svgDoc) open(width, height int) {
	w := (width + 1) * scale
	h := (height + 1) * scale * aspect
	fmt.Fprintf(&d.b, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d" viewBox="0 0 %d %d" class="diagram" text-anchor="middle" font-family="monospace" font-size="13px" stroke-linecap="round">`+"\n",
		w, h, w, h)
}

func (d *svgDoc) backdrop(width, height int) {
	fmt.Fprintf(&d.b, `<rect x="0" y="0" width="%d" height="%d" fill="white"/>`+"\n",
		(width+1)*scale, (height+1)*scale*aspect)
}

func (d *svgDoc) line(x1, y1, x2, y2 int) {
	fmt.Fprintf(&d.b, `<line x1="%d" y1="%d" x2="%d" y2="%d" fill="none" stroke="black"/>`+"\n",
		x1, y1, x2, y2)
}

// arrow emits a fixed-size triangle centered on (cx, cy): tip 8px out
// along the pointing axis, base 4px back and 3px to each side, rotated
// about its own center.
func (d *svgDoc) arrow(cx, cy, angle int) {
	fmt.Fprintf(&d.b, `<polygon points="%d,%d %d,%d %d,%d" fill="black" transform="rotate(%d,%d,%d)"/>`+"\n",
		cx+8, cy, cx-4, cy-3, cx-4, cy+3, angle, cx, cy)
}

func (d *svgDoc) point(cx, cy int, filled bool) {
	if filled {
		fmt.Fprintf(&d.b, `<circle cx="%d" cy="%d" r="6" fill="black"/>`+"\n", cx, cy)
		return
	}
	fmt.Fprintf(&d.b, `<circle cx="%d" cy="%d" r="6" fill="white" stroke="black"/>`+"\n", cx, cy)
}

func (d *svgDoc) openText() {
	d.b.WriteString("<g class=\"text\">\n")
}

func (d *svgDoc) text(x, y int, r rune) {
	fmt.Fprintf(&d.b, `<text x="%d" y="%d">%s</text>`+"\n", x, y, escape(r))
}

func (d *svgDoc) closeText() {
	d.b.WriteString("</g>\n")
}

func (d *svgDoc) close() string {
	d.b.WriteString("</svg>")
	return d.b.String()
}

// escape entity-escapes the four characters with XML meaning; every
// other rune passes through untouched.
func escape(r rune) string {
	switch r {
	case '&':
		return "&amp;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '"':
		return "&quot;"
	}
	return string(r)
}
