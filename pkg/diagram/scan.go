package diagram

// scanHorizontal walks each row left to right and emits a <line> for
// every run of two or more horizontal line characters. Every cell in a
// run is marked used as soon as it is classified, so a lone '-' is
// consumed without producing a line or falling through to the text
// pass.
func scanHorizontal(g *grid, out *svgDoc) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; {
			if !g.at(x, y).isHorizontal() {
				x++
				continue
			}
			start := x
			for x < g.width && g.at(x, y).isHorizontal() {
				g.mark(x, y)
				x++
			}
			if x-start >= 2 {
				py := (y + 1) * scale * aspect
				out.line(start*scale+scale/2, py, x*scale, py)
			}
		}
	}
}

// scanVertical is the column-wise mirror of scanHorizontal.
func scanVertical(g *grid, out *svgDoc) {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; {
			if !g.at(x, y).isVertical() {
				y++
				continue
			}
			start := y
			for y < g.height && g.at(x, y).isVertical() {
				g.mark(x, y)
				y++
			}
			if y-start >= 2 {
				px := (x + 1) * scale
				out.line(px, start*scale*aspect+scale*aspect/2, px, y*scale*aspect)
			}
		}
	}
}

// scanArrows emits a rotated triangle for every arrowhead character,
// regardless of prior used-state, and marks the cell used.
func scanArrows(g *grid, out *svgDoc) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			angle, ok := g.at(x, y).arrowAngle()
			if !ok {
				continue
			}
			out.arrow((x+1)*scale, (y+1)*scale*aspect, angle)
			g.mark(x, y)
		}
	}
}

// scanPoints emits a circle for every point marker and marks the cell
// used.
func scanPoints(g *grid, out *svgDoc) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.at(x, y)
			if !c.isPoint() {
				continue
			}
			out.point((x+1)*scale, (y+1)*scale*aspect, c.isFilledPoint())
			g.mark(x, y)
		}
	}
}

// emitText renders every cell not consumed by a shape as a text glyph.
// Blanks and vertex markers are skipped; the +4 on y compensates for
// the text baseline.
func emitText(g *grid, out *svgDoc) {
	out.openText()
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.at(x, y)
			if g.isUsed(x, y) || c.isBlank() || c.isVertex() {
				continue
			}
			out.text((x+1)*scale, (y+1)*scale*aspect+4, rune(c))
		}
	}
	out.closeText()
}
