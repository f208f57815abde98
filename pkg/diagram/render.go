package diagram

// Option adjusts optional rendering behavior. The zero configuration
// reproduces the canonical output format.
type Option func(*renderer)

// WithBackdrop draws a white rectangle behind the diagram, for
// embedding in pages with non-white backgrounds.
func WithBackdrop() Option {
	return func(r *renderer) { r.backdrop = true }
}

// WithoutText skips the text pass entirely; only lines, arrowheads and
// points are rendered.
func WithoutText() Option {
	return func(r *renderer) { r.noText = true }
}

type renderer struct {
	backdrop bool
	noText   bool
}

// Render converts an ASCII-art diagram to an SVG document. It never
// fails: any input, including the empty string, yields valid SVG, and
// identical inputs yield byte-identical output.
//
// The passes run in fixed order: dedent, horizontal line runs,
// vertical line runs, arrowheads, points, leftover text.
func Render(src string, opts ...Option) string {
	var r renderer
	for _, opt := range opts {
		opt(&r)
	}

	g := newGrid(Dedent(src))

	var out svgDoc
	out.open(g.width, g.height)
	if r.backdrop {
		out.backdrop(g.width, g.height)
	}
	scanHorizontal(g, &out)
	scanVertical(g, &out)
	scanArrows(g, &out)
	scanPoints(g, &out)
	if !r.noText {
		emitText(g, &out)
	}
	return out.close()
}
