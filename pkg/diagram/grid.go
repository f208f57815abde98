package diagram

import "strings"

// Dedent strips the common leading whitespace shared by all non-blank
// lines. Lines that are whitespace-only are ignored when computing the
// margin but are stripped like any other line. If the margin is zero,
// or the input has no non-blank line, the input is returned unchanged;
// otherwise the result carries a trailing newline after every line,
// including the last.
//
// Dedent is idempotent: a second application is a no-op.
func Dedent(s string) string {
	lines := strings.Split(s, "\n")

	margin := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := 0
		for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
			n++
		}
		if margin < 0 || n < margin {
			margin = n
		}
	}
	if margin <= 0 {
		return s
	}

	var b strings.Builder
	for i, line := range lines {
		// A trailing newline in the input splits into a final empty
		// element; rejoining it would add a blank line.
		if i == len(lines)-1 && line == "" {
			break
		}
		// Saturate: a line shorter than the margin strips to empty.
		if len(line) > margin {
			b.WriteString(line[margin:])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// grid is a virtual 2-D view over the diagram's lines. The character
// matrix is never materialized; cells are read on demand from the line
// array. The used-mask is a dense flat array of width*height booleans
// indexed y*width+x.
type grid struct {
	lines  [][]rune
	width  int
	height int
	used   []bool
}

func newGrid(text string) *grid {
	raw := strings.Split(text, "\n")
	g := &grid{lines: make([][]rune, len(raw))}
	for i, line := range raw {
		g.lines[i] = []rune(line)
		if n := len(g.lines[i]); n > g.width {
			g.width = n
		}
	}
	// A trailing newline yields a final empty line; it does not count
	// toward the grid height.
	g.height = len(g.lines)
	if g.height > 0 && len(g.lines[g.height-1]) == 0 {
		g.height--
	}
	g.used = make([]bool, g.width*g.height)
	return g
}

// at returns the character at (x, y), or a blank space when the
// coordinates fall outside the line array or beyond the line's length.
func (g *grid) at(x, y int) cell {
	if y < 0 || y >= len(g.lines) {
		return ' '
	}
	if x < 0 || x >= len(g.lines[y]) {
		return ' '
	}
	return cell(g.lines[y][x])
}

func (g *grid) mark(x, y int) {
	g.used[y*g.width+x] = true
}

func (g *grid) isUsed(x, y int) bool {
	return g.used[y*g.width+x]
}
