package diagram

// cell is a single grid character with classification predicates.
type cell rune

// isVertex reports corner/junction glyphs. Vertices are never drawn
// directly and never fall through to the text pass, used or not.
func (c cell) isVertex() bool {
	return c == '+' || c == '.' || c == '\'' || c == '`' || c == ','
}

// isHorizontal reports characters that extend a horizontal run.
// '+' joins runs in both orientations.
func (c cell) isHorizontal() bool {
	return c == '-' || c == '+'
}

// isVertical reports characters that extend a vertical run.
func (c cell) isVertical() bool {
	return c == '|' || c == '+'
}

// isPoint reports point markers: 'o' renders hollow, '*' filled.
func (c cell) isPoint() bool {
	return c == 'o' || c == '*'
}

// isFilledPoint distinguishes '*' from 'o'.
func (c cell) isFilledPoint() bool {
	return c == '*'
}

// isBlank reports a plain space. Cells beyond a line's length read as
// blank through the grid accessor.
func (c cell) isBlank() bool {
	return c == ' '
}

// arrowAngle maps arrowhead characters to their rotation in degrees:
// '>' points right (0), 'v'/'V' down (90), '<' left (180), '^' up (270).
// The second return is false for non-arrow characters.
func (c cell) arrowAngle() (int, bool) {
	switch c {
	case '>':
		return 0, true
	case 'v', 'V':
		return 90, true
	case '<':
		return 180, true
	case '^':
		return 270, true
	}
	return 0, false
}
