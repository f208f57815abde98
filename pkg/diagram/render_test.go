package diagram

import (
	"strings"
	"testing"
)

func count(svg, sub string) int {
	return strings.Count(svg, sub)
}

func TestRenderExact(t *testing.T) {
	got := Render("* -> o")
	want := `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="56" height="32" viewBox="0 0 56 32" class="diagram" text-anchor="middle" font-family="monospace" font-size="13px" stroke-linecap="round">
<polygon points="40,16 28,13 28,19" fill="black" transform="rotate(0,32,16)"/>
<circle cx="8" cy="16" r="6" fill="black"/>
<circle cx="48" cy="16" r="6" fill="white" stroke="black"/>
<g class="text">
</g>
</svg>`
	if got != want {
		t.Errorf("Render(\"* -> o\") =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderBoxesWithArrow(t *testing.T) {
	src := "+-----+     +-----+\n" +
		"|     |---->|     |\n" +
		"+-----+     +-----+"
	svg := Render(src)

	// Four border rows of length >= 2, one connector, four sides.
	if n := count(svg, "<line "); n != 9 {
		t.Errorf("line count = %d, want 9", n)
	}
	if n := count(svg, "<polygon "); n != 1 {
		t.Errorf("polygon count = %d, want 1", n)
	}
	// Every character is consumed as a vertex, line, or arrowhead.
	if n := count(svg, "<text "); n != 0 {
		t.Errorf("text count = %d, want 0", n)
	}
	if !strings.Contains(svg, `transform="rotate(0,`) {
		t.Errorf("arrowhead should point right: %s", svg)
	}
}

func TestRenderTotal(t *testing.T) {
	inputs := []string{
		"",
		"   \n  \n",
		"\n\n\n",
		"no drawing characters at all",
		"-|-|-|",
		strings.Repeat("+-+\n| |\n+-+\n", 10),
		"unterminated\nragged\nlines of different length",
	}
	for _, in := range inputs {
		svg := Render(in)
		if !strings.HasPrefix(svg, "<svg ") || !strings.HasSuffix(svg, "</svg>") {
			t.Errorf("Render(%q) did not produce a complete document", in)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	src := "o--->*\n  ^\n  |"
	if Render(src) != Render(src) {
		t.Error("identical inputs must produce byte-identical output")
	}
}

func TestRenderEmptyInput(t *testing.T) {
	got := Render("")
	want := `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="8" height="16" viewBox="0 0 8 16" class="diagram" text-anchor="middle" font-family="monospace" font-size="13px" stroke-linecap="round">
<g class="text">
</g>
</svg>`
	if got != want {
		t.Errorf("Render(\"\") =\n%s\nwant:\n%s", got, want)
	}
}

// Lone line characters are consumed by the run scanner without
// producing a line, and never resurface as text.
func TestRenderLoneLineCharVanishes(t *testing.T) {
	for _, src := range []string{"-", "|", "a - b"} {
		svg := Render(src)
		if count(svg, "<line ") != 0 {
			t.Errorf("Render(%q) emitted a line for a single-character run", src)
		}
		if strings.Contains(svg, ">-<") || strings.Contains(svg, ">|<") {
			t.Errorf("Render(%q) leaked a line character into text: %s", src, svg)
		}
	}
}

func TestRenderMinimumRunLength(t *testing.T) {
	svg := Render("--")
	if n := count(svg, "<line "); n != 1 {
		t.Errorf("two-character run should emit one line, got %d", n)
	}
	if !strings.Contains(svg, `<line x1="4" y1="16" x2="16" y2="16"`) {
		t.Errorf("unexpected run geometry: %s", svg)
	}
}

func TestRenderVerticalRunGeometry(t *testing.T) {
	svg := Render("|\n|")
	if !strings.Contains(svg, `<line x1="8" y1="8" x2="8" y2="32"`) {
		t.Errorf("unexpected vertical geometry: %s", svg)
	}
}

func TestRenderArrowAngles(t *testing.T) {
	tests := []struct {
		src   string
		angle string
	}{
		{">", "rotate(0,"},
		{"v", "rotate(90,"},
		{"V", "rotate(90,"},
		{"<", "rotate(180,"},
		{"^", "rotate(270,"},
	}
	for _, tt := range tests {
		svg := Render(tt.src)
		if !strings.Contains(svg, tt.angle) {
			t.Errorf("Render(%q) missing %q: %s", tt.src, tt.angle, svg)
		}
	}
}

func TestRenderPoints(t *testing.T) {
	svg := Render("* o")
	if !strings.Contains(svg, `<circle cx="8" cy="16" r="6" fill="black"/>`) {
		t.Errorf("filled point missing: %s", svg)
	}
	if !strings.Contains(svg, `<circle cx="24" cy="16" r="6" fill="white" stroke="black"/>`) {
		t.Errorf("hollow point missing: %s", svg)
	}
}

// A cell consumed by a shape never also renders as text, and the two
// orientations share '+' cells without double-drawing them.
func TestRenderUsedCellExclusivity(t *testing.T) {
	svg := Render("-+-\n | ")
	if n := count(svg, "<line "); n != 2 {
		t.Errorf("expected one run per orientation, got %d lines", n)
	}
	if n := count(svg, "<text "); n != 0 {
		t.Errorf("junction leaked into text: %s", svg)
	}
}

func TestRenderVerticesNeverRender(t *testing.T) {
	// Unused vertex markers vanish: not drawn, not text.
	svg := Render(". ' ` ,")
	if count(svg, "<text ") != 0 || count(svg, "<line ") != 0 {
		t.Errorf("vertex markers must not render: %s", svg)
	}
}

func TestRenderTextEscaping(t *testing.T) {
	svg := Render(`a & "b"`)
	for _, want := range []string{
		`<text x="8" y="20">a</text>`,
		`<text x="24" y="20">&amp;</text>`,
		`<text x="40" y="20">&quot;</text>`,
		`<text x="48" y="20">b</text>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("missing %s in:\n%s", want, svg)
		}
	}
	if strings.Contains(svg, `>"<`) || strings.Contains(svg, `>&<`) {
		t.Errorf("unescaped character leaked: %s", svg)
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   rune
		want string
	}{
		{'&', "&amp;"},
		{'<', "&lt;"},
		{'>', "&gt;"},
		{'"', "&quot;"},
		{'a', "a"},
		{'\'', "'"},
	}
	for _, tt := range tests {
		if got := escape(tt.in); got != tt.want {
			t.Errorf("escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderGeometryConstants(t *testing.T) {
	// A point at grid (0,0) is centered at pixel (8,16); the viewBox is
	// (width+1)*8 by (height+1)*16.
	svg := Render("*")
	if !strings.Contains(svg, `<circle cx="8" cy="16"`) {
		t.Errorf("cell (0,0) center should be (8,16): %s", svg)
	}
	if !strings.Contains(svg, `viewBox="0 0 16 32"`) {
		t.Errorf("viewBox for 1x1 grid should be 16x32: %s", svg)
	}
}

func TestRenderDedentsInput(t *testing.T) {
	plain := Render("+--+\n|  |\n+--+\n")
	indented := Render("    +--+\n    |  |\n    +--+\n")
	if plain != indented {
		t.Errorf("indented diagram should render identically:\n%s\nvs:\n%s", plain, indented)
	}
	// Dedenting must not grow the grid: both are 4x3 cells.
	if !strings.Contains(indented, `viewBox="0 0 40 64"`) {
		t.Errorf("dedent changed the grid size: %s", indented)
	}
}

func TestRenderWithBackdrop(t *testing.T) {
	svg := Render("*", WithBackdrop())
	if !strings.Contains(svg, `<rect x="0" y="0" width="16" height="32" fill="white"/>`) {
		t.Errorf("backdrop rect missing: %s", svg)
	}
	// The backdrop sits before any shape.
	if strings.Index(svg, "<rect") > strings.Index(svg, "<circle") {
		t.Errorf("backdrop must precede shapes: %s", svg)
	}
}

func TestRenderWithoutText(t *testing.T) {
	svg := Render("hello", WithoutText())
	if strings.Contains(svg, "<g class=\"text\">") || count(svg, "<text ") != 0 {
		t.Errorf("WithoutText must suppress the text group: %s", svg)
	}
}
