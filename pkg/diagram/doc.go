// Package diagram converts monospaced ASCII-art diagrams into SVG.
//
// The transform is a single pass over an implicit character grid:
// the input is dedented, runs of line-drawing characters become
// <line> elements, arrowheads become rotated <polygon> triangles,
// point markers become <circle> elements, and every leftover
// character is emitted as an entity-escaped <text> glyph.
//
// Render is total: any input string, including the empty string,
// produces a syntactically valid SVG document. Identical inputs
// produce byte-identical output.
//
//	svg := diagram.Render("+--+\n|  |\n+--+")
//
// Optional behavior is exposed as functional options:
//
//	svg := diagram.Render(src, diagram.WithBackdrop())
package diagram
