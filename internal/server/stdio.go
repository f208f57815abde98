package server

import (
	"context"
	"errors"
	"io"

	"github.com/asciidiag/aasvg/pkg/diagram"
	"github.com/asciidiag/aasvg/pkg/framing"
)

// ServeStdio runs the framed-pipe protocol: every request frame is a
// diagram, every response frame the rendered SVG, both carried as
// 4-byte little-endian length-prefixed strings. It returns nil when
// the input stream ends cleanly. Cancellation is observed between
// frames; a read in flight finishes first.
func ServeStdio(ctx context.Context, r io.Reader, w io.Writer, opts ...diagram.Option) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		src, err := framing.ReadString(r)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := framing.WriteString(w, diagram.Render(src, opts...)); err != nil {
			return err
		}
	}
}
