// Package pkg contains the public library surface of aasvg.
//
// aasvg converts ASCII-art diagrams into SVG documents. The conversion
// is a pure function over the input text: runs of line characters
// become SVG lines, arrowheads become rotated polygons, markers become
// circles, and every remaining visible character is emitted as
// positioned text.
//
// # Packages
//
//   - diagram: the core renderer. diagram.Render is the whole contract;
//     it is total and deterministic, so callers never handle errors.
//   - framing: the length-prefixed string framing used by the stdio
//     serve mode.
//   - cache: render result caching with null, file, redis, and mongo
//     backends. Because rendering is referentially transparent, cached
//     responses are always exact.
//   - config: TOML configuration with defaults for every field.
//   - errors: structured error codes shared by the CLI and the server.
//   - observability: optional hooks for metrics without hard backend
//     dependencies.
//   - buildinfo: ldflags-injected version information.
//
// # Quick start
//
//	svg := diagram.Render("+----+\n| hi |\n+----+")
//	fmt.Println(svg)
//
// The cmd/aasvg binary wraps the same pipeline with a CLI, an HTTP
// server, and a framed stdio mode.
package pkg
