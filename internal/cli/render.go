package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asciidiag/aasvg/pkg/diagram"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path (single input only)
	backdrop bool   // paint a white background rectangle
	noText   bool   // drop leftover characters instead of emitting text
}

// newRenderCmd creates the render command for converting ASCII-art
// diagrams to SVG.
//
// Input selection:
//   - no arguments, stdin piped: read one diagram from stdin
//   - no arguments, stdin a terminal: open the interactive file picker
//   - one file: write to stdout, or to -o/--output
//   - several files: each output path is derived from its input
//     (diagram.txt becomes diagram.svg)
//
// Flags left unset fall back to the [render] section of the config
// file.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Render ASCII diagrams to SVG",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single input only; default stdout)")
	cmd.Flags().BoolVar(&opts.backdrop, "backdrop", false, "paint a white background rectangle")
	cmd.Flags().BoolVar(&opts.noText, "no-text", false, "suppress leftover text characters")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	// Explicit flags win over the config file.
	backdrop := cfg.Render.Backdrop
	if cmd.Flags().Changed("backdrop") {
		backdrop = opts.backdrop
	}
	noText := !cfg.Render.Text
	if cmd.Flags().Changed("no-text") {
		noText = opts.noText
	}

	var ropts []diagram.Option
	if backdrop {
		ropts = append(ropts, diagram.WithBackdrop())
	}
	if noText {
		ropts = append(ropts, diagram.WithoutText())
	}

	if len(args) == 0 {
		if !stdinIsTerminal() {
			logger.Debug("Reading diagram from stdin")
			return renderStream(os.Stdin, opts.output, ropts)
		}
		path, err := pickDiagramFile()
		if err != nil {
			return err
		}
		if path == "" {
			printInfo("No file selected")
			return nil
		}
		args = []string{path}
	}

	if len(args) == 1 {
		prog := newProgress(logger)
		if err := renderFile(args[0], opts.output, ropts); err != nil {
			return err
		}
		if opts.output != "" {
			prog.done(fmt.Sprintf("Rendered %s", args[0]))
			printFile(opts.output)
		}
		return nil
	}

	if opts.output != "" {
		return fmt.Errorf("-o/--output needs a single input, got %d", len(args))
	}
	return renderBatch(cmd, args, ropts)
}

// renderBatch renders several diagram files, each next to its input.
func renderBatch(cmd *cobra.Command, args []string, ropts []diagram.Option) error {
	logger := loggerFromContext(cmd.Context())

	sp := newSpinnerWithContext(cmd.Context(), fmt.Sprintf("Rendering %d diagrams", len(args)))
	sp.Start()
	outputs := make([]string, 0, len(args))
	for _, input := range args {
		out := outputPath(input)
		if err := renderFile(input, out, ropts); err != nil {
			sp.StopWithError(fmt.Sprintf("Failed on %s", input))
			return err
		}
		logger.Debugf("Rendered %s", input)
		outputs = append(outputs, out)
	}
	sp.StopWithSuccess(fmt.Sprintf("Rendered %d diagrams", len(args)))
	for _, out := range outputs {
		printFile(out)
	}
	return nil
}

// renderFile renders one diagram file. An empty output writes the SVG
// to stdout.
func renderFile(input, output string, opts []diagram.Option) error {
	src, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	return writeOutput(output, diagram.Render(string(src), opts...))
}

// renderStream renders a single diagram read from r.
func renderStream(r io.Reader, output string, opts []diagram.Option) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return writeOutput(output, diagram.Render(string(src), opts...))
}

func writeOutput(output, svg string) error {
	if output == "" {
		_, err := fmt.Println(svg)
		return err
	}
	return os.WriteFile(output, []byte(svg), 0o644)
}

// outputPath derives the SVG path for an input file by replacing its
// extension.
func outputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".svg"
}

// stdinIsTerminal reports whether stdin is attached to a terminal
// rather than a pipe or file.
func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
