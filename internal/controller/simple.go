package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	m "classloc.dev/pkg/classloc/internal/model"
)

// SimpleUI implements UI with plain text written through a cobra Command.
// Resolved paths go to stdout so they can be piped; diagnostics go to stderr.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayResolution prints the resolved path or the diagnostics for a failure.
func (s *SimpleUI) DisplayResolution(ctx context.Context, result m.ResolutionResult, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		s.errorf("error: %s: %v\n", result.Source.Path, err)

		if hint := guidance(err); hint != "" {
			s.errorf("%s\n", hint)
		}

		return nil
	}

	if !result.Found {
		for _, line := range notFoundLines(result) {
			s.errorf("%s\n", line)
		}

		return nil
	}

	s.printf("%s\n", result.Path)

	if note := caveatNote(result); note != "" {
		s.errorf("%s\n", note)
	}

	return nil
}

// DisplayCandidates prints the candidate table and the most likely path.
func (s *SimpleUI) DisplayCandidates(ctx context.Context, report m.CandidateReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Source: %s\n", report.Source.Path)
	s.printf("Layout: %s\n\n", report.Layout.Kind)
	s.printf("%s", renderCandidateTable(report))
	s.printf("\nMost likely: %s\n", mostLikelyLabel(report))

	return nil
}

// DisplayLayout prints the classified layout.
func (s *SimpleUI) DisplayLayout(ctx context.Context, layout m.ProjectLayout) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, line := range layoutLines(layout) {
		s.printf("%s\n", line)
	}

	return nil
}

// DisplayProject prints the project metadata as YAML.
func (s *SimpleUI) DisplayProject(ctx context.Context, meta m.ProjectMetadata) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := marshalProjectYAML(meta)
	if err != nil {
		return err
	}

	s.printf("%s", out)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	writef(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	writef(s.cmd.ErrOrStderr(), format, args...)
}

func writef(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprintf(w, format, args...)
}
