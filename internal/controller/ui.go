// Package controller renders resolution outcomes for the classloc CLI.
package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "classloc.dev/pkg/classloc/internal/model"
)

// Format selects how outcomes are rendered.
type Format string

// Available Format values.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value. Empty means text.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", value)
	}
}

// UI defines how resolution outcomes are presented. Implementations never
// decide anything about the outcome; they only render it.
type UI interface {
	// DisplayResolution shows one resolution. err is the typed failure of the
	// resolution, if any.
	DisplayResolution(ctx context.Context, result m.ResolutionResult, err error) error
	// DisplayCandidates shows every candidate, the existing ones and the most
	// likely path.
	DisplayCandidates(ctx context.Context, report m.CandidateReport) error
	// DisplayLayout shows a classified project layout.
	DisplayLayout(ctx context.Context, layout m.ProjectLayout) error
	// DisplayProject shows project metadata.
	DisplayProject(ctx context.Context, meta m.ProjectMetadata) error
}

// NewUI picks the UI for the requested format and terminal.
func NewUI(cmd *cobra.Command, tty bool, format Format) UI {
	switch format {
	case FormatJSON, FormatYAML:
		return NewStructuredUI(cmd.OutOrStdout(), format)
	case FormatText:
	}

	if tty {
		return NewTUI(cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

const notFoundMessage = "No existing class file found. Please compile the project first."

// guidance turns a typed resolution failure into a user-facing hint.
func guidance(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, m.ErrInputRejected):
		return "Only .java, .kt, .groovy and .scala source files can be located."
	case errors.Is(err, m.ErrLayoutUnclassifiable):
		return "The project layout could not be determined. Check the project structure or pass --root / --project-file."
	default:
		return ""
	}
}
