package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	m "classloc.dev/pkg/classloc/internal/model"
)

// StructuredUI writes every outcome as one JSON or YAML document.
type StructuredUI struct {
	out    io.Writer
	format Format
	docs   int
}

// NewStructuredUI creates a StructuredUI for FormatJSON or FormatYAML.
func NewStructuredUI(out io.Writer, format Format) *StructuredUI {
	return &StructuredUI{out: out, format: format}
}

type resolutionDocument struct {
	m.ResolutionResult `yaml:",inline"`
	Error              string `json:"error,omitempty" yaml:"error,omitempty"`
}

// DisplayResolution writes the result, including the failure message if any.
func (s *StructuredUI) DisplayResolution(ctx context.Context, result m.ResolutionResult, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	doc := resolutionDocument{ResolutionResult: result}
	if err != nil {
		doc.Error = err.Error()
	}

	return s.write(doc)
}

// DisplayCandidates writes the candidate report.
func (s *StructuredUI) DisplayCandidates(ctx context.Context, report m.CandidateReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.write(report)
}

// DisplayLayout writes the classified layout.
func (s *StructuredUI) DisplayLayout(ctx context.Context, layout m.ProjectLayout) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.write(layout)
}

// DisplayProject writes the project metadata.
func (s *StructuredUI) DisplayProject(ctx context.Context, meta m.ProjectMetadata) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.write(meta)
}

func (s *StructuredUI) write(v interface{}) error {
	defer func() { s.docs++ }()

	switch s.format {
	case FormatYAML:
		if s.docs > 0 {
			if _, err := io.WriteString(s.out, "---\n"); err != nil {
				return err
			}
		}

		enc := yaml.NewEncoder(s.out)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	case FormatJSON, FormatText:
	}

	enc := json.NewEncoder(s.out)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}
