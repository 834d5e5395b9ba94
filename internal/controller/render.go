package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	m "classloc.dev/pkg/classloc/internal/model"
)

const unknownLabel = "Unknown"

func renderCandidateTable(report m.CandidateReport) string {
	var tableBuffer bytes.Buffer

	existing := make(map[m.Path]bool, len(report.Existing))
	for _, c := range report.Existing {
		existing[c.Path] = true
	}

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Origin", "Exists", "Path"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT,
	})

	for i, c := range report.Candidates {
		mark := ""
		if existing[c.Path] {
			mark = "yes"
		}

		table.Append([]string{strconv.Itoa(i + 1), string(c.Origin), mark, string(c.Path)})
	}

	table.SetFooter([]string{
		"", fmt.Sprintf("Total %d", len(report.Candidates)), fmt.Sprintf("%d", len(report.Existing)), "",
	})

	table.Render()

	return tableBuffer.String()
}

func mostLikelyLabel(report m.CandidateReport) string {
	if report.MostLikely == nil {
		return unknownLabel
	}

	return string(report.MostLikely.Path)
}

func layoutLines(layout m.ProjectLayout) []string {
	lines := []string{
		fmt.Sprintf("Project root: %s", layout.Root),
		fmt.Sprintf("Project name: %s", layout.Name),
		fmt.Sprintf("Layout: %s", layout.Kind),
	}

	if len(layout.ModuleRoots) > 0 {
		lines = append(lines, "Module roots:")
		for _, root := range layout.ModuleRoots {
			lines = append(lines, "  "+string(root))
		}
	}

	return lines
}

func candidatePaths(candidates []m.Candidate) []string {
	lines := make([]string, 0, len(candidates))
	for _, c := range candidates {
		lines = append(lines, "  "+c.String())
	}

	return lines
}

func caveatNote(result m.ResolutionResult) string {
	if !result.HasCaveat(m.CaveatArchiveEntryUnverified) {
		return ""
	}

	return fmt.Sprintf("note: %s was not verified inside the archive", result.Path)
}

// notFoundLines lists what was tried for a NOT_FOUND result.
func notFoundLines(result m.ResolutionResult) []string {
	lines := []string{
		fmt.Sprintf("%s: %s", result.Source.Path, notFoundMessage),
		"Possible paths:",
	}
	lines = append(lines, candidatePaths(result.Candidates)...)

	if len(result.Fallbacks) > 0 {
		lines = append(lines, "Fallback paths:")
		lines = append(lines, candidatePaths(result.Fallbacks)...)
	}

	return lines
}

func marshalProjectYAML(meta m.ProjectMetadata) (string, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(meta); err != nil {
		return "", fmt.Errorf("encode project: %w", err)
	}

	if err := enc.Close(); err != nil {
		return "", err
	}

	return buf.String(), nil
}
