package controller

import (
	"bytes"

	"github.com/spf13/cobra"

	m "classloc.dev/pkg/classloc/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	return cmd, &stdout, &stderr
}

func testSource() m.SourceFile {
	return m.SourceFile{Path: "/proj/src/main/java/com/x/Foo.java", Package: "com.x", Name: "Foo"}
}

func testLayout() m.ProjectLayout {
	return m.ProjectLayout{Root: "/proj", Name: "proj", Kind: m.LayoutSingleModule}
}

func foundResult() m.ResolutionResult {
	found := m.NewFileCandidate("/proj/target/classes/com/x/Foo.class", m.OriginBuildTool)

	return m.ResolutionResult{
		Source:     testSource(),
		Layout:     testLayout(),
		Found:      true,
		Path:       found.Path,
		Origin:     found.Origin,
		Candidates: []m.Candidate{found},
		Existing:   []m.Candidate{found},
	}
}

func archiveResult() m.ResolutionResult {
	found := m.NewArchiveCandidate("/libs/dep.jar", "com/x/Foo.class", m.OriginModuleOutput)

	return m.ResolutionResult{
		Source:     testSource(),
		Layout:     testLayout(),
		Found:      true,
		Path:       found.Path,
		Origin:     found.Origin,
		Caveats:    []m.Caveat{m.CaveatArchiveEntryUnverified},
		Candidates: []m.Candidate{found},
		Existing:   []m.Candidate{found},
	}
}

func notFoundResult() m.ResolutionResult {
	return m.ResolutionResult{
		Source: testSource(),
		Layout: testLayout(),
		Candidates: []m.Candidate{
			m.NewFileCandidate("/proj/target/classes/com/x/Foo.class", m.OriginBuildTool),
			m.NewFileCandidate("/proj/out/com/x/Foo.class", m.OriginProjectOutput),
		},
		Fallbacks: []m.Candidate{
			m.NewFileCandidate("/proj/target/classes/com/x/Foo.class", m.OriginLayoutInferred),
		},
	}
}

func testReport(withExisting bool) m.CandidateReport {
	first := m.NewFileCandidate("/proj/target/classes/com/x/Foo.class", m.OriginBuildTool)
	second := m.NewFileCandidate("/proj/bin/com/x/Foo.class", m.OriginSourceRelative)

	report := m.CandidateReport{
		Source:     testSource(),
		Layout:     testLayout(),
		Candidates: []m.Candidate{first, second},
	}

	if withExisting {
		report.Existing = []m.Candidate{second}
		report.MostLikely = &second
	}

	return report
}
