package model

import "fmt"

// Origin identifies the strategy or fallback tier that produced a path.
type Origin string

const (
	// OriginModuleOutput comes from a module's configured output roots.
	OriginModuleOutput Origin = "module-output"
	// OriginProjectOutput comes from conventional output dirs under content roots.
	OriginProjectOutput Origin = "project-output"
	// OriginBuildTool comes from Maven or Gradle source-to-output conventions.
	OriginBuildTool Origin = "build-tool"
	// OriginSourceRelative re-roots the source-relative path under generic dirs.
	OriginSourceRelative Origin = "source-relative"
	// OriginLayoutInferred is the resolver's layout-keyed fallback.
	OriginLayoutInferred Origin = "layout-inferred"
	// OriginGenericPattern is the resolver's last fallback tier.
	OriginGenericPattern Origin = "generic-pattern"
)

// ArchiveSeparator joins an archive path and the entry inside it.
const ArchiveSeparator = "!/"

// Candidate is a path that might hold the compiled class.
type Candidate struct {
	Path        Path   `json:"path" yaml:"path"`
	Origin      Origin `json:"origin" yaml:"origin"`
	Archive     bool   `json:"archive,omitempty" yaml:"archive,omitempty"`
	ArchivePath Path   `json:"archive_path,omitempty" yaml:"archive_path,omitempty"`
	Entry       string `json:"entry,omitempty" yaml:"entry,omitempty"`
}

// NewFileCandidate builds a loose-file candidate.
func NewFileCandidate(path Path, origin Origin) Candidate {
	return Candidate{Path: path, Origin: origin}
}

// NewArchiveCandidate builds a candidate pointing inside an archive. entry
// uses '/' separators regardless of the platform.
func NewArchiveCandidate(archive Path, entry string, origin Origin) Candidate {
	return Candidate{
		Path:        Path(fmt.Sprintf("%s%s%s", archive, ArchiveSeparator, entry)),
		Origin:      origin,
		Archive:     true,
		ArchivePath: archive,
		Entry:       entry,
	}
}

func (c Candidate) String() string {
	return fmt.Sprintf("%s (%s)", c.Path, c.Origin)
}
