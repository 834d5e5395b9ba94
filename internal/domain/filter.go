package domain

import (
	"classloc.dev/pkg/classloc/internal/adapter"
	m "classloc.dev/pkg/classloc/internal/model"
)

// ExistenceFilter narrows candidates to the ones present on disk.
type ExistenceFilter interface {
	Filter(candidates []m.Candidate) []m.Candidate
}

type existenceFilter struct {
	fs adapter.SourceFSAdapter
}

// NewExistenceFilter creates an ExistenceFilter probing through fs.
func NewExistenceFilter(fs adapter.SourceFSAdapter) ExistenceFilter {
	return &existenceFilter{fs: fs}
}

// Filter keeps existing candidates in generation order. Archive members are
// accepted when the archive file exists; the entry itself is not looked up.
// A member of a missing jar never matches.
func (f *existenceFilter) Filter(candidates []m.Candidate) []m.Candidate {
	out := make([]m.Candidate, 0, len(candidates))

	for _, c := range candidates {
		if f.exists(c) {
			out = append(out, c)
		}
	}

	return out
}

func (f *existenceFilter) exists(c m.Candidate) bool {
	if c.Archive {
		return f.fs.Exists(c.ArchivePath)
	}

	return f.fs.Exists(c.Path)
}
