package domain

import (
	"log/slog"
	"path/filepath"

	"classloc.dev/pkg/classloc/internal/adapter"
	m "classloc.dev/pkg/classloc/internal/model"
)

// LayoutClassifier decides which layout convention a project follows.
type LayoutClassifier interface {
	Classify(meta m.ProjectMetadata) m.ProjectLayout
}

type layoutClassifier struct {
	fs adapter.SourceFSAdapter
}

// NewLayoutClassifier creates a LayoutClassifier probing through fs.
func NewLayoutClassifier(fs adapter.SourceFSAdapter) LayoutClassifier {
	return &layoutClassifier{fs: fs}
}

// Classify applies the heuristics in order, first match wins:
//  1. out/production exists            -> UNMANAGED
//  2. target/classes exists            -> SINGLE_MODULE
//  3. at least one module is declared  -> MULTI_MODULE
//  4. otherwise                        -> UNCLASSIFIED
//
// Filesystem evidence is trusted over metadata, so stale output directories
// left by another build system win over declared modules.
func (c *layoutClassifier) Classify(meta m.ProjectMetadata) m.ProjectLayout {
	layout := m.ProjectLayout{
		Root:     meta.Root,
		Name:     meta.ProjectName(),
		Metadata: meta,
	}

	for _, mod := range meta.Modules {
		if root := mod.Root(); root != "" {
			layout.ModuleRoots = append(layout.ModuleRoots, root)
		}
	}

	switch {
	case c.hasDir(meta.Root, unmanagedOutputMarker):
		layout.Kind = m.LayoutUnmanaged
	case c.hasDir(meta.Root, singleModuleOutputMarker):
		layout.Kind = m.LayoutSingleModule
	case len(meta.Modules) > 0:
		layout.Kind = m.LayoutMultiModule
	default:
		layout.Kind = m.LayoutUnclassified
	}

	slog.Debug("classified project layout", "root", meta.Root, "kind", layout.Kind, "modules", len(meta.Modules))

	return layout
}

func (c *layoutClassifier) hasDir(root m.Path, marker string) bool {
	if root == "" {
		return false
	}

	return c.fs.IsDir(root.Join(filepath.FromSlash(marker)))
}
