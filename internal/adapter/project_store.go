package adapter

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "classloc.dev/pkg/classloc/internal/model"
)

// ProjectFileName is the conventional project metadata file at a project root.
const ProjectFileName = "classloc-project.yaml"

// ProjectStore persists host-supplied project metadata as YAML.
type ProjectStore interface {
	LoadProject(path m.Path) (m.ProjectMetadata, error)
	SaveProject(path m.Path, meta m.ProjectMetadata) error
}

// YAMLProjectStore reads and writes project files through a SourceFSAdapter.
type YAMLProjectStore struct {
	fs SourceFSAdapter
}

// NewProjectStore creates a YAMLProjectStore.
func NewProjectStore(fs SourceFSAdapter) *YAMLProjectStore {
	return &YAMLProjectStore{fs: fs}
}

// LoadProject decodes a project file. Relative paths inside it are resolved
// against the declared root, which itself defaults to the file's directory.
// A relative path names a file below the working directory.
func (s *YAMLProjectStore) LoadProject(path m.Path) (m.ProjectMetadata, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return m.ProjectMetadata{}, fmt.Errorf("resolve project file %s: %w", path, err)
	}

	path = m.Path(abs)

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return m.ProjectMetadata{}, fmt.Errorf("read project file: %w", err)
	}

	var meta m.ProjectMetadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return m.ProjectMetadata{}, fmt.Errorf("decode project file %s: %w", path, err)
	}

	base := path.Dir()
	if meta.Root == "" {
		meta.Root = base
	} else {
		meta.Root = absUnder(base, meta.Root)
	}

	resolveProjectPaths(&meta)

	return meta, nil
}

// SaveProject encodes meta to path.
func (s *YAMLProjectStore) SaveProject(path m.Path, meta m.ProjectMetadata) error {
	data, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encode project file: %w", err)
	}

	if err := s.fs.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write project file %s: %w", path, err)
	}

	return nil
}

func resolveProjectPaths(meta *m.ProjectMetadata) {
	root := meta.Root

	meta.ContentRoots = absAllUnder(root, meta.ContentRoots)

	for i := range meta.Modules {
		mod := &meta.Modules[i]
		mod.ContentRoots = absAllUnder(root, mod.ContentRoots)

		modRoot := root
		if mod.Root() != "" {
			modRoot = mod.Root()
		}

		mod.SourceRoots = absAllUnder(modRoot, mod.SourceRoots)
		mod.TestSourceRoots = absAllUnder(modRoot, mod.TestSourceRoots)

		if mod.OutputDir != "" {
			mod.OutputDir = absUnder(modRoot, mod.OutputDir)
		}

		if mod.TestOutputDir != "" {
			mod.TestOutputDir = absUnder(modRoot, mod.TestOutputDir)
		}

		for j := range mod.Dependencies {
			mod.Dependencies[j].Archives = absAllUnder(modRoot, mod.Dependencies[j].Archives)
		}
	}
}

func absAllUnder(base m.Path, paths []m.Path) []m.Path {
	if len(paths) == 0 {
		return paths
	}

	out := make([]m.Path, 0, len(paths))
	for _, p := range paths {
		out = append(out, absUnder(base, p))
	}

	return out
}

func absUnder(base, p m.Path) m.Path {
	str := filepath.FromSlash(string(p))
	if filepath.IsAbs(str) {
		return m.Path(filepath.Clean(str))
	}

	return base.Join(str)
}
