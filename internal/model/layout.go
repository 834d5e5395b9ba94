package model

import (
	"fmt"
	"strings"
)

// LayoutKind classifies how a project maps source files to compiled output.
type LayoutKind int

const (
	// LayoutUnclassified means none of the layout heuristics matched.
	LayoutUnclassified LayoutKind = iota
	// LayoutUnmanaged is a plain IDE project writing to out/production.
	LayoutUnmanaged
	// LayoutSingleModule is a single-module dependency-manager project.
	LayoutSingleModule
	// LayoutMultiModule is a project declaring one or more sub-modules.
	LayoutMultiModule
)

var layoutKindNames = map[LayoutKind]string{
	LayoutUnclassified: "UNCLASSIFIED",
	LayoutUnmanaged:    "UNMANAGED",
	LayoutSingleModule: "SINGLE_MODULE",
	LayoutMultiModule:  "MULTI_MODULE",
}

func (k LayoutKind) String() string {
	if name, ok := layoutKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("LayoutKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k LayoutKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *LayoutKind) UnmarshalText(text []byte) error {
	want := strings.ToUpper(strings.TrimSpace(string(text)))
	for kind, name := range layoutKindNames {
		if name == want {
			*k = kind
			return nil
		}
	}

	return fmt.Errorf("unknown layout kind %q", string(text))
}

// DependencyKind tells module dependencies from library archives.
type DependencyKind string

const (
	// DependencyModule points at another module of the same project.
	DependencyModule DependencyKind = "module"
	// DependencyArchive points at packaged library archives.
	DependencyArchive DependencyKind = "archive"
)

// Dependency is an edge from a module to another module or to archives.
type Dependency struct {
	Kind     DependencyKind `json:"kind" yaml:"kind"`
	Module   string         `json:"module,omitempty" yaml:"module,omitempty"`
	Archives []Path         `json:"archives,omitempty" yaml:"archives,omitempty"`
}

// Module is the host's view of one project module.
type Module struct {
	Name            string       `json:"name" yaml:"name"`
	ContentRoots    []Path       `json:"content_roots,omitempty" yaml:"content_roots,omitempty"`
	SourceRoots     []Path       `json:"source_roots,omitempty" yaml:"source_roots,omitempty"`
	TestSourceRoots []Path       `json:"test_source_roots,omitempty" yaml:"test_source_roots,omitempty"`
	OutputDir       Path         `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	TestOutputDir   Path         `json:"test_output_dir,omitempty" yaml:"test_output_dir,omitempty"`
	Dependencies    []Dependency `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// Root returns the module's first content root, or "" when none is declared.
func (m Module) Root() Path {
	if len(m.ContentRoots) == 0 {
		return ""
	}

	return m.ContentRoots[0]
}

// OutputDirs returns the configured production and test output roots.
func (m Module) OutputDirs() []Path {
	var dirs []Path
	if m.OutputDir != "" {
		dirs = append(dirs, m.OutputDir)
	}

	if m.TestOutputDir != "" {
		dirs = append(dirs, m.TestOutputDir)
	}

	return dirs
}

// ProjectMetadata is the minimal project description supplied by the host.
type ProjectMetadata struct {
	Root         Path     `json:"root" yaml:"root"`
	Name         string   `json:"name,omitempty" yaml:"name,omitempty"`
	ContentRoots []Path   `json:"content_roots,omitempty" yaml:"content_roots,omitempty"`
	Modules      []Module `json:"modules,omitempty" yaml:"modules,omitempty"`
}

// ProjectName returns the declared name or the root directory's base name.
func (p ProjectMetadata) ProjectName() string {
	if strings.TrimSpace(p.Name) != "" {
		return p.Name
	}

	if p.Root == "" {
		return ""
	}

	return p.Root.Base()
}

// FindModule returns the module with the given name.
func (p ProjectMetadata) FindModule(name string) (Module, bool) {
	for _, mod := range p.Modules {
		if mod.Name == name {
			return mod, true
		}
	}

	return Module{}, false
}

// ProjectLayout is the classified layout of a project. It is computed per
// resolution and never cached.
type ProjectLayout struct {
	Root        Path            `json:"root" yaml:"root"`
	Name        string          `json:"name" yaml:"name"`
	Kind        LayoutKind      `json:"kind" yaml:"kind"`
	ModuleRoots []Path          `json:"module_roots,omitempty" yaml:"module_roots,omitempty"`
	Metadata    ProjectMetadata `json:"-" yaml:"-"`
}
