package adapter

import (
	"encoding/xml"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	m "classloc.dev/pkg/classloc/internal/model"
)

// Build tool manifest names looked up at a project root.
const (
	MavenManifest        = "pom.xml"
	GradleBuildScript    = "build.gradle"
	GradleBuildScriptKts = "build.gradle.kts"
	GradleSettings       = "settings.gradle"
	GradleSettingsKts    = "settings.gradle.kts"
)

// GradleMarkers lists the files that mark a Gradle project root.
var GradleMarkers = []string{GradleBuildScript, GradleBuildScriptKts, GradleSettings, GradleSettingsKts}

const maxModuleDepth = 8

var (
	gradleIncludeLine  = regexp.MustCompile(`(?m)^\s*include\b(.*)$`)
	gradleQuoted       = regexp.MustCompile(`["']([^"']+)["']`)
	gradleProjectDepRe = regexp.MustCompile(`project\s*\(\s*(?:path\s*[:=]\s*)?["']([^"']+)["']`)
)

// ProjectDiscoverer derives project metadata from build manifests when the
// host did not supply a project file.
type ProjectDiscoverer interface {
	Discover(root m.Path) (m.ProjectMetadata, error)
}

// ManifestProjectDiscoverer reads Maven aggregator POMs and Gradle settings
// scripts. Only declared sub-modules become modules; the root project itself
// is described by its content root.
type ManifestProjectDiscoverer struct {
	fs SourceFSAdapter
}

// NewProjectDiscoverer creates a ManifestProjectDiscoverer.
func NewProjectDiscoverer(fs SourceFSAdapter) *ManifestProjectDiscoverer {
	return &ManifestProjectDiscoverer{fs: fs}
}

// Discover builds metadata for root. Unreadable or malformed manifests
// contribute no modules rather than failing discovery.
func (d *ManifestProjectDiscoverer) Discover(root m.Path) (m.ProjectMetadata, error) {
	abs, err := filepath.Abs(string(root))
	if err != nil {
		return m.ProjectMetadata{}, err
	}

	root = m.Path(abs)

	meta := m.ProjectMetadata{
		Root:         root,
		Name:         root.Base(),
		ContentRoots: []m.Path{root},
	}

	switch {
	case d.fs.Exists(root.Join(MavenManifest)):
		meta.Modules = d.discoverMaven(root)
	case d.fs.Exists(root.Join(GradleSettings)) || d.fs.Exists(root.Join(GradleSettingsKts)):
		meta.Modules = d.discoverGradle(root)
	}

	slog.Debug("discovered project", "root", root, "modules", len(meta.Modules))

	return meta, nil
}

type pomFile struct {
	ArtifactID   string   `xml:"artifactId"`
	Modules      []string `xml:"modules>module"`
	Dependencies []struct {
		ArtifactID string `xml:"artifactId"`
	} `xml:"dependencies>dependency"`
}

func (d *ManifestProjectDiscoverer) readPom(dir m.Path) (pomFile, bool) {
	var pom pomFile

	data, err := d.fs.ReadFile(dir.Join(MavenManifest))
	if err != nil {
		return pom, false
	}

	if err := xml.Unmarshal(data, &pom); err != nil {
		slog.Debug("skipping malformed pom", "dir", dir, "error", err)
		return pom, false
	}

	return pom, true
}

func (d *ManifestProjectDiscoverer) discoverMaven(root m.Path) []m.Module {
	type found struct {
		module m.Module
		deps   []string
	}

	var (
		modules []found
		byID    = map[string]string{}
		visited = map[m.Path]bool{root: true}
	)

	var walk func(dir m.Path, depth int)
	walk = func(dir m.Path, depth int) {
		pom, ok := d.readPom(dir)
		if !ok || depth > maxModuleDepth {
			return
		}

		for _, rel := range pom.Modules {
			modDir := absUnder(dir, m.Path(strings.TrimSpace(rel)))
			if visited[modDir] || !d.fs.IsDir(modDir) {
				continue
			}

			visited[modDir] = true

			child, ok := d.readPom(modDir)
			if !ok {
				continue
			}

			name := child.ArtifactID
			if name == "" {
				name = modDir.Base()
			}

			mod := standardModule(d.fs, name, modDir, "target/classes", "target/test-classes")

			var deps []string
			for _, dep := range child.Dependencies {
				deps = append(deps, dep.ArtifactID)
			}

			byID[child.ArtifactID] = name
			modules = append(modules, found{module: mod, deps: deps})

			walk(modDir, depth+1)
		}
	}

	walk(root, 0)

	out := make([]m.Module, 0, len(modules))
	for _, f := range modules {
		for _, dep := range f.deps {
			if name, ok := byID[dep]; ok && name != f.module.Name {
				f.module.Dependencies = append(f.module.Dependencies, m.Dependency{Kind: m.DependencyModule, Module: name})
			}
		}

		out = append(out, f.module)
	}

	return out
}

func (d *ManifestProjectDiscoverer) discoverGradle(root m.Path) []m.Module {
	var settings []byte

	for _, name := range []string{GradleSettingsKts, GradleSettings} {
		data, err := d.fs.ReadFile(root.Join(name))
		if err == nil {
			settings = data
			break
		}
	}

	var modules []m.Module

	seen := map[string]bool{}

	for _, path := range gradleIncludes(settings) {
		name := strings.Trim(path, ":")
		if name == "" || seen[name] {
			continue
		}

		seen[name] = true

		modDir := root.Join(strings.Split(name, ":")...)
		if !d.fs.IsDir(modDir) {
			continue
		}

		lang := moduleLanguage(d.fs, modDir)
		mod := standardModule(d.fs, name, modDir,
			"build/classes/"+lang+"/main", "build/classes/"+lang+"/test")

		for _, dep := range d.gradleProjectDeps(modDir) {
			if dep != name {
				mod.Dependencies = append(mod.Dependencies, m.Dependency{Kind: m.DependencyModule, Module: dep})
			}
		}

		modules = append(modules, mod)
	}

	return modules
}

func (d *ManifestProjectDiscoverer) gradleProjectDeps(modDir m.Path) []string {
	var deps []string

	for _, script := range []string{GradleBuildScriptKts, GradleBuildScript} {
		data, err := d.fs.ReadFile(modDir.Join(script))
		if err != nil {
			continue
		}

		for _, match := range gradleProjectDepRe.FindAllSubmatch(data, -1) {
			deps = append(deps, strings.Trim(string(match[1]), ":"))
		}
	}

	return deps
}

// gradleIncludes extracts project paths from include statements in a
// settings script, e.g. include(":app", ":lib") or include 'core'.
func gradleIncludes(settings []byte) []string {
	var paths []string

	for _, line := range gradleIncludeLine.FindAllSubmatch(settings, -1) {
		args := string(line[1])
		if idx := strings.Index(args, "//"); idx >= 0 {
			args = args[:idx]
		}

		for _, quoted := range gradleQuoted.FindAllStringSubmatch(args, -1) {
			paths = append(paths, quoted[1])
		}
	}

	return paths
}

func moduleLanguage(fs SourceFSAdapter, modDir m.Path) string {
	for _, lang := range m.Languages {
		if fs.IsDir(modDir.Join("src", "main", lang.Dir)) {
			return lang.Dir
		}
	}

	return "java"
}

func standardModule(fs SourceFSAdapter, name string, modDir m.Path, output, testOutput string) m.Module {
	mod := m.Module{
		Name:          name,
		ContentRoots:  []m.Path{modDir},
		OutputDir:     modDir.Join(filepath.FromSlash(output)),
		TestOutputDir: modDir.Join(filepath.FromSlash(testOutput)),
	}

	for _, lang := range m.Languages {
		if main := modDir.Join("src", "main", lang.Dir); fs.IsDir(main) {
			mod.SourceRoots = append(mod.SourceRoots, main)
		}

		if test := modDir.Join("src", "test", lang.Dir); fs.IsDir(test) {
			mod.TestSourceRoots = append(mod.TestSourceRoots, test)
		}
	}

	if len(mod.SourceRoots) == 0 {
		mod.SourceRoots = []m.Path{modDir.Join("src", "main", "java")}
	}

	return mod
}
