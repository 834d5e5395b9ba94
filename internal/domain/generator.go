package domain

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"classloc.dev/pkg/classloc/internal/adapter"
	m "classloc.dev/pkg/classloc/internal/model"
)

// CandidateGenerator enumerates every syntactically plausible class file
// location for a source file.
type CandidateGenerator interface {
	Generate(src m.SourceFile, layout m.ProjectLayout) []m.Candidate
}

type strategy struct {
	origin m.Origin
	run    func(src m.SourceFile, layout m.ProjectLayout) []m.Candidate
}

type candidateGenerator struct {
	fs         adapter.SourceFSAdapter
	strategies []strategy
}

// NewCandidateGenerator creates a CandidateGenerator. Strategies run in
// confidence order: module output, project output, build-tool convention,
// source-relative fallback.
func NewCandidateGenerator(fs adapter.SourceFSAdapter) CandidateGenerator {
	g := &candidateGenerator{fs: fs}
	g.strategies = []strategy{
		{origin: m.OriginModuleOutput, run: g.moduleOutput},
		{origin: m.OriginProjectOutput, run: g.projectOutput},
		{origin: m.OriginBuildTool, run: g.buildToolConvention},
		{origin: m.OriginSourceRelative, run: g.sourceRelative},
	}

	return g
}

// Generate concatenates every strategy's output and drops duplicate paths,
// keeping the first occurrence so the earliest strategy's tag wins.
func (g *candidateGenerator) Generate(src m.SourceFile, layout m.ProjectLayout) []m.Candidate {
	var all []m.Candidate

	for _, s := range g.strategies {
		found := runStrategy(s, src, layout)
		slog.Debug("candidate strategy finished", "origin", s.origin, "source", src.Path, "candidates", len(found))
		all = append(all, found...)
	}

	return dedupCandidates(all)
}

// runStrategy isolates a strategy so a failure contributes nothing instead of
// aborting the whole generation.
func runStrategy(s strategy, src m.SourceFile, layout m.ProjectLayout) (found []m.Candidate) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("candidate strategy failed", "origin", s.origin, "source", src.Path, "error", fmt.Sprint(r))
			found = nil
		}
	}()

	return s.run(src, layout)
}

func dedupCandidates(candidates []m.Candidate) []m.Candidate {
	seen := make(map[m.Path]struct{}, len(candidates))
	out := make([]m.Candidate, 0, len(candidates))

	for _, c := range candidates {
		if c.Path == "" {
			continue
		}

		if _, ok := seen[c.Path]; ok {
			continue
		}

		seen[c.Path] = struct{}{}
		out = append(out, c)
	}

	return out
}

// moduleOutput combines the owning module's output roots (or every module's,
// when ownership is unknown) with the package path, then follows dependency
// edges one level deep.
func (g *candidateGenerator) moduleOutput(src m.SourceFile, layout m.ProjectLayout) []m.Candidate {
	meta := layout.Metadata

	modules := meta.Modules
	if owner, ok := owningModule(meta, src.Path); ok {
		modules = []m.Module{owner}
	}

	var out []m.Candidate

	for _, mod := range modules {
		out = append(out, outputDirCandidates(src, mod)...)

		for _, dep := range mod.Dependencies {
			switch dep.Kind {
			case m.DependencyModule:
				if depMod, ok := meta.FindModule(dep.Module); ok {
					out = append(out, outputDirCandidates(src, depMod)...)
				}
			case m.DependencyArchive:
				out = append(out, archiveCandidates(src, dep.Archives)...)
			}
		}
	}

	return out
}

func outputDirCandidates(src m.SourceFile, mod m.Module) []m.Candidate {
	dirs := mod.OutputDirs()
	out := make([]m.Candidate, 0, len(dirs))

	for _, dir := range dirs {
		out = append(out, m.NewFileCandidate(src.ClassPathUnder(dir), m.OriginModuleOutput))
	}

	return out
}

// archiveCandidates points into jar libraries. Classes in the default package
// are not looked up in archives.
func archiveCandidates(src m.SourceFile, archives []m.Path) []m.Candidate {
	if src.Package == "" {
		return nil
	}

	var out []m.Candidate

	for _, archive := range archives {
		if !strings.EqualFold(filepath.Ext(string(archive)), ".jar") {
			continue
		}

		out = append(out, m.NewArchiveCandidate(archive, src.ClassEntry(), m.OriginModuleOutput))
	}

	return out
}

// owningModule returns the module with the longest root containing path.
// Source roots, test source roots and content roots all count.
func owningModule(meta m.ProjectMetadata, path m.Path) (m.Module, bool) {
	var (
		owner   m.Module
		bestLen = -1
	)

	for _, mod := range meta.Modules {
		roots := make([]m.Path, 0, len(mod.SourceRoots)+len(mod.TestSourceRoots)+len(mod.ContentRoots))
		roots = append(roots, mod.SourceRoots...)
		roots = append(roots, mod.TestSourceRoots...)
		roots = append(roots, mod.ContentRoots...)

		for _, root := range roots {
			if root == "" || !root.Contains(path) {
				continue
			}

			if l := len(filepath.Clean(string(root))); l > bestLen {
				owner, bestLen = mod, l
			}
		}
	}

	return owner, bestLen >= 0
}

// projectOutput probes conventional output directory names directly under
// every content root.
func (g *candidateGenerator) projectOutput(src m.SourceFile, layout m.ProjectLayout) []m.Candidate {
	roots := layout.Metadata.ContentRoots
	if len(roots) == 0 && layout.Root != "" {
		roots = []m.Path{layout.Root}
	}

	var out []m.Candidate

	for _, root := range roots {
		for _, name := range projectOutputDirs {
			dir := root.Join(name)
			if !g.fs.IsDir(dir) {
				continue
			}

			out = append(out, m.NewFileCandidate(src.ClassPathUnder(dir), m.OriginProjectOutput))
		}
	}

	return out
}

// buildToolConvention rewrites the nearest standard source root to the
// matching output root for every build tool whose marker sits at the root.
func (g *candidateGenerator) buildToolConvention(src m.SourceFile, layout m.ProjectLayout) []m.Candidate {
	if layout.Root == "" {
		return nil
	}

	var out []m.Candidate

	for _, tool := range buildTools {
		if !g.hasAnyMarker(layout.Root, tool.markers) {
			continue
		}

		if path, ok := rewriteNearest(src, tool.rules(src.Language)); ok {
			out = append(out, m.NewFileCandidate(path, m.OriginBuildTool))
		}
	}

	return out
}

func (g *candidateGenerator) hasAnyMarker(root m.Path, markers []string) bool {
	for _, marker := range markers {
		if g.fs.Exists(root.Join(marker)) {
			return true
		}
	}

	return false
}

// sourceRelative re-roots the path relative to the first module source root
// containing the file under a fixed list of generic output directories.
func (g *candidateGenerator) sourceRelative(src m.SourceFile, layout m.ProjectLayout) []m.Candidate {
	for _, mod := range layout.Metadata.Modules {
		roots := make([]m.Path, 0, len(mod.SourceRoots)+len(mod.TestSourceRoots))
		roots = append(roots, mod.SourceRoots...)
		roots = append(roots, mod.TestSourceRoots...)

		for _, srcRoot := range roots {
			if srcRoot == "" || !srcRoot.Contains(src.Path) {
				continue
			}

			modRoot := mod.Root()
			if modRoot == "" {
				return nil
			}

			out := make([]m.Candidate, 0, len(sourceRelativeOutputDirs))

			for _, dir := range sourceRelativeOutputDirs {
				if path, ok := rerootRelative(src, srcRoot, modRoot.Join(filepath.FromSlash(dir))); ok {
					out = append(out, m.NewFileCandidate(path, m.OriginSourceRelative))
				}
			}

			return out
		}
	}

	return nil
}
