package domain

import (
	"fmt"
	"log/slog"

	"classloc.dev/pkg/classloc/internal/adapter"
	m "classloc.dev/pkg/classloc/internal/model"
)

// Resolver picks the single best class file for a source file.
type Resolver interface {
	Resolve(src m.SourceFile, layout m.ProjectLayout) (m.ResolutionResult, error)
}

type resolver struct {
	fs        adapter.SourceFSAdapter
	generator CandidateGenerator
	filter    ExistenceFilter
}

// NewResolver wires a Resolver from its collaborators.
func NewResolver(fs adapter.SourceFSAdapter, generator CandidateGenerator, filter ExistenceFilter) Resolver {
	return &resolver{fs: fs, generator: generator, filter: filter}
}

// Resolve applies the selection policy, stopping at the first hit:
//  1. the first existing candidate in generation order;
//  2. the layout-inferred path, when it exists;
//  3. the first existing generic rewrite of the source path;
//  4. NOT_FOUND, carrying every generated candidate.
//
// The existing list is computed by a single filter pass, so "most likely" and
// "first existing" cannot disagree.
func (r *resolver) Resolve(src m.SourceFile, layout m.ProjectLayout) (m.ResolutionResult, error) {
	result := m.ResolutionResult{Source: src, Layout: layout}

	if layout.Kind == m.LayoutUnclassified {
		return result, fmt.Errorf("%w: %s", m.ErrLayoutUnclassifiable, layout.Root)
	}

	result.Candidates = r.generator.Generate(src, layout)
	result.Existing = r.filter.Filter(result.Candidates)

	if len(result.Existing) > 0 {
		r.accept(&result, result.Existing[0])
		return result, nil
	}

	if inferred, ok := inferByLayout(src, layout); ok {
		c := m.NewFileCandidate(inferred, m.OriginLayoutInferred)
		result.Fallbacks = append(result.Fallbacks, c)

		if r.fs.Exists(inferred) {
			r.accept(&result, c)
			return result, nil
		}
	}

	for _, path := range genericFallbacks(src, layout) {
		c := m.NewFileCandidate(path, m.OriginGenericPattern)
		result.Fallbacks = append(result.Fallbacks, c)

		if r.fs.Exists(path) {
			r.accept(&result, c)
			return result, nil
		}
	}

	slog.Debug("no class file found", "source", src.Path, "candidates", len(result.Candidates))

	return result, nil
}

func (r *resolver) accept(result *m.ResolutionResult, c m.Candidate) {
	result.Found = true
	result.Path = c.Path
	result.Origin = c.Origin

	if c.Archive {
		result.Caveats = append(result.Caveats, m.CaveatArchiveEntryUnverified)
	}

	slog.Debug("resolved class file", "source", result.Source.Path, "path", c.Path, "origin", c.Origin)
}

// inferByLayout derives the class path from the layout kind alone:
//
//	UNMANAGED      <root>/src/…           -> <root>/out/production/<name>/…
//	SINGLE_MODULE  <root>/src/main/<lang>/… -> <root>/target/classes/…
//	MULTI_MODULE   …/src/main/<lang>/…    -> …/target/classes/…
func inferByLayout(src m.SourceFile, layout m.ProjectLayout) (m.Path, bool) {
	switch layout.Kind {
	case m.LayoutUnmanaged:
		if layout.Root == "" || layout.Name == "" {
			return "", false
		}

		return rerootRelative(src, layout.Root.Join("src"), layout.Root.Join("out", "production", layout.Name))
	case m.LayoutSingleModule:
		if layout.Root == "" {
			return "", false
		}

		return rerootRelative(src, layout.Root.Join("src", "main", src.Language.Dir), layout.Root.Join("target", "classes"))
	case m.LayoutMultiModule:
		return rewriteNearest(src, []segmentRule{rule("src/main/"+src.Language.Dir, "target/classes")})
	default:
		return "", false
	}
}

func genericFallbacks(src m.SourceFile, layout m.ProjectLayout) []m.Path {
	var out []m.Path

	for _, r := range genericRules(src.Language, layout.Name) {
		if path, ok := rewriteNearest(src, []segmentRule{r}); ok {
			out = append(out, path)
		}
	}

	return out
}
