package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classloc.dev/pkg/classloc/internal/adapter"
	m "classloc.dev/pkg/classloc/internal/model"
)

func newTestGenerator() CandidateGenerator {
	return NewCandidateGenerator(adapter.NewLocalSourceFSAdapter())
}

func TestCandidateGenerator_StrategyOrder(t *testing.T) {
	root := projectDir(t, "shop")
	touch(t, root, "pom.xml")
	mkdirs(t, root, "target/classes")
	mkdirs(t, root, "bin")

	src := mustSource(t, p(root, "src/main/java/com/x/Foo.java"), "com.x")
	meta := m.ProjectMetadata{
		Root:         m.Path(root),
		ContentRoots: []m.Path{m.Path(root)},
		Modules: []m.Module{{
			Name:          "shop",
			ContentRoots:  []m.Path{m.Path(root)},
			SourceRoots:   []m.Path{p(root, "src/main/java")},
			OutputDir:     p(root, "custom/classes"),
			TestOutputDir: p(root, "custom/test-classes"),
		}},
	}

	got := newTestGenerator().Generate(src, classify(meta))

	want := []m.Candidate{
		m.NewFileCandidate(p(root, "custom/classes/com/x/Foo.class"), m.OriginModuleOutput),
		m.NewFileCandidate(p(root, "custom/test-classes/com/x/Foo.class"), m.OriginModuleOutput),
		m.NewFileCandidate(p(root, "target/com/x/Foo.class"), m.OriginProjectOutput),
		m.NewFileCandidate(p(root, "bin/com/x/Foo.class"), m.OriginProjectOutput),
		m.NewFileCandidate(p(root, "target/classes/com/x/Foo.class"), m.OriginBuildTool),
		m.NewFileCandidate(p(root, "out/production/classes/com/x/Foo.class"), m.OriginSourceRelative),
		m.NewFileCandidate(p(root, "out/test/classes/com/x/Foo.class"), m.OriginSourceRelative),
		m.NewFileCandidate(p(root, "build/classes/com/x/Foo.class"), m.OriginSourceRelative),
	}

	// target/classes and bin from the source-relative strategy duplicate
	// earlier paths and are dropped.
	want = append(want, m.NewFileCandidate(p(root, "classes/com/x/Foo.class"), m.OriginSourceRelative))

	assert.Equal(t, want, got)
}

func TestCandidateGenerator_DedupKeepsEarliestOrigin(t *testing.T) {
	root := projectDir(t, "app")
	touch(t, root, "pom.xml")

	src := mustSource(t, p(root, "src/main/java/com/x/Foo.java"), "com.x")
	meta := m.ProjectMetadata{
		Root: m.Path(root),
		Modules: []m.Module{{
			Name:         "app",
			ContentRoots: []m.Path{m.Path(root)},
			SourceRoots:  []m.Path{p(root, "src/main/java")},
			OutputDir:    p(root, "target/classes"),
		}},
	}

	got := newTestGenerator().Generate(src, classify(meta))

	seen := map[m.Path]int{}
	for _, c := range got {
		seen[c.Path]++
	}

	for path, n := range seen {
		assert.Equal(t, 1, n, "duplicate candidate %s", path)
	}

	require.NotEmpty(t, got)
	assert.Equal(t, p(root, "target/classes/com/x/Foo.class"), got[0].Path)
	assert.Equal(t, m.OriginModuleOutput, got[0].Origin)
}

func TestCandidateGenerator_Deterministic(t *testing.T) {
	root := projectDir(t, "app")
	touch(t, root, "build.gradle")
	mkdirs(t, root, "build")
	mkdirs(t, root, "out")

	src := mustSource(t, p(root, "src/main/kotlin/com/x/Foo.kt"), "com.x")
	layout := classify(m.ProjectMetadata{
		Root: m.Path(root),
		Modules: []m.Module{
			{Name: "a", ContentRoots: []m.Path{p(root, "a")}, OutputDir: p(root, "a/out")},
			{Name: "b", ContentRoots: []m.Path{p(root, "b")}, OutputDir: p(root, "b/out")},
		},
	})

	gen := newTestGenerator()
	first := gen.Generate(src, layout)

	for i := 0; i < 5; i++ {
		assert.Equal(t, first, gen.Generate(src, layout))
	}

	assert.Contains(t, candidatePaths(first), p(root, "build/classes/kotlin/main/com/x/Foo.class"))
}

func TestCandidateGenerator_ModuleOutput(t *testing.T) {
	root := projectDir(t, "multi")

	meta := m.ProjectMetadata{
		Root: m.Path(root),
		Modules: []m.Module{
			{
				Name:         "app",
				ContentRoots: []m.Path{p(root, "app")},
				SourceRoots:  []m.Path{p(root, "app/src/main/java")},
				OutputDir:    p(root, "app/target/classes"),
				Dependencies: []m.Dependency{
					{Kind: m.DependencyModule, Module: "lib"},
					{Kind: m.DependencyModule, Module: "missing"},
					{Kind: m.DependencyArchive, Archives: []m.Path{
						p(root, "libs/lib-a.jar"),
						p(root, "libs/notes.zip"),
						p(root, "libs/LIB-B.JAR"),
					}},
				},
			},
			{
				Name:         "lib",
				ContentRoots: []m.Path{p(root, "lib")},
				OutputDir:    p(root, "lib/target/classes"),
				Dependencies: []m.Dependency{{Kind: m.DependencyModule, Module: "base"}},
			},
			{
				Name:         "base",
				ContentRoots: []m.Path{p(root, "base")},
				OutputDir:    p(root, "base/target/classes"),
			},
		},
	}
	layout := classify(meta)
	gen := &candidateGenerator{fs: adapter.NewLocalSourceFSAdapter()}

	t.Run("owning module and direct dependencies", func(t *testing.T) {
		src := mustSource(t, p(root, "app/src/main/java/com/x/Foo.java"), "com.x")

		got := gen.moduleOutput(src, layout)

		assert.Equal(t, []m.Candidate{
			m.NewFileCandidate(p(root, "app/target/classes/com/x/Foo.class"), m.OriginModuleOutput),
			m.NewFileCandidate(p(root, "lib/target/classes/com/x/Foo.class"), m.OriginModuleOutput),
			m.NewArchiveCandidate(p(root, "libs/lib-a.jar"), "com/x/Foo.class", m.OriginModuleOutput),
			m.NewArchiveCandidate(p(root, "libs/LIB-B.JAR"), "com/x/Foo.class", m.OriginModuleOutput),
		}, got)
	})

	t.Run("default package skips archives", func(t *testing.T) {
		src := mustSource(t, p(root, "app/src/main/java/Foo.java"), "")

		for _, c := range gen.moduleOutput(src, layout) {
			assert.False(t, c.Archive, "unexpected archive candidate %s", c.Path)
		}
	})

	t.Run("unknown owner falls back to every module", func(t *testing.T) {
		src := mustSource(t, p(root, "scratch/Foo.java"), "")

		got := candidatePaths(gen.moduleOutput(src, layout))

		assert.Contains(t, got, p(root, "app/target/classes/Foo.class"))
		assert.Contains(t, got, p(root, "lib/target/classes/Foo.class"))
		assert.Contains(t, got, p(root, "base/target/classes/Foo.class"))
	})
}

func TestOwningModule_LongestRootWins(t *testing.T) {
	root := projectDir(t, "nested")

	meta := m.ProjectMetadata{
		Modules: []m.Module{
			{Name: "outer", ContentRoots: []m.Path{m.Path(root)}},
			{Name: "inner", ContentRoots: []m.Path{p(root, "inner")}},
		},
	}

	owner, ok := owningModule(meta, p(root, "inner/src/Foo.java"))
	require.True(t, ok)
	assert.Equal(t, "inner", owner.Name)

	owner, ok = owningModule(meta, p(root, "src/Foo.java"))
	require.True(t, ok)
	assert.Equal(t, "outer", owner.Name)

	_, ok = owningModule(meta, "/elsewhere/Foo.java")
	assert.False(t, ok)
}

func TestCandidateGenerator_BuildToolNeedsMarker(t *testing.T) {
	root := projectDir(t, "plain")
	mkdirs(t, root, "target/classes")

	src := mustSource(t, p(root, "src/main/java/com/x/Foo.java"), "com.x")
	gen := &candidateGenerator{fs: adapter.NewLocalSourceFSAdapter()}

	assert.Empty(t, gen.buildToolConvention(src, classify(m.ProjectMetadata{Root: m.Path(root)})))

	touch(t, root, "settings.gradle.kts")
	touch(t, root, "pom.xml")

	got := gen.buildToolConvention(src, classify(m.ProjectMetadata{Root: m.Path(root)}))
	assert.Equal(t, []m.Path{
		p(root, "target/classes/com/x/Foo.class"),
		p(root, "build/classes/java/main/com/x/Foo.class"),
	}, candidatePaths(got))
}

func TestCandidateGenerator_TestSources(t *testing.T) {
	root := projectDir(t, "app")
	touch(t, root, "pom.xml")

	src := mustSource(t, p(root, "src/test/java/com/x/FooTest.java"), "com.x")
	got := newTestGenerator().Generate(src, classify(m.ProjectMetadata{Root: m.Path(root)}))

	assert.Contains(t, candidatePaths(got), p(root, "target/test-classes/com/x/FooTest.class"))
}

func TestRunStrategy_RecoversFromPanic(t *testing.T) {
	s := strategy{
		origin: m.OriginProjectOutput,
		run: func(m.SourceFile, m.ProjectLayout) []m.Candidate {
			panic("boom")
		},
	}

	assert.Nil(t, runStrategy(s, m.SourceFile{}, m.ProjectLayout{}))
}
