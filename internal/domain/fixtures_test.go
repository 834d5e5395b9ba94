package domain

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"classloc.dev/pkg/classloc/internal/adapter"
	m "classloc.dev/pkg/classloc/internal/model"
)

// touch creates an empty file (and its parents) below root.
func touch(t *testing.T, root string, rel string) m.Path {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	return m.Path(path)
}

func writeFile(t *testing.T, root string, rel string, content string) m.Path {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return m.Path(path)
}

func mkdirs(t *testing.T, root string, rel string) m.Path {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(path, 0o755))

	return m.Path(path)
}

// projectDir returns a fresh directory named name so the project name
// derived from the root is predictable.
func projectDir(t *testing.T, name string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(dir, 0o755))

	return dir
}

func mustSource(t *testing.T, path m.Path, pkg string) m.SourceFile {
	t.Helper()

	src, err := m.NewSourceFile(path, pkg)
	require.NoError(t, err)

	return src
}

func classify(meta m.ProjectMetadata) m.ProjectLayout {
	return NewLayoutClassifier(adapter.NewLocalSourceFSAdapter()).Classify(meta)
}

func newTestResolver() Resolver {
	fs := adapter.NewLocalSourceFSAdapter()
	return NewResolver(fs, NewCandidateGenerator(fs), NewExistenceFilter(fs))
}

func candidatePaths(candidates []m.Candidate) []m.Path {
	out := make([]m.Path, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Path)
	}

	return out
}

func p(root string, rel string) m.Path {
	return m.Path(filepath.Join(root, filepath.FromSlash(rel)))
}

// recordingUI captures everything a workflow displays.
type recordingUI struct {
	mu          sync.Mutex
	resolutions []m.ResolutionResult
	errs        []error
	reports     []m.CandidateReport
	layouts     []m.ProjectLayout
	projects    []m.ProjectMetadata
}

func (r *recordingUI) DisplayResolution(_ context.Context, result m.ResolutionResult, err error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resolutions = append(r.resolutions, result)
	r.errs = append(r.errs, err)

	return nil
}

func (r *recordingUI) DisplayCandidates(_ context.Context, report m.CandidateReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reports = append(r.reports, report)

	return nil
}

func (r *recordingUI) DisplayLayout(_ context.Context, layout m.ProjectLayout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.layouts = append(r.layouts, layout)

	return nil
}

func (r *recordingUI) DisplayProject(_ context.Context, meta m.ProjectMetadata) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.projects = append(r.projects, meta)

	return nil
}
