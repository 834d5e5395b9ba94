package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"classloc.dev/pkg/classloc/internal/adapter"
	"classloc.dev/pkg/classloc/internal/controller"
	m "classloc.dev/pkg/classloc/internal/model"
)

// ProjectArgs tells the workflow where project metadata comes from.
type ProjectArgs struct {
	// Root overrides project root detection when set.
	Root m.Path
	// ProjectFile names an explicit project metadata file.
	ProjectFile m.Path
	// Discover enables module discovery from build manifests when no project
	// file is available.
	Discover bool
}

// LocateArgs contains the arguments for resolving class files.
type LocateArgs struct {
	ProjectArgs
	Paths   []m.Path
	Threads int
}

// CandidatesArgs contains the arguments for listing candidates of one file.
type CandidatesArgs struct {
	ProjectArgs
	Path m.Path
}

// ClassifyArgs contains the arguments for classifying a project.
type ClassifyArgs struct {
	ProjectArgs
}

// DescribeArgs contains the arguments for printing project metadata.
type DescribeArgs struct {
	ProjectArgs
	// Write saves the metadata to the project file.
	Write bool
}

// Workflow wires the resolution engine to project loading and presentation.
type Workflow interface {
	Locate(ctx context.Context, args LocateArgs) error
	Candidates(ctx context.Context, args CandidatesArgs) error
	Classify(ctx context.Context, args ClassifyArgs) error
	Describe(ctx context.Context, args DescribeArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	sources    adapter.SourceFileAdapter
	store      adapter.ProjectStore
	discoverer adapter.ProjectDiscoverer
	ui         controller.UI
	classifier LayoutClassifier
	generator  CandidateGenerator
	filter     ExistenceFilter
	resolver   Resolver
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	sourceAdapter adapter.SourceFileAdapter,
	store adapter.ProjectStore,
	discoverer adapter.ProjectDiscoverer,
	ui controller.UI,
) Workflow {
	generator := NewCandidateGenerator(fsAdapter)
	filter := NewExistenceFilter(fsAdapter)

	return &workflow{
		SourceFSAdapter: fsAdapter,
		sources:         sourceAdapter,
		store:           store,
		discoverer:      discoverer,
		ui:              ui,
		classifier:      NewLayoutClassifier(fsAdapter),
		generator:       generator,
		filter:          filter,
		resolver:        NewResolver(fsAdapter, generator, filter),
	}
}

type outcome struct {
	result m.ResolutionResult
	err    error
}

// Locate resolves every path, up to args.Threads at a time, and displays the
// outcomes in argument order. Each resolution recomputes its project layout.
func (w *workflow) Locate(ctx context.Context, args LocateArgs) error {
	if len(args.Paths) == 0 {
		return fmt.Errorf("%w: no source files given", m.ErrInputRejected)
	}

	outcomes := make([]outcome, len(args.Paths))

	threads := args.Threads
	if threads < 1 {
		threads = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, path := range args.Paths {
		i, path := i, path

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result, err := w.resolve(path, args.ProjectArgs)
			outcomes[i] = outcome{result: result, err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	var errs []error

	for i, o := range outcomes {
		if err := w.ui.DisplayResolution(ctx, o.result, o.err); err != nil {
			return fmt.Errorf("display result: %w", err)
		}

		switch {
		case o.err != nil:
			errs = append(errs, fmt.Errorf("%s: %w", args.Paths[i], o.err))
		case !o.result.Found:
			errs = append(errs, fmt.Errorf("%s: %w", args.Paths[i], m.ErrNoExistingArtifact))
		}
	}

	return errors.Join(errs...)
}

// Candidates displays the full and the existing candidate list of one file
// without applying the fallback tiers.
func (w *workflow) Candidates(ctx context.Context, args CandidatesArgs) error {
	src, err := w.identify(args.Path)
	if err != nil {
		return err
	}

	layout, err := w.layoutFor(src.Path, args.ProjectArgs)
	if err != nil {
		return err
	}

	report := m.CandidateReport{Source: src, Layout: layout}
	report.Candidates = w.generator.Generate(src, layout)
	report.Existing = w.filter.Filter(report.Candidates)

	if len(report.Existing) > 0 {
		mostLikely := report.Existing[0]
		report.MostLikely = &mostLikely
	}

	return w.ui.DisplayCandidates(ctx, report)
}

// Classify displays the layout of the project at args.Root.
func (w *workflow) Classify(ctx context.Context, args ClassifyArgs) error {
	meta, err := w.loadProject(args.Root, args.ProjectArgs)
	if err != nil {
		return err
	}

	layout := w.classifier.Classify(meta)

	if err := w.ui.DisplayLayout(ctx, layout); err != nil {
		return err
	}

	if layout.Kind == m.LayoutUnclassified {
		return fmt.Errorf("%w: %s", m.ErrLayoutUnclassifiable, layout.Root)
	}

	return nil
}

// Describe displays the project metadata the resolver would use and
// optionally saves it as a project file.
func (w *workflow) Describe(ctx context.Context, args DescribeArgs) error {
	meta, err := w.loadProject(args.Root, args.ProjectArgs)
	if err != nil {
		return err
	}

	if args.Write {
		target := args.ProjectFile
		if target == "" {
			target = meta.Root.Join(adapter.ProjectFileName)
		}

		if err := w.store.SaveProject(target, meta); err != nil {
			return err
		}

		slog.Info("wrote project file", "path", target)
	}

	return w.ui.DisplayProject(ctx, meta)
}

// resolve runs one complete resolution from a path on disk.
func (w *workflow) resolve(path m.Path, args ProjectArgs) (m.ResolutionResult, error) {
	src, err := w.identify(path)
	if err != nil {
		return m.ResolutionResult{Source: m.SourceFile{Path: path}}, err
	}

	layout, err := w.layoutFor(src.Path, args)
	if err != nil {
		return m.ResolutionResult{Source: src, Layout: layout}, err
	}

	return w.resolver.Resolve(src, layout)
}

// identify rejects non-source files before reading anything.
func (w *workflow) identify(path m.Path) (m.SourceFile, error) {
	if !m.IsSourceFile(path) {
		return m.SourceFile{}, fmt.Errorf("%w: %s is not a source file", m.ErrInputRejected, path)
	}

	content, err := w.ReadFile(path)
	if err != nil {
		return m.SourceFile{}, fmt.Errorf("%w: %w", m.ErrInputRejected, err)
	}

	return w.sources.Identify(path, content)
}

func (w *workflow) layoutFor(start m.Path, args ProjectArgs) (m.ProjectLayout, error) {
	meta, err := w.loadProject(start, args)
	if err != nil {
		return m.ProjectLayout{}, err
	}

	layout := w.classifier.Classify(meta)
	if layout.Kind == m.LayoutUnclassified {
		return layout, fmt.Errorf("%w: %s", m.ErrLayoutUnclassifiable, layout.Root)
	}

	return layout, nil
}

// loadProject assembles metadata from, in order: an explicit project file,
// the project file at the root, manifest discovery, or the bare root.
func (w *workflow) loadProject(start m.Path, args ProjectArgs) (m.ProjectMetadata, error) {
	if args.ProjectFile != "" {
		meta, err := w.store.LoadProject(args.ProjectFile)
		if err != nil {
			return m.ProjectMetadata{}, fmt.Errorf("load project: %w", err)
		}

		return meta, nil
	}

	root := w.projectRoot(start, args.Root)

	meta, err := w.store.LoadProject(root.Join(adapter.ProjectFileName))
	switch {
	case err == nil:
		return meta, nil
	case !errors.Is(err, fs.ErrNotExist):
		return m.ProjectMetadata{}, fmt.Errorf("load project: %w", err)
	}

	if args.Discover {
		meta, err := w.discoverer.Discover(root)
		if err != nil {
			return m.ProjectMetadata{}, fmt.Errorf("discover project: %w", err)
		}

		return meta, nil
	}

	return m.ProjectMetadata{Root: root, ContentRoots: []m.Path{root}}, nil
}

func (w *workflow) projectRoot(start, override m.Path) m.Path {
	if override != "" {
		return absPath(override)
	}

	if start == "" {
		start = "."
	}

	start = absPath(start)

	root, err := w.FindProjectRoot(start, RootMarkers)
	if err == nil {
		return root
	}

	slog.Debug("no project root marker found", "start", start, "error", err)

	if w.IsDir(start) {
		return start
	}

	return start.Dir()
}

func absPath(p m.Path) m.Path {
	abs, err := filepath.Abs(string(p))
	if err != nil {
		return p
	}

	return m.Path(abs)
}
