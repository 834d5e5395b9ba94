package domain

import (
	"path/filepath"
	"strings"

	"classloc.dev/pkg/classloc/internal/adapter"
	m "classloc.dev/pkg/classloc/internal/model"
)

// Directories whose presence under the project root classifies its layout.
const (
	unmanagedOutputMarker    = "out/production"
	singleModuleOutputMarker = "target/classes"
)

// projectOutputDirs are probed as children of every content root.
var projectOutputDirs = []string{"out", "build", "target", "bin", "classes"}

// sourceRelativeOutputDirs re-root a source-relative path under a module root.
var sourceRelativeOutputDirs = []string{
	"out/production/classes",
	"out/test/classes",
	"build/classes",
	"target/classes",
	"bin",
	"classes",
}

// RootMarkers identify a project root when walking up from a source file.
var RootMarkers = []string{
	adapter.ProjectFileName,
	adapter.MavenManifest,
	adapter.GradleSettingsKts,
	adapter.GradleSettings,
	adapter.GradleBuildScriptKts,
	adapter.GradleBuildScript,
	unmanagedOutputMarker,
	singleModuleOutputMarker,
}

// segmentRule rewrites a run of trailing directory segments.
type segmentRule struct {
	from []string
	to   []string
}

func rule(from, to string) segmentRule {
	return segmentRule{from: splitSlash(from), to: splitSlash(to)}
}

func splitSlash(p string) []string {
	if p == "" {
		return nil
	}

	return strings.Split(p, "/")
}

// buildTool describes a dependency-manager convention mapping source roots to
// output roots.
type buildTool struct {
	name    string
	markers []string
	rules   func(lang m.Language) []segmentRule
}

var buildTools = []buildTool{
	{
		name:    "maven",
		markers: []string{adapter.MavenManifest},
		rules: func(lang m.Language) []segmentRule {
			return []segmentRule{
				rule("src/main/"+lang.Dir, "target/classes"),
				rule("src/test/"+lang.Dir, "target/test-classes"),
			}
		},
	},
	{
		name:    "gradle",
		markers: adapter.GradleMarkers,
		rules: func(lang m.Language) []segmentRule {
			return []segmentRule{
				rule("src/main/"+lang.Dir, "build/classes/"+lang.Dir+"/main"),
				rule("src/test/"+lang.Dir, "build/classes/"+lang.Dir+"/test"),
			}
		},
	},
}

// genericRules are the resolver's last-resort rewrites, tried in order.
func genericRules(lang m.Language, projectName string) []segmentRule {
	rules := []segmentRule{rule("src/main/"+lang.Dir, "target/classes")}

	if projectName != "" {
		rules = append(rules, rule("src", "out/production/"+projectName))
	}

	return append(rules,
		rule("src/main/"+lang.Dir, "build/classes/"+lang.Dir+"/main"),
		rule("src", "bin"),
	)
}

// rewriteNearest finds the nearest ancestor directory of the source file whose
// trailing segments match one of rules, swaps those segments, and returns the
// class file path below the rewritten directory. Rules are checked in order at
// each level, so the nearest match wins over rule order.
func rewriteNearest(src m.SourceFile, rules []segmentRule) (m.Path, bool) {
	segs := strings.Split(filepath.ToSlash(string(src.Path.Dir())), "/")

	for end := len(segs); end > 0; end-- {
		for _, r := range rules {
			start := end - len(r.from)
			if start < 0 || !segmentsEqual(segs[start:end], r.from) {
				continue
			}

			parts := make([]string, 0, len(segs)+len(r.to)+1)
			parts = append(parts, segs[:start]...)
			parts = append(parts, r.to...)
			parts = append(parts, segs[end:]...)
			parts = append(parts, src.ClassName())

			return m.Path(filepath.FromSlash(strings.Join(parts, "/"))), true
		}
	}

	return "", false
}

func segmentsEqual(a, b []string) bool {
	if len(a) != len(b) || len(a) == 0 {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// rerootRelative maps the source file below srcRoot onto the same relative
// location below outRoot, with the compiled extension.
func rerootRelative(src m.SourceFile, srcRoot, outRoot m.Path) (m.Path, bool) {
	if !srcRoot.Contains(src.Path) {
		return "", false
	}

	rel, err := filepath.Rel(string(srcRoot), string(src.Path))
	if err != nil || rel == "." {
		return "", false
	}

	return src.WithClassExt(outRoot.Join(rel)), true
}
