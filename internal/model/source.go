// Package model defines the data structures shared by the class file locator.
package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ClassExt is the extension of compiled JVM class files.
const ClassExt = ".class"

// Path represents a file system path.
type Path string

// Join appends elements to the path using the OS separator.
func (p Path) Join(elem ...string) Path {
	parts := make([]string, 0, len(elem)+1)
	parts = append(parts, string(p))
	parts = append(parts, elem...)

	return Path(filepath.Join(parts...))
}

// Dir returns the parent directory.
func (p Path) Dir() Path {
	return Path(filepath.Dir(string(p)))
}

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// Contains reports whether other is p itself or lies below it.
func (p Path) Contains(other Path) bool {
	root := filepath.Clean(string(p))
	target := filepath.Clean(string(other))

	if root == target {
		return true
	}

	if !strings.HasSuffix(root, string(filepath.Separator)) {
		root += string(filepath.Separator)
	}

	return strings.HasPrefix(target, root)
}

// Language describes a JVM source language and the directory name its build
// tools use under src/main and src/test.
type Language struct {
	Name string
	Ext  string
	Dir  string
}

// Languages lists the recognised source languages in lookup order.
var Languages = []Language{
	{Name: "Java", Ext: ".java", Dir: "java"},
	{Name: "Kotlin", Ext: ".kt", Dir: "kotlin"},
	{Name: "Groovy", Ext: ".groovy", Dir: "groovy"},
	{Name: "Scala", Ext: ".scala", Dir: "scala"},
}

// LanguageForExt returns the language registered for ext.
func LanguageForExt(ext string) (Language, bool) {
	for _, lang := range Languages {
		if strings.EqualFold(lang.Ext, ext) {
			return lang, true
		}
	}

	return Language{}, false
}

// IsSourceFile reports whether path has a recognised source extension.
func IsSourceFile(path Path) bool {
	_, ok := LanguageForExt(filepath.Ext(string(path)))
	return ok
}

// SourceFile identifies a source file whose compiled class is being located.
// Values are built with NewSourceFile and never modified afterwards.
type SourceFile struct {
	Path     Path     `json:"path" yaml:"path"`
	Package  string   `json:"package" yaml:"package"`
	Name     string   `json:"name" yaml:"name"`
	Language Language `json:"-" yaml:"-"`
}

// NewSourceFile validates path and builds its identifier. pkg is the
// dot-separated package name, empty for the default package.
func NewSourceFile(path Path, pkg string) (SourceFile, error) {
	if strings.TrimSpace(string(path)) == "" {
		return SourceFile{}, fmt.Errorf("%w: empty path", ErrInputRejected)
	}

	ext := filepath.Ext(string(path))

	lang, ok := LanguageForExt(ext)
	if !ok {
		return SourceFile{}, fmt.Errorf("%w: %s is not a source file", ErrInputRejected, path)
	}

	abs, err := filepath.Abs(string(path))
	if err != nil {
		return SourceFile{}, fmt.Errorf("%w: %w", ErrInputRejected, err)
	}

	base := filepath.Base(abs)

	return SourceFile{
		Path:     Path(abs),
		Package:  strings.TrimSpace(pkg),
		Name:     strings.TrimSuffix(base, ext),
		Language: lang,
	}, nil
}

// ClassName returns the compiled file name, e.g. Foo.class.
func (s SourceFile) ClassName() string {
	return s.Name + ClassExt
}

// PackageSegments splits the package name into path segments.
func (s SourceFile) PackageSegments() []string {
	if s.Package == "" {
		return nil
	}

	return strings.Split(s.Package, ".")
}

// ClassEntry returns the slash separated path of the class inside an
// output root or archive, e.g. com/x/Foo.class.
func (s SourceFile) ClassEntry() string {
	return strings.Join(append(s.PackageSegments(), s.ClassName()), "/")
}

// ClassPathUnder returns the class file location below an output root.
func (s SourceFile) ClassPathUnder(root Path) Path {
	return root.Join(append(s.PackageSegments(), s.ClassName())...)
}

// WithClassExt rewrites the source extension of path to .class.
func (s SourceFile) WithClassExt(path Path) Path {
	str := string(path)
	ext := filepath.Ext(str)

	if !strings.EqualFold(ext, s.Language.Ext) {
		return path
	}

	return Path(strings.TrimSuffix(str, ext) + ClassExt)
}
