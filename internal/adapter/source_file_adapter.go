package adapter

import (
	"bytes"
	"strings"

	m "classloc.dev/pkg/classloc/internal/model"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SourceFileAdapter derives source-file identifiers from JVM source text so
// the domain never has to understand Java, Kotlin, Groovy or Scala syntax.
type SourceFileAdapter interface {
	// PackageName returns the dot-separated package declared by src, or ""
	// for the default package.
	PackageName(src []byte) string

	// Identify validates path and builds its identifier from src.
	Identify(path m.Path, src []byte) (m.SourceFile, error)
}

// LocalSourceFileAdapter scans the leading declarations of a source file.
type LocalSourceFileAdapter struct{}

// NewLocalSourceFileAdapter constructs a LocalSourceFileAdapter.
func NewLocalSourceFileAdapter() *LocalSourceFileAdapter {
	return &LocalSourceFileAdapter{}
}

// Identify builds the identifier for path using the package declared in src.
func (a *LocalSourceFileAdapter) Identify(path m.Path, src []byte) (m.SourceFile, error) {
	return m.NewSourceFile(path, a.PackageName(src))
}

// PackageName reads the package clause that precedes imports and type
// declarations. Comments and file-level annotations are skipped; Scala's
// chained package clauses are joined with dots.
func (a *LocalSourceFileAdapter) PackageName(src []byte) string {
	s := &packageScanner{src: bytes.TrimPrefix(src, utf8BOM)}

	var parts []string

	for {
		s.skipTrivia()

		if s.peek() == '@' {
			s.skipAnnotation()
			continue
		}

		if s.word() != "package" {
			break
		}

		s.skipTrivia()

		name := s.qualifiedName()
		if name == "" || name == "object" {
			break
		}

		parts = append(parts, name)

		s.skipTrivia()

		if s.peek() == ';' {
			s.pos++
		}
	}

	return strings.Join(parts, ".")
}

type packageScanner struct {
	src []byte
	pos int
}

func (s *packageScanner) peek() byte {
	if s.pos >= len(s.src) {
		return 0
	}

	return s.src[s.pos]
}

func (s *packageScanner) skipTrivia() {
	for s.pos < len(s.src) {
		rest := s.src[s.pos:]

		switch {
		case isSpace(rest[0]):
			s.pos++
		case bytes.HasPrefix(rest, []byte("//")):
			end := bytes.IndexByte(rest, '\n')
			if end < 0 {
				s.pos = len(s.src)
				return
			}

			s.pos += end + 1
		case bytes.HasPrefix(rest, []byte("/*")):
			end := bytes.Index(rest[2:], []byte("*/"))
			if end < 0 {
				s.pos = len(s.src)
				return
			}

			s.pos += end + 4
		default:
			return
		}
	}
}

// word consumes an identifier.
func (s *packageScanner) word() string {
	start := s.pos
	for s.pos < len(s.src) && isIdentByte(s.src[s.pos]) {
		s.pos++
	}

	return string(s.src[start:s.pos])
}

func (s *packageScanner) qualifiedName() string {
	var b strings.Builder

	for s.pos < len(s.src) {
		c := s.src[s.pos]

		switch {
		case isIdentByte(c) || c == '.':
			b.WriteByte(c)
		case c == '`':
		default:
			return strings.Trim(b.String(), ".")
		}

		s.pos++
	}

	return strings.Trim(b.String(), ".")
}

// skipAnnotation consumes '@name' or '@file:name' plus a balanced argument list.
func (s *packageScanner) skipAnnotation() {
	s.pos++

	for s.pos < len(s.src) && (isIdentByte(s.src[s.pos]) || s.src[s.pos] == '.' || s.src[s.pos] == ':') {
		s.pos++
	}

	s.skipTrivia()

	if s.peek() != '(' {
		return
	}

	depth := 0

	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				s.pos++
				return
			}
		case '"':
			s.skipString()
			continue
		}

		s.pos++
	}
}

func (s *packageScanner) skipString() {
	s.pos++

	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\\':
			s.pos += 2
			continue
		case '"':
			s.pos++
			return
		}

		s.pos++
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9') ||
		c >= 0x80
}
