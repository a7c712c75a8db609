package feed

import (
	"fmt"

	"github.com/antchfx/xpath"
)

// Path is a compiled XPath expression. Compile once, evaluate many times.
type Path struct {
	raw  string
	expr *xpath.Expr
}

// CompilePath compiles expr into a reusable Path.
func CompilePath(expr string) (Path, error) {
	e, err := xpath.Compile(expr)
	if err != nil {
		return Path{}, fmt.Errorf("compile path %q: %w", expr, err)
	}
	return Path{raw: expr, expr: e}, nil
}

// MustCompilePath is like CompilePath but panics on invalid expressions.
// Intended for package-level tables built from constants.
func MustCompilePath(expr string) Path {
	p, err := CompilePath(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Descendant returns the path selecting every element named name below the
// context node, at any depth.
func Descendant(name string) Path {
	return MustCompilePath(".//" + name)
}

// Anywhere returns the path selecting every element named name in the whole
// document, regardless of nesting depth.
func Anywhere(name string) Path {
	return MustCompilePath("//" + name)
}

func (p Path) String() string { return p.raw }
