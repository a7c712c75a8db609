package feed

import (
	"bytes"
	"io"
	"os"

	"github.com/antchfx/xmlquery"
)

const inMemorySource = "<input>"

// Document is a parsed feed held fully in memory. It is read-only once
// loaded and safe to query from a single goroutine at a time.
type Document struct {
	source string
	root   *xmlquery.Node
}

// Node is one element of a Document.
type Node struct {
	n *xmlquery.Node
}

// Read returns the full contents of the file at path. The file handle is
// closed before Read returns, on success and on failure.
func Read(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return b, nil
}

// Load reads and parses the feed at path.
//
// Returns:
//   - *IOError when the file cannot be opened or read.
//   - *ParseError when the contents are not well-formed XML.
func Load(path string) (*Document, error) {
	b, err := Read(path)
	if err != nil {
		return nil, err
	}
	return parse(path, b)
}

// Parse builds a Document from an in-memory or streamed XML source.
// The reader is consumed entirely. A failing reader yields *IOError,
// malformed content *ParseError.
func Parse(r io.Reader) (*Document, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Path: inMemorySource, Err: err}
	}
	return parse(inMemorySource, b)
}

// ParseBytes parses b as a feed named source (used in error messages).
func ParseBytes(source string, b []byte) (*Document, error) {
	return parse(source, b)
}

func parse(source string, b []byte) (*Document, error) {
	// xmlquery decodes declared charsets (ISO-8859-1, windows-1252...) itself.
	root, err := xmlquery.Parse(bytes.NewReader(b))
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	if err := checkStructure(b); err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}
	return &Document{source: source, root: root}, nil
}

// Source is the path the document was loaded from, or "<input>".
func (d *Document) Source() string { return d.source }

// SelectAll returns every node matching p, in document order. No match
// yields an empty slice.
func (d *Document) SelectAll(p Path) []*Node {
	found := xmlquery.QuerySelectorAll(d.root, p.expr)
	out := make([]*Node, 0, len(found))
	for _, n := range found {
		out = append(out, &Node{n: n})
	}
	return out
}

// Name is the element's local tag name.
func (n *Node) Name() string { return n.n.Data }

// Text evaluates p relative to n and returns the text content of the first
// match in document order. ok is false when nothing matches.
//
// Text content is the concatenated character data of the matched element and
// everything below it, exactly as written in the feed (no trimming).
func (n *Node) Text(p Path) (text string, ok bool) {
	match := xmlquery.QuerySelector(n.n, p.expr)
	if match == nil {
		return "", false
	}
	return match.InnerText(), true
}
