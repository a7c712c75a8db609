package feed

import (
	"errors"
	"fmt"
)

// errNoRoot is reported when the input parses but holds no element at all
// (empty file, declaration only).
var errNoRoot = errors.New("no root element")

var (
	errMultipleRoots   = errors.New("more than one root element")
	errTextOutsideRoot = errors.New("character data outside the root element")
	errDuplicateAttr   = errors.New("duplicate attribute")
)

// IOError reports that the feed source could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read feed %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports that the feed is not well-formed XML.
//
// Source is the file path when the document came from Load, or "<input>"
// for in-memory buffers.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse feed %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
