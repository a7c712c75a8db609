package feed

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

var utf8BOM = []byte("\ufeff")

// checkStructure enforces the document-level rules encoding/xml leaves
// unchecked: exactly one root element, no character data outside it and
// unique attribute names per element. b must already be syntactically valid.
func checkStructure(b []byte) error {
	d := xml.NewDecoder(bytes.NewReader(b))
	d.CharsetReader = charset.NewReaderLabel

	depth, roots := 0, 0
	var first string
	for {
		tok, err := d.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
				if roots > 1 {
					return fmt.Errorf("%w: <%s> after <%s>", errMultipleRoots, qname(t.Name), first)
				}
				first = qname(t.Name)
			}
			if err := uniqueAttrs(t); err != nil {
				return err
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(bytes.TrimPrefix(t, utf8BOM))) > 0 {
				return errTextOutsideRoot
			}
		}
	}

	if roots == 0 {
		return errNoRoot
	}
	return nil
}

func uniqueAttrs(t xml.StartElement) error {
	if len(t.Attr) < 2 {
		return nil
	}
	seen := make(map[xml.Name]struct{}, len(t.Attr))
	for _, a := range t.Attr {
		if _, dup := seen[a.Name]; dup {
			return fmt.Errorf("%w: %s on <%s>", errDuplicateAttr, qname(a.Name), qname(t.Name))
		}
		seen[a.Name] = struct{}{}
	}
	return nil
}

func qname(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
