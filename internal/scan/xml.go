package scan

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/decodeck/decodeck/internal/encoding"
)

// XML scans element text and attribute values of an XML document. The
// path of an element is "/" followed by the qualified names of its
// ancestors and itself joined with "/"; attributes append "/@name". Text
// outside any element is reported at "/".
func XML(input string) (*Result, error) {
	c := &collector{}
	if err := c.walkXML(xml.NewDecoder(strings.NewReader(input))); err != nil {
		return nil, encoding.NewDecodeError(err, "invalid XML: %v", err)
	}
	return c.result(FormatXML), nil
}

func (c *collector) walkXML(decoder *xml.Decoder) error {
	var stack []string

	currentPath := func() string {
		return "/" + strings.Join(stack, "/")
	}

	for {
		// RawToken keeps namespace prefixes as written.
		token, err := decoder.RawToken()
		if errors.Is(err, io.EOF) {
			if len(stack) > 0 {
				return fmt.Errorf("unclosed element <%s>", stack[len(stack)-1])
			}
			return nil
		}
		if err != nil {
			return err
		}

		switch t := token.(type) {
		case xml.StartElement:
			stack = append(stack, qualifiedName(t.Name))
			path := currentPath()
			for _, attr := range t.Attr {
				c.visit(attr.Value, path+"/@"+qualifiedName(attr.Name))
			}
		case xml.EndElement:
			name := qualifiedName(t.Name)
			if len(stack) == 0 || stack[len(stack)-1] != name {
				return fmt.Errorf("unexpected end element </%s>", name)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			text := string(t)
			if strings.TrimSpace(text) != "" {
				c.visit(text, currentPath())
			}
		}
	}
}

func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}
