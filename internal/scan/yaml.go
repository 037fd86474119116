package scan

import (
	"strconv"

	"github.com/decodeck/decodeck/internal/encoding"
	"gopkg.in/yaml.v3"
)

const (
	yamlStringTag = "!!str"
	yamlIntTag    = "!!int"
	yamlFloatTag  = "!!float"
)

// YAML scans every string scalar of the first document in a YAML stream,
// using the same path syntax as JSON. Mapping members are visited in
// document order. Numbers written in decimal are skipped, but plain scalars
// such as 0x48656c6c6f that YAML resolves to integers are scanned.
func YAML(input string) (*Result, error) {
	var document yaml.Node
	if err := yaml.Unmarshal([]byte(input), &document); err != nil {
		return nil, encoding.NewDecodeError(err, "invalid YAML: %v", err)
	}

	c := &collector{}
	c.walkYAML(&document, "$")
	return c.result(FormatYAML), nil
}

func (c *collector) walkYAML(node *yaml.Node, path string) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) > 0 {
			c.walkYAML(node.Content[0], path)
		}
	case yaml.ScalarNode:
		if scannableScalar(node) {
			c.visit(node.Value, path)
		}
	case yaml.SequenceNode:
		for i, item := range node.Content {
			c.walkYAML(item, path+"["+strconv.Itoa(i)+"]")
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			c.walkYAML(node.Content[i+1], path+"."+node.Content[i].Value)
		}
	case yaml.AliasNode:
		if node.Alias != nil {
			c.walkYAML(node.Alias, path)
		}
	}
}

func scannableScalar(node *yaml.Node) bool {
	switch node.ShortTag() {
	case yamlStringTag:
		return true
	case yamlIntTag, yamlFloatTag:
		return !isDecimalNumber(node.Value)
	default:
		return false
	}
}

// isDecimalNumber reports whether s is an optionally signed decimal
// integer or fraction with an optional exponent, e.g. 8080, -1.5 or 2e10.
func isDecimalNumber(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	digits := 0
	i := 0
	for ; i < len(s) && isDecimalDigit(s[i]); i++ {
		digits++
	}
	if i < len(s) && s[i] == '.' {
		for i++; i < len(s) && isDecimalDigit(s[i]); i++ {
			digits++
		}
	}
	if digits == 0 {
		return false
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		start := i
		for ; i < len(s) && isDecimalDigit(s[i]); i++ {
		}
		if i == start {
			return false
		}
	}
	return i == len(s)
}

func isDecimalDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
