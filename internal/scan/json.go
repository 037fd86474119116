package scan

import (
	"encoding/json"
	"maps"
	"slices"
	"strconv"

	"github.com/decodeck/decodeck/internal/encoding"
)

// JSON scans every string value in a JSON document. Paths use "$" for the
// root, ".key" for object members and "[i]" for array elements. Object
// members are visited in sorted key order.
func JSON(input string) (*Result, error) {
	var document any
	if err := json.Unmarshal([]byte(input), &document); err != nil {
		return nil, encoding.NewDecodeError(err, "invalid JSON: %v", err)
	}

	c := &collector{}
	c.walkJSON(document, "$")
	return c.result(FormatJSON), nil
}

func (c *collector) walkJSON(value any, path string) {
	switch v := value.(type) {
	case string:
		c.visit(v, path)
	case []any:
		for i, item := range v {
			c.walkJSON(item, path+"["+strconv.Itoa(i)+"]")
		}
	case map[string]any:
		for _, key := range slices.Sorted(maps.Keys(v)) {
			c.walkJSON(v[key], path+"."+key)
		}
	}
}
