package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// EncodeDocument returns a stable, byte-identical representation of a
// document for hashing. Field keys are sorted, scalars are formatted with
// locale-independent rules, and explicit separators keep the encoding
// unambiguous. Two documents encode to the same bytes iff they carry the same
// primary key and the same field values.
func EncodeDocument(key string, fields map[string]any) []byte {
	var b strings.Builder
	b.WriteString(key)
	b.WriteByte('|')
	writeFields(&b, fields)
	return []byte(b.String())
}

func writeFields(b *strings.Builder, fields map[string]any) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(k)
		b.WriteByte('=')
		writeValue(b, fields[k])
	}
	b.WriteByte('}')
}

func writeValue(b *strings.Builder, v any) {
	switch val := v.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		b.WriteString(strconv.FormatBool(val))
	case string:
		b.WriteString(strconv.Quote(val))
	case int:
		b.WriteString(strconv.FormatInt(int64(val), 10))
	case int64:
		b.WriteString(strconv.FormatInt(val, 10))
	case uint64:
		b.WriteString(strconv.FormatUint(val, 10))
	case float64:
		// 'g' with full precision keeps distinct floats distinct and is
		// stable across architectures.
		b.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
	case map[string]any:
		writeFields(b, val)
	case []any:
		b.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				b.WriteByte('|')
			}
			writeValue(b, item)
		}
		b.WriteByte(']')
	default:
		fmt.Fprintf(b, "%v", val)
	}
}
