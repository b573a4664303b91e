package parse

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/nmoutschen/struf/internal/naming"
)

// Tag is the parsed value of a `filter:"..."` struct tag.
type Tag struct {
	// Plural is the explicit plural given by the plural option. It is empty
	// if the option is absent.
	Plural string
}

// lookupTag finds the filter tag in a raw struct tag. It returns false if the
// field is not filterable: there is no filter key or its value is "-".
func lookupTag(structTag string) (string, bool) {
	value, ok := reflect.StructTag(structTag).Lookup(TagKey)
	if !ok || value == "-" {
		return "", false
	}
	return value, true
}

// parseTag parses the value of a filter tag. The value is a comma-separated
// list of key=value options. An empty value is allowed.
//
//	`filter:""`
//	`filter:"plural=People"`
func parseTag(value string) (Tag, error) {
	var tag Tag
	if strings.TrimSpace(value) == "" {
		return tag, nil
	}

	seen := make(map[string]bool)
	for opt := range strings.SplitSeq(value, ",") {
		key, val, hasVal := strings.Cut(strings.TrimSpace(opt), "=")
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		if key == "" {
			return Tag{}, fmt.Errorf("empty option")
		}
		if seen[key] {
			return Tag{}, fmt.Errorf("duplicate option %q", key)
		}
		seen[key] = true

		switch key {
		case "plural":
			if !hasVal || val == "" {
				return Tag{}, fmt.Errorf("plural needs a value")
			}
			if !naming.IsIdent(val) {
				return Tag{}, fmt.Errorf("plural %q is not an identifier", val)
			}
			tag.Plural = val
		default:
			return Tag{}, fmt.Errorf("unknown option %q", key)
		}
	}
	return tag, nil
}
