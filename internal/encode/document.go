package encode

import (
	"fmt"
	"strconv"

	"github.com/kepbod/seqlib/internal/errors"
)

// Field accessors over generic JSON documents. A missing or wrongly typed
// required field is a schema error that surfaces to the caller; no partial
// entity is ever returned.

func getString(doc map[string]interface{}, key string) (string, error) {
	v, ok := doc[key]
	if !ok {
		return "", errors.E(errors.KindSchema, fmt.Sprintf("missing field %q", key))
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.E(errors.KindSchema, fmt.Sprintf("field %q is not a string", key))
	}
	return s, nil
}

func getInt(doc map[string]interface{}, key string) (int64, error) {
	v, ok := doc[key]
	if !ok {
		return 0, errors.E(errors.KindSchema, fmt.Sprintf("missing field %q", key))
	}
	n, ok := v.(float64)
	if !ok {
		return 0, errors.E(errors.KindSchema, fmt.Sprintf("field %q is not a number", key))
	}
	return int64(n), nil
}

func getList(doc map[string]interface{}, key string) ([]interface{}, error) {
	v, ok := doc[key]
	if !ok {
		return nil, errors.E(errors.KindSchema, fmt.Sprintf("missing field %q", key))
	}
	l, ok := v.([]interface{})
	if !ok {
		return nil, errors.E(errors.KindSchema, fmt.Sprintf("field %q is not a list", key))
	}
	return l, nil
}

func getObject(doc map[string]interface{}, key string) (map[string]interface{}, bool) {
	v, ok := doc[key]
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]interface{})
	return m, ok
}

// numberString renders a JSON number as a replicate identifier string.
// Replicate numbers are small integers; anything else keeps its decimal
// representation.
func numberString(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
