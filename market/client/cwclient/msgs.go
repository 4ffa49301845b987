package cwclient

import (
	"encoding/json"
	"sort"
	"strings"
)

// ActionOf returns the variant name of a contract msg, which is the single
// top level key of the json object: `{"create":{...}}` -> `create`.
func ActionOf(msg []byte) string {
	var variants map[string]json.RawMessage
	if err := json.Unmarshal(msg, &variants); err != nil || len(variants) == 0 {
		return "unknown"
	}

	keys := make([]string, 0, len(variants))
	for k := range variants {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return strings.Join(keys, ",")
}
