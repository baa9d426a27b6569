package utils

import (
	"encoding/json"
	"strings"
)

// ListToJSON serializes a string slice for a text column.
func ListToJSON(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	data, _ := json.Marshal(items)
	return string(data)
}

// JSONToList restores a string slice from its column form. A value that is
// not valid JSON is treated as comma-separated, matching rows written before
// the JSON encoding was introduced.
func JSONToList(s string) []string {
	if s == "" || s == "[]" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return strings.Split(s, ",")
	}
	return items
}
