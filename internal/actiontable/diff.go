package actiontable

import (
	"fmt"
	"reflect"
)

// Diff compares a stored table with the current one and describes every
// action whose row changed, appeared or disappeared.
func Diff(stored, current []Row) []string {
	byAction := make(map[string]Row, len(stored))
	for _, r := range stored {
		byAction[r.Action] = r
	}
	var out []string
	seen := make(map[string]bool, len(current))
	for _, cur := range current {
		seen[cur.Action] = true
		old, ok := byAction[cur.Action]
		if !ok {
			out = append(out, fmt.Sprintf("%s: added", cur.Action))
			continue
		}
		out = append(out, fieldChanges(old, cur)...)
	}
	for _, r := range stored {
		if !seen[r.Action] {
			out = append(out, fmt.Sprintf("%s: removed", r.Action))
		}
	}
	return out
}

func fieldChanges(old, cur Row) []string {
	var out []string
	ov := reflect.ValueOf(old)
	cv := reflect.ValueOf(cur)
	rt := ov.Type()
	for i := 0; i < rt.NumField(); i++ {
		a, b := ov.Field(i).Interface(), cv.Field(i).Interface()
		if a != b {
			out = append(out, fmt.Sprintf("%s: %s %v -> %v", cur.Action, rt.Field(i).Name, a, b))
		}
	}
	return out
}
