package parser

import "sort"

// sortedSet flattens a string set into a sorted slice. An empty set
// yields an empty (non-nil) slice so extractors never return nil.
func sortedSet(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
