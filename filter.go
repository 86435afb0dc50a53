package mcpnode

import "github.com/bmatcuk/doublestar/v4"

// matchesAny reports whether name matches any of the patterns. Patterns use
// doublestar glob syntax; a pattern without metacharacters is an exact match.
func matchesAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if p == name {
			return true
		}
		if ok, err := doublestar.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}

// toolFilter applies the node-level include/exclude lists to remote tool
// names. Exclude wins over include.
type toolFilter struct {
	include []string
	exclude []string
}

func (f toolFilter) keep(name string) bool {
	if len(f.include) > 0 && !matchesAny(f.include, name) {
		return false
	}
	return !matchesAny(f.exclude, name)
}
