package dispatch

import "strings"

// Match reports whether value satisfies a matcher pattern.
//
//	*            anything
//	a|b|c        any alternative (trimmed), each exact or prefix
//	mcp__.*      prefix "mcp__"
//	Bash         exact
//
// Alternatives are not re-split and "*" is only special as the whole
// pattern. There is no case folding and no regex.
func Match(pattern, value string) bool {
	if pattern == "*" {
		return true
	}
	if strings.Contains(pattern, "|") {
		for alt := range strings.SplitSeq(pattern, "|") {
			if matchSingle(strings.TrimSpace(alt), value) {
				return true
			}
		}
		return false
	}
	return matchSingle(pattern, value)
}

func matchSingle(pattern, value string) bool {
	if prefix, ok := strings.CutSuffix(pattern, ".*"); ok {
		return strings.HasPrefix(value, prefix)
	}
	return pattern == value
}
