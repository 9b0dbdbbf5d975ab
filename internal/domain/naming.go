package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// illegalNamePattern matches characters that are unsafe or awkward in
// filenames on at least one supported platform: reserved punctuation,
// control characters, and whitespace.
var illegalNamePattern = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f\s]+`)

// SanitizeName converts a node's display name into a filesystem-safe base
// name: surrounding whitespace is trimmed, runs of illegal characters and
// interior whitespace collapse to a single "_", and an empty result falls
// back to "unnamed".
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	name = illegalNamePattern.ReplaceAllString(name, "_")
	if name == "" {
		return "unnamed"
	}
	return name
}

// nameSet hands out collision-free names in first-come order. The first
// occurrence keeps the bare name; later collisions get "_2", "_3", and so
// on. Comparison is case-insensitive so the result stays unique on
// case-insensitive filesystems.
type nameSet struct {
	used map[string]bool
}

func newNameSet() *nameSet {
	return &nameSet{used: make(map[string]bool)}
}

// claim returns base or the first available "base_N" variant and marks it
// used. Deterministic: the same sequence of calls yields the same names.
func (s *nameSet) claim(base string) string {
	key := strings.ToLower(base)
	if !s.used[key] {
		s.used[key] = true
		return base
	}
	for i := 2; ; i++ {
		candidate := base + "_" + strconv.Itoa(i)
		key = strings.ToLower(candidate)
		if !s.used[key] {
			s.used[key] = true
			return candidate
		}
	}
}
