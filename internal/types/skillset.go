package types

import "sort"

// SkillSet is a deduplicated set of canonical skill tags. Tags must be
// canonicalized before insertion; raw free-text skills are never compared
// against a SkillSet directly.
type SkillSet map[string]bool

// NewSkillSet builds a set from a slice of tags, dropping empty strings.
func NewSkillSet(skills []string) SkillSet {
	set := make(SkillSet, len(skills))
	for _, s := range skills {
		if s != "" {
			set[s] = true
		}
	}
	return set
}

// Has reports whether the set contains the given tag.
func (s SkillSet) Has(skill string) bool {
	return s[skill]
}

// IntersectCount returns the number of tags present in both sets.
func (s SkillSet) IntersectCount(other SkillSet) int {
	// Iterate the smaller set
	if len(other) < len(s) {
		s, other = other, s
	}
	count := 0
	for skill := range s {
		if other[skill] {
			count++
		}
	}
	return count
}

// Difference returns the tags in s that are absent from other.
func (s SkillSet) Difference(other SkillSet) SkillSet {
	diff := make(SkillSet)
	for skill := range s {
		if !other[skill] {
			diff[skill] = true
		}
	}
	return diff
}

// Sorted returns the tags in lexicographic order.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for skill := range s {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}
