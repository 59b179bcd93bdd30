package voynich

import (
	"sort"
	"strings"
)

// AffixTable is an ordered list of affix candidates. Candidates are
// tried longest-first; among equal lengths the earlier curated entry
// wins. That pair of rules is the single tie-break for the whole
// engine — every consumer shares it through this type.
type AffixTable struct {
	entries []string
}

// NewAffixTable builds a table from a curated list. The list order is
// preserved among entries of equal length (stable sort by descending
// length); duplicates and empty strings are dropped.
func NewAffixTable(curated []string) AffixTable {
	seen := make(map[string]bool, len(curated))
	entries := make([]string, 0, len(curated))
	for _, e := range curated {
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i]) > len(entries[j])
	})
	return AffixTable{entries: entries}
}

// Entries returns the candidates in match order.
func (t AffixTable) Entries() []string {
	out := make([]string, len(t.entries))
	copy(out, t.entries)
	return out
}

// Contains reports whether affix is in the table.
func (t AffixTable) Contains(affix string) bool {
	for _, e := range t.entries {
		if e == affix {
			return true
		}
	}
	return false
}

// stripPrefix returns the longest table entry that s starts with, and
// the remainder. Stripping that would leave an empty remainder does
// not count as a match.
func (t AffixTable) stripPrefix(s string) (affix, rest string, ok bool) {
	for _, e := range t.entries {
		if len(e) < len(s) && strings.HasPrefix(s, e) {
			return e, s[len(e):], true
		}
	}
	return "", s, false
}

// stripSuffix is stripPrefix for the end of s.
func (t AffixTable) stripSuffix(s string) (affix, rest string, ok bool) {
	for _, e := range t.entries {
		if len(e) < len(s) && strings.HasSuffix(s, e) {
			return e, s[:len(s)-len(e)], true
		}
	}
	return "", s, false
}

// Curated affix lists. These come from the hand-maintained word-structure
// dictionaries; order within an equal-length group is significant.
var (
	// defaultArticulators is the fixed membership list distinguishing
	// articulators from ordinary prefixes. Every entry also appears in
	// defaultPrefixes.
	defaultArticulators = []string{"y", "d", "s"}

	defaultPrefixes = []string{
		"qo", "cho", "sho", "che", "she", "ch", "sh",
		"da", "sa", "y", "d", "s",
	}

	defaultSuffixes = []string{
		"aiin", "aiir", "ain", "air",
		"edy", "eey", "ody",
		"dy", "ey", "ol", "or", "al", "ar", "am", "an", "in", "ir",
		"y",
	}
)

// DefaultArticulators returns the curated articulator membership list.
func DefaultArticulators() []string {
	return append([]string(nil), defaultArticulators...)
}

// DefaultPrefixes returns the curated prefix list.
func DefaultPrefixes() []string {
	return append([]string(nil), defaultPrefixes...)
}

// DefaultSuffixes returns the curated suffix list.
func DefaultSuffixes() []string {
	return append([]string(nil), defaultSuffixes...)
}
