// Package tld normalizes, validates and suggests top-level domain suffixes.
package tld

import (
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/weppos/publicsuffix-go/publicsuffix"
)

var primary = []string{".com", ".ai", ".app", ".io", ".xyz", ".tech"}

var known = []string{
	".pro", ".media", ".bet", ".vc", ".gg", ".so", ".dev", ".app", ".xyz",
	".tech", ".store", ".shop", ".online", ".info", ".biz", ".mobi", ".me",
	".tv", ".ws", ".cc", ".ca", ".us", ".ly", ".bio", ".cloud", ".eco",
	".au", ".co", ".ch", ".it", ".fm", ".se", ".no", ".es", ".ai", ".io",
	".org", ".net", ".com",
}

var typos = map[string]string{
	".cim": ".com",
	".cpm": ".com",
	".gom": ".com",
	".om":  ".com",
	".cm":  ".com",
}

var labelPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

const (
	minLabel  = 2
	maxLabel  = 24
	maxLabels = 3
)

// Primary returns the TLDs offered first in pickers.
func Primary() []string { return slices.Clone(primary) }

// All returns the known TLD list.
func All() []string { return slices.Clone(known) }

// Normalize trims, lowercases and prefixes a dot. Blank input yields "".
func Normalize(input string) string {
	t := strings.ToLower(strings.TrimSpace(input))
	if t == "" {
		return ""
	}
	if !strings.HasPrefix(t, ".") {
		t = "." + t
	}
	return t
}

// IsLikelyValid checks the format only: 1-3 labels, each 2-24 characters
// of [a-z0-9-] without a leading or trailing hyphen. Membership in the known
// list is not required.
func IsLikelyValid(input string) bool {
	t := Normalize(input)
	if t == "" {
		return false
	}

	labels := strings.Split(t[1:], ".")
	if len(labels) > maxLabels {
		return false
	}
	for _, label := range labels {
		if len(label) < minLabel || len(label) > maxLabel {
			return false
		}
		if !labelPattern.MatchString(label) {
			return false
		}
	}
	return true
}

func IsKnown(input string) bool {
	return slices.Contains(known, Normalize(input))
}

// IsListed reports whether the suffix is an ICANN entry of the Public
// Suffix List.
func IsListed(input string) bool {
	t := Normalize(input)
	if t == "" {
		return false
	}
	name := t[1:]
	rule := publicsuffix.DefaultList.Find(name, &publicsuffix.FindOptions{IgnorePrivate: true})
	return rule != nil && rule.Value == name
}

// Split partitions the input into known and unknown normalized TLDs.
func Split(list []string) (valid, unknown []string) {
	for _, raw := range list {
		t := Normalize(raw)
		if slices.Contains(known, t) {
			valid = append(valid, t)
		} else {
			unknown = append(unknown, t)
		}
	}
	return valid, unknown
}

// Autocorrect returns a confident fix for a mistyped TLD. Known input is
// returned as is. Otherwise the typo table is consulted, then the nearest
// known TLD is accepted within an edit distance of 1 for short inputs and 2
// for longer ones.
func Autocorrect(input string) (string, bool) {
	t := Normalize(input)
	if t == "" {
		return "", false
	}
	if slices.Contains(known, t) {
		return t, true
	}
	if fixed, ok := typos[t]; ok {
		return fixed, true
	}

	best, bestScore := "", -1
	for _, candidate := range known {
		d := levenshtein.ComputeDistance(t, candidate)
		if bestScore < 0 || d < bestScore {
			best, bestScore = candidate, d
		}
	}

	maxAllowed := 2
	if len(t) <= 4 {
		maxAllowed = 1
	}
	if bestScore > maxAllowed {
		return "", false
	}
	return best, true
}

// Suggest ranks known TLDs for a partial input: prefix matches first, then
// substring matches, then the rest by edit distance.
func Suggest(partial string, limit int) []string {
	q := Normalize(partial)
	if q == "" {
		return head(primary, limit)
	}
	return head(rank(q), limit)
}

// SuggestClosest is Suggest for a complete entry: a known TLD needs no
// suggestions.
func SuggestClosest(input string, limit int) []string {
	q := Normalize(input)
	if q == "" {
		return head(primary, limit)
	}
	if slices.Contains(known, q) {
		return nil
	}
	return head(rank(q), limit)
}

func rank(q string) []string {
	ranked := make([]string, 0, len(known))
	seen := make(map[string]struct{}, len(known))
	add := func(t string) {
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		ranked = append(ranked, t)
	}

	for _, t := range known {
		if strings.HasPrefix(t, q) {
			add(t)
		}
	}
	for _, t := range known {
		if strings.Contains(t, q) {
			add(t)
		}
	}

	rest := make([]string, 0, len(known))
	for _, t := range known {
		if _, ok := seen[t]; !ok {
			rest = append(rest, t)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return levenshtein.ComputeDistance(q, rest[i]) < levenshtein.ComputeDistance(q, rest[j])
	})
	for _, t := range rest {
		add(t)
	}
	return ranked
}

func head(list []string, limit int) []string {
	if limit <= 0 || limit > len(list) {
		limit = len(list)
	}
	return slices.Clone(list[:limit])
}
