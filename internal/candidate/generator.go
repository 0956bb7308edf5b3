// Package candidate expands keyword lists and TLDs into domain names to check.
package candidate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"domainscout/internal/tld"
)

const DefaultMaxDomains = 5000

var (
	ErrTooManyCandidates = errors.New("too many candidate domains")
	ErrNothingToCheck    = errors.New("no domains to check")
)

// LimitError reports an expansion larger than the configured ceiling.
type LimitError struct {
	Count int
	Max   int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("job size %d exceeds the limit of %d domains", e.Count, e.Max)
}

func (e *LimitError) Is(target error) bool {
	return target == ErrTooManyCandidates
}

var (
	keywordSeparators = regexp.MustCompile(`[\n,]`)
	keywordDisallowed = regexp.MustCompile(`[^a-z0-9-]`)
)

// SanitizeKeyword lowercases and strips everything outside [a-z0-9-].
// Applying it twice yields the same token.
func SanitizeKeyword(s string) string {
	return keywordDisallowed.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
}

// SplitKeywords splits raw text on newlines and commas and keeps the
// non-empty sanitized tokens.
func SplitKeywords(raw string) []string {
	var out []string
	for _, part := range keywordSeparators.Split(raw, -1) {
		if kw := SanitizeKeyword(part); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

type Generator struct {
	maxDomains int
}

func NewGenerator(maxDomains int) *Generator {
	if maxDomains <= 0 {
		maxDomains = DefaultMaxDomains
	}
	return &Generator{maxDomains: maxDomains}
}

func (g *Generator) Max() int {
	return g.maxDomains
}

// Count is the size of the expansion: exact up to the ceiling, and the
// upper bound m*n*k above it. A base never contains a dot and every TLD
// starts with one, so distinct (base, tld) pairs never collide.
func (g *Generator) Count(keywords1, keywords2 string, tlds []string) int {
	ts := uniqueTLDs(tlds)
	_, count, _ := expand(keywords1, keywords2, ts, g.baseLimit(len(ts)))
	return count
}

// Generate returns base+tld for every non-empty base in keyword order, with
// TLDs varying fastest. Bases are collected only until the ceiling is
// crossed, so an oversized request is rejected without building it.
func (g *Generator) Generate(keywords1, keywords2 string, tlds []string) ([]string, error) {
	ts := uniqueTLDs(tlds)
	bs, count, complete := expand(keywords1, keywords2, ts, g.baseLimit(len(ts)))
	if !complete {
		return nil, &LimitError{Count: count, Max: g.maxDomains}
	}
	if err := g.check(count); err != nil {
		return nil, err
	}

	out := make([]string, 0, count)
	for _, b := range bs {
		for _, t := range ts {
			out = append(out, b+t)
		}
	}
	return out, nil
}

// Preview returns the expansion size as Count does and at most limit
// leading candidates.
func (g *Generator) Preview(keywords1, keywords2 string, tlds []string, limit int) (int, []string) {
	ts := uniqueTLDs(tlds)
	limit = max(limit, 0)

	baseLimit := g.baseLimit(len(ts))
	if len(ts) > 0 {
		baseLimit = max(baseLimit, (limit+len(ts)-1)/len(ts))
	}
	bs, count, _ := expand(keywords1, keywords2, ts, baseLimit)

	out := make([]string, 0, min(limit, len(bs)*len(ts)))
	for _, b := range bs {
		for _, t := range ts {
			if len(out) >= limit {
				return count, out
			}
			out = append(out, b+t)
		}
	}
	return count, out
}

// Normalize prepares a pre-expanded domain list: trimmed, lowercased,
// deduplicated in first-seen order, with the same ceiling and empty rules as
// Generate.
func (g *Generator) Normalize(domains []string) ([]string, error) {
	out := dedupe(domains, func(s string) string {
		return strings.ToLower(strings.TrimSpace(s))
	})
	if err := g.check(len(out)); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Generator) check(count int) error {
	if count == 0 {
		return ErrNothingToCheck
	}
	if count > g.maxDomains {
		return &LimitError{Count: count, Max: g.maxDomains}
	}
	return nil
}

// baseLimit is the largest number of bases whose expansion over k TLDs
// stays within the ceiling.
func (g *Generator) baseLimit(k int) int {
	if k == 0 {
		return 0
	}
	return g.maxDomains / k
}

// expand collects distinct non-empty bases in keyword order and stops at the
// first base beyond limit. A complete expansion reports its exact count; a
// cut one reports the m*n*k upper bound and the bases gathered so far.
func expand(keywords1, keywords2 string, ts []string, limit int) ([]string, int, bool) {
	if len(ts) == 0 {
		return nil, 0, true
	}

	identity := func(s string) string { return s }
	list1 := orPlaceholder(dedupe(SplitKeywords(keywords1), identity))
	list2 := orPlaceholder(dedupe(SplitKeywords(keywords2), identity))

	size := min(len(list1)*len(list2), limit+1)
	seen := make(map[string]struct{}, size)
	bs := make([]string, 0, size)
	for _, a := range list1 {
		for _, b := range list2 {
			base := a + b
			if base == "" {
				continue
			}
			if _, ok := seen[base]; ok {
				continue
			}
			if len(bs) == limit {
				return bs, len(list1) * len(list2) * len(ts), false
			}
			seen[base] = struct{}{}
			bs = append(bs, base)
		}
	}
	return bs, len(bs) * len(ts), true
}

func uniqueTLDs(tlds []string) []string {
	return dedupe(tlds, tld.Normalize)
}

func orPlaceholder(list []string) []string {
	if len(list) == 0 {
		return []string{""}
	}
	return list
}

// dedupe maps each entry, drops empty results and keeps the first occurrence.
func dedupe(in []string, normalize func(string) string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, raw := range in {
		v := normalize(raw)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
