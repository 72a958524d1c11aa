// Package match resolves user-typed names ("metl parts", "Scrappy") to
// catalog identities. Exact id and name matches win; otherwise the closest
// candidate within a length-scaled levenshtein distance is used.
package match

import (
	"regexp"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Candidate is one resolvable identity with its display name.
type Candidate struct {
	ID   string
	Name string
}

// Result is a resolved candidate plus the distance it matched at (0 for exact
// matches).
type Result struct {
	Candidate
	Distance int
}

var multiSpaceRE = regexp.MustCompile(`\s+`)

// normalize lowercases and collapses separators so "Metal-Parts" and
// "metal parts" compare equal.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", " ", "_", " ", "/", " ").Replace(s)
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(s, " "))
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// Resolve finds the best candidate for the query. The second return value is
// false when nothing matches exactly and no candidate is close enough.
func Resolve(query string, candidates []Candidate) (Result, bool) {
	q := normalize(query)
	if q == "" {
		return Result{}, false
	}

	for _, c := range candidates {
		if normalize(c.ID) == q || normalize(c.Name) == q {
			return Result{Candidate: c}, true
		}
	}

	type scored struct {
		c    Candidate
		dist int
	}
	var close []scored
	for _, c := range candidates {
		best := -1
		for _, field := range []string{c.ID, c.Name} {
			n := normalize(field)
			if n == "" {
				continue
			}
			d := levenshtein.ComputeDistance(q, n)
			if d <= distanceLimit(len(n)) && (best == -1 || d < best) {
				best = d
			}
		}
		if best >= 0 {
			close = append(close, scored{c: c, dist: best})
		}
	}
	if len(close) == 0 {
		return Result{}, false
	}

	sort.SliceStable(close, func(i, j int) bool {
		if close[i].dist == close[j].dist {
			return close[i].c.ID < close[j].c.ID
		}
		return close[i].dist < close[j].dist
	})
	return Result{Candidate: close[0].c, Distance: close[0].dist}, true
}

// Suggestions returns up to limit near-miss candidates for error messages.
func Suggestions(query string, candidates []Candidate, limit int) []Candidate {
	q := normalize(query)
	if q == "" || limit <= 0 {
		return nil
	}

	type scored struct {
		c    Candidate
		dist int
	}
	var close []scored
	for _, c := range candidates {
		n := normalize(c.Name)
		if n == "" {
			n = normalize(c.ID)
		}
		d := levenshtein.ComputeDistance(q, n)
		if d <= distanceLimit(len(n))+1 {
			close = append(close, scored{c: c, dist: d})
		}
	}
	sort.SliceStable(close, func(i, j int) bool {
		if close[i].dist == close[j].dist {
			return close[i].c.ID < close[j].c.ID
		}
		return close[i].dist < close[j].dist
	})

	out := make([]Candidate, 0, limit)
	for _, s := range close {
		out = append(out, s.c)
		if len(out) == limit {
			break
		}
	}
	return out
}
