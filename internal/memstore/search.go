package memstore

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// DefaultTopK is the result limit when the caller does not specify one.
const DefaultTopK = 3

// Match is one scored search hit.
type Match struct {
	Key   string
	Value string
	Score int
}

// Search scores every stored entry against query and returns up to topK
// matches, best first. topK <= 0 means DefaultTopK.
//
// Scoring: each entry is rendered as "key: value" and scored as a similarity
// percentage in [0, 100] — 100*(maxLen-dist)/maxLen over the
// case-folded Levenshtein distance, taking the best of the full rendering and
// each individual word in it (so a short query can still hit a long value).
// Equal scores tie-break by ascending key, which is deterministic regardless
// of map iteration order. An empty store yields no matches.
func (s *Store) Search(query string, topK int) []Match {
	if topK <= 0 {
		topK = DefaultTopK
	}

	m := s.RecallAll()
	if len(m) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	matches := make([]Match, 0, len(keys))
	for _, k := range keys {
		text := k + ": " + m[k]
		matches = append(matches, Match{Key: k, Value: m[k], Score: score(query, text)})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches
}

// score returns the best similarity between query and candidate, considering
// the candidate as a whole and word by word.
func score(query, candidate string) int {
	q := strings.ToLower(query)
	c := strings.ToLower(candidate)

	best := similarity(q, c)
	for _, w := range strings.FieldsFunc(c, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if s := similarity(q, w); s > best {
			best = s
		}
	}
	return best
}

// similarity maps Levenshtein distance to a 0-100 percentage; identical
// strings score 100, strings sharing nothing score 0.
func similarity(a, b string) int {
	la, lb := len([]rune(a)), len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 100
	}
	d := levenshtein.ComputeDistance(a, b)
	return (maxLen - d) * 100 / maxLen
}
