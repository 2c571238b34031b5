package dict

import (
	"sort"
	"strings"
)

// computeKeyQualSequences implements spec.md §4.1.3: for every entry whose
// Attrs contain a dlpkey token, enumerate all 2^k subsets of each
// qualifier-AI list (order preserved) plus the bare key, producing
// whitespace-joined "<key> <q1> <q2> ..." strings. Multiple alternative
// qualifier lists (pipe-separated) contribute their own subset families;
// the combined result is deduplicated and sorted lexicographically so
// IsValidDLPathAISequence can binary-search it.
func (t *Table) computeKeyQualSequences() {
	seen := make(map[string]bool)
	for _, d := range t.entries {
		qualLists, hasKey := parseDLPKey(d.Attrs)
		if !hasKey {
			continue
		}
		seen[d.AI] = true
		for _, quals := range qualLists {
			for _, subset := range powerSetInOrder(quals) {
				seq := append([]string{d.AI}, subset...)
				seen[strings.Join(seq, " ")] = true
			}
		}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	t.keyQualSeqs = out
}

// parseDLPKey extracts the qualifier-AI lists from a dlpkey attribute
// token. "dlpkey" alone reports hasKey=true with no qualifier lists (so
// the caller still records the bare key). "dlpkey=22,10,21" reports one
// list of 3 qualifiers; "dlpkey=22,10|21,235" reports two alternative
// lists, each tried independently.
func parseDLPKey(attrs string) (qualLists [][]string, hasKey bool) {
	for _, tok := range strings.Fields(attrs) {
		if tok == "dlpkey" {
			return nil, true
		}
		if strings.HasPrefix(tok, "dlpkey=") {
			rest := strings.TrimPrefix(tok, "dlpkey=")
			for _, alt := range strings.Split(rest, "|") {
				if alt == "" {
					continue
				}
				qualLists = append(qualLists, strings.Split(alt, ","))
			}
			return qualLists, true
		}
	}
	return nil, false
}

// powerSetInOrder returns every subset of items, each subset retaining
// items' relative order, including the empty subset. Len(items) is always
// small (a handful of qualifier AIs per key), so the 2^k enumeration here
// is cheap and only ever runs once at table-build time.
func powerSetInOrder(items []string) [][]string {
	n := len(items)
	out := make([][]string, 0, 1<<uint(n))
	for mask := 0; mask < (1 << uint(n)); mask++ {
		var subset []string
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				subset = append(subset, items[i])
			}
		}
		out = append(out, subset)
	}
	return out
}

// IsValidDLPathAISequence reports whether seq (space-joined AI tokens, key
// first) is one of the precomputed key/qualifier sequences (spec.md §4.4
// step 7).
func (t *Table) IsValidDLPathAISequence(seq string) bool {
	i := sort.SearchStrings(t.keyQualSeqs, seq)
	return i < len(t.keyQualSeqs) && t.keyQualSeqs[i] == seq
}

// KeyQualSequences exposes the sorted precomputed sequence list, e.g. for
// DL URI generation's longest-match search (internal/dlink) and for
// property-based tests.
func (t *Table) KeyQualSequences() []string { return t.keyQualSeqs }

// IsDLPrimaryKey reports whether ai appears as the first token of at least
// one precomputed key/qualifier sequence (spec.md §4.4 step 5's "AI is a
// DL primary key" test).
func (t *Table) IsDLPrimaryKey(ai string) bool {
	i := sort.SearchStrings(t.keyQualSeqs, ai)
	return i < len(t.keyQualSeqs) && t.keyQualSeqs[i] == ai
}

// SequencesForKey returns every precomputed sequence beginning with key,
// longest first, for the "longest satisfied sequence" search that DL URI
// generation performs (spec.md §4.4 step 12 / the DL URI generation
// walkthrough in §4.4).
func (t *Table) SequencesForKey(key string) []string {
	var out []string
	prefix := key + " "
	for _, s := range t.keyQualSeqs {
		if s == key || strings.HasPrefix(s, prefix) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return len(strings.Fields(out[i])) > len(strings.Fields(out[j]))
	})
	return out
}
