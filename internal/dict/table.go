// Package dict implements the GS1 AI dictionary: building, indexing and
// looking up AI definitions (spec.md §4.1). Grounded structurally on
// rob-gra-go-iecp5's asdu/identifier.go TypeID catalogue — an exhaustive,
// named table of message/field definitions driving a codec — and on the
// teacher's own small prefix-indexed lookup helpers (define.go).
package dict

import (
	"sort"

	"github.com/gs1ident/gs1syntax/internal/linter"
	"github.com/gs1ident/gs1syntax/internal/logging"
	"github.com/gs1ident/gs1syntax/internal/model"
)

// Table is a built, indexed AI dictionary: spec.md §4.1's sorted entry
// list, length_by_prefix table and key/qualifier sequence set.
type Table struct {
	entries        []*model.Definition // sorted by AI
	lengthByPrefix [100]int            // 0 means "no fixed length recorded for this prefix"
	keyQualSeqs    []string            // sorted "<key> <q1> <q2> ..." sequences
	alpha          map[string]string   // convenience alpha name -> AI
}

// Default builds the Table from the embedded representative AI set
// (embedded.go), the dictionary spec.md §3's `init` loads when the caller
// supplies no syntax dictionary file.
func Default() (*Table, error) {
	return Build(embeddedEntries)
}

// Build constructs a Table from a set of raw entries (already AI-range
// expanded), in the order spec.md §4.1.1 prescribes: strip handled by the
// caller (embedded.go / textdict.go), then verify prefix-length agreement,
// sort, precompute length_by_prefix, and precompute key/qualifier
// sequences.
func Build(raw []RawEntry) (*Table, error) {
	defs := make([]*model.Definition, 0, len(raw))
	for _, r := range raw {
		def, err := r.toDefinition()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	sort.Slice(defs, func(i, j int) bool { return defs[i].AI < defs[j].AI })

	t := &Table{entries: defs, alpha: buildAlphaTable()}

	if err := t.computeLengthByPrefix(); err != nil {
		return nil, err
	}
	t.computeKeyQualSequences()

	logging.L.WithField("entries", len(defs)).Info("AI dictionary built")
	return t, nil
}

func (t *Table) computeLengthByPrefix() error {
	seen := make(map[string]int) // prefix -> total length recorded so far
	for _, d := range t.entries {
		if len(d.AI) < 2 {
			continue
		}
		prefix := d.AI[:2]
		length := d.MaxTotalLength() + len(d.AI)
		if !d.FixedLength() {
			// Variable-length AIs do not pin down a single total length;
			// only fixed-length entries populate length_by_prefix,
			// matching spec.md's "all AIs beginning with it have the same
			// total length" invariant, which only makes sense for
			// same-length (hence fixed-length) families.
			continue
		}
		if prev, ok := seen[prefix]; ok && prev != length {
			return model.NewError(model.ErrTableBrokenPrefixesDifferInLength, "").WithMarkup(prefix)
		}
		seen[prefix] = length
		idx := int(prefix[0]-'0')*10 + int(prefix[1]-'0')
		t.lengthByPrefix[idx] = length
	}
	return nil
}

// LengthByPrefix returns the configured total message length (AI digits +
// value) for a 2-digit prefix, or 0 if no fixed-length AI shares it.
func (t *Table) LengthByPrefix(prefix string) int {
	if len(prefix) < 2 {
		return 0
	}
	idx := int(prefix[0]-'0')*10 + int(prefix[1]-'0')
	if idx < 0 || idx > 99 {
		return 0
	}
	return t.lengthByPrefix[idx]
}

// Entries exposes the sorted definition list, e.g. for property-based
// tests asserting table-wide invariants.
func (t *Table) Entries() []*model.Definition { return t.entries }

// AlphaAI resolves a convenience alpha name (e.g. "GTIN") to its AI, per
// spec.md's supplemented convenience-alpha feature.
func (t *Table) AlphaAI(name string) (string, bool) {
	ai, ok := t.alpha[name]
	return ai, ok
}

// ByAI returns the entry whose AI is exactly ai, with no prefix or
// vivification logic; used once callers (element, dlink) already know the
// AI precisely, e.g. after Lookup has already resolved it once.
func (t *Table) ByAI(ai string) (*model.Definition, bool) {
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].AI >= ai })
	if i < len(t.entries) && t.entries[i].AI == ai {
		return t.entries[i], true
	}
	return nil, false
}

// validateLinterNames checks that every named linter is registered,
// failing closed (spec.md §4.2: "the full taxonomy is closed") rather than
// silently accepting an unresolvable reference into the table.
func validateLinterNames(names []string) error {
	for _, n := range names {
		if _, ok := linter.Lookup(n); !ok {
			return model.NewError(model.ErrSyntaxDictionaryUnknownLinter, "unknown linter: "+n)
		}
	}
	return nil
}
