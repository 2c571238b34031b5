package dict

import (
	"sort"

	"github.com/gs1ident/gs1syntax/internal/model"
)

// minAILen / maxAILen bound a valid AI's digit count; used to reject
// clearly-malformed vivified candidates before they ever reach the
// synthetic "unknown AI" path.
const (
	minAILen = 2
	maxAILen = 4
)

// Lookup implements spec.md §4.1.2. requestedLen == 0 means "prefix
// search" (the caller does not yet know the AI's length, e.g. scanning
// unbracketed data); requestedLen >= 2 means "exact lookup" (the caller
// already knows exactly how many digits are the AI, e.g. a bracketed
// "(nnnn)" token or a GS1 Digital Link path/query AI segment).
//
// permitUnknown gates the synthetic vivified entry in both modes: an
// exact lookup's claimed length is every bit as delimiting as the closing
// paren of bracketed data or the "/" of a DL path segment, so there is no
// reason to forbid vivification there the way unbracketed parsing must
// forbid it for variable-length AIs it cannot delimit at all.
func (t *Table) Lookup(prefix string, requestedLen int, permitUnknown bool) (*model.Definition, error) {
	if requestedLen == 0 {
		return t.lookupPrefix(prefix, permitUnknown)
	}
	return t.lookupExact(prefix, requestedLen, permitUnknown)
}

// lookupPrefix finds the entry whose AI is a prefix of prefix. Ties are
// impossible: the dictionary never contains one AI that is itself a
// prefix of another (computeLengthByPrefix would have rejected differing
// lengths sharing the same leading two digits, and AI widths are 2-4
// digits drawn from the same numeric space).
func (t *Table) lookupPrefix(data string, permitUnknown bool) (*model.Definition, error) {
	for width := maxAILen; width >= minAILen; width-- {
		if len(data) < width {
			continue
		}
		candidate := data[:width]
		if !isAllDigits(candidate) {
			continue
		}
		i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].AI >= candidate })
		if i < len(t.entries) && t.entries[i].AI == candidate {
			def := t.entries[i]
			if confLen := t.LengthByPrefix(candidate[:2]); confLen != 0 && def.FixedLength() {
				want := len(candidate) + def.MaxTotalLength()
				if want != confLen {
					return nil, model.NewError(model.ErrAILookupPrefixConflict, "AI "+candidate+" length conflicts with configured prefix length")
				}
			}
			return def, nil
		}
	}

	if !permitUnknown {
		return nil, nil
	}
	return t.vivify(data)
}

// lookupExact requires both AI digits and declared length to match, and
// that no longer AI exist for which data's first requestedLen digits are
// merely a prefix. On a miss, permitUnknown vivifies a synthetic entry at
// exactly requestedLen digits, the same way lookupPrefix does for its own
// shorter-width-first search.
func (t *Table) lookupExact(data string, requestedLen int, permitUnknown bool) (*model.Definition, error) {
	if len(data) < requestedLen || !isAllDigits(data[:requestedLen]) {
		return nil, nil
	}
	candidate := data[:requestedLen]

	for _, d := range t.entries {
		if len(d.AI) > requestedLen && hasPrefix(d.AI, candidate) {
			return nil, model.NewError(model.ErrAILookupPrefixConflict, "a longer AI "+d.AI+" exists for which "+candidate+" is a prefix")
		}
	}

	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].AI >= candidate })
	if i < len(t.entries) && t.entries[i].AI == candidate {
		return t.entries[i], nil
	}

	if !permitUnknown {
		return nil, nil
	}
	return t.vivifyWidth(candidate), nil
}

// vivify synthesizes the "unknown AI" entry spec.md §4.1.2 describes: a
// permit_unknown_ais fallback for digits that are plausibly an AI (all
// numeric, within a 2-4 digit band) but match no dictionary entry.
// lookupPrefix does not yet know the AI's width, so it tries each width
// shortest-first and returns the first that vivifies.
func (t *Table) vivify(data string) (*model.Definition, error) {
	for width := minAILen; width <= maxAILen; width++ {
		if len(data) < width || !isAllDigits(data[:width]) {
			continue
		}
		if def := t.vivifyWidth(data[:width]); def != nil {
			return def, nil
		}
	}
	return nil, nil
}

// vivifyWidth builds the synthetic "unknown AI" Definition for an AI whose
// width is already known exactly (all of ai's digits are the AI, no more,
// no less). Its single component is X 1-90, unless the leading two digits
// match a recorded fixed length, in which case the vivified value is fixed
// at that length instead; it returns nil if that fixed length conflicts
// with ai's own width (leaves no room for a value).
func (t *Table) vivifyWidth(ai string) *model.Definition {
	comp := model.Component{CharSet: model.CSetX, Min: 1, Max: 90}
	if fixed := t.LengthByPrefix(ai[:2]); fixed != 0 {
		valueLen := fixed - len(ai)
		if valueLen < 1 {
			return nil
		}
		comp = model.Component{CharSet: model.CSetX, Min: valueLen, Max: valueLen}
	}
	return &model.Definition{
		AI:         ai,
		FNC1:       comp.Min != comp.Max,
		DLDataAttr: model.DLDataAttrUnknown,
		Components: []model.Component{comp},
		Title:      "UNKNOWN",
		Unknown:    true,
	}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
