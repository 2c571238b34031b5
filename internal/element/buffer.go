// Package element implements spec.md §4.3: parsing and generating the two
// AI element-string surfaces (bracketed and unbracketed/canonical) against
// a dict.Table, sharing one buffer-walking shape grounded on the teacher's
// ASDU.Parse/ASDU.Data pair (asdu.go): sequential left-to-right byte
// consumption into a typed record, and the inverse builder walking the
// same records back into bytes.
package element

import (
	"github.com/gs1ident/gs1syntax/internal/dict"
	"github.com/gs1ident/gs1syntax/internal/linter"
	"github.com/gs1ident/gs1syntax/internal/model"
)

// FNC1 is the canonical-buffer representation of the FNC1 control
// character (spec.md §6: "`^` (0x5E) represents FNC1").
const FNC1 = '^'

// CCSeparator is the literal composite/linear separator recognised in
// bracketed input (spec.md §6: "`|` separates linear from composite").
const CCSeparator = '|'

// MaxDataStrLength bounds the canonical message buffer; any parse that
// would exceed it fails with ErrDataTooLong (spec.md §5's compile-time
// cap, surfaced publicly as gs1.MaxDataStrLength).
const MaxDataStrLength = 8191

// lintComponent runs the automatic character-set check (spec.md §4.2's
// INVALID_CSET82/39/64_CHARACTER family) followed by every named linter on
// one component value, in dictionary order, stopping at the first
// failure — spec.md's linters are documented as independent pure
// functions, but a value that already fails its character set is never
// meaningfully checkable by a checksum/ISO/date linter layered on top.
func lintComponent(cs model.CharSet, names []string, value string) *model.LintFailure {
	if lf := linter.CheckCharSet(cs, value); lf != nil {
		return lf
	}
	for _, name := range names {
		fn, ok := linter.Lookup(name)
		if !ok {
			continue // validated unresolvable at table-build time; defensive only
		}
		if lf := fn(value); lf != nil {
			return lf
		}
	}
	return nil
}

// LintValue validates every component of value against def in order,
// returning a *model.Error with position markup on the first failure.
// Exported so internal/dlink can reuse the same per-component linting for
// DL URI path/attribute values instead of duplicating it.
func LintValue(def *model.Definition, value string) *model.Error {
	pos := 0
	for _, comp := range def.Components {
		if pos >= len(value) {
			if comp.Optional {
				break
			}
			return model.NewError(model.ErrComponentTooShort, "AI "+def.AI+" is missing a mandatory component")
		}
		end := len(value)
		if comp.Max > 0 && comp.Max < end-pos {
			end = pos + comp.Max
		}
		compVal := value[pos:end]
		if len(compVal) < comp.Min {
			return model.NewError(model.ErrComponentTooShort, "AI "+def.AI+" component shorter than minimum length")
		}
		if lf := lintComponent(comp.CharSet, comp.Linters, compVal); lf != nil {
			markup := "(" + def.AI + ")" + markupFor(value, pos+lf.ErrPos, lf.ErrLen)
			return model.NewError(lf.Kind, "AI "+def.AI+": "+lf.Kind.String()).WithMarkup(markup)
		}
		pos = end
	}
	if pos < len(value) {
		return model.NewError(model.ErrComponentTooLong, "AI "+def.AI+" value longer than its components allow")
	}
	return nil
}

// markupFor renders spec.md §7's "(AI)<before>|<bad>|<after>"-style
// highlight for a linter failure at [start, start+length) within value.
func markupFor(value string, start, length int) string {
	if length <= 0 {
		length = len(value) - start
	}
	end := start + length
	if end > len(value) {
		end = len(value)
	}
	if start > len(value) {
		start = len(value)
	}
	return value[:start] + "|" + value[start:end] + "|" + value[end:]
}

// lookupForParse resolves one AI from data using tbl, honoring
// permitUnknown; it is the shared entry point bracketed.go and
// unbracketed.go both call so prefix-conflict and vivification behavior
// (spec.md §4.1.2) is identical across input surfaces.
func lookupForParse(tbl *dict.Table, data string, requestedLen int, permitUnknown bool) (*model.Definition, error) {
	def, err := tbl.Lookup(data, requestedLen, permitUnknown)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, model.NewError(model.ErrUnknownAI, "unrecognised AI in: "+data)
	}
	return def, nil
}
