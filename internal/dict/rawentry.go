package dict

import (
	"strconv"

	"github.com/gs1ident/gs1syntax/internal/model"
)

// RawComponent is the pre-validated, pre-resolved shape of one AI
// component, as produced by either the embedded table literal
// (embedded.go) or the text syntax-dictionary parser (textdict.go).
type RawComponent struct {
	CharSet  model.CharSet
	Min, Max int
	Optional bool
	Linters  []string
}

// RawEntry is one dictionary entry before invariant-checking and sorting.
// AI ranges ("91-99") are expanded into individual RawEntry values by the
// caller before Build sees them.
type RawEntry struct {
	AI         string
	FNC1       bool
	DLDataAttr model.DLDataAttr
	Components []RawComponent
	Attrs      string
	Title      string
}

// toDefinition validates and converts r into an immutable model.Definition,
// enforcing spec.md §3's invariants: only the final component may be
// variable-length, and a mandatory component cannot follow an optional
// one.
func (r RawEntry) toDefinition() (*model.Definition, error) {
	if len(r.AI) < 2 || len(r.AI) > 4 {
		return nil, model.NewError(model.ErrSyntaxDictionarySyntax, "AI must be 2-4 digits: "+r.AI)
	}
	for _, c := range r.AI {
		if c < '0' || c > '9' {
			return nil, model.NewError(model.ErrSyntaxDictionarySyntax, "AI must be numeric: "+r.AI)
		}
	}

	comps := make([]model.Component, 0, len(r.Components))
	seenOptional := false
	for i, rc := range r.Components {
		if rc.Min != rc.Max && i != len(r.Components)-1 {
			return nil, model.NewError(model.ErrSyntaxDictionarySyntax,
				"AI "+r.AI+": only the final component may be variable-length")
		}
		if seenOptional && !rc.Optional {
			return nil, model.NewError(model.ErrSyntaxDictionarySyntax,
				"AI "+r.AI+": a mandatory component cannot follow an optional one")
		}
		if rc.Optional {
			seenOptional = true
		}
		if err := validateLinterNames(rc.Linters); err != nil {
			return nil, err
		}
		comps = append(comps, model.Component{
			CharSet:  rc.CharSet,
			Min:      rc.Min,
			Max:      rc.Max,
			Optional: rc.Optional,
			Linters:  rc.Linters,
		})
	}
	if len(comps) > 5 {
		return nil, model.NewError(model.ErrSyntaxDictionarySyntax, "AI "+r.AI+": at most 5 components")
	}

	return &model.Definition{
		AI:         r.AI,
		FNC1:       r.FNC1,
		DLDataAttr: r.DLDataAttr,
		Components: comps,
		Attrs:      r.Attrs,
		Title:      r.Title,
	}, nil
}

// expandRange expands "91-99"-shaped AI tokens into individual RawEntry
// values sharing every other field, per spec.md §4.1.1. first and last
// must be numeric, equal width, and differ only in the last digit, with
// last > first (spec.md §6's syntax-dictionary text format rule, applied
// uniformly to both dictionary sources).
func expandRange(first, last string, template RawEntry) ([]RawEntry, error) {
	if len(first) != len(last) {
		return nil, model.NewError(model.ErrSyntaxDictionaryRangeInvalid, "range endpoints differ in width: "+first+"-"+last)
	}
	if first[:len(first)-1] != last[:len(last)-1] {
		return nil, model.NewError(model.ErrSyntaxDictionaryRangeInvalid, "range endpoints differ before the last digit: "+first+"-"+last)
	}
	lo, err1 := strconv.Atoi(first)
	hi, err2 := strconv.Atoi(last)
	if err1 != nil || err2 != nil {
		return nil, model.NewError(model.ErrSyntaxDictionaryRangeInvalid, "range endpoints must be numeric: "+first+"-"+last)
	}
	if hi <= lo {
		return nil, model.NewError(model.ErrSyntaxDictionaryRangeInvalid, "range end must exceed start: "+first+"-"+last)
	}
	width := len(first)
	out := make([]RawEntry, 0, hi-lo+1)
	for v := lo; v <= hi; v++ {
		e := template
		e.AI = padNumber(v, width)
		out = append(out, e)
	}
	return out, nil
}

func padNumber(v, width int) string {
	s := strconv.Itoa(v)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
