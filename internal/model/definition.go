// Package model holds the data shapes shared by every other package of the
// engine: AI definitions, extracted AI values, linter error markup and the
// engine's closed error enumeration. It is the dependency leaf of the
// module — it imports nothing else under this module, so that the AI
// dictionary, parsers, validators and the public surface API can all refer
// to the same record shapes without an import cycle.
package model

// CharSet names the GS1 component character subset a value must satisfy.
type CharSet int

const (
	// CSetN is digits only.
	CSetN CharSet = iota
	// CSetX is CSET 82 (printable subset of ISO/IEC 646).
	CSetX
	// CSetY is CSET 39 (upper-case alphanumeric subset used by a handful
	// of legacy AIs).
	CSetY
	// CSetZ is a URL-safe base64 alphabet, used by the digital signature
	// AIs.
	CSetZ
)

func (c CharSet) String() string {
	switch c {
	case CSetN:
		return "N"
	case CSetX:
		return "X"
	case CSetY:
		return "Y"
	case CSetZ:
		return "Z"
	default:
		return "?"
	}
}

// DLDataAttr is the tri-state of whether an AI may appear as a GS1 Digital
// Link query attribute.
type DLDataAttr int

const (
	// DLDataAttrNone means the AI may never appear as a DL query attribute.
	DLDataAttrNone DLDataAttr = iota
	// DLDataAttrYes means the AI is a declared, dictionary-backed DL
	// attribute.
	DLDataAttrYes
	// DLDataAttrUnknown marks a vivified (synthetic, `permit_unknown_ais`)
	// AI; whether it may appear as a DL attribute depends on the
	// unknown_ai_not_dl_attr validation setting.
	DLDataAttrUnknown
)

// LinterFunc validates one component value. It returns a non-nil
// *LintFailure describing the first problem found, or nil if the value is
// acceptable. Implementations MUST NOT mutate value.
type LinterFunc func(value string) *LintFailure

// LintFailure is the positional failure record a LinterFunc returns; it is
// translated into a markup string by the caller once the component's
// position within the overall message is known.
type LintFailure struct {
	Kind   ErrKind
	ErrPos int // offset within the component value, 0-based
	ErrLen int // length of the offending slice; 0 means "to end of value"
}

// Component is one ordered field of an AI's value. Only the final
// component of a Definition may have Min != Max (variable length).
type Component struct {
	CharSet  CharSet
	Min, Max int
	Optional bool
	Linters  []string // resolved against the linter registry at table-build time
}

// Definition is an immutable AI dictionary record (spec.md §3).
type Definition struct {
	AI         string // 2-4 ASCII digits
	FNC1       bool   // a following FNC1 is required when variable-length
	DLDataAttr DLDataAttr
	Components []Component // ordered, <=5
	Attrs      string      // whitespace-joined attribute tokens, e.g. "dlpkey=22,10,21 req=11+21"
	Title      string

	// Unknown marks a synthetic "vivified" definition returned by
	// dict.Table.Lookup when permit_unknown_ais is set and no dictionary
	// entry matches; see spec.md §4.1.2.
	Unknown bool
}

// MinTotalLength is the sum of every mandatory component's minimum length;
// optional components contribute 0.
func (d *Definition) MinTotalLength() int {
	n := 0
	for _, c := range d.Components {
		if !c.Optional {
			n += c.Min
		}
	}
	return n
}

// MaxTotalLength is the sum of every component's maximum length.
func (d *Definition) MaxTotalLength() int {
	n := 0
	for _, c := range d.Components {
		n += c.Max
	}
	return n
}

// FixedLength reports whether every component (and therefore the whole
// value) has Min == Max, i.e. the AI never needs an FNC1 terminator.
func (d *Definition) FixedLength() bool {
	for _, c := range d.Components {
		if c.Min != c.Max {
			return false
		}
	}
	return true
}
