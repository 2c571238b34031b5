package model

// DLPathOrder is the small integer recording where an extracted AI value
// came from in a GS1 Digital Link URI: its ascending position in the path,
// or one of the two sentinels below. For non-DL inputs it is left at
// DLPathNotApplicable.
type DLPathOrder int

const (
	// DLPathNotApplicable marks an AIValue that was not produced from a DL
	// URI (bracketed/unbracketed/scan-data input).
	DLPathNotApplicable DLPathOrder = -2
	// DLPathAttribute marks an AIValue that arrived via the DL query
	// string (or is itself a query attribute on generation).
	DLPathAttribute DLPathOrder = -1
	// DLPathRoot is the path position of the primary key itself.
	DLPathRoot DLPathOrder = 0
)

// AIValueKind distinguishes the three shapes an extracted value can take.
type AIValueKind int

const (
	// KindAIValue is an ordinary extracted AI + value pair.
	KindAIValue AIValueKind = iota
	// KindCCSeparator marks the synthetic AI emitted for the literal `|`
	// composite separator in bracketed input.
	KindCCSeparator
	// KindDLIgnored marks a DL query-string token whose key was not an
	// all-digit AI; spec.md §4.4.1 step 8 preserves these verbatim rather
	// than rejecting them.
	KindDLIgnored
)

// AIValue is a slice-referencing record borrowed from the context's
// canonical message buffer (spec.md §3 "AI value (extracted)"). AIStart/
// AILen and ValStart/ValLen index into the same buffer; Def.AI always
// equals Buffer[AIStart:AIStart+AILen] for KindAIValue entries.
type AIValue struct {
	Def *Definition
	Kind AIValueKind

	AIStart, AILen   int
	ValStart, ValLen int

	DLPathOrder DLPathOrder

	// Raw holds the undecoded original text for KindDLIgnored entries,
	// which by definition have no dictionary Def and no meaningful
	// AIStart/ValStart split within the canonical buffer.
	Raw string
}

// AI returns the AI digits of this value given the buffer it was extracted
// from.
func (v *AIValue) AI(buf string) string {
	if v.Kind == KindDLIgnored {
		return ""
	}
	return buf[v.AIStart : v.AIStart+v.AILen]
}

// Value returns the value text of this value given the buffer it was
// extracted from.
func (v *AIValue) Value(buf string) string {
	if v.Kind == KindDLIgnored {
		return v.Raw
	}
	return buf[v.ValStart : v.ValStart+v.ValLen]
}
