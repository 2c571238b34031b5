package model

// Options holds the per-instance toggles of spec.md §3's context object.
// It is plain data so that both the dictionary/parser/validator packages
// and the public gs1.Context can read it without an import cycle.
type Options struct {
	AddCheckDigit                 bool
	PermitUnknownAIs              bool
	PermitZeroSuppressedGTINInDL  bool
	PermitConvenienceAlphas       bool
	IncludeDataTitlesInHRI        bool
}

// ValidationState is one entry of the validator pipeline table (spec.md
// §3 `validation_table`).
type ValidationState struct {
	Enabled bool
	Locked  bool
}

// DefaultOptions mirrors the engine defaults spec.md implies (no option
// turns anything on that would reject otherwise-legal data by default).
func DefaultOptions() Options {
	return Options{}
}
