package gs1

import (
	"github.com/gs1ident/gs1syntax/internal/scancode"
	"github.com/gs1ident/gs1syntax/internal/validate"
)

// Symbology names a barcode symbology for scan-data encode/decode
// (spec.md §4.6). It is the same enumeration internal/scancode uses
// internally, re-exported here since set_sym/get_sym are public operations.
type Symbology = scancode.Symbology

const (
	SymNone                 = scancode.SymNone
	SymGS1_128_CCA          = scancode.SymGS1_128_CCA
	SymGS1_128_CCC          = scancode.SymGS1_128_CCC
	SymEAN13                = scancode.SymEAN13
	SymUPCA                 = scancode.SymUPCA
	SymEAN8                 = scancode.SymEAN8
	SymUPCE                 = scancode.SymUPCE
	SymGS1_DataBar          = scancode.SymGS1_DataBar
	SymGS1_DataBar_Limited  = scancode.SymGS1_DataBar_Limited
	SymGS1_DataBar_Expanded = scancode.SymGS1_DataBar_Expanded
	SymQRCode               = scancode.SymQRCode
	SymDataMatrix           = scancode.SymDataMatrix
	SymDotCode              = scancode.SymDotCode
)

// ValidationID names one of the five fixed validator-pipeline procedures
// (spec.md §4.5), re-exported so SetValidationEnabled callers don't need
// to import internal/validate.
type ValidationID = validate.ID

const (
	ValidationMutexAIs           = validate.MutexAIs
	ValidationRequisiteAIs       = validate.RequisiteAIs
	ValidationRepeatedAIs        = validate.RepeatedAIs
	ValidationDigSigSerialKey    = validate.DigSigSerialKey
	ValidationUnknownAINotDLAttr = validate.UnknownAINotDLAttr
)

// SetSym selects the symbology used by GetScanData. SetScanData replaces
// it with the symbology recognised in the scanned data.
func (c *Context) SetSym(sym Symbology) {
	c.sym = sym
}

// Sym returns the currently selected symbology, or SymNone if none has
// been set.
func (c *Context) Sym() Symbology {
	return c.sym
}

// SetAddCheckDigit controls whether SetAIDataStr (bracketed input only)
// treats a checksummed component supplied one digit short of its defined
// length as "compute the final digit" rather than "wrong length": the
// GTIN/SSCC/etc. family of AIs whose last digit is a check digit, entered
// without it.
func (c *Context) SetAddCheckDigit(on bool) {
	c.opts.AddCheckDigit = on
}

// AddCheckDigit reports the current AddCheckDigit setting.
func (c *Context) AddCheckDigit() bool {
	return c.opts.AddCheckDigit
}

// SetPermitUnknownAIs controls whether AIs absent from the dictionary are
// vivified as synthetic entries (spec.md §4.1.2) instead of being rejected
// outright. It does not relax ErrUnbracketedUnknownAINotDelimitable: an
// unknown AI whose vivified entry is variable-length can never appear in
// unbracketed or scan-data input regardless of this setting, since its
// length can't be inferred without a closing FNC1 that data format may not
// supply.
func (c *Context) SetPermitUnknownAIs(on bool) {
	c.opts.PermitUnknownAIs = on
}

// PermitUnknownAIs reports the current PermitUnknownAIs setting.
func (c *Context) PermitUnknownAIs() bool {
	return c.opts.PermitUnknownAIs
}

// SetPermitZeroSuppressedGTINInDLURIs controls whether DL URI parsing
// (SetDataStr, or SetScanData carrying a DL URI) accepts an 8, 12 or 13-digit primary key in the DL URI path, zero-padding
// it to a full GTIN-14 instead of requiring the 14-digit form.
func (c *Context) SetPermitZeroSuppressedGTINInDLURIs(on bool) {
	c.opts.PermitZeroSuppressedGTINInDL = on
}

// PermitZeroSuppressedGTINInDLURIs reports the current setting.
func (c *Context) PermitZeroSuppressedGTINInDLURIs() bool {
	return c.opts.PermitZeroSuppressedGTINInDL
}

// SetIncludeDataTitlesInHRI controls whether GetHRI renders each line as
// "<AI> <title>: <value>" (e.g. "01 GTIN: 09506000134352") instead of
// "(<AI>) <value>".
func (c *Context) SetIncludeDataTitlesInHRI(on bool) {
	c.opts.IncludeDataTitlesInHRI = on
}

// IncludeDataTitlesInHRI reports the current setting.
func (c *Context) IncludeDataTitlesInHRI() bool {
	return c.opts.IncludeDataTitlesInHRI
}

// SetPermitConvenienceAlphas controls whether DL URI parsing resolves a
// non-numeric DL URI path segment (e.g. "gtin", "sscc") to its AI by
// consulting the dictionary's convenience-alpha names, instead of requiring
// the bare numeric AI in path position.
func (c *Context) SetPermitConvenienceAlphas(on bool) {
	c.opts.PermitConvenienceAlphas = on
}

// PermitConvenienceAlphas reports the current setting.
func (c *Context) PermitConvenienceAlphas() bool {
	return c.opts.PermitConvenienceAlphas
}

// SetValidationEnabled toggles one of the five validator-pipeline
// procedures. It reports false without effect if that procedure has been
// locked (spec.md §4.5: some procedures, once enabled, may not be
// disabled again).
func (c *Context) SetValidationEnabled(id ValidationID, enabled bool) bool {
	return c.vtable.SetEnabled(id, enabled)
}

// MaxDataStrLen returns the maximum canonical message length the engine
// will build (get_max_data_str_length of spec.md §4.7).
func (c *Context) MaxDataStrLen() int {
	return MaxDataStrLength
}
