package model

import "fmt"

// ErrKind is the engine's closed error enumeration (spec.md §7). It covers
// both whole-message failures (parse/validate/generate) and per-component
// linter failures — a linter failure is surfaced as an Error whose Kind is
// the specific linter kind and whose Markup carries the failure position.
//
// The taxonomy is closed: Error.Kind never holds a value outside this
// list, and code outside this package must not invent new kinds.
type ErrKind int

const (
	ErrNone ErrKind = iota

	// Dictionary construction.
	ErrTableBrokenPrefixesDifferInLength
	ErrSyntaxDictionarySyntax
	ErrSyntaxDictionaryEntryTooLong
	ErrSyntaxDictionaryRangeInvalid
	ErrSyntaxDictionaryUnknownLinter
	ErrNoDictionaryAvailable

	// Lookup.
	ErrUnknownAI
	ErrAILookupPrefixConflict

	// Bracketed / unbracketed element-string parsing.
	ErrAIDataEmpty
	ErrBracketedMissingOpenParen
	ErrBracketedMissingCloseParen
	ErrBracketedAIUnrecognised
	ErrUnbracketedUnknownAINotDelimitable
	ErrDataTooLong
	ErrValueContainsFNC1
	ErrMissingFNC1Separator
	ErrUnexpectedFNC1InFixedLengthAI
	ErrComponentTooShort
	ErrComponentTooLong
	ErrComponentCharacterInvalid

	// Digital Link URI parsing.
	ErrDLURICharacterInvalid
	ErrDLURIBadScheme
	ErrDLURINoAuthority
	ErrDLURIAuthorityInvalid
	ErrDLURINoPrimaryKey
	ErrDLURITrailingSlash
	ErrDLURIDuplicateAI
	ErrDLURIAttributeNotDLAttr
	ErrDLURIAttributeShouldBeInPath
	ErrDLURIQueryKeyNotAI
	ErrDLURIUnknownAIVivifiedButDisallowed
	ErrDLURIPathSequenceNotRecognised
	ErrDLURIGenerateNoPrimaryKey
	ErrDLURIGenerateAttributeNotDLAttr

	// Validator pipeline.
	ErrMutexAIsConflict
	ErrRequisiteAIsUnsatisfied
	ErrRepeatedAIsDiffer
	ErrDigSigSerialKeyMissing
	ErrUnknownAINotDLAttr

	// Scan-data codec.
	ErrScanDataTooShort
	ErrScanDataUnrecognisedSymbology
	ErrScanDataEANBadParity
	ErrScanDataEANBadLength
	ErrScanDataGenerateNoSymbology
	ErrScanDataGenerateNotAGTINCarrier
	ErrScanDataGenerateGTINOutOfRange

	// Context (root package surface API).
	ErrContextNoDataSet

	// Linter kinds (spec.md §4.2). These are a closed sub-taxonomy but
	// share the same ErrKind space so an *Error carries one Kind
	// regardless of where it was raised.
	ErrInvalidCSet82Character
	ErrInvalidCSet39Character
	ErrInvalidCSet64Character
	ErrIncorrectCheckDigit
	ErrIncorrectCheckPair
	ErrTooShortForCheckPair
	ErrNotISO3166
	ErrNotISO3166Alpha2
	ErrNotISO3166OrElse999
	ErrNotISO4217
	ErrIllegalMonth
	ErrIllegalDay
	ErrIllegalHour
	ErrIllegalMinute
	ErrIllegalSecond
	ErrZeroPieceNumber
	ErrZeroTotalPieces
	ErrPieceNumberExceedsTotal
	ErrCouponMissingFormatCode
	ErrCouponInvalidFundsCode
	ErrCouponInvalidOfferCode
	ErrCouponExcessiveValue
	ErrCouponInvalidGCP
	ErrIBANBadLength
	ErrIBANBadCountry
	ErrIBANBadCheckDigits
	ErrInvalidLatitude
	ErrInvalidLongitude
	ErrInvalidBiologicalSexCode
	ErrInvalidPercentSequence
	ErrPositionInSequenceTooSmall
	ErrPositionInSequenceExceedsTotal

	errKindSentinelMax
)

var errKindText = map[ErrKind]string{
	ErrNone:                                 "no error",
	ErrTableBrokenPrefixesDifferInLength:    "AI table is broken: AIs sharing a 2-digit prefix differ in total length",
	ErrSyntaxDictionarySyntax:               "syntax dictionary entry is malformed",
	ErrSyntaxDictionaryEntryTooLong:         "syntax dictionary entry exceeds 150 bytes",
	ErrSyntaxDictionaryRangeInvalid:         "AI range is invalid",
	ErrSyntaxDictionaryUnknownLinter:        "syntax dictionary references an unknown linter",
	ErrNoDictionaryAvailable:                "no AI dictionary available",
	ErrUnknownAI:                            "unrecognised AI",
	ErrAILookupPrefixConflict:               "AI length conflicts with the configured prefix length",
	ErrAIDataEmpty:                          "AI data is empty",
	ErrBracketedMissingOpenParen:            "expected '(' to start an AI",
	ErrBracketedMissingCloseParen:           "expected ')' to close an AI",
	ErrBracketedAIUnrecognised:              "unrecognised AI in bracketed data",
	ErrUnbracketedUnknownAINotDelimitable:   "unknown AI of unknown length cannot appear in unbracketed data",
	ErrDataTooLong:                          "data exceeds the maximum permitted length",
	ErrValueContainsFNC1:                    "AI value illegally contains FNC1",
	ErrMissingFNC1Separator:                 "expected FNC1 or end of data after a variable-length AI",
	ErrUnexpectedFNC1InFixedLengthAI:        "unexpected FNC1 within a fixed-length AI",
	ErrComponentTooShort:                    "component value is shorter than its minimum length",
	ErrComponentTooLong:                     "component value is longer than its maximum length",
	ErrComponentCharacterInvalid:            "component value contains a disallowed character",
	ErrDLURICharacterInvalid:                "URI contains a disallowed character",
	ErrDLURIBadScheme:                       "bad scheme",
	ErrDLURINoAuthority:                     "no authority (domain) found in URI",
	ErrDLURIAuthorityInvalid:                "authority contains a disallowed character",
	ErrDLURINoPrimaryKey:                    "no DL primary key found",
	ErrDLURITrailingSlash:                   "URI path ends with '/'",
	ErrDLURIDuplicateAI:                     "duplicate AI",
	ErrDLURIAttributeNotDLAttr:              "AI is not a valid DL data attribute",
	ErrDLURIAttributeShouldBeInPath:         "AI should be in path info",
	ErrDLURIQueryKeyNotAI:                   "non-numeric query key is not a valid AI",
	ErrDLURIUnknownAIVivifiedButDisallowed:  "vivified AI may not appear as a DL attribute",
	ErrDLURIPathSequenceNotRecognised:       "path AI sequence is not a recognised key/qualifier sequence",
	ErrDLURIGenerateNoPrimaryKey:            "cannot generate a DL URI without a primary key AI",
	ErrDLURIGenerateAttributeNotDLAttr:      "cannot generate a DL URI: an attribute AI is not a valid DL data attribute",
	ErrMutexAIsConflict:                     "it is invalid to pair these AIs",
	ErrRequisiteAIsUnsatisfied:              "required AIs not satisfied",
	ErrRepeatedAIsDiffer:                    "repeated AI has differing values",
	ErrDigSigSerialKeyMissing:               "digital signature requires a serial component on its key AI",
	ErrUnknownAINotDLAttr:                   "a vivified AI may not appear as a DL URI attribute",
	ErrScanDataTooShort:                     "scan data is too short to contain a symbology identifier",
	ErrScanDataUnrecognisedSymbology:        "unrecognised AIM symbology identifier",
	ErrScanDataEANBadParity:                 "EAN/UPC check digit parity failure",
	ErrScanDataEANBadLength:                 "EAN/UPC data has the wrong length",
	ErrScanDataGenerateNoSymbology:          "no symbology selected; scan data cannot be generated",
	ErrScanDataGenerateNotAGTINCarrier:      "this symbology's primary message can only carry a GTIN in AI (01)",
	ErrScanDataGenerateGTINOutOfRange:       "GTIN exceeds this symbology's representable range",
	ErrContextNoDataSet:                     "no data is currently set",
	ErrInvalidCSet82Character:               "invalid CSET 82 character",
	ErrInvalidCSet39Character:               "invalid CSET 39 character",
	ErrInvalidCSet64Character:               "invalid CSET 64 character",
	ErrIncorrectCheckDigit:                  "incorrect check digit",
	ErrIncorrectCheckPair:                   "incorrect check character pair",
	ErrTooShortForCheckPair:                 "value too short to contain a check character pair",
	ErrNotISO3166:                           "not an ISO 3166 numeric country code",
	ErrNotISO3166Alpha2:                     "not an ISO 3166 alpha-2 country code",
	ErrNotISO3166OrElse999:                  "not an ISO 3166 numeric country code or 999",
	ErrNotISO4217:                           "not an ISO 4217 numeric currency code",
	ErrIllegalMonth:                         "illegal month",
	ErrIllegalDay:                           "illegal day",
	ErrIllegalHour:                         "illegal hour",
	ErrIllegalMinute:                        "illegal minute",
	ErrIllegalSecond:                        "illegal second",
	ErrZeroPieceNumber:                      "piece number must not be zero",
	ErrZeroTotalPieces:                      "total pieces must not be zero",
	ErrPieceNumberExceedsTotal:              "piece number exceeds total pieces",
	ErrCouponMissingFormatCode:              "coupon value is missing its format code",
	ErrCouponInvalidFundsCode:               "coupon funds code is invalid",
	ErrCouponInvalidOfferCode:               "coupon offer code is invalid",
	ErrCouponExcessiveValue:                 "coupon value exceeds the permitted maximum",
	ErrCouponInvalidGCP:                     "coupon GCP/prefix is invalid",
	ErrIBANBadLength:                        "IBAN has an invalid length",
	ErrIBANBadCountry:                       "IBAN has an unrecognised country prefix",
	ErrIBANBadCheckDigits:                   "IBAN check digits are incorrect",
	ErrInvalidLatitude:                      "invalid latitude",
	ErrInvalidLongitude:                     "invalid longitude",
	ErrInvalidBiologicalSexCode:             "invalid biological sex code",
	ErrInvalidPercentSequence:               "invalid percent-encoded sequence",
	ErrPositionInSequenceTooSmall:           "position in sequence must not be zero",
	ErrPositionInSequenceExceedsTotal:       "position in sequence exceeds total",
}

// String implements Stringer; unknown kinds (outside the closed taxonomy)
// render distinctly so callers can spot a bug rather than a real message.
func (k ErrKind) String() string {
	if s, ok := errKindText[k]; ok {
		return s
	}
	return fmt.Sprintf("unknown error kind %d", int(k))
}

// Error is the engine's structured failure record (spec.md §3's
// `last error` and §7's error model): a kind, a pre-formatted message, and
// — for per-component linter failures — a markup string highlighting the
// offending slice.
type Error struct {
	Kind    ErrKind
	Message string
	Markup  string // "(AI)<before>|<bad>|<after>", empty when not applicable
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Markup != "" {
		return e.Message + ": " + e.Markup
	}
	return e.Message
}

// NewError builds an Error whose Message defaults to the kind's catalogue
// text; pass a non-empty msg to override it (e.g. to interpolate an AI
// number into the generic pipeline messages).
func NewError(kind ErrKind, msg string) *Error {
	if msg == "" {
		msg = kind.String()
	}
	return &Error{Kind: kind, Message: msg}
}

// WithMarkup returns a copy of e with Markup set, for linter failures that
// must report the offending slice within the value.
func (e *Error) WithMarkup(markup string) *Error {
	cp := *e
	cp.Markup = markup
	return &cp
}
