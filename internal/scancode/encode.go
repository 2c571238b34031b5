package scancode

import (
	"strings"

	"github.com/gs1ident/gs1syntax/internal/element"
	"github.com/gs1ident/gs1syntax/internal/model"
)

// groupSeparator is the scan-data encoding of FNC1 (spec.md §4.6:
// "ASCII GS (0x1D) as FNC1 in scan data").
const groupSeparator = 0x1D

// Generate implements spec.md §4.6's scan-data generation: render the
// canonical message buffer as a barcode reader would emit it for sym,
// prefixed with the AIM symbology identifier.
//
// buf/values is whatever the currently-set data produced (the same
// canonical form element.ParseBracketed/ParseUnbracketed/dlink.ParseDL
// build); for a plain (non-AI) payload, pass values as nil and buf as
// the literal message text.
func Generate(sym Symbology, buf string, values []model.AIValue) (string, error) {
	if sym == SymNone {
		return "", model.NewError(model.ErrScanDataGenerateNoSymbology, "")
	}

	switch {
	case sym.isEANFamily():
		return generateEAN(sym, buf, values)
	case sym.isDataBarFamily():
		return generateDataBar(sym, buf, values)
	default:
		if len(values) > 0 && len(buf) > 0 && buf[0] == element.FNC1 {
			hasComposite := strings.IndexByte(buf, element.CCSeparator) >= 0
			return identifierFor(sym, hasComposite) + aiModeBody(buf), nil
		}
		// Plain (non-AI) payload: spec.md §4.6.1's leading-backslash
		// disambiguation, e.g. a bare DL URI carried in a QR code.
		return identifierFor(sym, false) + plainEncode(buf), nil
	}
}

// aiModeBody converts a canonical FNC1-delimited buffer into the bytes
// a reader emits for AI-formatted data (spec.md §4.6: "AI-mode replaces
// `^` after the first with ASCII GS 0x1D and strips a trailing `^`").
// The literal `|` composite separator passes through unchanged; anything
// downstream (decode.go, then element.ParseUnbracketed) already treats
// it as a structural marker rather than FNC1.
func aiModeBody(buf string) string {
	body := buf
	if len(body) > 0 && body[0] == element.FNC1 {
		body = body[1:]
	}
	if len(body) > 0 && body[len(body)-1] == element.FNC1 {
		body = body[:len(body)-1]
	}
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		if body[i] == element.FNC1 {
			sb.WriteByte(groupSeparator)
			continue
		}
		sb.WriteByte(body[i])
	}
	return sb.String()
}

// primaryAndComposite splits buf at its first composite separator (if
// any), returning the primary AI value set's raw span and the composite
// span that follows it. Used by the EAN/UPC and DataBar special cases,
// whose primary message may only ever carry a single AI (01).
func primaryAndComposite(buf string) (primary, composite string, hasComposite bool) {
	idx := strings.IndexByte(buf, element.CCSeparator)
	if idx < 0 {
		return buf, "", false
	}
	return buf[:idx], buf[idx+1:], true
}

func soleGTIN(values []model.AIValue, buf string) (string, bool) {
	var gtin string
	found := false
	for _, v := range values {
		if v.Kind != model.KindAIValue {
			continue
		}
		if v.AI(buf) != "01" {
			return "", false
		}
		if found {
			return "", false
		}
		gtin = v.Value(buf)
		found = true
	}
	return gtin, found
}

// generateEAN implements the EAN/UPC special case: the primary message
// is the bare GTIN digit string, compacted from the canonical 14-digit
// form to the symbology's native length, with the trailing check digit
// preserved. A composite component (if any) follows as "|]e0<composite>".
func generateEAN(sym Symbology, buf string, values []model.AIValue) (string, error) {
	primary, composite, hasComposite := primaryAndComposite(buf)

	primaryValues := values
	if hasComposite {
		primaryValues = valuesWithin(values, len(primary))
	}
	gtin14, ok := soleGTIN(primaryValues, buf)
	if !ok {
		return "", model.NewError(model.ErrScanDataGenerateNotAGTINCarrier, "")
	}

	digits, err := compactGTIN(gtin14, sym.eanDigitLength())
	if err != nil {
		return "", err
	}

	out := identifierFor(sym, false) + digits
	if hasComposite {
		out += "|]e0" + aiModeBody(composite)
	}
	return out, nil
}

// generateDataBar implements spec.md's "GS1 DataBar-family primary-GTIN
// is emitted as `]e001<GTIN-14>`", plus the DataBar Limited GTIN cap
// quirk (spec.md §8 Open Questions): generation alone refuses a GTIN
// above 19999999999999 for that one symbology, a restriction no other
// input surface enforces on the same value.
func generateDataBar(sym Symbology, buf string, values []model.AIValue) (string, error) {
	primary, composite, hasComposite := primaryAndComposite(buf)

	primaryValues := values
	if hasComposite {
		primaryValues = valuesWithin(values, len(primary))
	}
	gtin14, ok := soleGTIN(primaryValues, buf)
	if !ok {
		return "", model.NewError(model.ErrScanDataGenerateNotAGTINCarrier, "")
	}

	if sym == SymGS1_DataBar_Limited && len(gtin14) == len(databarLimitedGTINCap) && gtin14 > databarLimitedGTINCap {
		return "", model.NewError(model.ErrScanDataGenerateGTINOutOfRange, "")
	}

	out := "]e001" + gtin14
	if hasComposite {
		out += "|]e0" + aiModeBody(composite)
	}
	return out, nil
}

// valuesWithin returns the prefix of values whose ValStart falls before
// cut, i.e. the AI values belonging to the primary (pre-separator) span.
func valuesWithin(values []model.AIValue, cut int) []model.AIValue {
	var out []model.AIValue
	for _, v := range values {
		if v.Kind == model.KindCCSeparator {
			break
		}
		if v.AIStart >= cut {
			break
		}
		out = append(out, v)
	}
	return out
}

// compactGTIN drops the canonical 14-digit GTIN's leading zero-padding
// to produce the symbology-native digit string (12/13/8 digits), the
// "check-digit normalization" of spec.md §4.6: the trailing check digit
// is always the original value's, never recomputed, so this only
// succeeds when the leading digits being dropped are all zero.
func compactGTIN(gtin14 string, want int) (string, error) {
	if len(gtin14) != 14 || want <= 0 || want > 14 {
		return "", model.NewError(model.ErrScanDataEANBadLength, "")
	}
	drop := len(gtin14) - want
	for i := 0; i < drop; i++ {
		if gtin14[i] != '0' {
			return "", model.NewError(model.ErrScanDataEANBadLength,
				"GTIN cannot be represented in this symbology's native length")
		}
	}
	return gtin14[drop:], nil
}
