package scancode

import (
	"strings"

	"github.com/gs1ident/gs1syntax/internal/dict"
	"github.com/gs1ident/gs1syntax/internal/dlink"
	"github.com/gs1ident/gs1syntax/internal/element"
	"github.com/gs1ident/gs1syntax/internal/model"
)

// Result is everything decode.go recovers from one scan, enough for the
// root package to store it exactly as if the same content had arrived
// through any other input surface.
type Result struct {
	Symbology Symbology
	Buffer    string          // canonical FNC1-delimited message, or the plain payload
	Values    []model.AIValue // nil when Buffer is a plain (non-AI) payload
	DL        *dlink.Result   // set when a plain payload was itself a DL URI
}

// Parse implements spec.md §4.6.2: recognise the three-character AIM
// symbology identifier, then decode the remainder according to that
// symbology's conventions.
func Parse(scanData string, tbl *dict.Table, opts model.Options) (*Result, error) {
	if len(scanData) < 3 {
		return nil, model.NewError(model.ErrScanDataTooShort, "")
	}
	sym, ok := symbologyForIdentifier(scanData[:3])
	if !ok {
		return nil, model.NewError(model.ErrScanDataUnrecognisedSymbology, "")
	}
	rest := scanData[3:]

	switch {
	case sym.isEANFamily():
		return decodeEAN(sym, tbl, opts, rest)
	case sym == SymGS1_128_CCA || sym == SymGS1_128_CCC:
		// ]C1 is always GS1-128 AI data; ]e0 is also recognised here (see
		// symbologyForIdentifier) since a GS1-128-with-composite message
		// and a GS1 DataBar GTIN-primary message are byte-identical once
		// their shared "]e0" prefix is stripped — this decoder resolves
		// that ambiguity to GS1-128, mirroring scenario 4's "]C1 decodes
		// as GS1_128_CCA" convention.
		return decodeAIMode(sym, tbl, opts, rest)
	default:
		return decode2D(sym, tbl, opts, rest)
	}
}

// decodeAIMode reverses aiModeBody: reinstate the leading FNC1, map GS
// bytes back to FNC1, and hand the canonical buffer to ParseUnbracketed
// (which already understands the literal `|` composite separator).
func decodeAIMode(sym Symbology, tbl *dict.Table, opts model.Options, rest string) (*Result, error) {
	buf := fnc1Body(rest)
	values, err := element.ParseUnbracketed(buf, tbl, opts)
	if err != nil {
		return nil, err
	}
	return &Result{Symbology: sym, Buffer: buf, Values: values}, nil
}

func fnc1Body(rest string) string {
	var sb strings.Builder
	sb.Grow(len(rest) + 1)
	sb.WriteByte(element.FNC1)
	for i := 0; i < len(rest); i++ {
		if rest[i] == groupSeparator {
			sb.WriteByte(element.FNC1)
			continue
		}
		sb.WriteByte(rest[i])
	}
	return sb.String()
}

// decodeEAN implements the EAN/UPC special case: consume a digit run,
// trying the longer length first since ]E0 is shared by two native
// lengths (EAN-13/UPC-A; the reference engine accepts either and expands
// to the 14-digit canonical GTIN) while ]E4 carries EAN-8 only, then
// validate its check digit, then optionally consume a trailing
// "|]e0<composite>".
func decodeEAN(sym Symbology, tbl *dict.Table, opts model.Options, rest string) (*Result, error) {
	lengths := []struct {
		sym Symbology
		n   int
	}{
		{SymEAN13, 13}, {SymUPCA, 12},
	}
	if sym == SymEAN8 {
		lengths = lengths[:1]
		lengths[0].sym, lengths[0].n = SymEAN8, 8
	}

	var chosen Symbology
	var digits, remainder string
	matched := false
	for _, cand := range lengths {
		if len(rest) < cand.n {
			continue
		}
		candidate := rest[:cand.n]
		if !isAllDigits(candidate) {
			continue
		}
		tail := rest[cand.n:]
		if tail != "" && !strings.HasPrefix(tail, "|]e0") {
			continue
		}
		chosen, digits, remainder = cand.sym, candidate, tail
		matched = true
		break
	}
	if !matched {
		return nil, model.NewError(model.ErrScanDataEANBadLength, "")
	}
	if !checkDigitValid(digits) {
		return nil, model.NewError(model.ErrScanDataEANBadParity, "")
	}

	gtin14 := expandGTIN(digits)
	buf := string(element.FNC1) + "01" + gtin14

	if remainder != "" {
		compositeRaw := strings.TrimPrefix(remainder, "|]e0")
		compositeBuf := fnc1Body(compositeRaw)
		full := buf + string(element.CCSeparator) + compositeBuf[1:]
		allValues, err := element.ParseUnbracketed(full, tbl, opts)
		if err != nil {
			return nil, err
		}
		return &Result{Symbology: chosen, Buffer: full, Values: allValues}, nil
	}

	full, err := element.ParseUnbracketed(buf, tbl, opts)
	if err != nil {
		return nil, err
	}
	return &Result{Symbology: chosen, Buffer: buf, Values: full}, nil
}

// decode2D implements QR Code / Data Matrix / DotCode decoding: these
// general-purpose symbologies carry either GS1 AI data or arbitrary
// plain text, and nothing in the three-character identifier says which.
// This decoder resolves the ambiguity the way a permissive reader would:
// try the AI-mode interpretation first, and fall back to plain on any
// failure — documented as an Open Question resolution in DESIGN.md.
func decode2D(sym Symbology, tbl *dict.Table, opts model.Options, rest string) (*Result, error) {
	if res, err := decodeAIMode(sym, tbl, opts, rest); err == nil {
		return res, nil
	}
	plain := plainDecode(rest)
	result := &Result{Symbology: sym, Buffer: plain}
	if strings.HasPrefix(plain, "http://") || strings.HasPrefix(plain, "https://") {
		dlRes, err := dlink.ParseDL(plain, tbl, opts)
		if err == nil {
			result.DL = dlRes
			result.Values = dlRes.Values
			result.Buffer = dlRes.Buffer
		}
	}
	return result, nil
}

// plainDecode undoes the leading-backslash disambiguation of spec.md
// §4.6.1: a leading run of one or more `\` had one extra `\` inserted on
// generation, so stripping exactly one restores the original payload.
func plainDecode(rest string) string {
	if strings.HasPrefix(rest, "\\") {
		return rest[1:]
	}
	return rest
}

// plainEncode is the generation-side counterpart of plainDecode.
func plainEncode(message string) string {
	if len(message) > 0 && (message[0] == '^' || message[0] == '\\') {
		return "\\" + message
	}
	return message
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

// checkDigitValid validates a GTIN-family digit string's trailing check
// digit using the standard alternating 3/1 weighting.
func checkDigitValid(digits string) bool {
	if len(digits) < 2 {
		return false
	}
	sum := 0
	weight := 3
	for i := len(digits) - 2; i >= 0; i-- {
		sum += int(digits[i]-'0') * weight
		if weight == 3 {
			weight = 1
		} else {
			weight = 3
		}
	}
	check := (10 - sum%10) % 10
	return check == int(digits[len(digits)-1]-'0')
}

// expandGTIN left-zero-pads a compact EAN/UPC digit string to the
// canonical 14-digit GTIN form (the inverse of compactGTIN).
func expandGTIN(digits string) string {
	if len(digits) >= 14 {
		return digits
	}
	return strings.Repeat("0", 14-len(digits)) + digits
}
