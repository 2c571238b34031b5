package element

import (
	"strings"

	"github.com/gs1ident/gs1syntax/internal/dict"
	"github.com/gs1ident/gs1syntax/internal/logging"
	"github.com/gs1ident/gs1syntax/internal/model"
)

// ParseBracketed implements spec.md §4.3.1: walk bracketed input left to
// right, building the canonical FNC1-delimited message buffer, then hand
// the buffer to ParseUnbracketed (§4.3.2) for the authoritative
// extraction and linter pass — "the message buffer is re-processed... to
// validate every component with its linters".
func ParseBracketed(data string, tbl *dict.Table, opts model.Options) (string, []model.AIValue, error) {
	var buf strings.Builder
	buf.WriteByte(FNC1)

	i := 0
	prevFNC1 := false
	for i < len(data) {
		if data[i] == CCSeparator {
			buf.WriteByte(CCSeparator)
			i++
			prevFNC1 = false
			continue
		}
		if data[i] != '(' {
			return "", nil, model.NewError(model.ErrBracketedMissingOpenParen, "expected '(' at offset "+itoa(i))
		}
		i++
		aiStart := i
		for i < len(data) && data[i] != ')' {
			i++
		}
		if i >= len(data) {
			return "", nil, model.NewError(model.ErrBracketedMissingCloseParen, "unterminated AI starting at offset "+itoa(aiStart))
		}
		aiDigits := data[aiStart:i]
		i++ // consume ')'

		value, next, err := scanBracketedValue(data, i)
		if err != nil {
			return "", nil, err
		}
		i = next

		def, err := lookupForParse(tbl, aiDigits, len(aiDigits), opts.PermitUnknownAIs)
		if err != nil {
			if gerr, ok := err.(*model.Error); ok && gerr.Kind == model.ErrUnknownAI {
				return "", nil, model.NewError(model.ErrBracketedAIUnrecognised, "AI ("+aiDigits+")")
			}
			return "", nil, err
		}

		if prevFNC1 {
			buf.WriteByte(FNC1)
		}
		buf.WriteString(def.AI)
		buf.WriteString(value)
		prevFNC1 = def.FNC1
	}

	if buf.Len() > MaxDataStrLength {
		return "", nil, model.NewError(model.ErrDataTooLong, "")
	}

	canonical := buf.String()
	values, err := ParseUnbracketed(canonical, tbl, opts)
	if err != nil {
		return "", nil, err
	}
	logging.L.Debugf("parsed bracketed data into %d AI values", len(values))
	return canonical, values, nil
}

// scanBracketedValue reads a value starting at data[start], stopping at an
// unescaped '(' or '|' or end of input. "\(" is unescaped to a literal
// '(' in the returned value, per spec.md §4.3.1.
func scanBracketedValue(data string, start int) (string, int, error) {
	var sb strings.Builder
	i := start
	for i < len(data) {
		if data[i] == '\\' && i+1 < len(data) && data[i+1] == '(' {
			sb.WriteByte('(')
			i += 2
			continue
		}
		if data[i] == '(' || data[i] == CCSeparator {
			break
		}
		if data[i] == FNC1 {
			return "", 0, model.NewError(model.ErrValueContainsFNC1, "bracketed AI value may not contain FNC1")
		}
		sb.WriteByte(data[i])
		i++
	}
	return sb.String(), i, nil
}

// GenerateBracketed renders values (extracted from buf by any parser) back
// into bracketed form, re-escaping any literal '(' in a value.
func GenerateBracketed(buf string, values []model.AIValue) string {
	var sb strings.Builder
	for _, v := range values {
		if v.Kind == model.KindCCSeparator {
			sb.WriteByte(CCSeparator)
			continue
		}
		if v.Kind == model.KindDLIgnored {
			continue
		}
		sb.WriteByte('(')
		sb.WriteString(v.AI(buf))
		sb.WriteByte(')')
		sb.WriteString(escapeParen(v.Value(buf)))
	}
	return sb.String()
}

func escapeParen(value string) string {
	if !strings.ContainsRune(value, '(') {
		return value
	}
	return strings.ReplaceAll(value, "(", "\\(")
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
