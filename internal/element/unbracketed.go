package element

import (
	"github.com/gs1ident/gs1syntax/internal/dict"
	"github.com/gs1ident/gs1syntax/internal/model"
)

// ParseUnbracketed implements spec.md §4.3.2. buf must already be a
// canonical message buffer: it begins with FNC1 (a bare "GS1 AI data
// follows" marker) and uses FNC1 to separate variable-length AI values
// from whatever follows. Bracketed parsing (bracketed.go) builds such a
// buffer and calls this function to do the actual extraction and
// linting, so both input surfaces share one validated code path.
func ParseUnbracketed(buf string, tbl *dict.Table, opts model.Options) ([]model.AIValue, error) {
	if len(buf) == 0 || buf[0] != FNC1 {
		return nil, model.NewError(model.ErrAIDataEmpty, "unbracketed data must begin with FNC1")
	}
	if len(buf) == 1 {
		return nil, model.NewError(model.ErrAIDataEmpty, "no AI data follows the leading FNC1")
	}
	if len(buf) > MaxDataStrLength {
		return nil, model.NewError(model.ErrDataTooLong, "")
	}

	var values []model.AIValue
	i := 1
	for i < len(buf) {
		if buf[i] == CCSeparator {
			values = append(values, model.AIValue{Kind: model.KindCCSeparator, AIStart: i, AILen: 1, DLPathOrder: model.DLPathNotApplicable})
			i++
			continue
		}

		def, err := lookupForParse(tbl, buf[i:], 0, opts.PermitUnknownAIs)
		if err != nil {
			return nil, err
		}
		if def.Unknown && !def.FixedLength() {
			return nil, model.NewError(model.ErrUnbracketedUnknownAINotDelimitable,
				"an unknown AI of unknown length cannot appear in unbracketed data")
		}

		aiLen := len(def.AI)
		valStart := i + aiLen

		var valEnd int
		if def.FixedLength() {
			valEnd = valStart + def.MaxTotalLength()
			if valEnd > len(buf) {
				return nil, model.NewError(model.ErrComponentTooShort, "AI "+def.AI+" value runs past end of data")
			}
			if idx := indexByte(buf[valStart:valEnd], FNC1); idx >= 0 {
				return nil, model.NewError(model.ErrUnexpectedFNC1InFixedLengthAI, "AI "+def.AI)
			}
		} else {
			valEnd = valStart
			for valEnd < len(buf) && buf[valEnd] != FNC1 {
				valEnd++
			}
		}

		value := buf[valStart:valEnd]
		if err := LintValue(def, value); err != nil {
			return nil, err
		}

		values = append(values, model.AIValue{
			Def: def, Kind: model.KindAIValue,
			AIStart: i, AILen: aiLen,
			ValStart: valStart, ValLen: valEnd - valStart,
			DLPathOrder: model.DLPathNotApplicable,
		})

		i = valEnd
		if def.FNC1 && !def.FixedLength() {
			if i < len(buf) && buf[i] != FNC1 {
				return nil, model.NewError(model.ErrMissingFNC1Separator, "AI "+def.AI+" requires a terminating FNC1")
			}
		}
		if i < len(buf) && buf[i] == FNC1 {
			i++ // consume the terminator; tolerated as spurious on fixed-length AIs too
		}
	}
	return values, nil
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
