package element

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gs1ident/gs1syntax/internal/dict"
	"github.com/gs1ident/gs1syntax/internal/model"
)

// exampleDictSource is a minimal, self-contained text syntax dictionary
// covering exactly what this file's tests exercise, kept local so this
// package's tests don't reach into dict's unexported embedded table.
const exampleDictSource = "01 N14,csum\n10 * X..20\n"

func testTable(t *testing.T) *dict.Table {
	t.Helper()
	raw, err := dict.LoadText(strings.NewReader(exampleDictSource))
	require.NoError(t, err)
	tbl, err := dict.Build(raw)
	require.NoError(t, err)
	return tbl
}

func TestParseBracketed_gtinAndBatch(t *testing.T) {
	tbl := testTable(t)
	buf, values, err := ParseBracketed("(01)12345678901231(10)ABC123", tbl, model.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, "01", values[0].AI(buf))
	assert.Equal(t, "12345678901231", values[0].Value(buf))
	assert.Equal(t, "10", values[1].AI(buf))
	assert.Equal(t, "ABC123", values[1].Value(buf))
}

func TestParseBracketed_escapedParen(t *testing.T) {
	tbl := testTable(t)
	buf, values, err := ParseBracketed(`(10)AB\(C`, tbl, model.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, "AB(C", values[0].Value(buf))
}

func TestParseBracketed_missingCloseParen(t *testing.T) {
	tbl := testTable(t)
	_, _, err := ParseBracketed("(01", tbl, model.DefaultOptions())
	require.Error(t, err)
	assert.Equal(t, model.ErrBracketedMissingCloseParen, err.(*model.Error).Kind)
}

func TestParseBracketed_unrecognisedAI(t *testing.T) {
	tbl := testTable(t)
	_, _, err := ParseBracketed("(77)X", tbl, model.DefaultOptions())
	require.Error(t, err)
	assert.Equal(t, model.ErrBracketedAIUnrecognised, err.(*model.Error).Kind)
}

func TestParseUnbracketed_roundTripsBracketed(t *testing.T) {
	tbl := testTable(t)
	buf, values, err := ParseBracketed("(01)12345678901231(10)ABC123", tbl, model.DefaultOptions())
	require.NoError(t, err)

	again, err := ParseUnbracketed(buf, tbl, model.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, again, len(values))
	for i := range values {
		assert.Equal(t, values[i].AI(buf), again[i].AI(buf))
		assert.Equal(t, values[i].Value(buf), again[i].Value(buf))
	}
}

func TestParseUnbracketed_missingLeadingFNC1(t *testing.T) {
	tbl := testTable(t)
	_, err := ParseUnbracketed("0112345678901231", tbl, model.DefaultOptions())
	require.Error(t, err)
	assert.Equal(t, model.ErrAIDataEmpty, err.(*model.Error).Kind)
}

func TestParseUnbracketed_variableLengthEndOfStringTolerated(t *testing.T) {
	tbl := testTable(t)
	_, err := ParseUnbracketed("^10ABC123", tbl, model.DefaultOptions())
	require.NoError(t, err)
}

func TestGenerateBracketed_roundTrip(t *testing.T) {
	tbl := testTable(t)
	buf, values, err := ParseBracketed("(01)12345678901231(10)ABC123", tbl, model.DefaultOptions())
	require.NoError(t, err)
	out := GenerateBracketed(buf, values)
	assert.Equal(t, "(01)12345678901231(10)ABC123", out)
}
