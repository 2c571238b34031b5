package dlink_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gs1ident/gs1syntax/internal/dict"
	"github.com/gs1ident/gs1syntax/internal/dlink"
	"github.com/gs1ident/gs1syntax/internal/model"
)

func testTable(t *testing.T) *dict.Table {
	t.Helper()
	tbl, err := dict.Default()
	require.NoError(t, err)
	return tbl
}

func TestParseDL_gtinWithBatchAndExpiry(t *testing.T) {
	tbl := testTable(t)
	res, err := dlink.ParseDL("https://id.gs1.org/01/09506000134352/10/ABC123?17=251231", tbl, model.DefaultOptions())
	require.NoError(t, err)

	var gotAIs []string
	for _, v := range res.Values {
		gotAIs = append(gotAIs, v.AI(res.Buffer))
	}
	assert.ElementsMatch(t, []string{"01", "10", "17"}, gotAIs)

	for _, v := range res.Values {
		switch v.AI(res.Buffer) {
		case "01":
			assert.Equal(t, "09506000134352", v.Value(res.Buffer))
			assert.Equal(t, model.DLPathRoot, v.DLPathOrder)
		case "10":
			assert.Equal(t, "ABC123", v.Value(res.Buffer))
		case "17":
			assert.Equal(t, model.DLPathAttribute, v.DLPathOrder)
		}
	}
}

func TestParseDL_rejectsNoPrimaryKey(t *testing.T) {
	tbl := testTable(t)
	_, err := dlink.ParseDL("https://id.gs1.org/91/ABC123", tbl, model.DefaultOptions())
	require.Error(t, err)
	gerr, ok := err.(*model.Error)
	require.True(t, ok)
	assert.Equal(t, model.ErrDLURINoPrimaryKey, gerr.Kind)
}

func TestParseDL_rejectsTrailingSlash(t *testing.T) {
	tbl := testTable(t)
	_, err := dlink.ParseDL("https://id.gs1.org/01/09506000134352/", tbl, model.DefaultOptions())
	require.Error(t, err)
	gerr, ok := err.(*model.Error)
	require.True(t, ok)
	assert.Equal(t, model.ErrDLURITrailingSlash, gerr.Kind)
}

func TestParseDL_rejectsBadScheme(t *testing.T) {
	tbl := testTable(t)
	_, err := dlink.ParseDL("ftp://id.gs1.org/01/09506000134352", tbl, model.DefaultOptions())
	require.Error(t, err)
	gerr, ok := err.(*model.Error)
	require.True(t, ok)
	assert.Equal(t, model.ErrDLURIBadScheme, gerr.Kind)
}

func TestParseDL_convenienceAlpha(t *testing.T) {
	tbl := testTable(t)
	opts := model.DefaultOptions()
	opts.PermitConvenienceAlphas = true
	res, err := dlink.ParseDL("https://id.gs1.org/gtin/09506000134352", tbl, opts)
	require.NoError(t, err)
	require.Len(t, res.Values, 1)
	assert.Equal(t, "01", res.Values[0].AI(res.Buffer))
}

func TestParseDL_ignoresNonAIQueryParams(t *testing.T) {
	tbl := testTable(t)
	res, err := dlink.ParseDL("https://id.gs1.org/01/09506000134352?utm_source=test", tbl, model.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"utm_source=test"}, res.IgnoredParams)
}

func TestParseDL_preservesFragment(t *testing.T) {
	tbl := testTable(t)
	res, err := dlink.ParseDL("https://id.gs1.org/01/09506000134352#linkset", tbl, model.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "linkset", res.Fragment)
}

func TestParseDL_percentDecodingPathVsQuery(t *testing.T) {
	tbl := testTable(t)
	res, err := dlink.ParseDL("https://id.gs1.org/01/09506000134352/10/AB%2BC?99=X%2BY", tbl, model.DefaultOptions())
	require.NoError(t, err)
	for _, v := range res.Values {
		switch v.AI(res.Buffer) {
		case "10":
			assert.Equal(t, "AB+C", v.Value(res.Buffer), "%2B decodes to literal + in a path segment")
		case "99":
			assert.Equal(t, "X+Y", v.Value(res.Buffer), "%2B decodes to literal + in a query component too")
		}
	}
}

func TestGenerateDL_roundTripsFromParsedPath(t *testing.T) {
	tbl := testTable(t)
	res, err := dlink.ParseDL("https://id.gs1.org/01/09506000134352/10/ABC123?17=251231", tbl, model.DefaultOptions())
	require.NoError(t, err)

	uri, err := dlink.GenerateDL(res.Buffer, res.Values, tbl, "")
	require.NoError(t, err)
	assert.Contains(t, uri, "https://id.gs1.org/01/09506000134352/10/ABC123")
	assert.Contains(t, uri, "17=251231")
}

func TestGenerateDL_customStem(t *testing.T) {
	tbl := testTable(t)
	res, err := dlink.ParseDL("https://id.gs1.org/01/09506000134352", tbl, model.DefaultOptions())
	require.NoError(t, err)

	uri, err := dlink.GenerateDL(res.Buffer, res.Values, tbl, "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/01/09506000134352", uri)
}

func TestGenerateDL_longestQualifierMatchWithoutExistingOrder(t *testing.T) {
	tbl := testTable(t)
	buf := "\x5E0109506000134352\x5E10ABC123"
	values := []model.AIValue{
		{Kind: model.KindAIValue, AIStart: 1, AILen: 2, ValStart: 3, ValLen: 14, DLPathOrder: model.DLPathNotApplicable},
		{Kind: model.KindAIValue, AIStart: 18, AILen: 2, ValStart: 20, ValLen: 6, DLPathOrder: model.DLPathNotApplicable},
	}
	def01, ok := tbl.ByAI("01")
	require.True(t, ok)
	def10, ok := tbl.ByAI("10")
	require.True(t, ok)
	values[0].Def = def01
	values[1].Def = def10

	uri, err := dlink.GenerateDL(buf, values, tbl, "")
	require.NoError(t, err)
	assert.Equal(t, "https://id.gs1.org/01/09506000134352/10/ABC123", uri)
}

func TestGenerateDL_refusesWithoutPrimaryKey(t *testing.T) {
	tbl := testTable(t)
	buf := "\x5E10ABC123"
	def10, ok := tbl.ByAI("10")
	require.True(t, ok)
	values := []model.AIValue{
		{Def: def10, Kind: model.KindAIValue, AIStart: 1, AILen: 2, ValStart: 3, ValLen: 6, DLPathOrder: model.DLPathNotApplicable},
	}
	_, err := dlink.GenerateDL(buf, values, tbl, "")
	require.Error(t, err)
	gerr, ok := err.(*model.Error)
	require.True(t, ok)
	assert.Equal(t, model.ErrDLURIGenerateNoPrimaryKey, gerr.Kind)
}
