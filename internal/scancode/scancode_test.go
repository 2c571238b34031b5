package scancode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gs1ident/gs1syntax/internal/dict"
	"github.com/gs1ident/gs1syntax/internal/element"
	"github.com/gs1ident/gs1syntax/internal/model"
	"github.com/gs1ident/gs1syntax/internal/scancode"
)

func testTable(t *testing.T) *dict.Table {
	t.Helper()
	tbl, err := dict.Default()
	require.NoError(t, err)
	return tbl
}

// TestParse_scenario4EmbeddedGS is spec.md §8 scenario 4 verbatim.
func TestParse_scenario4EmbeddedGS(t *testing.T) {
	tbl := testTable(t)
	scanData := "]C1011231231231233310ABC123\x1D99TESTING"

	res, err := scancode.Parse(scanData, tbl, model.Options{})
	require.NoError(t, err)
	assert.Equal(t, scancode.SymGS1_128_CCA, res.Symbology)
	assert.Equal(t, "^011231231231233310ABC123^99TESTING", res.Buffer)
}

func TestGenerate_gs1_128RoundTrips(t *testing.T) {
	tbl := testTable(t)
	const buf = "^011231231231233310ABC123^99TESTING"
	values, err := element.ParseUnbracketed(buf, tbl, model.Options{})
	require.NoError(t, err)

	out, err := scancode.Generate(scancode.SymGS1_128_CCA, buf, values)
	require.NoError(t, err)
	assert.Equal(t, "]C1"+"011231231231233310ABC123\x1D99TESTING", out)

	res, err := scancode.Parse(out, tbl, model.Options{})
	require.NoError(t, err)
	assert.Equal(t, buf, res.Buffer)
}

func TestGenerate_gs1_128WithCompositeSwitchesToE0(t *testing.T) {
	tbl := testTable(t)
	const buf = "^0109506000134352|2112345"
	values, err := element.ParseUnbracketed(buf, tbl, model.Options{})
	require.NoError(t, err)

	out, err := scancode.Generate(scancode.SymGS1_128_CCA, buf, values)
	require.NoError(t, err)
	assert.Regexp(t, `^\]e0`, out)
}

func TestParse_eanUPCA(t *testing.T) {
	tbl := testTable(t)
	// 036000291452 is a valid UPC-A (standard mod-10 check digit).
	res, err := scancode.Parse("]E0036000291452", tbl, model.Options{})
	require.NoError(t, err)
	assert.Equal(t, scancode.SymUPCA, res.Symbology)
	assert.Equal(t, "^0100036000291452", res.Buffer)
}

func TestParse_eanBadParityRejected(t *testing.T) {
	tbl := testTable(t)
	_, err := scancode.Parse("]E0036000291459", tbl, model.Options{})
	require.Error(t, err)
	gerr, ok := err.(*model.Error)
	require.True(t, ok)
	assert.Equal(t, model.ErrScanDataEANBadParity, gerr.Kind)
}

func TestGenerate_eanCompactsGTINFromCanonicalForm(t *testing.T) {
	tbl := testTable(t)
	const buf = "^0100036000291452"
	values, err := element.ParseUnbracketed(buf, tbl, model.Options{})
	require.NoError(t, err)

	out, err := scancode.Generate(scancode.SymUPCA, buf, values)
	require.NoError(t, err)
	assert.Equal(t, "]E0036000291452", out)
}

func TestGenerate_eanRefusesNonGTINPrimary(t *testing.T) {
	tbl := testTable(t)
	const buf = "^0100036000291452^2112345"
	values, err := element.ParseUnbracketed(buf, tbl, model.Options{})
	require.NoError(t, err)

	_, err = scancode.Generate(scancode.SymEAN13, buf, values)
	require.Error(t, err)
	gerr, ok := err.(*model.Error)
	require.True(t, ok)
	assert.Equal(t, model.ErrScanDataGenerateNotAGTINCarrier, gerr.Kind)
}

func TestGenerate_databarLimitedRejectsGTINAboveCap(t *testing.T) {
	tbl := testTable(t)
	// 20000000000004 is a validly check-digited GTIN-14 whose leading "2"
	// alone puts it above the DataBar Limited cap (19999999999999).
	const buf = "^0120000000000004"
	values, err := element.ParseUnbracketed(buf, tbl, model.Options{})
	require.NoError(t, err)

	_, err = scancode.Generate(scancode.SymGS1_DataBar_Limited, buf, values)
	require.Error(t, err)
	gerr, ok := err.(*model.Error)
	require.True(t, ok)
	assert.Equal(t, model.ErrScanDataGenerateGTINOutOfRange, gerr.Kind)
}

func TestGenerate_databarPrimaryGTINIdentifier(t *testing.T) {
	tbl := testTable(t)
	const buf = "^0109506000134352"
	values, err := element.ParseUnbracketed(buf, tbl, model.Options{})
	require.NoError(t, err)

	out, err := scancode.Generate(scancode.SymGS1_DataBar, buf, values)
	require.NoError(t, err)
	assert.Equal(t, "]e00109506000134352", out)
}

func TestGenerate_plainPayloadBackslashDisambiguation(t *testing.T) {
	plain := "^notreallyfnc1"
	out, err := scancode.Generate(scancode.SymQRCode, plain, nil)
	require.NoError(t, err)
	assert.Equal(t, "]Q3\\^notreallyfnc1", out)
}

func TestParse_plainDLURIViaTwoDSymbology(t *testing.T) {
	tbl := testTable(t)
	plain := "https://id.gs1.org/01/09506000134352"
	out, err := scancode.Generate(scancode.SymQRCode, plain, nil)
	require.NoError(t, err)

	res, err := scancode.Parse(out, tbl, model.Options{})
	require.NoError(t, err)
	assert.Equal(t, scancode.SymQRCode, res.Symbology)
	require.NotNil(t, res.DL)
	assert.Equal(t, "^0109506000134352", res.Buffer)
}

func TestParse_tooShortRejected(t *testing.T) {
	tbl := testTable(t)
	_, err := scancode.Parse("]C", tbl, model.Options{})
	require.Error(t, err)
	gerr, ok := err.(*model.Error)
	require.True(t, ok)
	assert.Equal(t, model.ErrScanDataTooShort, gerr.Kind)
}

func TestParse_unrecognisedSymbologyRejected(t *testing.T) {
	tbl := testTable(t)
	_, err := scancode.Parse("]Z9somepayload", tbl, model.Options{})
	require.Error(t, err)
	gerr, ok := err.(*model.Error)
	require.True(t, ok)
	assert.Equal(t, model.ErrScanDataUnrecognisedSymbology, gerr.Kind)
}
