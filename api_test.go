package gs1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gs1ident/gs1syntax/internal/model"

	"github.com/gs1ident/gs1syntax"
)

func newCtx(t *testing.T) *gs1.Context {
	t.Helper()
	c, err := gs1.New()
	require.NoError(t, err)
	return c
}

// Scenario 1: DL URI with a path primary key and a qualifier, plus a
// query attribute.
func TestScenario1_DLURIWithQualifierAndAttribute(t *testing.T) {
	c := newCtx(t)
	err := c.SetDataStr("https://id.gs1.org/01/09520123456788/10/ABC1/21/12345?17=180426")
	require.NoError(t, err)

	buf, ok := c.DataStr()
	require.True(t, ok)
	assert.Equal(t, "^010952012345678810ABC1^2112345^17180426", buf)

	assert.Equal(t, []string{
		"(01) 09520123456788",
		"(10) ABC1",
		"(21) 12345",
		"(17) 180426",
	}, c.GetHRI())
}

// Scenario 2: bracketed input round-tripped to a DL URI with no stem
// override.
func TestScenario2_BracketedToDLURI(t *testing.T) {
	c := newCtx(t)
	err := c.SetAIDataStr("(01)12312312312326(22)ABC(10)DEF(21)GHI")
	require.NoError(t, err)

	uri, err := c.GetDLURI("")
	require.NoError(t, err)
	assert.Equal(t, "https://id.gs1.org/01/12312312312326/22/ABC/10/DEF/21/GHI", uri)
}

// Scenario 3: bracketed input with two key AIs; the first becomes the
// path primary key, the remainder (including the second key) are demoted
// to query attributes, and a custom stem is honoured.
func TestScenario3_MultipleKeysFirstWins(t *testing.T) {
	c := newCtx(t)
	err := c.SetAIDataStr("(253)9526064000028000001(99)000001(01)12312312312326(22)ABC(10)DEF(21)GHI(95)INT")
	require.NoError(t, err)

	uri, err := c.GetDLURI("https://example.com")
	require.NoError(t, err)
	assert.Equal(t,
		"https://example.com/253/9526064000028000001?01=12312312312326&99=000001&22=ABC&10=DEF&21=GHI&95=INT",
		uri)
}

// Scenario 4: scan data with an embedded group separator standing in for
// FNC1: a fixed-length AI (01) and a variable-length AI (10) ahead of the
// separator, then a trailing variable-length internal-use AI (99).
func TestScenario4_ScanDataEmbeddedGS(t *testing.T) {
	c := newCtx(t)
	err := c.SetScanData("]C1011231231231233310ABC123\x1D99TESTING")
	require.NoError(t, err)

	assert.Equal(t, gs1.SymGS1_128_CCA, c.Sym())
	buf, ok := c.DataStr()
	require.True(t, ok)
	assert.Equal(t, "^011231231231233310ABC123^99TESTING", buf)
}

// Scenario 5: a linter failure (illegal month in a production date)
// surfaces as a structured error with positional markup.
func TestScenario5_IllegalMonthLinterFailure(t *testing.T) {
	c := newCtx(t)
	err := c.SetAIDataStr("(01)95012345678903(11)131313")
	require.Error(t, err)

	gerr, ok := err.(*model.Error)
	require.True(t, ok)
	assert.Equal(t, model.ErrIllegalMonth, gerr.Kind)
	assert.Equal(t, gerr.Message, c.ErrMsg())
	assert.NotEmpty(t, c.ErrMarkup())

	// spec.md §7: on failure the message buffer is reset.
	_, ok = c.DataStr()
	assert.False(t, ok)
}

// Scenario 6: a DL URI places a qualifier AI in the query string instead
// of the path; it is a legal qualifier of the path's primary key, so it
// must have been in the path.
func TestScenario6_AttributeShouldBeInPathInfo(t *testing.T) {
	c := newCtx(t)
	err := c.SetDataStr("https://example.com/01/09520123456788?10=ABC123")
	require.Error(t, err)

	gerr, ok := err.(*model.Error)
	require.True(t, ok)
	assert.Equal(t, model.ErrDLURIAttributeShouldBeInPath, gerr.Kind)
}

func TestSetAddCheckDigit_CompletesGTINMissingFinalDigit(t *testing.T) {
	c := newCtx(t)
	c.SetAddCheckDigit(true)
	// 0950600013435 is the 13-digit GTIN body; its correct check digit is 2.
	err := c.SetAIDataStr("(01)0950600013435")
	require.NoError(t, err)

	buf, ok := c.DataStr()
	require.True(t, ok)
	assert.Equal(t, "^0109506000134352", buf)
}

func TestSetAddCheckDigit_OffLeavesShortValueAsError(t *testing.T) {
	c := newCtx(t)
	err := c.SetAIDataStr("(01)0950600013435")
	require.Error(t, err)
}

func TestGetHRI_IncludesDataTitlesWhenEnabled(t *testing.T) {
	c := newCtx(t)
	c.SetIncludeDataTitlesInHRI(true)
	require.NoError(t, c.SetAIDataStr("(01)09506000134352"))
	assert.Equal(t, []string{"01 GTIN: 09506000134352"}, c.GetHRI())
}

func TestScanDataRoundTrip_GS1_128(t *testing.T) {
	c := newCtx(t)
	require.NoError(t, c.SetAIDataStr("(01)09506000134352(10)ABC123"))
	c.SetSym(gs1.SymGS1_128_CCA)

	scanData, err := c.GetScanData()
	require.NoError(t, err)

	c2 := newCtx(t)
	require.NoError(t, c2.SetScanData(scanData))
	buf1, _ := c.DataStr()
	buf2, _ := c2.DataStr()
	assert.Equal(t, buf1, buf2)
}

func TestDLIgnoredQueryParams_PreservedVerbatim(t *testing.T) {
	c := newCtx(t)
	err := c.SetDataStr("https://id.gs1.org/01/09506000134352?foo=bar")
	require.NoError(t, err)
	assert.Contains(t, c.DLIgnoredQueryParams(), "foo=bar")
}

func TestSetValidationEnabled_RefusesLockedMutexAIsCheck(t *testing.T) {
	c := newCtx(t)
	ok := c.SetValidationEnabled(gs1.ValidationMutexAIs, false)
	assert.False(t, ok)
}

func TestAIDataStr_EmptyForPlainScanPayload(t *testing.T) {
	c := newCtx(t)
	require.NoError(t, c.SetScanData("]Q3not a gs1 message at all"))
	_, ok := c.AIDataStr()
	assert.False(t, ok)
}

func TestSetDataStr_EmptyRejected(t *testing.T) {
	c := newCtx(t)
	err := c.SetDataStr("")
	require.Error(t, err)
	gerr, ok := err.(*model.Error)
	require.True(t, ok)
	assert.Equal(t, model.ErrAIDataEmpty, gerr.Kind)
}

func TestGetScanData_NoSymbologySelected(t *testing.T) {
	c := newCtx(t)
	require.NoError(t, c.SetAIDataStr("(01)09506000134352"))
	_, err := c.GetScanData()
	require.Error(t, err)
	gerr, ok := err.(*model.Error)
	require.True(t, ok)
	assert.Equal(t, model.ErrScanDataGenerateNoSymbology, gerr.Kind)
}
