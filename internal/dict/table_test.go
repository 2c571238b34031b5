package dict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gs1ident/gs1syntax/internal/model"
)

func buildEmbedded(t *testing.T) *Table {
	t.Helper()
	tbl, err := Build(embeddedEntries)
	require.NoError(t, err)
	return tbl
}

func TestBuild_sortedAndIndexable(t *testing.T) {
	tbl := buildEmbedded(t)
	entries := tbl.Entries()
	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i-1].AI < entries[i].AI, "entries must be sorted by AI")
	}
}

func TestBuild_rejectsConflictingPrefixLengths(t *testing.T) {
	_, err := Build([]RawEntry{
		{AI: "31", Components: []RawComponent{n(6)}},
		{AI: "3100", Components: []RawComponent{n(6)}},
	})
	require.Error(t, err)
	assert.Equal(t, model.ErrTableBrokenPrefixesDifferInLength, err.(*model.Error).Kind)
}

func TestLookup_exact(t *testing.T) {
	tbl := buildEmbedded(t)
	def, err := tbl.Lookup("01", 2, false)
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, "01", def.AI)
}

func TestLookup_prefixSearch(t *testing.T) {
	tbl := buildEmbedded(t)
	def, err := tbl.Lookup("0112345678901231", 0, false)
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, "01", def.AI)
}

func TestLookup_vivifyUnknownAI(t *testing.T) {
	tbl := buildEmbedded(t)
	def, err := tbl.Lookup("89ABCDEF", 0, true)
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.True(t, def.Unknown)
	assert.Equal(t, model.DLDataAttrUnknown, def.DLDataAttr)
}

func TestLookup_noVivifyWhenDisallowed(t *testing.T) {
	tbl := buildEmbedded(t)
	def, err := tbl.Lookup("8999999999999", 0, false)
	require.NoError(t, err)
	assert.Nil(t, def)
}

func TestKeyQualSequences_gtinWithQualifiers(t *testing.T) {
	tbl := buildEmbedded(t)
	assert.True(t, tbl.IsValidDLPathAISequence("01"))
	assert.True(t, tbl.IsValidDLPathAISequence("01 10"))
	assert.True(t, tbl.IsValidDLPathAISequence("01 22 10 21 235"))
	assert.False(t, tbl.IsValidDLPathAISequence("01 99"))
}

func TestIsDLPrimaryKey(t *testing.T) {
	tbl := buildEmbedded(t)
	assert.True(t, tbl.IsDLPrimaryKey("01"))
	assert.False(t, tbl.IsDLPrimaryKey("10"))
}

func TestSequencesForKey_longestFirst(t *testing.T) {
	tbl := buildEmbedded(t)
	seqs := tbl.SequencesForKey("01")
	require.NotEmpty(t, seqs)
	assert.Equal(t, "01 22 10 21 235", seqs[0])
}

func TestLoadText_basicEntry(t *testing.T) {
	src := "90 X..30 # INTERNAL\n"
	raw, err := LoadText(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, raw, 1)
	assert.Equal(t, "90", raw[0].AI)
	assert.Equal(t, "INTERNAL", raw[0].Title)
	assert.True(t, raw[0].FNC1)
}

func TestLoadText_range(t *testing.T) {
	src := "91-93 X..90\n"
	raw, err := LoadText(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, raw, 3)
	assert.Equal(t, "91", raw[0].AI)
	assert.Equal(t, "92", raw[1].AI)
	assert.Equal(t, "93", raw[2].AI)
}

func TestLoadText_fixedLengthNoFNC1(t *testing.T) {
	src := "11 N6\n"
	raw, err := LoadText(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, raw, 1)
	assert.False(t, raw[0].FNC1)
}

func TestLoadText_rejectsOverlongEntry(t *testing.T) {
	long := "90 X..30"
	for len(long) <= maxTextEntryBytes {
		long += " extra"
	}
	_, err := LoadText(strings.NewReader(long + "\n"))
	require.Error(t, err)
	assert.Equal(t, model.ErrSyntaxDictionaryEntryTooLong, err.(*model.Error).Kind)
}
