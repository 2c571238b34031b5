package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gs1ident/gs1syntax/internal/dict"
	"github.com/gs1ident/gs1syntax/internal/model"
	"github.com/gs1ident/gs1syntax/internal/validate"
)

func testTable(t *testing.T) *dict.Table {
	t.Helper()
	tbl, err := dict.Default()
	require.NoError(t, err)
	return tbl
}

// mkValue lays ai+value into buf at the given offset and returns both the
// AIValue and the new buffer tail, so callers can build up a contiguous
// buffer the way rebuildBuffer/ParseUnbracketed would.
func mkValue(buf string, def *model.Definition, ai, value string) (model.AIValue, string) {
	aiStart := len(buf)
	buf += ai
	valStart := len(buf)
	buf += value
	return model.AIValue{
		Def: def, Kind: model.KindAIValue,
		AIStart: aiStart, AILen: len(ai),
		ValStart: valStart, ValLen: len(value),
		DLPathOrder: model.DLPathNotApplicable,
	}, buf
}

func TestRun_mutexAIsConflict(t *testing.T) {
	tbl := testTable(t)
	def3100, ok := tbl.ByAI("3100")
	require.True(t, ok)
	def3200, ok := tbl.ByAI("3200")
	require.True(t, ok)

	var buf string
	var values []model.AIValue
	var v model.AIValue
	v, buf = mkValue(buf, def3100, "3100", "012345")
	values = append(values, v)
	v, buf = mkValue(buf, def3200, "3200", "054321")
	values = append(values, v)

	err := validate.Run(buf, values, false, validate.DefaultTable())
	require.Error(t, err)
	gerr, ok := err.(*model.Error)
	require.True(t, ok)
	assert.Equal(t, model.ErrMutexAIsConflict, gerr.Kind)
}

func TestRun_mutexAIsAllowsNonConflicting(t *testing.T) {
	tbl := testTable(t)
	def3100, ok := tbl.ByAI("3100")
	require.True(t, ok)
	def01, ok := tbl.ByAI("01")
	require.True(t, ok)

	var buf string
	var values []model.AIValue
	var v model.AIValue
	v, buf = mkValue(buf, def01, "01", "09506000134352")
	values = append(values, v)
	v, buf = mkValue(buf, def3100, "3100", "012345")
	values = append(values, v)

	err := validate.Run(buf, values, false, validate.DefaultTable())
	assert.NoError(t, err)
}

func TestRun_requisiteAIsUnsatisfied(t *testing.T) {
	tbl := testTable(t)
	def250, ok := tbl.ByAI("250")
	require.True(t, ok)

	buf, values := "", []model.AIValue{}
	var v model.AIValue
	v, buf = mkValue(buf, def250, "250", "SECSERIAL1")
	values = append(values, v)

	err := validate.Run(buf, values, false, validate.DefaultTable())
	require.Error(t, err)
	gerr, ok := err.(*model.Error)
	require.True(t, ok)
	assert.Equal(t, model.ErrRequisiteAIsUnsatisfied, gerr.Kind)
}

func TestRun_requisiteAIsSatisfied(t *testing.T) {
	tbl := testTable(t)
	def250, ok := tbl.ByAI("250")
	require.True(t, ok)
	def01, ok := tbl.ByAI("01")
	require.True(t, ok)
	def21, ok := tbl.ByAI("21")
	require.True(t, ok)

	buf, values := "", []model.AIValue{}
	var v model.AIValue
	v, buf = mkValue(buf, def01, "01", "09506000134352")
	values = append(values, v)
	v, buf = mkValue(buf, def21, "21", "SER1")
	values = append(values, v)
	v, buf = mkValue(buf, def250, "250", "SECSERIAL1")
	values = append(values, v)

	err := validate.Run(buf, values, false, validate.DefaultTable())
	assert.NoError(t, err)
}

func TestRun_repeatedAIsDiffer(t *testing.T) {
	tbl := testTable(t)
	def10, ok := tbl.ByAI("10")
	require.True(t, ok)

	buf, values := "", []model.AIValue{}
	var v model.AIValue
	v, buf = mkValue(buf, def10, "10", "BATCHA")
	values = append(values, v)
	v, buf = mkValue(buf, def10, "10", "BATCHB")
	values = append(values, v)

	err := validate.Run(buf, values, false, validate.DefaultTable())
	require.Error(t, err)
	gerr, ok := err.(*model.Error)
	require.True(t, ok)
	assert.Equal(t, model.ErrRepeatedAIsDiffer, gerr.Kind)
}

func TestRun_repeatedAIsIdenticalAllowed(t *testing.T) {
	tbl := testTable(t)
	def10, ok := tbl.ByAI("10")
	require.True(t, ok)

	buf, values := "", []model.AIValue{}
	var v model.AIValue
	v, buf = mkValue(buf, def10, "10", "BATCHA")
	values = append(values, v)
	v, buf = mkValue(buf, def10, "10", "BATCHA")
	values = append(values, v)

	err := validate.Run(buf, values, false, validate.DefaultTable())
	assert.NoError(t, err)
}

func TestRun_digSigSerialKeyMissing(t *testing.T) {
	tbl := testTable(t)
	def8030, ok := tbl.ByAI("8030")
	require.True(t, ok)
	def253, ok := tbl.ByAI("253")
	require.True(t, ok)

	buf, values := "", []model.AIValue{}
	var v model.AIValue
	v, buf = mkValue(buf, def253, "253", "1234567890128") // 13-digit mandatory only, no serial
	values = append(values, v)
	v, buf = mkValue(buf, def8030, "8030", "c2lnbmF0dXJl")
	values = append(values, v)

	err := validate.Run(buf, values, false, validate.DefaultTable())
	require.Error(t, err)
	gerr, ok := err.(*model.Error)
	require.True(t, ok)
	assert.Equal(t, model.ErrDigSigSerialKeyMissing, gerr.Kind)
}

func TestRun_digSigSerialKeyPresent(t *testing.T) {
	tbl := testTable(t)
	def8030, ok := tbl.ByAI("8030")
	require.True(t, ok)
	def253, ok := tbl.ByAI("253")
	require.True(t, ok)

	buf, values := "", []model.AIValue{}
	var v model.AIValue
	v, buf = mkValue(buf, def253, "253", "1234567890128SERIALXYZ")
	values = append(values, v)
	v, buf = mkValue(buf, def8030, "8030", "c2lnbmF0dXJl")
	values = append(values, v)

	err := validate.Run(buf, values, false, validate.DefaultTable())
	assert.NoError(t, err)
}

func TestRun_digSigSerialKeyIrrelevantWithoutDigSig(t *testing.T) {
	tbl := testTable(t)
	def253, ok := tbl.ByAI("253")
	require.True(t, ok)

	buf, values := "", []model.AIValue{}
	var v model.AIValue
	v, buf = mkValue(buf, def253, "253", "1234567890128")
	values = append(values, v)

	err := validate.Run(buf, values, false, validate.DefaultTable())
	assert.NoError(t, err)
}

func TestRun_unknownAINotDLAttrOnlyChecksDLInput(t *testing.T) {
	def := &model.Definition{AI: "99", DLDataAttr: model.DLDataAttrUnknown, Unknown: true,
		Components: []model.Component{{CharSet: model.CSetX, Min: 1, Max: 90}}}

	buf, values := "", []model.AIValue{}
	var v model.AIValue
	v, buf = mkValue(buf, def, "99", "whatever")
	v.DLPathOrder = model.DLPathAttribute
	values = append(values, v)

	assert.NoError(t, validate.Run(buf, values, false, validate.DefaultTable()))

	gerr, ok := validate.Run(buf, values, true, validate.DefaultTable()).(*model.Error)
	require.True(t, ok)
	assert.Equal(t, model.ErrUnknownAINotDLAttr, gerr.Kind)
}

func TestTable_setEnabledRefusesLocked(t *testing.T) {
	tbl := validate.DefaultTable()
	assert.False(t, tbl.SetEnabled(validate.MutexAIs, false), "MUTEX_AIS is locked")
	assert.True(t, tbl.SetEnabled(validate.RequisiteAIs, false), "REQUISITE_AIS is not locked")
}
