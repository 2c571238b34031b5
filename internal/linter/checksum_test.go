package linter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckDigitLinter(t *testing.T) {
	// 12345678901231 is the canonical GTIN-14 example used throughout
	// spec.md's end-to-end scenarios.
	assert.Nil(t, checkDigitLinter("12345678901231"))
	assert.NotNil(t, checkDigitLinter("12345678901230"))
}

func TestCheckDigitLinter_gtin13Example(t *testing.T) {
	assert.Nil(t, checkDigitLinter("09520123456788"))
}

func TestGS1CheckDigit(t *testing.T) {
	assert.Equal(t, 1, gs1CheckDigit("1234567890123"))
}

func TestCheckPairLinter(t *testing.T) {
	err := checkPairLinter("A")
	assert.NotNil(t, err)
	assert.Equal(t, 0, err.ErrPos)
}
