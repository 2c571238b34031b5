package linter

import "github.com/gs1ident/gs1syntax/internal/model"

// cset82 is the GS1 CSET 82 alphabet: every printable ISO/IEC 646 (ASCII)
// character except space, '#', '$', '@', '[', '\\', ']', '^', '`', '{',
// '|', '}', '~' and the control characters — the subset the GS1 General Specifications call out
// as safe to carry in an AI value without further escaping, aside from the
// bracketed format's own `(`/`)`/`\` escaping concerns (handled by the
// element-string parser, not here).
const cset82Alphabet = "!\"%&'()*+,-./0123456789:;<=>?ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz"

var cset82Set = buildSet(cset82Alphabet)

// cset39 (CSET 39) is the narrower upper-case-only legacy alphabet used by
// a handful of AIs (digits, upper-case letters, and a small punctuation
// set).
const cset39Alphabet = "#-/0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var cset39Set = buildSet(cset39Alphabet)

// cset64 (CSET 64) is URL-safe base64: A-Z a-z 0-9 - _
const cset64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

var cset64Set = buildSet(cset64Alphabet)

func buildSet(alphabet string) [256]bool {
	var set [256]bool
	for i := 0; i < len(alphabet); i++ {
		set[alphabet[i]] = true
	}
	return set
}

// CheckCharSet validates value against the character subset a component
// declares. It runs before any named linter, per spec.md §4.2, and reports
// the first disallowed byte's position.
func CheckCharSet(cs model.CharSet, value string) *model.LintFailure {
	switch cs {
	case model.CSetN:
		for i := 0; i < len(value); i++ {
			if value[i] < '0' || value[i] > '9' {
				return fail(model.ErrComponentCharacterInvalid, i, 1)
			}
		}
	case model.CSetX:
		for i := 0; i < len(value); i++ {
			if !cset82Set[value[i]] {
				return fail(model.ErrInvalidCSet82Character, i, 1)
			}
		}
	case model.CSetY:
		for i := 0; i < len(value); i++ {
			if !cset39Set[value[i]] {
				return fail(model.ErrInvalidCSet39Character, i, 1)
			}
		}
	case model.CSetZ:
		for i := 0; i < len(value); i++ {
			if !cset64Set[value[i]] {
				return fail(model.ErrInvalidCSet64Character, i, 1)
			}
		}
	}
	return nil
}
