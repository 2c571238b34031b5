package gs1

import (
	"strings"

	"github.com/gs1ident/gs1syntax/internal/dict"
	"github.com/gs1ident/gs1syntax/internal/linter"
)

// addCheckDigits implements the add_check_digit option (spec.md §3/§4.7)
// for bracketed input: a value supplied one digit short of a checksummed
// fixed-length component's defined length has the correct trailing check
// digit computed and appended, rather than being rejected as too short.
//
// It only applies to bracketed data, where "(AI)" delimits each value
// unambiguously; raw/unbracketed and scan-data input have no such
// delimiter ahead of parsing, so add_check_digit has no effect there.
func addCheckDigits(data string, tbl *dict.Table) string {
	var sb strings.Builder
	i := 0
	for i < len(data) {
		if data[i] != '(' {
			sb.WriteByte(data[i])
			i++
			continue
		}
		sb.WriteByte('(')
		i++
		aiStart := i
		for i < len(data) && data[i] != ')' {
			i++
		}
		if i >= len(data) {
			sb.WriteString(data[aiStart:])
			break
		}
		ai := data[aiStart:i]
		sb.WriteString(ai)
		sb.WriteByte(')')
		i++

		valStart := i
		for i < len(data) {
			if data[i] == '\\' && i+1 < len(data) && data[i+1] == '(' {
				i += 2
				continue
			}
			if data[i] == '(' || data[i] == '|' {
				break
			}
			i++
		}
		sb.WriteString(completeCheckDigit(ai, data[valStart:i], tbl))
	}
	return sb.String()
}

func completeCheckDigit(ai, value string, tbl *dict.Table) string {
	def, ok := tbl.ByAI(ai)
	if !ok || len(def.Components) == 0 {
		return value
	}
	last := def.Components[len(def.Components)-1]
	if last.Min != last.Max || !containsLinter(last.Linters, "csum") {
		return value
	}
	if len(value) != last.Max-1 || !isAllDigits(value) {
		return value
	}
	digit := linter.GS1CheckDigit(value)
	return value + string(rune('0'+digit))
}

func containsLinter(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
