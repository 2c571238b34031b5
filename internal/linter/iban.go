package linter

import "github.com/gs1ident/gs1syntax/internal/model"

func registerIBANLinters() {
	Register("iban", ibanLinter)
}

const (
	ibanMinLen = 15
	ibanMaxLen = 34
)

// ibanLinter validates an IBAN embedded in an AI value (e.g. a payment
// reference component) using the standard mod-97 checksum (ISO 7064
// MOD 97-10): move the first four characters to the end, map letters to
// two-digit numbers (A=10 .. Z=35), and require the resulting numeral
// string mod 97 == 1.
func ibanLinter(value string) *model.LintFailure {
	if len(value) < ibanMinLen || len(value) > ibanMaxLen {
		return fail(model.ErrIBANBadLength, 0, len(value))
	}
	country := value[0:2]
	if country[0] < 'A' || country[0] > 'Z' || country[1] < 'A' || country[1] > 'Z' {
		return fail(model.ErrIBANBadCountry, 0, 2)
	}
	if !isoData.alpha2_3166[country] {
		return fail(model.ErrIBANBadCountry, 0, 2)
	}

	rearranged := value[4:] + value[0:4]
	rem := 0
	for i := 0; i < len(rearranged); i++ {
		c := rearranged[i]
		var digits string
		switch {
		case c >= '0' && c <= '9':
			digits = string(c)
		case c >= 'A' && c <= 'Z':
			digits = itoa(int(c-'A') + 10)
		default:
			return fail(model.ErrIBANBadCheckDigits, 0, len(value))
		}
		for j := 0; j < len(digits); j++ {
			rem = (rem*10 + int(digits[j]-'0')) % 97
		}
	}
	if rem != 1 {
		return fail(model.ErrIBANBadCheckDigits, 2, 2)
	}
	return nil
}

func itoa(n int) string {
	if n < 10 {
		return string(byte('0' + n))
	}
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}
