package linter

import "github.com/gs1ident/gs1syntax/internal/model"

// isoData holds the compact membership sets the ISO-country/currency
// linters consult. It is package-level mutable state, replaced wholesale
// by LoadISOData (isodata.go) — never mutated in place — so concurrent
// lookups never observe a partially-updated set (spec.md §5's "no shared
// mutable state" applies to linter data too).
var isoData = defaultISOData()

type isoTables struct {
	numeric3166 map[string]bool // "3-digit numeric" country codes, plus "999"
	alpha2_3166 map[string]bool
	numeric4217 map[string]bool
}

// defaultISOData is the compiled-in bit-field-equivalent table: a compact,
// representative (not exhaustive) set of real ISO 3166/4217 codes. Per
// spec.md §4.2, a build-time hook (LoadISOData) can replace this with a
// richer source; see internal/linter/isodata.go.
func defaultISOData() *isoTables {
	return &isoTables{
		numeric3166: setOf(
			"004", "008", "012", "031", "036", "040", "044", "050", "056",
			"076", "096", "100", "124", "156", "170", "188", "191", "196",
			"203", "208", "246", "250", "276", "300", "344", "356", "372",
			"376", "380", "392", "410", "428", "440", "442", "458", "470",
			"484", "492", "528", "554", "578", "608", "616", "620", "634",
			"642", "643", "702", "703", "705", "710", "724", "752", "756",
			"764", "784", "792", "804", "818", "826", "840", "999",
		),
		alpha2_3166: setOf(
			"AD", "AE", "AF", "AG", "AL", "AM", "AO", "AR", "AT", "AU",
			"BE", "BG", "BR", "CA", "CH", "CN", "CZ", "DE", "DK", "EG",
			"ES", "FI", "FR", "GB", "GR", "HK", "HU", "ID", "IE", "IL",
			"IN", "IT", "JP", "KR", "MX", "MY", "NL", "NO", "NZ", "PH",
			"PL", "PT", "RO", "RU", "SA", "SE", "SG", "TH", "TR", "TW",
			"UA", "US", "VN", "ZA",
		),
		numeric4217: setOf(
			"008", "012", "032", "036", "044", "048", "050", "051", "052",
			"060", "064", "068", "072", "084", "090", "096", "104", "108",
			"116", "124", "132", "136", "144", "152", "156", "170", "188",
			"191", "192", "203", "208", "222", "230", "232", "238", "242",
			"262", "270", "292", "320", "324", "328", "332", "340", "344",
			"348", "352", "356", "360", "364", "368", "376", "388", "392",
			"398", "400", "404", "408", "410", "414", "417", "418", "422",
			"426", "428", "430", "434", "440", "446", "454", "458", "462",
			"480", "484", "496", "498", "504", "512", "516", "524", "532",
			"533", "548", "554", "558", "566", "578", "586", "598", "600",
			"604", "608", "634", "643", "646", "654", "682", "690", "694",
			"702", "704", "706", "710", "728", "748", "752", "756", "760",
			"764", "776", "780", "784", "788", "800", "807", "818", "826",
			"834", "840", "858", "860", "882", "886", "901", "931", "932",
			"934", "936", "937", "938", "940", "941", "943", "944", "946",
			"947", "948", "949", "950", "951", "952", "953", "967", "968",
			"969", "971", "972", "973", "975", "976", "977", "978", "979",
			"980", "981", "984", "985", "986", "990", "994", "997", "999",
		),
	}
}

func setOf(items ...string) map[string]bool {
	m := make(map[string]bool, len(items))
	for _, s := range items {
		m[s] = true
	}
	return m
}

func registerISOLinters() {
	Register("iso3166", iso3166Linter)
	Register("iso3166alpha2", iso3166Alpha2Linter)
	Register("iso3166999", iso3166Or999Linter)
	Register("iso4217", iso4217Linter)
}

func iso3166Linter(value string) *model.LintFailure {
	if !isNumeric(value) || !isoData.numeric3166[value] {
		return fail(model.ErrNotISO3166, 0, len(value))
	}
	return nil
}

func iso3166Or999Linter(value string) *model.LintFailure {
	if value == "999" {
		return nil
	}
	if !isNumeric(value) || !isoData.numeric3166[value] {
		return fail(model.ErrNotISO3166OrElse999, 0, len(value))
	}
	return nil
}

func iso3166Alpha2Linter(value string) *model.LintFailure {
	if len(value) != 2 || !isoData.alpha2_3166[value] {
		return fail(model.ErrNotISO3166Alpha2, 0, len(value))
	}
	return nil
}

func iso4217Linter(value string) *model.LintFailure {
	if !isNumeric(value) || !isoData.numeric4217[value] {
		return fail(model.ErrNotISO4217, 0, len(value))
	}
	return nil
}

func isNumeric(s string) bool {
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
