package dict

import "github.com/gs1ident/gs1syntax/internal/model"

// n is shorthand for a fixed-length numeric component.
func n(length int, linters ...string) RawComponent {
	return RawComponent{CharSet: model.CSetN, Min: length, Max: length, Linters: linters}
}

// nvar is a variable-length numeric component, always the final one.
func nvar(max int, linters ...string) RawComponent {
	return RawComponent{CharSet: model.CSetN, Min: 1, Max: max, Linters: linters}
}

// xvar is a variable-length CSET 82 component.
func xvar(max int, linters ...string) RawComponent {
	return RawComponent{CharSet: model.CSetX, Min: 1, Max: max, Linters: linters}
}

func x(length int, linters ...string) RawComponent {
	return RawComponent{CharSet: model.CSetX, Min: length, Max: length, Linters: linters}
}

func zvar(max int, linters ...string) RawComponent {
	return RawComponent{CharSet: model.CSetZ, Min: 1, Max: max, Linters: linters}
}

// embeddedEntries is the engine's built-in AI dictionary: a representative,
// deliberately non-exhaustive subset of the GS1 General Specifications AI
// table (spec.md §4.1), chosen to exercise every linter family, every
// DLDataAttr state, and every key/qualifier and mutual-exclusion/requisite
// relationship spec.md's own §8 scenarios rely on. A production dictionary
// is materially larger; operators needing full coverage load a text
// syntax-dictionary file via LoadText (textdict.go) and pass its entries
// to Build instead of this table.
var embeddedEntries = []RawEntry{
	{
		AI: "00", FNC1: false, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{n(18, "key", "csum")},
		Attrs:      "dlpkey",
		Title:      "SSCC",
	},
	{
		AI: "01", FNC1: false, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{n(14, "key", "csum")},
		Attrs:      "dlpkey=22,10,21,235",
		Title:      "GTIN",
	},
	{
		AI: "02", FNC1: false, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{n(14, "csum")},
		Title:      "CONTENT",
	},
	{
		AI: "10", FNC1: true, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{xvar(20)},
		Title:      "BATCH/LOT",
	},
	{
		AI: "11", FNC1: false, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{n(6, "yymmdd")},
		Title:      "PROD DATE",
	},
	{
		AI: "12", FNC1: false, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{n(6, "yymmdd")},
		Title:      "DUE DATE",
	},
	{
		AI: "13", FNC1: false, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{n(6, "yymmdd")},
		Title:      "PACK DATE",
	},
	{
		AI: "15", FNC1: false, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{n(6, "yymmd0")},
		Title:      "BEST BEFORE or BEST BY",
	},
	{
		AI: "17", FNC1: false, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{n(6, "yymmd0")},
		Title:      "USE BY OR EXPIRY",
	},
	{
		AI: "20", FNC1: false, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{n(2)},
		Title:      "VARIANT",
	},
	{
		AI: "21", FNC1: true, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{xvar(20)},
		Title:      "SERIAL",
	},
	{
		AI: "22", FNC1: true, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{xvar(20)},
		Title:      "CPV",
	},
	{
		AI: "235", FNC1: true, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{xvar(28)},
		Title:      "TPX",
	},
	{
		AI: "240", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{xvar(30)},
		Title:      "ADDITIONAL ID",
	},
	{
		AI: "242", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{nvar(6)},
		Title:      "MTO VARIANT",
	},
	{
		AI: "243", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{xvar(20)},
		Title:      "PCN",
	},
	{
		AI: "250", FNC1: true, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{xvar(30)},
		Attrs:      "req=01+21",
		Title:      "SECONDARY SERIAL",
	},
	{
		AI: "253", FNC1: true, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{n(13, "csum"), {CharSet: model.CSetX, Min: 0, Max: 17, Optional: true}},
		Attrs:      "dlpkey",
		Title:      "GDTI",
	},
	{
		AI: "255", FNC1: true, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{n(13, "csum"), {CharSet: model.CSetN, Min: 0, Max: 12, Optional: true}},
		Attrs:      "dlpkey",
		Title:      "GCN",
	},
	{
		AI: "30", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{nvar(8)},
		Title:      "VAR COUNT",
	},
	{
		AI: "3100", FNC1: false, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{n(6)},
		Attrs:      "ex=320n",
		Title:      "NET WEIGHT (kg)",
	},
	{
		AI: "3200", FNC1: false, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{n(6)},
		Attrs:      "ex=310n",
		Title:      "NET WEIGHT (lb)",
	},
	{
		AI: "37", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{nvar(8)},
		Title:      "COUNT",
	},
	{
		AI: "390", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{nvar(15)},
		Title:      "AMOUNT",
	},
	{
		AI: "400", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{xvar(30)},
		Title:      "ORDER NUMBER",
	},
	{
		AI: "401", FNC1: true, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{xvar(30)},
		Attrs:      "dlpkey",
		Title:      "GINC",
	},
	{
		AI: "402", FNC1: false, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{n(17, "csum")},
		Attrs:      "dlpkey",
		Title:      "GSIN",
	},
	{
		AI: "410", FNC1: false, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{n(13, "csum")},
		Title:      "SHIP TO LOC",
	},
	{
		AI: "414", FNC1: false, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{n(13, "csum")},
		Attrs:      "dlpkey",
		Title:      "LOC No.",
	},
	{
		AI: "421", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{n(3, "iso3166"), xvar(9, "pct")},
		Title:      "SHIP TO POST",
	},
	{
		AI: "422", FNC1: false, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{n(3, "iso3166999")},
		Title:      "ORIGIN",
	},
	{
		AI: "423", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{n(3, "iso3166999"), {CharSet: model.CSetN, Min: 0, Max: 12, Optional: true, Linters: []string{"iso3166999"}}},
		Title:      "COUNTRY - INITIAL PROCESS",
	},
	{
		AI: "8001", FNC1: false, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{n(14)},
		Title:      "DIMENSIONS",
	},
	{
		AI: "8003", FNC1: true, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{n(14, "csum"), {CharSet: model.CSetX, Min: 0, Max: 16, Optional: true}},
		Attrs:      "dlpkey",
		Title:      "GRAI",
	},
	{
		AI: "8004", FNC1: true, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{xvar(30)},
		Attrs:      "dlpkey",
		Title:      "GIAI",
	},
	{
		AI: "8005", FNC1: false, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{n(6)},
		Title:      "PRICE PER UNIT",
	},
	{
		AI: "8006", FNC1: false, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{n(14, "csum"), n(2), n(2)},
		Title:      "ITIP",
	},
	{
		AI: "8007", FNC1: true, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{xvar(34, "iban")},
		Title:      "IBAN",
	},
	{
		AI: "8008", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{n(6, "hhmmss"), nvar(6)},
		Title:      "PROD TIME",
	},
	{
		AI: "8010", FNC1: true, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{{CharSet: model.CSetY, Min: 1, Max: 30}},
		Attrs:      "dlpkey",
		Title:      "CPID",
	},
	{
		AI: "8011", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{nvar(12)},
		Title:      "CPID SERIAL",
	},
	{
		AI: "8012", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{xvar(20)},
		Title:      "VERSION",
	},
	{
		AI: "8013", FNC1: true, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{xvar(25, "cpair")},
		Attrs:      "dlpkey",
		Title:      "GMN",
	},
	{
		AI: "8019", FNC1: false, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{nvar(10)},
		Title:      "SRIN",
	},
	{
		AI: "8020", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{xvar(25)},
		Title:      "REF No.",
	},
	{
		AI: "8026", FNC1: false, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{n(14, "csum"), n(4, "pieces")},
		Title:      "ITIP CONTENT",
	},
	{
		AI: "8110", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{xvar(70)},
		Title:      "—", // coupon extended code; see AI 255x family for format detail
	},
	{
		AI: "8111", FNC1: false, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{n(4)},
		Title:      "POINTS",
	},
	{
		AI: "8112", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{xvar(70)},
		Title:      "PAPERLESS COUPON",
	},
	{
		AI: "8200", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{xvar(70)},
		Title:      "PRODUCT URL",
	},
	{
		AI: "90", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{xvar(30)},
		Title:      "INTERNAL",
	},
	{
		AI: "91", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{xvar(90)},
		Title:      "INTERNAL",
	},
	{
		AI: "92", FNC1: true, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{zvar(90)},
		Attrs:      "req=01",
		Title:      "DIGITAL SIGNATURE",
	},
	{
		AI: "93", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{xvar(90)},
		Title:      "INTERNAL",
	},
	{
		AI: "94", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{xvar(90)},
		Title:      "INTERNAL",
	},
	{
		AI: "95", FNC1: true, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{xvar(90)},
		Title:      "INTERNAL",
	},
	{
		AI: "96", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{xvar(90)},
		Title:      "INTERNAL",
	},
	{
		AI: "97", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{xvar(90)},
		Title:      "INTERNAL",
	},
	{
		AI: "98", FNC1: true, DLDataAttr: model.DLDataAttrNone,
		Components: []RawComponent{xvar(90)},
		Title:      "INTERNAL",
	},
	{
		AI: "99", FNC1: true, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{xvar(90)},
		Title:      "INTERNAL",
	},
	{
		AI: "8030", FNC1: true, DLDataAttr: model.DLDataAttrYes,
		Components: []RawComponent{zvar(90)},
		Title:      "DIGSIG",
	},
}

// buildAlphaTable returns the convenience alpha-name -> AI mapping
// (spec.md's supplemented "convenience alpha AI name" feature): short
// mnemonic aliases for the AIs most commonly referenced by name rather
// than number in GS1 documentation and tooling.
func buildAlphaTable() map[string]string {
	return map[string]string{
		"GTIN":   "01",
		"BATCH":  "10",
		"LOT":    "10",
		"SER":    "21",
		"EXP":    "17",
		"PROD":   "11",
		"SSCC":   "00",
		"CPV":    "22",
	}
}
