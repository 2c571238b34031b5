package gs1_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/gs1ident/gs1syntax/internal/dict"

	"github.com/gs1ident/gs1syntax"
)

// cset82NoParen is the GS1 CSET 82 alphabet (internal/linter's cset82Alphabet)
// minus '(', so generated values never need bracketed-format paren escaping.
const cset82NoParen = "!\"%&'*+,-./0123456789:;<=>?ABCDEFGHIJKLMNOPQRSTUVWXYZ_abcdefghijklmnopqrstuvwxyz)"

// TestProperty_LengthByPrefixMatchesEveryFixedLengthEntry checks spec.md
// §4.1.1's table-wide invariant: every fixed-length entry's recorded
// length_by_prefix for its own 2-digit prefix equals that entry's AI digit
// count plus its value length, for an arbitrary entry drawn from the built
// dictionary.
func TestProperty_LengthByPrefixMatchesEveryFixedLengthEntry(t *testing.T) {
	tbl, err := dict.Default()
	if err != nil {
		t.Fatal(err)
	}
	entries := tbl.Entries()
	if len(entries) == 0 {
		t.Fatal("embedded dictionary built empty")
	}

	rapid.Check(t, func(t *rapid.T) {
		def := rapid.SampledFrom(entries).Draw(t, "entry")
		if !def.FixedLength() || len(def.AI) < 2 {
			return
		}
		got := tbl.LengthByPrefix(def.AI[:2])
		want := len(def.AI) + def.MaxTotalLength()
		if got != want {
			t.Fatalf("LengthByPrefix(%q) = %d, want %d (AI %s)", def.AI[:2], got, want, def.AI)
		}
	})
}

// TestProperty_BracketedRoundTrip checks spec.md §8's round-trip identity:
// bracketed AI data parsed and re-rendered through SetAIDataStr/AIDataStr
// reproduces the same bracketed form, for arbitrary CSET 82 values of AI 10
// (BATCH/LOT, X1..20, no linters beyond the character set check).
func TestProperty_BracketedRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		runes := rapid.SliceOfN(rapid.SampledFrom([]rune(cset82NoParen)), 1, 20).Draw(t, "value")
		value := string(runes)

		c, err := gs1.New()
		if err != nil {
			t.Fatal(err)
		}
		data := "(10)" + value
		if err := c.SetAIDataStr(data); err != nil {
			t.Fatalf("SetAIDataStr(%q): %v", data, err)
		}
		out, ok := c.AIDataStr()
		if !ok {
			t.Fatal("AIDataStr returned ok=false after a successful SetAIDataStr")
		}
		if out != data {
			t.Fatalf("round trip mismatch: got %q, want %q", out, data)
		}
	})
}

// TestProperty_ScanDataRoundTrip checks that a bracketed message encoded to
// scan data and parsed back from it reproduces the same canonical message,
// for arbitrary CSET 82 values of AI 10 carried over the GS1-128 CC-A
// symbology (spec.md §4.6's "decode(encode(m)) == m" invariant).
func TestProperty_ScanDataRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		runes := rapid.SliceOfN(rapid.SampledFrom([]rune(cset82NoParen)), 1, 20).Draw(t, "value")
		value := string(runes)

		c, err := gs1.New()
		if err != nil {
			t.Fatal(err)
		}
		if err := c.SetAIDataStr("(10)" + value); err != nil {
			t.Fatalf("SetAIDataStr: %v", err)
		}
		c.SetSym(gs1.SymGS1_128_CCA)
		scanData, err := c.GetScanData()
		if err != nil {
			t.Fatalf("GetScanData: %v", err)
		}

		c2, err := gs1.New()
		if err != nil {
			t.Fatal(err)
		}
		if err := c2.SetScanData(scanData); err != nil {
			t.Fatalf("SetScanData(%q): %v", scanData, err)
		}
		buf1, _ := c.DataStr()
		buf2, _ := c2.DataStr()
		if buf1 != buf2 {
			t.Fatalf("round trip mismatch: got %q, want %q", buf2, buf1)
		}
	})
}
