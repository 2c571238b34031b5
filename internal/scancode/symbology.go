// Package scancode implements spec.md §4.6: converting between the
// canonical AI message buffer (or a plain/DL payload) and the bytes a
// barcode reader actually emits — an AIM symbology identifier prefix
// followed by the message, with ASCII GS (0x1D) standing in for FNC1.
// Grounded on the teacher's asdu.go TypeID + CauseOfTransmission framing:
// a short fixed prefix tag selecting how to interpret the bytes that
// follow, looked up from a small enumerated table rather than parsed.
package scancode

// Symbology is spec.md §3's "enumerated tag" identifying which barcode
// symbology a message was (or will be) carried in.
type Symbology int

const (
	// SymNone means no symbology has been selected (the context's default;
	// get_scan_data is meaningless until set_sym chooses one).
	SymNone Symbology = iota
	SymGS1_128_CCA
	SymGS1_128_CCC
	SymEAN13
	SymUPCA
	SymEAN8
	SymUPCE
	SymGS1_DataBar
	SymGS1_DataBar_Limited
	SymGS1_DataBar_Expanded
	SymQRCode
	SymDataMatrix
	SymDotCode
)

func (s Symbology) String() string {
	switch s {
	case SymGS1_128_CCA:
		return "GS1_128_CCA"
	case SymGS1_128_CCC:
		return "GS1_128_CCC"
	case SymEAN13:
		return "EAN13"
	case SymUPCA:
		return "UPCA"
	case SymEAN8:
		return "EAN8"
	case SymUPCE:
		return "UPCE"
	case SymGS1_DataBar:
		return "GS1_DATABAR"
	case SymGS1_DataBar_Limited:
		return "GS1_DATABAR_LIMITED"
	case SymGS1_DataBar_Expanded:
		return "GS1_DATABAR_EXPANDED"
	case SymQRCode:
		return "QR_CODE"
	case SymDataMatrix:
		return "DATA_MATRIX"
	case SymDotCode:
		return "DOT_CODE"
	default:
		return "NONE"
	}
}

// isEANFamily reports whether s is one of the four fixed-length retail
// symbologies whose scan-data body is bare digits rather than AI data.
func (s Symbology) isEANFamily() bool {
	switch s {
	case SymEAN13, SymUPCA, SymEAN8, SymUPCE:
		return true
	default:
		return false
	}
}

// isDataBarFamily reports whether s is one of the GS1 DataBar variants,
// whose primary message is always just the GTIN (spec.md §4.6.1).
func (s Symbology) isDataBarFamily() bool {
	switch s {
	case SymGS1_DataBar, SymGS1_DataBar_Limited, SymGS1_DataBar_Expanded:
		return true
	default:
		return false
	}
}

// eanDigitLength is the bare-digit payload length for an EAN/UPC-family
// symbology (spec.md §4.6.1: "12/13/8 digits").
func (s Symbology) eanDigitLength() int {
	switch s {
	case SymEAN13:
		return 13
	case SymUPCA:
		return 12
	case SymEAN8, SymUPCE:
		return 8
	default:
		return 0
	}
}

// identifierFor implements the (symbology, ai_mode) -> identifier table of
// spec.md §4.6.1. hasComposite is whether a composite component (a second
// message following a CCSeparator) is attached; only GS1-128 switches its
// linear-only identifier for "]e0" in that case, per spec.md's "GS1-128
// with composite switches to ]e0 prefix". EAN/UPC keep ]E0/]E4 (the
// composite follows as a separate "|]e0" message) and DataBar always uses
// "]e0".
func identifierFor(sym Symbology, hasComposite bool) string {
	switch sym {
	case SymGS1_128_CCA, SymGS1_128_CCC:
		if hasComposite {
			return "]e0"
		}
		return "]C1"
	case SymEAN13, SymUPCA:
		return "]E0"
	case SymEAN8, SymUPCE:
		return "]E4"
	case SymGS1_DataBar, SymGS1_DataBar_Limited, SymGS1_DataBar_Expanded:
		return "]e0"
	case SymQRCode:
		return "]Q3"
	case SymDataMatrix:
		return "]d2"
	case SymDotCode:
		return "]J1"
	default:
		return ""
	}
}

// symbologyForIdentifier is the decode-side inverse: spec.md's scenario 4
// shows "]C1" resolving to GS1_128_CCA (the conventional default variant;
// CC-A and CC-C are indistinguishable from the linear identifier alone, so
// CC-A is chosen as in the reference engine).
func symbologyForIdentifier(tag string) (Symbology, bool) {
	switch tag {
	case "]C1":
		return SymGS1_128_CCA, true
	case "]e0":
		return SymGS1_128_CCA, true
	case "]E0":
		return SymEAN13, true
	case "]E4":
		return SymEAN8, true
	case "]Q1", "]Q3":
		return SymQRCode, true
	case "]d1", "]d2":
		return SymDataMatrix, true
	case "]J0", "]J1":
		return SymDotCode, true
	default:
		return SymNone, false
	}
}

// databarLimitedGTINCap is the Open Questions quirk (spec.md §8): GS1
// DataBar Limited refuses to generate scan data for a GTIN above this
// value, a restriction not enforced on the same GTIN arriving via any
// other input surface. Reproduced deliberately, not fixed.
const databarLimitedGTINCap = "19999999999999"
