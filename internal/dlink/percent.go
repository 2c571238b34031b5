// Package dlink implements spec.md §4.4: parsing and generating GS1
// Digital Link URIs against a dict.Table, grounded on
// golang-auth-go-gssapi's multi-step validation chain (each step produces
// a distinct, named failure) generalized from a security handshake to a
// URI grammar walk.
package dlink

import (
	"strings"

	"github.com/gs1ident/gs1syntax/internal/model"
)

const upperHex = "0123456789ABCDEF"

// percentEncodePath encodes s for use in a DL path segment: reserved and
// non-ASCII-printable bytes become %XX (upper-case hex); '+' is escaped
// to %2B since a literal '+' in a path segment is not the "space"
// shorthand query components use (spec.md §4.4.2).
func percentEncodePath(s string) string {
	return percentEncode(s, true)
}

// percentEncodeQuery encodes s for use in a DL query component. A literal
// space encodes as '+' (never %20), matching §4.4.2's "+ for space only in
// query components".
func percentEncodeQuery(s string) string {
	return percentEncode(s, false)
}

func percentEncode(s string, isPath bool) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' && !isPath {
			sb.WriteByte('+')
			continue
		}
		if isUnreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperHex[c>>4])
		sb.WriteByte(upperHex[c&0x0f])
	}
	return sb.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	default:
		return false
	}
}

// percentDecodePath decodes a DL path segment: '+' is literal (spec.md
// §4.4.1 step 6: "+ in path = literal +").
func percentDecodePath(s string) (string, error) {
	return percentDecode(s, false)
}

// percentDecodeQuery decodes a DL query component: '+' decodes to a space
// (spec.md §4.4.1 step 6: "+ in query = space").
func percentDecodeQuery(s string) (string, error) {
	return percentDecode(s, true)
}

func percentDecode(s string, plusIsSpace bool) (string, error) {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '+':
			if plusIsSpace {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('+')
			}
		case '%':
			if i+2 >= len(s) {
				return "", model.NewError(model.ErrDLURICharacterInvalid, "truncated percent-encoded sequence")
			}
			hi, ok1 := hexVal(s[i+1])
			lo, ok2 := hexVal(s[i+2])
			if !ok1 || !ok2 {
				return "", model.NewError(model.ErrDLURICharacterInvalid, "invalid percent-encoded sequence")
			}
			sb.WriteByte(byte(hi<<4 | lo))
			i += 2
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String(), nil
}

func hexVal(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	default:
		return 0, false
	}
}
