package dict

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/gs1ident/gs1syntax/internal/model"
)

// maxTextEntryBytes is spec.md §6's syntax-dictionary line length cap.
const maxTextEntryBytes = 150

// punctuationFlagClass is the exact punctuation set spec.md §6 permits for
// flag tokens: "*!?\"$%&'()+,-./:;<=>@[\\]^_`{|}~".
const punctuationFlagClass = "*!?\"$%&'()+,-./:;<=>@[\\]^_`{|}~"

// LoadText parses a syntax dictionary in the line-oriented text format of
// spec.md §6 into RawEntry values, ready for Build. AI ranges ("91-99")
// are expanded before they are returned.
func LoadText(r io.Reader) ([]RawEntry, error) {
	var out []RawEntry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if len(line) > maxTextEntryBytes {
			return nil, model.NewError(model.ErrSyntaxDictionaryEntryTooLong, "")
		}
		entries, err := parseTextLine(trimmed)
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}
	if err := scanner.Err(); err != nil {
		return nil, model.NewError(model.ErrSyntaxDictionarySyntax, err.Error())
	}
	return out, nil
}

func parseTextLine(line string) ([]RawEntry, error) {
	body := line
	title := ""
	if i := strings.IndexByte(line, '#'); i >= 0 {
		body = strings.TrimSpace(line[:i])
		title = strings.TrimSpace(line[i+1:])
	}

	fields := strings.Fields(body)
	if len(fields) < 2 {
		return nil, model.NewError(model.ErrSyntaxDictionarySyntax, "entry has no AI/component fields: "+line)
	}

	aiField := fields[0]
	entry := RawEntry{Title: title, FNC1: true}

	for _, f := range fields[1:] {
		switch {
		case isFlagsToken(f):
			applyFlags(&entry, f)
		case isComponentToken(f):
			comp, err := parseComponent(f)
			if err != nil {
				return nil, err
			}
			entry.Components = append(entry.Components, comp)
		default:
			entry.Attrs = appendAttr(entry.Attrs, f)
		}
	}

	if len(entry.Components) == 0 {
		return nil, model.NewError(model.ErrSyntaxDictionarySyntax, "entry has no components: "+line)
	}
	if last := entry.Components[len(entry.Components)-1]; last.Min == last.Max {
		entry.FNC1 = false // fixed-length values never need an FNC1 terminator
	}

	if first, last, isRange := splitAIRange(aiField); isRange {
		return expandRange(first, last, entry)
	}
	entry.AI = aiField
	return []RawEntry{entry}, nil
}

func appendAttr(attrs, tok string) string {
	if attrs == "" {
		return tok
	}
	return attrs + " " + tok
}

func splitAIRange(field string) (first, last string, ok bool) {
	i := strings.IndexByte(field, '-')
	if i <= 0 || i == len(field)-1 {
		return "", "", false
	}
	return field[:i], field[i+1:], true
}

func isFlagsToken(tok string) bool {
	for i := 0; i < len(tok); i++ {
		if !strings.ContainsRune(punctuationFlagClass, rune(tok[i])) {
			return false
		}
	}
	return true
}

// applyFlags maps spec.md §6's three flag characters onto entry fields.
// '!' (designated-key) is "currently informational" per spec.md and is
// recorded nowhere; it exists for forward compatibility with a future
// DL-path designation scheme distinct from the dlpkey attribute.
func applyFlags(entry *RawEntry, tok string) {
	for i := 0; i < len(tok); i++ {
		switch tok[i] {
		case '*':
			entry.FNC1 = false
		case '?':
			entry.DLDataAttr = model.DLDataAttrYes
		}
	}
}

func isComponentToken(tok string) bool {
	s := tok
	if strings.HasPrefix(s, "[") {
		s = strings.TrimPrefix(s, "[")
	}
	if s == "" {
		return false
	}
	switch s[0] {
	case 'X', 'N', 'Y', 'Z':
		return true
	default:
		return false
	}
}

// parseComponent parses one "[X|N|Y|Z][len|..max]" token, optionally
// wrapped in "[...]" to mark it optional, followed by ",linter,linter"
// names.
func parseComponent(tok string) (RawComponent, error) {
	optional := false
	s := tok
	if strings.HasPrefix(s, "[") {
		optional = true
		s = strings.TrimPrefix(s, "[")
		s = strings.TrimSuffix(s, "]")
	}
	if s == "" {
		return RawComponent{}, model.NewError(model.ErrSyntaxDictionarySyntax, "empty component: "+tok)
	}

	var cs model.CharSet
	switch s[0] {
	case 'X':
		cs = model.CSetX
	case 'N':
		cs = model.CSetN
	case 'Y':
		cs = model.CSetY
	case 'Z':
		cs = model.CSetZ
	default:
		return RawComponent{}, model.NewError(model.ErrSyntaxDictionarySyntax, "unknown character set: "+tok)
	}
	rest := s[1:]

	parts := strings.Split(rest, ",")
	lengthSpec := parts[0]
	linters := parts[1:]

	var min, max int
	if strings.HasPrefix(lengthSpec, "..") {
		maxVal, err := strconv.Atoi(strings.TrimPrefix(lengthSpec, ".."))
		if err != nil {
			return RawComponent{}, model.NewError(model.ErrSyntaxDictionarySyntax, "bad length spec: "+tok)
		}
		min, max = 1, maxVal
	} else {
		fixed, err := strconv.Atoi(lengthSpec)
		if err != nil {
			return RawComponent{}, model.NewError(model.ErrSyntaxDictionarySyntax, "bad length spec: "+tok)
		}
		min, max = fixed, fixed
	}

	return RawComponent{CharSet: cs, Min: min, Max: max, Optional: optional, Linters: linters}, nil
}
