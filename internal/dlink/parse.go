package dlink

import (
	"strings"

	"github.com/gs1ident/gs1syntax/internal/dict"
	"github.com/gs1ident/gs1syntax/internal/element"
	"github.com/gs1ident/gs1syntax/internal/logging"
	"github.com/gs1ident/gs1syntax/internal/model"
)

var schemePrefixes = []string{"https://", "http://", "HTTPS://", "HTTP://"}

// Result is everything ParseDL extracts from a Digital Link URI beyond
// the AI values themselves: the canonical buffer the values reference,
// the preserved fragment, and any non-AI query tokens (spec.md §4.4.1
// step 8's "dl_ignored").
type Result struct {
	Buffer          string
	Values          []model.AIValue
	Fragment        string
	IgnoredParams   []string
}

// ParseDL implements spec.md §4.4.1's ten ordered steps.
func ParseDL(uri string, tbl *dict.Table, opts model.Options) (*Result, error) {
	if err := checkURICharset(uri); err != nil {
		return nil, err
	}

	scheme, rest, err := stripScheme(uri)
	if err != nil {
		return nil, err
	}
	_ = scheme

	authority, rest, err := splitAuthority(rest)
	if err != nil {
		return nil, err
	}
	if authority == "" {
		return nil, model.NewError(model.ErrDLURINoAuthority, "")
	}

	pathAndQuery, fragment := splitFragment(rest)
	path, query := splitQuery(pathAndQuery)

	if strings.HasSuffix(path, "/") {
		return nil, model.NewError(model.ErrDLURITrailingSlash, "")
	}

	segments := splitPathSegments(path)
	rootIdx, err := findPathRoot(segments, tbl, opts)
	if err != nil {
		return nil, err
	}

	pathValues, seqTokens, err := extractPathValues(segments, rootIdx, tbl, opts)
	if err != nil {
		return nil, err
	}

	if !tbl.IsValidDLPathAISequence(strings.Join(seqTokens, " ")) {
		return nil, model.NewError(model.ErrDLURIPathSequenceNotRecognised, strings.Join(seqTokens, " "))
	}

	attrValues, ignored, err := extractQueryValues(query, tbl, opts)
	if err != nil {
		return nil, err
	}

	if err := checkNoAttributeBelongsInPath(seqTokens, attrValues, tbl); err != nil {
		return nil, err
	}

	allValues := append(pathValues, attrValues...)
	if err := checkDuplicateAIs(allValues); err != nil {
		return nil, err
	}
	for _, v := range attrValues {
		if v.Def.DLDataAttr == model.DLDataAttrNone {
			return nil, model.NewError(model.ErrDLURIAttributeNotDLAttr, "AI "+v.Def.AI)
		}
		if v.Def.DLDataAttr == model.DLDataAttrUnknown && !opts.PermitUnknownAIs {
			return nil, model.NewError(model.ErrDLURIUnknownAIVivifiedButDisallowed, "AI "+v.Def.AI)
		}
	}
	for _, v := range allValues {
		if err := element.LintValue(v.Def, v.Raw); err != nil {
			return nil, err
		}
	}

	buf, values := rebuildBuffer(allValues)

	logging.L.Debugf("parsed DL URI into %d AI values, %d ignored query params", len(values), len(ignored))

	return &Result{
		Buffer:        buf,
		Values:        values,
		Fragment:      fragment,
		IgnoredParams: ignored,
	}, nil
}

func checkURICharset(uri string) error {
	for i := 0; i < len(uri); i++ {
		c := uri[i]
		if isUnreserved(c) || strings.ContainsRune(":/?#[]@!$&'()*+,;=%", rune(c)) {
			continue
		}
		return model.NewError(model.ErrDLURICharacterInvalid, "disallowed character in URI")
	}
	return nil
}

func stripScheme(uri string) (scheme, rest string, err error) {
	for _, p := range schemePrefixes {
		if strings.HasPrefix(uri, p) {
			return strings.TrimSuffix(p, "://"), uri[len(p):], nil
		}
	}
	return "", "", model.NewError(model.ErrDLURIBadScheme, "")
}

func splitAuthority(rest string) (authority, remainder string, err error) {
	end := len(rest)
	for i := 0; i < len(rest); i++ {
		if rest[i] == '/' || rest[i] == '?' || rest[i] == '#' {
			end = i
			break
		}
	}
	authority = rest[:end]
	for i := 0; i < len(authority); i++ {
		c := authority[i]
		if isUnreserved(c) || c == ':' || c == '@' || c == '%' {
			continue
		}
		return "", "", model.NewError(model.ErrDLURIAuthorityInvalid, "")
	}
	return authority, rest[end:], nil
}

func splitFragment(s string) (rest, fragment string) {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

func splitQuery(s string) (path, query string) {
	if i := strings.IndexByte(s, '?'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

func splitPathSegments(path string) []string {
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// findPathRoot implements step 5's right-to-left scan: the rightmost
// /aa/value pair whose aa resolves to a DL primary key is the root. It
// returns the 0-based index into segments of that pair's AI token.
func findPathRoot(segments []string, tbl *dict.Table, opts model.Options) (int, error) {
	if len(segments) < 2 {
		return 0, model.NewError(model.ErrDLURINoPrimaryKey, "")
	}
	for i := len(segments) - 2; i >= 0; i -= 2 {
		ai := resolveAlpha(segments[i], tbl, opts)
		if tbl.IsDLPrimaryKey(ai) {
			return i, nil
		}
	}
	return 0, model.NewError(model.ErrDLURINoPrimaryKey, "")
}

func resolveAlpha(token string, tbl *dict.Table, opts model.Options) string {
	if isAllDigits(token) {
		return token
	}
	if !opts.PermitConvenienceAlphas {
		return token
	}
	if len(token) < 3 || len(token) > 5 {
		return token
	}
	if ai, ok := tbl.AlphaAI(strings.ToUpper(token)); ok {
		return ai
	}
	return token
}

// extractPathValues walks left to right from rootIdx, extracting (ai,
// value) pairs with ascending DLPathOrder starting at model.DLPathRoot.
// Returns the values and the plain AI-token sequence for key/qualifier
// validation.
func extractPathValues(segments []string, rootIdx int, tbl *dict.Table, opts model.Options) ([]model.AIValue, []string, error) {
	tail := segments[rootIdx:]
	if len(tail)%2 != 0 {
		return nil, nil, model.NewError(model.ErrDLURIPathSequenceNotRecognised, strings.Join(tail, "/"))
	}

	var values []model.AIValue
	var seq []string
	order := model.DLPathRoot
	for i := 0; i < len(tail); i += 2 {
		ai := resolveAlpha(tail[i], tbl, opts)
		rawValue := tail[i+1]

		def, err := tbl.Lookup(ai, len(ai), opts.PermitUnknownAIs)
		if err != nil {
			return nil, nil, err
		}
		if def == nil {
			return nil, nil, model.NewError(model.ErrUnknownAI, "AI "+ai+" in DL path")
		}

		value, err := percentDecodePath(rawValue)
		if err != nil {
			return nil, nil, err
		}
		if ai == "01" && opts.PermitZeroSuppressedGTINInDL {
			value = padGTIN14(value)
		}
		if err := checkLengthContent(def, value); err != nil {
			return nil, nil, err
		}

		seq = append(seq, def.AI)
		// ValStart/ValLen/AIStart/AILen are filled in once the canonical
		// buffer is rebuilt (rebuildBuffer); Raw carries the decoded value
		// until then, since DL path values do not share one contiguous
		// pre-existing buffer the way bracketed/unbracketed input does.
		values = append(values, model.AIValue{
			Def: def, Kind: model.KindAIValue,
			DLPathOrder: order,
			Raw:         value,
		})
		order++
	}
	return values, seq, nil
}

// extractQueryValues implements step 8.
func extractQueryValues(query string, tbl *dict.Table, opts model.Options) ([]model.AIValue, []string, error) {
	if query == "" {
		return nil, nil, nil
	}
	var values []model.AIValue
	var ignored []string
	for _, item := range strings.Split(query, "&") {
		if item == "" {
			continue
		}
		key, rawValue, hasValue := strings.Cut(item, "=")
		if !isAllDigits(key) {
			ignored = append(ignored, item)
			continue
		}
		def, err := tbl.Lookup(key, len(key), opts.PermitUnknownAIs)
		if err != nil {
			return nil, nil, err
		}
		if def == nil {
			return nil, nil, model.NewError(model.ErrDLURIQueryKeyNotAI, "AI "+key)
		}
		value := ""
		if hasValue {
			v, err := percentDecodeQuery(rawValue)
			if err != nil {
				return nil, nil, err
			}
			value = v
		}
		if err := checkLengthContent(def, value); err != nil {
			return nil, nil, err
		}
		values = append(values, model.AIValue{
			Def: def, Kind: model.KindAIValue,
			DLPathOrder: model.DLPathAttribute,
			Raw:         value,
		})
	}
	return values, ignored, nil
}

// checkLengthContent is spec.md §4.4.1 step 6's length_content_check:
// total length within [min_sum, max_sum] and no FNC1 in the value.
func checkLengthContent(def *model.Definition, value string) error {
	if strings.ContainsRune(value, element.FNC1) {
		return model.NewError(model.ErrValueContainsFNC1, "AI "+def.AI)
	}
	if len(value) < def.MinTotalLength() || len(value) > def.MaxTotalLength() {
		return model.NewError(model.ErrComponentTooShort, "AI "+def.AI+" value length out of range")
	}
	return nil
}

func padGTIN14(value string) string {
	for len(value) < 14 {
		value = "0" + value
	}
	return value
}

// checkNoAttributeBelongsInPath implements step 9's "attributes that
// belong in the path are detected and rejected": an attribute AI that,
// inserted anywhere after the root in the path sequence, would form a
// longer valid key/qualifier sequence must appear in the path instead.
func checkNoAttributeBelongsInPath(pathSeq []string, attrValues []model.AIValue, tbl *dict.Table) error {
	for _, v := range attrValues {
		for j := 1; j <= len(pathSeq); j++ {
			candidate := append(append([]string{}, pathSeq[:j]...), v.Def.AI)
			candidate = append(candidate, pathSeq[j:]...)
			if len(candidate) > len(pathSeq) && tbl.IsValidDLPathAISequence(strings.Join(candidate, " ")) {
				return model.NewError(model.ErrDLURIAttributeShouldBeInPath, "AI "+v.Def.AI)
			}
		}
	}
	return nil
}

func checkDuplicateAIs(values []model.AIValue) error {
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if v.Def == nil {
			continue
		}
		if seen[v.Def.AI] {
			return model.NewError(model.ErrDLURIDuplicateAI, "AI "+v.Def.AI)
		}
		seen[v.Def.AI] = true
	}
	return nil
}

// rebuildBuffer lays out every extracted value into one canonical
// FNC1-delimited buffer (path values first in dl_path_order, then
// attributes), mirroring element.ParseUnbracketed's buffer shape so the
// rest of the engine (validator pipeline, HRI, generation) can treat a
// parsed DL URI exactly like any other input surface.
func rebuildBuffer(values []model.AIValue) (string, []model.AIValue) {
	var sb strings.Builder
	sb.WriteByte(element.FNC1)
	out := make([]model.AIValue, len(values))
	prevFNC1 := false
	for i, v := range values {
		if prevFNC1 {
			sb.WriteByte(element.FNC1)
		}
		aiStart := sb.Len()
		sb.WriteString(v.Def.AI)
		valStart := sb.Len()
		sb.WriteString(v.Raw)
		out[i] = model.AIValue{
			Def: v.Def, Kind: model.KindAIValue,
			AIStart: aiStart, AILen: len(v.Def.AI),
			ValStart: valStart, ValLen: len(v.Raw),
			DLPathOrder: v.DLPathOrder,
		}
		prevFNC1 = v.Def.FNC1
	}
	return sb.String(), out
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

