package dlink

import (
	"strings"

	"github.com/gs1ident/gs1syntax/internal/dict"
	"github.com/gs1ident/gs1syntax/internal/model"
)

// DefaultStem is the default DL URI stem (spec.md §4.4.2).
const DefaultStem = "https://id.gs1.org"

// GenerateDL implements spec.md §4.4.2: builds a canonical DL URI from
// extracted AI values, using their dl_path_order when already DL-derived,
// or computing the longest-matching key/qualifier path otherwise.
func GenerateDL(buf string, values []model.AIValue, tbl *dict.Table, stem string) (string, error) {
	if stem == "" {
		stem = DefaultStem
	}
	stem = strings.TrimSuffix(stem, "/")

	ordered, attrs, err := orderForGeneration(buf, values, tbl)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(stem)
	for _, v := range ordered {
		sb.WriteByte('/')
		sb.WriteString(v.AI(buf))
		sb.WriteByte('/')
		sb.WriteString(percentEncodePath(v.Value(buf)))
	}

	if len(attrs) > 0 {
		sb.WriteByte('?')
		sortAttrsFixedLengthFirst(attrs, buf)
		for i, v := range attrs {
			if i > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(v.AI(buf))
			sb.WriteByte('=')
			sb.WriteString(percentEncodeQuery(v.Value(buf)))
		}
	}

	return sb.String(), nil
}

// orderForGeneration splits values into the ordered path sequence and the
// remaining attributes, per spec.md §4.4.2's two cases.
func orderForGeneration(buf string, values []model.AIValue, tbl *dict.Table) (path, attrs []model.AIValue, err error) {
	if anyHasDLPathOrder(values) {
		return splitByExistingOrder(values)
	}
	return computeLongestPath(buf, values, tbl)
}

func anyHasDLPathOrder(values []model.AIValue) bool {
	for _, v := range values {
		if v.Kind == model.KindAIValue && v.DLPathOrder != model.DLPathNotApplicable {
			return true
		}
	}
	return false
}

func splitByExistingOrder(values []model.AIValue) (path, attrs []model.AIValue, err error) {
	var pathVals []model.AIValue
	for _, v := range values {
		if v.Kind != model.KindAIValue {
			continue
		}
		switch {
		case v.DLPathOrder == model.DLPathAttribute:
			attrs = append(attrs, v)
		case v.DLPathOrder >= model.DLPathRoot:
			pathVals = append(pathVals, v)
		}
	}
	sortByPathOrder(pathVals)
	return pathVals, attrs, nil
}

func sortByPathOrder(values []model.AIValue) {
	for i := 1; i < len(values); i++ {
		j := i
		for j > 0 && values[j-1].DLPathOrder > values[j].DLPathOrder {
			values[j-1], values[j] = values[j], values[j-1]
			j--
		}
	}
}

// computeLongestPath implements spec.md §4.4.2's second case: find the
// first AI that is a valid primary key, then among all precomputed
// sequences starting with that key, take the longest one every one of
// whose qualifiers is present in values.
func computeLongestPath(buf string, values []model.AIValue, tbl *dict.Table) (path, attrs []model.AIValue, err error) {
	byAI := make(map[string]model.AIValue, len(values))
	var order []string
	for _, v := range values {
		if v.Kind != model.KindAIValue {
			continue
		}
		ai := v.AI(buf)
		byAI[ai] = v
		order = append(order, ai)
	}

	var keyAI string
	for _, ai := range order {
		if tbl.IsDLPrimaryKey(ai) {
			keyAI = ai
			break
		}
	}
	if keyAI == "" {
		return nil, nil, model.NewError(model.ErrDLURIGenerateNoPrimaryKey, "")
	}

	best := []string{keyAI}
	for _, seq := range tbl.SequencesForKey(keyAI) {
		tokens := strings.Fields(seq)
		if allPresent(tokens, byAI) && len(tokens) > len(best) {
			best = tokens
			break // SequencesForKey returns longest-first; first match wins
		}
	}

	used := make(map[string]bool, len(best))
	for _, ai := range best {
		path = append(path, byAI[ai])
		used[ai] = true
	}
	for _, ai := range order {
		if !used[ai] {
			v := byAI[ai]
			if v.Def.DLDataAttr == model.DLDataAttrNone {
				return nil, nil, model.NewError(model.ErrDLURIGenerateAttributeNotDLAttr, "AI "+ai)
			}
			attrs = append(attrs, v)
		}
	}
	return path, attrs, nil
}

func allPresent(tokens []string, byAI map[string]model.AIValue) bool {
	for _, t := range tokens {
		if _, ok := byAI[t]; !ok {
			return false
		}
	}
	return true
}

// sortAttrsFixedLengthFirst applies spec.md §4.4.2's observable encoding
// order: fixed-length attribute AIs first, then variable-length,
// otherwise stable in original order.
func sortAttrsFixedLengthFirst(attrs []model.AIValue, buf string) {
	for i := 1; i < len(attrs); i++ {
		j := i
		for j > 0 && rank(attrs[j-1]) > rank(attrs[j]) {
			attrs[j-1], attrs[j] = attrs[j], attrs[j-1]
			j--
		}
	}
}

func rank(v model.AIValue) int {
	if v.Def.FixedLength() {
		return 0
	}
	return 1
}
