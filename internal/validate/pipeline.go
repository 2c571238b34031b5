// Package validate implements spec.md §4.5's validator pipeline: a fixed,
// ordered list of toggleable procedures run once per assembled message.
// Grounded on the teacher's asdu.go Present()/frame-sanity checks, which
// run a short ordered list of structural checks over one decoded frame and
// stop at the first failure, generalized here from one ASDU to one GS1 AI
// value set.
package validate

import (
	"strings"

	"github.com/gs1ident/gs1syntax/internal/model"
)

// ID names one of the five fixed validation procedures (spec.md §4.5's
// table). The identifiers mirror the table's own names so error messages
// and SetValidationEnabled calls can refer to them directly.
type ID int

const (
	MutexAIs ID = iota
	RequisiteAIs
	RepeatedAIs
	DigSigSerialKey
	UnknownAINotDLAttr

	numIDs
)

func (id ID) String() string {
	switch id {
	case MutexAIs:
		return "MUTEX_AIS"
	case RequisiteAIs:
		return "REQUISITE_AIS"
	case RepeatedAIs:
		return "REPEATED_AIS"
	case DigSigSerialKey:
		return "DIGSIG_SERIAL_KEY"
	case UnknownAINotDLAttr:
		return "UNKNOWN_AI_NOT_DL_ATTR"
	default:
		return "?"
	}
}

// Table is the per-instance enable/lock state for every procedure (spec.md
// §3's `validation_table`), indexed by ID in the fixed pipeline order.
type Table [numIDs]model.ValidationState

// DefaultTable returns the pipeline's documented defaults: MUTEX_AIS,
// REPEATED_AIS and DIGSIG_SERIAL_KEY locked on; REQUISITE_AIS and
// UNKNOWN_AI_NOT_DL_ATTR on but unlocked.
func DefaultTable() Table {
	return Table{
		MutexAIs:           {Enabled: true, Locked: true},
		RequisiteAIs:       {Enabled: true, Locked: false},
		RepeatedAIs:        {Enabled: true, Locked: true},
		DigSigSerialKey:    {Enabled: true, Locked: true},
		UnknownAINotDLAttr: {Enabled: true, Locked: false},
	}
}

// SetEnabled toggles one procedure, refusing to change a locked entry.
func (tbl *Table) SetEnabled(id ID, enabled bool) bool {
	if id < 0 || id >= numIDs {
		return false
	}
	if tbl[id].Locked {
		return false
	}
	tbl[id].Enabled = enabled
	return true
}

// Run executes the pipeline in its fixed order against one assembled
// message (buf plus the AI values extracted from it), stopping at and
// returning the first procedure's failure — spec.md §4.5: "The first
// failing procedure surfaces its error; successive procedures are not
// run."
func Run(buf string, values []model.AIValue, isDLAttribute bool, tbl Table) error {
	checks := [numIDs]func(string, []model.AIValue, bool) error{
		MutexAIs:           checkMutexAIs,
		RequisiteAIs:       checkRequisiteAIs,
		RepeatedAIs:        checkRepeatedAIs,
		DigSigSerialKey:    checkDigSigSerialKey,
		UnknownAINotDLAttr: checkUnknownAINotDLAttr,
	}
	for id := ID(0); id < numIDs; id++ {
		if !tbl[id].Enabled {
			continue
		}
		if err := checks[id](buf, values, isDLAttribute); err != nil {
			return err
		}
	}
	return nil
}

func aiValues(values []model.AIValue) []model.AIValue {
	out := make([]model.AIValue, 0, len(values))
	for _, v := range values {
		if v.Kind == model.KindAIValue {
			out = append(out, v)
		}
	}
	return out
}

// checkMutexAIs implements MUTEX_AIS: for each present AI whose Attrs carry
// an `ex=pattern,...` token, no other present AI may match any pattern in
// that list. A pattern is the same length as the AIs it matches, with a
// trailing run of `n` standing for any digit in those positions.
func checkMutexAIs(buf string, values []model.AIValue, _ bool) error {
	vals := aiValues(values)
	for _, v := range vals {
		patterns := mutexPatterns(v.Def.Attrs)
		if len(patterns) == 0 {
			continue
		}
		for _, other := range vals {
			ai := other.AI(buf)
			if ai == v.Def.AI {
				continue
			}
			for _, p := range patterns {
				if matchesPattern(ai, p) {
					return model.NewError(model.ErrMutexAIsConflict,
						"AI "+v.Def.AI+" cannot be paired with AI "+ai)
				}
			}
		}
	}
	return nil
}

func mutexPatterns(attrs string) []string {
	for _, tok := range strings.Fields(attrs) {
		if strings.HasPrefix(tok, "ex=") {
			return strings.Split(strings.TrimPrefix(tok, "ex="), ",")
		}
	}
	return nil
}

// matchesPattern reports whether ai matches pattern: same length, with
// every non-'n' byte of pattern equal to the corresponding byte of ai.
func matchesPattern(ai, pattern string) bool {
	if len(ai) != len(pattern) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != 'n' && pattern[i] != ai[i] {
			return false
		}
	}
	return true
}

// checkRequisiteAIs implements REQUISITE_AIS: for each present AI whose
// Attrs carry a `req=g1,g2,...` token, at least one `+`-joined group gi
// must be fully present among the message's other AIs.
func checkRequisiteAIs(buf string, values []model.AIValue, _ bool) error {
	vals := aiValues(values)
	present := make(map[string]bool, len(vals))
	for _, v := range vals {
		present[v.AI(buf)] = true
	}
	for _, v := range vals {
		groups := requisiteGroups(v.Def.Attrs)
		if len(groups) == 0 {
			continue
		}
		satisfied := false
		for _, group := range groups {
			if allPresent(group, present) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return model.NewError(model.ErrRequisiteAIsUnsatisfied,
				"AI "+v.Def.AI+" requires one of its requisite AI groups")
		}
	}
	return nil
}

func requisiteGroups(attrs string) [][]string {
	for _, tok := range strings.Fields(attrs) {
		if strings.HasPrefix(tok, "req=") {
			rest := strings.TrimPrefix(tok, "req=")
			var groups [][]string
			for _, g := range strings.Split(rest, ",") {
				groups = append(groups, strings.Split(g, "+"))
			}
			return groups
		}
	}
	return nil
}

func allPresent(ais []string, present map[string]bool) bool {
	for _, ai := range ais {
		if !present[ai] {
			return false
		}
	}
	return true
}

// checkRepeatedAIs implements REPEATED_AIS: any AI occurring more than
// once must carry an identical value in every occurrence.
func checkRepeatedAIs(buf string, values []model.AIValue, _ bool) error {
	seen := make(map[string]string, len(values))
	for _, v := range aiValues(values) {
		ai := v.AI(buf)
		val := v.Value(buf)
		if prev, ok := seen[ai]; ok {
			if prev != val {
				return model.NewError(model.ErrRepeatedAIsDiffer, "AI "+ai+" repeats with a different value")
			}
			continue
		}
		seen[ai] = val
	}
	return nil
}

// digsigKeyAIs are the AIs DIGSIG_SERIAL_KEY requires an optional serial
// component on when (8030) is present (spec.md §4.5's table).
var digsigKeyAIs = []string{"253", "255", "8003"}

// checkDigSigSerialKey implements DIGSIG_SERIAL_KEY: if (8030) is present,
// every present AI among digsigKeyAIs must carry its optional serial
// component (only the final component of these definitions is optional,
// so "carries it" means the value is longer than the sum of the mandatory
// components' lengths).
func checkDigSigSerialKey(buf string, values []model.AIValue, _ bool) error {
	vals := aiValues(values)
	hasDigSig := false
	for _, v := range vals {
		if v.AI(buf) == "8030" {
			hasDigSig = true
			break
		}
	}
	if !hasDigSig {
		return nil
	}
	for _, v := range vals {
		ai := v.AI(buf)
		if !containsString(digsigKeyAIs, ai) {
			continue
		}
		if !hasOptionalSerial(v.Def, v.Value(buf)) {
			return model.NewError(model.ErrDigSigSerialKeyMissing, "AI "+ai+" must carry its optional serial component")
		}
	}
	return nil
}

func hasOptionalSerial(def *model.Definition, value string) bool {
	if len(def.Components) == 0 || !def.Components[len(def.Components)-1].Optional {
		return false
	}
	mandatory := 0
	for _, c := range def.Components[:len(def.Components)-1] {
		mandatory += c.Max
	}
	return len(value) > mandatory
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// checkUnknownAINotDLAttr implements UNKNOWN_AI_NOT_DL_ATTR: a vivified
// (dictionary-unknown) AI may not appear as a DL URI query attribute.
// isDLAttribute is per-value in spirit but the procedure only runs at all
// for assembled messages that came from a DL URI; for non-DL input there
// are no DL-attribute-positioned values and the check is a no-op.
func checkUnknownAINotDLAttr(buf string, values []model.AIValue, isDLURI bool) error {
	if !isDLURI {
		return nil
	}
	for _, v := range aiValues(values) {
		if v.DLPathOrder == model.DLPathAttribute && v.Def.Unknown {
			return model.NewError(model.ErrUnknownAINotDLAttr, "AI "+v.AI(buf))
		}
	}
	return nil
}
