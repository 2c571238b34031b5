// Package linter implements the pluggable per-component value validators
// of spec.md §4.2: a pure function (value string) -> (*model.LintFailure),
// named and resolved at AI-table build time the same way
// golang-auth-go-gssapi resolves a provider name to a constructor — a
// mutex-guarded name->function map populated by each linter family's
// init(), looked up by internal/dict when it builds a Definition's
// Component list from a name list.
package linter

import (
	"sync"

	"github.com/gs1ident/gs1syntax/internal/model"
)

var registry struct {
	sync.Mutex
	fns map[string]model.LinterFunc
}

func init() {
	registry.fns = make(map[string]model.LinterFunc)
	registerChecksumLinters()
	registerISOLinters()
	registerDateTimeLinters()
	registerCouponLinters()
	registerIBANLinters()
	registerGeoLinters()
	registerMiscLinters()
}

// Register associates a linter function with a unique name. Later calls
// with the same name replace the earlier registration, matching
// go-gssapi's RegisterProvider semantics.
func Register(name string, fn model.LinterFunc) {
	registry.Lock()
	defer registry.Unlock()
	registry.fns[name] = fn
}

// Lookup resolves a linter name to its function. The boolean result is
// false when name is not a member of the closed taxonomy; callers (the AI
// table builder) must treat that as ErrSyntaxDictionaryUnknownLinter /
// ErrSyntaxDictionaryUnknownLinter rather than silently ignoring it.
func Lookup(name string) (model.LinterFunc, bool) {
	registry.Lock()
	defer registry.Unlock()
	fn, ok := registry.fns[name]
	return fn, ok
}

// Names returns every registered linter name, sorted by the caller if
// needed; used by tests asserting the taxonomy is exactly what spec.md
// enumerates.
func Names() []string {
	registry.Lock()
	defer registry.Unlock()
	names := make([]string, 0, len(registry.fns))
	for n := range registry.fns {
		names = append(names, n)
	}
	return names
}

func fail(kind model.ErrKind, pos, length int) *model.LintFailure {
	return &model.LintFailure{Kind: kind, ErrPos: pos, ErrLen: length}
}
