// Package gs1 is the public surface of the GS1 syntax engine: one session
// object (Context) wrapping the AI dictionary, the element-string and
// Digital Link parsers, the validator pipeline and the scan-data codec.
//
// A Context corresponds to one `init`/`free` lifetime of spec.md §4.7: it
// owns a dictionary, a table of option toggles and a single currently-set
// message, however that message arrived (bracketed AI data, raw/unbracketed
// data, a Digital Link URI, or scanned barcode data). Every setter replaces
// the current message wholesale; there is no way to mutate part of it in
// place, matching the reference engine's "each Set call starts over"
// behaviour.
package gs1

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/gs1ident/gs1syntax/internal/dict"
	"github.com/gs1ident/gs1syntax/internal/dlink"
	"github.com/gs1ident/gs1syntax/internal/logging"
	"github.com/gs1ident/gs1syntax/internal/model"
	"github.com/gs1ident/gs1syntax/internal/validate"
)

// MaxDataStrLength is the largest canonical message buffer the engine will
// build, mirroring internal/element.MaxDataStrLength.
const MaxDataStrLength = 8191

// Context is a single syntax-engine session. It is not safe for concurrent
// use by multiple goroutines; callers needing concurrency should use one
// Context per goroutine, each built with New.
type Context struct {
	opts   model.Options
	table  *dict.Table
	vtable validate.Table
	sym    Symbology

	// buf/values are the canonical form of whatever message is currently
	// set, already passed through the validator pipeline. buf is empty and
	// values is nil when nothing has been set yet.
	buf    string
	values []model.AIValue

	// isDL records whether the current message came from (or represents)
	// a Digital Link URI, since the validator pipeline's
	// UnknownAINotDLAttr procedure and get_dl_uri's own attribute rules
	// only make sense in that context.
	isDL       bool
	dlFragment string
	dlIgnored  []string

	lastErr *model.Error
}

// Option configures a Context at construction time, applied in order by
// New. Grounded on the functional-options pattern golang-auth-go-gssapi
// uses for its credential-store extensions (CredStoreOption).
type Option func(*newConfig) error

type newConfig struct {
	table *dict.Table
}

// WithSyntaxDictionaryFile builds the Context's AI dictionary by loading a
// text-format syntax dictionary (spec.md §4.1.1/§6) from path, instead of
// the engine's built-in one.
func WithSyntaxDictionaryFile(path string) Option {
	return func(cfg *newConfig) error {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return loadSyntaxDictionary(cfg, f)
	}
}

// WithSyntaxDictionaryReader is WithSyntaxDictionaryFile for a caller that
// already has the syntax dictionary open or in memory.
func WithSyntaxDictionaryReader(r io.Reader) Option {
	return func(cfg *newConfig) error {
		return loadSyntaxDictionary(cfg, r)
	}
}

func loadSyntaxDictionary(cfg *newConfig, r io.Reader) error {
	raw, err := dict.LoadText(r)
	if err != nil {
		return err
	}
	tbl, err := dict.Build(raw)
	if err != nil {
		return err
	}
	cfg.table = tbl
	return nil
}

// New builds a Context, by default backed by the engine's built-in AI
// dictionary. Pass WithSyntaxDictionaryFile or WithSyntaxDictionaryReader
// to load a caller-supplied text-format syntax dictionary instead.
func New(opts ...Option) (*Context, error) {
	cfg := &newConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	tbl := cfg.table
	if tbl == nil {
		var err error
		tbl, err = dict.Default()
		if err != nil {
			return nil, err
		}
	}

	return &Context{
		opts:   model.DefaultOptions(),
		table:  tbl,
		vtable: validate.DefaultTable(),
	}, nil
}

// NewWithDictionary builds a Context from a caller-supplied syntax
// dictionary (spec.md §4.1's text format) already parsed into RawEntry
// values, e.g. by a caller that has its own text-dictionary loader. Most
// callers want New with WithSyntaxDictionaryFile instead.
func NewWithDictionary(raw []dict.RawEntry) (*Context, error) {
	tbl, err := dict.Build(raw)
	if err != nil {
		return nil, err
	}
	return &Context{
		opts:   model.DefaultOptions(),
		table:  tbl,
		vtable: validate.DefaultTable(),
	}, nil
}

// Free drops the Context's dictionary and current message. A Context left
// unfreed is simply garbage collected; Free exists for parity with the
// reference engine's explicit lifetime and for callers that want to drop
// large dictionaries deterministically.
func (c *Context) Free() {
	c.table = nil
	c.reset()
}

// reset clears the currently-set message, the state every setter (and a
// failed setter) leaves behind. It does not touch the last error (fail and
// its success counterpart record that), nor c.opts, c.table, c.vtable or
// c.sym, which persist across messages.
func (c *Context) reset() {
	c.buf = ""
	c.values = nil
	c.isDL = false
	c.dlFragment = ""
	c.dlIgnored = nil
}

// fail records err as the Context's last error, clears the current
// message (spec.md §7: "on any failure all transient state is reset") and
// returns err so callers can write `return c.fail(err)`.
func (c *Context) fail(err error) error {
	c.reset()
	if gerr, ok := err.(*model.Error); ok {
		c.lastErr = gerr
	} else if err != nil {
		c.lastErr = model.NewError(model.ErrNone, err.Error())
	}
	return err
}

// succeed clears the last error once a setter has committed a new message.
func (c *Context) succeed() {
	c.lastErr = nil
}

// commit validates buf/values once (spec.md's "the validator pipeline runs
// once per assembled message regardless of input surface"), then stores
// the result as the Context's current message.
func (c *Context) commit(buf string, values []model.AIValue, isDL bool, dl *dlink.Result) error {
	if err := validate.Run(buf, values, isDL, c.vtable); err != nil {
		return c.fail(err)
	}
	c.buf, c.values, c.isDL = buf, values, isDL
	if dl != nil {
		c.dlFragment = dl.Fragment
		c.dlIgnored = dl.IgnoredParams
	} else {
		c.dlFragment = ""
		c.dlIgnored = nil
	}
	c.succeed()
	return nil
}

// hasData reports whether a message is currently set.
func (c *Context) hasData() bool {
	return len(c.values) > 0 || c.buf != ""
}

// SetLogger redirects every package's diagnostic logging (dictionary
// build, parse and validation notices) to lg.
func SetLogger(lg *logrus.Logger) {
	logging.SetLogger(lg)
}
