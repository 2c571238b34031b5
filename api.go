package gs1

import (
	"strings"

	"github.com/gs1ident/gs1syntax/internal/dlink"
	"github.com/gs1ident/gs1syntax/internal/element"
	"github.com/gs1ident/gs1syntax/internal/model"
	"github.com/gs1ident/gs1syntax/internal/scancode"
)

// SetAIDataStr sets the current message from bracketed AI data, e.g.
// "(01)09506000134352(10)ABC123". On success the message is available
// through DataStr, AIDataStr, GetDLURI and GetScanData alike.
func (c *Context) SetAIDataStr(data string) error {
	if data == "" {
		return c.fail(model.NewError(model.ErrAIDataEmpty, ""))
	}
	if c.opts.AddCheckDigit {
		data = addCheckDigits(data, c.table)
	}
	buf, values, err := element.ParseBracketed(data, c.table, c.opts)
	if err != nil {
		return c.fail(err)
	}
	return c.commit(buf, values, false, nil)
}

// AIDataStr renders the current message in bracketed form. It returns
// ("", false) when no message is set, or when the current message is a
// plain (non-AI) scan-data payload with no underlying AI structure.
func (c *Context) AIDataStr() (string, bool) {
	if !c.hasData() || len(c.values) == 0 {
		return "", false
	}
	return element.GenerateBracketed(c.buf, c.values), true
}

// SetDataStr sets the current message from any of: a raw/unbracketed
// message (the canonical "^"-delimited form a barcode reader's AI-mode
// payload already uses, with "|" separating a composite component), or a
// GS1 Digital Link URI (recognised by its "http://"/"https://" scheme).
// Bracketed AI data is not accepted here; use SetAIDataStr for that.
func (c *Context) SetDataStr(data string) error {
	if data == "" {
		return c.fail(model.NewError(model.ErrAIDataEmpty, ""))
	}
	if strings.HasPrefix(data, "http://") || strings.HasPrefix(data, "https://") {
		return c.setFromDLURI(data)
	}
	values, err := element.ParseUnbracketed(data, c.table, c.opts)
	if err != nil {
		return c.fail(err)
	}
	return c.commit(data, values, false, nil)
}

// DataStr returns the current message's canonical raw/unbracketed form.
func (c *Context) DataStr() (string, bool) {
	if !c.hasData() {
		return "", false
	}
	return c.buf, true
}

func (c *Context) setFromDLURI(uri string) error {
	res, err := dlink.ParseDL(uri, c.table, c.opts)
	if err != nil {
		return c.fail(err)
	}
	return c.commit(res.Buffer, res.Values, true, res)
}

// GetDLURI renders the current message as a GS1 Digital Link URI. stem is
// the scheme and domain to build on (e.g. "https://id.gs1.org"); pass ""
// to reuse the default "https://id.gs1.org".
func (c *Context) GetDLURI(stem string) (string, error) {
	if !c.hasData() {
		return "", c.fail(model.NewError(model.ErrContextNoDataSet, ""))
	}
	uri, err := dlink.GenerateDL(c.buf, c.values, c.table, stem)
	if err != nil {
		return "", c.fail(err)
	}
	return uri, nil
}

// SetScanData sets the current message from raw scan data: the bytes a
// barcode reader emits, beginning with a three-character AIM symbology
// identifier (spec.md §4.6.2). The identifier also determines Sym().
func (c *Context) SetScanData(scanData string) error {
	res, err := scancode.Parse(scanData, c.table, c.opts)
	if err != nil {
		return c.fail(err)
	}
	c.sym = res.Symbology
	if res.DL != nil {
		return c.commit(res.Buffer, res.Values, true, res.DL)
	}
	return c.commit(res.Buffer, res.Values, false, nil)
}

// GetScanData renders the current message as a barcode reader would emit
// it for the symbology selected by SetSym.
func (c *Context) GetScanData() (string, error) {
	if !c.hasData() {
		return "", c.fail(model.NewError(model.ErrContextNoDataSet, ""))
	}
	out, err := scancode.Generate(c.sym, c.buf, c.values)
	if err != nil {
		return "", c.fail(err)
	}
	return out, nil
}

// GetHRI renders the current message as human-readable interpretation
// lines, one per AI value, in "(AI) value" form, or "AI title: value" when
// IncludeDataTitlesInHRI is set.
func (c *Context) GetHRI() []string {
	if !c.hasData() {
		return nil
	}
	var lines []string
	for _, v := range c.values {
		if v.Kind != model.KindAIValue {
			continue
		}
		ai := v.AI(c.buf)
		line := "(" + ai + ") " + v.Value(c.buf)
		if c.opts.IncludeDataTitlesInHRI {
			if def, ok := c.table.ByAI(ai); ok && def.Title != "" {
				line = ai + " " + def.Title + ": " + v.Value(c.buf)
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// DLIgnoredQueryParams returns the non-numeric-keyed query parameters the
// most recent Digital Link URI carried but did not understand as AI data
// (spec.md §4.4.1 step 8's "dl_ignored"), verbatim as "key=value" or bare
// "key" tokens. It is empty when the current message did not come from a
// DL URI, or came from one with no ignored parameters.
func (c *Context) DLIgnoredQueryParams() []string {
	return c.dlIgnored
}

// DLFragment returns the URI fragment ("#...") carried by the most recent
// Digital Link URI, if any.
func (c *Context) DLFragment() (string, bool) {
	if !c.isDL || c.dlFragment == "" {
		return "", false
	}
	return c.dlFragment, true
}

// ErrMsg returns the human-readable message of the last failed operation,
// or "" if the most recent operation succeeded.
func (c *Context) ErrMsg() string {
	if c.lastErr == nil {
		return ""
	}
	return c.lastErr.Message
}

// ErrMarkup returns the "(AI)<before>|<bad>|<after>" positional markup of
// the last failed operation, when the failure was a per-component linter
// failure with a known offset; "" otherwise.
func (c *Context) ErrMarkup() string {
	if c.lastErr == nil {
		return ""
	}
	return c.lastErr.Markup
}
