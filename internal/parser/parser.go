// Package parser adapts natural-language and timestamp parsing libraries to
// the convert.Parser interface. The engine never sees a library API; swapping
// the implementation means swapping this package only.
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Natural interprets free-form date/time text: raw unix timestamps first,
// then machine-formatted dates, then English natural-language expressions.
// Formatted dates go before the language pass because the language rules
// happily match the bare clock time inside "2026-11-03 09:30" and would
// anchor it to today.
type Natural struct {
	w *when.Parser
}

// New builds a Natural parser with the English and common rule sets.
func New() *Natural {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Natural{w: w}
}

// Parse resolves text to an absolute instant. Relative expressions are
// anchored at now rendered in ref, so "tomorrow at 3pm" means 3pm on ref's
// calendar. Returns an error when no strategy can interpret the text.
func (p *Natural) Parse(text string, ref *time.Location, now time.Time) (time.Time, error) {
	text = strings.TrimSpace(text)
	if ref == nil {
		ref = time.Local
	}

	if t, ok := parseUnix(text); ok {
		return t, nil
	}

	if t, err := dateparse.ParseIn(text, ref); err == nil {
		return t, nil
	}

	base := now.In(ref)
	if r, err := p.w.Parse(text, base); err == nil && r != nil {
		return r.Time, nil
	}

	return time.Time{}, fmt.Errorf("cannot interpret %q", text)
}

// parseUnix recognizes bare integer timestamps: nine to eleven digits are
// seconds, twelve or thirteen are milliseconds. Shorter digit runs ("2026")
// are left for the date parsers.
func parseUnix(text string) (time.Time, bool) {
	if len(text) < 9 || len(text) > 13 {
		return time.Time{}, false
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	if len(text) >= 12 {
		return time.UnixMilli(v).UTC(), true
	}
	return time.Unix(v, 0).UTC(), true
}
