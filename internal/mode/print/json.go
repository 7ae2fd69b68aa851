// ABOUTME: JSON snapshot of a headless run written with easyjson's jwriter
// ABOUTME: One object per run: outcome, activated element, and every marker in element order

package print

import (
	"fmt"
	"io"

	"github.com/mailru/easyjson/jwriter"

	"github.com/mauromedda/hintmark/internal/session"
)

func writeJSON(w io.Writer, sess *session.Session, res *Result) error {
	var out jwriter.Writer
	out.RawByte('{')

	out.RawString(`"outcome":`)
	if res.Cancelled {
		out.String("cancelled")
	} else {
		out.String(res.Outcome.String())
	}

	out.RawString(`,"rejected":`)
	out.Int(res.Rejected)

	out.RawString(`,"activated":`)
	if res.Activated == nil {
		out.RawString("null")
	} else {
		res.Activated.MarshalEasyJSON(&out)
	}

	out.RawString(`,"markers":`)
	session.EncodeEntries(&out, sess.Entries())
	out.RawString("}\n")

	if out.Error != nil {
		return fmt.Errorf("encoding snapshot: %w", out.Error)
	}
	if _, err := out.DumpTo(w); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
