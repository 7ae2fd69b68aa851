// ABOUTME: easyjson encoding of session and marker state
// ABOUTME: Shared by the print snapshot and RPC replies

package session

import (
	"github.com/mailru/easyjson/jwriter"

	"github.com/mauromedda/hintmark/pkg/hint"
)

// MarshalEasyJSON implements easyjson.Marshaler: typed key count,
// remaining candidates, and every marker in element order.
func (s *Session) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"typed":`)
	out.Int(s.Typed())
	out.RawString(`,"candidates":`)
	out.Int(len(s.visibleIndexes()))
	out.RawString(`,"markers":`)
	EncodeEntries(out, s.entries)
	out.RawByte('}')
}

// EncodeEntries writes entries as a JSON array.
func EncodeEntries(out *jwriter.Writer, entries []Entry) {
	out.RawByte('[')
	for i, e := range entries {
		if i > 0 {
			out.RawByte(',')
		}
		e.MarshalEasyJSON(out)
	}
	out.RawByte(']')
}

// MarshalEasyJSON implements easyjson.Marshaler.
func (e Entry) MarshalEasyJSON(out *jwriter.Writer) {
	m := e.Marker
	out.RawString(`{"hint":`)
	out.String(m.Hint())
	out.RawString(`,"kind":`)
	out.String(m.Kind())
	out.RawString(`,"text":`)
	out.String(e.Element.Text)
	out.RawString(`,"hintIndex":`)
	out.Int(m.HintIndex())
	out.RawString(`,"visible":`)
	out.Bool(m.Visible())
	out.RawString(`,"matched":`)
	out.Bool(m.Matched())
	out.RawString(`,"z":`)
	out.Int(m.ZOrder())
	out.RawString(`,"position":`)
	encodeRect(out, m.Position())
	out.RawByte('}')
}

func encodeRect(out *jwriter.Writer, r hint.Rect) {
	out.RawString(`{"left":`)
	out.Float64(r.Left)
	out.RawString(`,"top":`)
	out.Float64(r.Top)
	out.RawString(`,"right":`)
	out.Float64(r.Right)
	out.RawString(`,"bottom":`)
	out.Float64(r.Bottom)
	out.RawByte('}')
}
