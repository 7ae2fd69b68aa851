// ABOUTME: easyjson encoding of an extracted element for snapshots and RPC replies
// ABOUTME: Writes kind, hint, text, and the element's page bounds

package dom

import "github.com/mailru/easyjson/jwriter"

// MarshalEasyJSON implements easyjson.Marshaler.
func (e Element) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"kind":`)
	out.String(e.Kind)
	out.RawString(`,"hint":`)
	out.String(e.Hint)
	out.RawString(`,"text":`)
	out.String(e.Text)
	out.RawString(`,"rect":{"left":`)
	out.Float64(e.Rect.Left)
	out.RawString(`,"top":`)
	out.Float64(e.Rect.Top)
	out.RawString(`,"right":`)
	out.Float64(e.Rect.Right)
	out.RawString(`,"bottom":`)
	out.Float64(e.Rect.Bottom)
	out.RawString(`}}`)
}
