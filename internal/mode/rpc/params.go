// ABOUTME: Parameter and result payloads for hint-mode RPC methods
// ABOUTME: Hand-written easyjson codecs in the style of generated ones

package rpc

import (
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"

	"github.com/mauromedda/hintmark/internal/dom"
	"github.com/mauromedda/hintmark/internal/session"
	"github.com/mauromedda/hintmark/pkg/hint"
)

// layoutParams is the payload of "layout".
type layoutParams struct {
	Cols int
	Rows int
	Zoom float64
}

// typeParams is the payload of "type".
type typeParams struct {
	Ch string
}

// rotateParams is the payload of "rotate". Forward defaults to true.
type rotateParams struct {
	Forward bool
}

// scrollParams is the payload of "scroll".
type scrollParams struct {
	DX float64
	DY float64
}

// decodeObject walks a JSON object, calling field for each key. Unknown
// keys must be skipped by field.
func decodeObject(in *jlexer.Lexer, field func(key string)) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		field(key)
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// UnmarshalEasyJSON implements easyjson.Unmarshaler.
func (p *layoutParams) UnmarshalEasyJSON(in *jlexer.Lexer) {
	decodeObject(in, func(key string) {
		switch key {
		case "cols":
			p.Cols = in.Int()
		case "rows":
			p.Rows = in.Int()
		case "zoom":
			p.Zoom = in.Float64()
		default:
			in.SkipRecursive()
		}
	})
}

// UnmarshalEasyJSON implements easyjson.Unmarshaler.
func (p *typeParams) UnmarshalEasyJSON(in *jlexer.Lexer) {
	decodeObject(in, func(key string) {
		if key == "ch" {
			p.Ch = in.String()
			return
		}
		in.SkipRecursive()
	})
}

// UnmarshalEasyJSON implements easyjson.Unmarshaler.
func (p *rotateParams) UnmarshalEasyJSON(in *jlexer.Lexer) {
	decodeObject(in, func(key string) {
		if key == "forward" {
			p.Forward = in.Bool()
			return
		}
		in.SkipRecursive()
	})
}

// UnmarshalEasyJSON implements easyjson.Unmarshaler.
func (p *scrollParams) UnmarshalEasyJSON(in *jlexer.Lexer) {
	decodeObject(in, func(key string) {
		switch key {
		case "dx":
			p.DX = in.Float64()
		case "dy":
			p.DY = in.Float64()
		default:
			in.SkipRecursive()
		}
	})
}

// okResult acknowledges methods without a payload.
type okResult struct{}

// MarshalEasyJSON implements easyjson.Marshaler.
func (okResult) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"ok":true}`)
}

// outcomeResult answers "type" and "backspace".
type outcomeResult struct {
	Outcome    session.Outcome
	Candidates int
	Activated  *dom.Element
}

// MarshalEasyJSON implements easyjson.Marshaler.
func (r outcomeResult) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"outcome":`)
	out.String(r.Outcome.String())
	out.RawString(`,"candidates":`)
	out.Int(r.Candidates)
	out.RawString(`,"activated":`)
	if r.Activated == nil {
		out.RawString("null")
	} else {
		r.Activated.MarshalEasyJSON(out)
	}
	out.RawByte('}')
}

// stacksResult answers "stacks" with the hints of each stack.
type stacksResult [][]*hint.Marker

// MarshalEasyJSON implements easyjson.Marshaler.
func (r stacksResult) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"stacks":[`)
	for i, stack := range r {
		if i > 0 {
			out.RawByte(',')
		}
		out.RawByte('[')
		for j, m := range stack {
			if j > 0 {
				out.RawByte(',')
			}
			out.String(m.Hint())
		}
		out.RawByte(']')
	}
	out.RawString("]}")
}

// renderResult answers "render" with the composited overlay.
type renderResult struct {
	Text string
}

// MarshalEasyJSON implements easyjson.Marshaler.
func (r renderResult) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"text":`)
	out.String(r.Text)
	out.RawByte('}')
}
