// ABOUTME: JSONL request/response envelopes for driving hint mode from another process
// ABOUTME: Decoded with easyjson's jlexer and encoded with jwriter

package rpc

import (
	"bytes"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// Request is one line from the client.
type Request struct {
	ID     string
	Method string
	Params []byte // raw JSON, nil when absent
}

// Response is one line back to the client. Exactly one of Result and
// Error is set.
type Response struct {
	ID     string
	Result easyjson.Marshaler
	Error  *Error
}

// Error is a JSON-RPC style error object.
type Error struct {
	Code    int
	Message string
}

// Methods
const (
	MethodLayout    = "layout"
	MethodType      = "type"
	MethodBackspace = "backspace"
	MethodRotate    = "rotate"
	MethodReset     = "reset"
	MethodScroll    = "scroll"
	MethodSnapshot  = "snapshot"
	MethodStacks    = "stacks"
	MethodRender    = "render"
)

// UnmarshalEasyJSON implements easyjson.Unmarshaler.
func (r *Request) UnmarshalEasyJSON(in *jlexer.Lexer) {
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
		switch key {
		case "id":
			r.ID = in.String()
		case "method":
			r.Method = in.String()
		case "params":
			r.Params = bytes.Clone(in.Raw())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// MarshalEasyJSON implements easyjson.Marshaler.
func (r Response) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"id":`)
	out.String(r.ID)
	if r.Error != nil {
		out.RawString(`,"error":`)
		r.Error.MarshalEasyJSON(out)
	} else if r.Result != nil {
		out.RawString(`,"result":`)
		r.Result.MarshalEasyJSON(out)
	}
	out.RawByte('}')
}

// MarshalEasyJSON implements easyjson.Marshaler.
func (e *Error) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"code":`)
	out.Int(e.Code)
	out.RawString(`,"message":`)
	out.String(e.Message)
	out.RawByte('}')
}

func (e *Error) Error() string { return e.Message }
