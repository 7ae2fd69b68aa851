// ABOUTME: Router and hint-mode method handlers (layout, type, rotate, scroll, snapshot, ...)
// ABOUTME: Every handler operates on one session drawn on a headless canvas

package rpc

import (
	"github.com/mailru/easyjson"

	"github.com/mauromedda/hintmark/internal/session"
	"github.com/mauromedda/hintmark/pkg/hint"
	"github.com/mauromedda/hintmark/pkg/tui/canvas"
)

// HandlerFunc processes an RPC request's params and returns a Response.
type HandlerFunc func(params []byte) Response

// Router dispatches RPC requests to registered handlers by method name.
type Router struct {
	handlers map[string]HandlerFunc
}

// NewRouter creates a Router with an empty handler registry.
func NewRouter() *Router {
	return &Router{handlers: make(map[string]HandlerFunc)}
}

// Register associates a method name with a handler function.
func (r *Router) Register(method string, handler HandlerFunc) {
	r.handlers[method] = handler
}

// Handle dispatches a request to the registered handler, or returns
// a method-not-found error if no handler is registered.
func (r *Router) Handle(req Request) Response {
	h, ok := r.handlers[req.Method]
	if !ok {
		return Response{ID: req.ID, Error: NewMethodNotFoundError(req.Method)}
	}
	resp := h(req.Params)
	resp.ID = req.ID
	return resp
}

// decodeParams fills v from raw. Absent params leave v unchanged.
func decodeParams(raw []byte, v easyjson.Unmarshaler) *Error {
	if len(raw) == 0 {
		return nil
	}
	if err := easyjson.Unmarshal(raw, v); err != nil {
		return NewInvalidParamsError(err.Error())
	}
	return nil
}

// Hints serves one hint-mode session.
type Hints struct {
	sess   *session.Session
	canvas *canvas.Canvas

	cols, rows int
}

// NewHints wraps a session whose markers live on cv.
func NewHints(sess *session.Session, cv *canvas.Canvas) *Hints {
	return &Hints{sess: sess, canvas: cv}
}

// RegisterHandlers wires all hint-mode methods into the router.
func RegisterHandlers(r *Router, h *Hints) {
	r.Register(MethodLayout, h.layout)
	r.Register(MethodType, h.typeChar)
	r.Register(MethodBackspace, h.backspace)
	r.Register(MethodRotate, h.rotate)
	r.Register(MethodReset, h.reset)
	r.Register(MethodScroll, h.scroll)
	r.Register(MethodSnapshot, h.snapshot)
	r.Register(MethodStacks, h.stacks)
	r.Register(MethodRender, h.render)
}

func (h *Hints) layout(raw []byte) Response {
	p := layoutParams{Zoom: 1}
	if err := decodeParams(raw, &p); err != nil {
		return Response{Error: err}
	}
	if p.Cols <= 0 || p.Rows <= 0 || p.Zoom <= 0 {
		return Response{Error: NewInvalidParamsError("cols, rows and zoom must be positive")}
	}
	h.cols, h.rows = p.Cols, p.Rows
	h.sess.Layout(hint.Rect{
		Right:  float64(p.Cols) / p.Zoom,
		Bottom: float64(p.Rows) / p.Zoom,
	}, p.Zoom)
	return Response{Result: okResult{}}
}

func (h *Hints) typeChar(raw []byte) Response {
	var p typeParams
	if err := decodeParams(raw, &p); err != nil {
		return Response{Error: err}
	}
	if p.Ch == "" {
		return Response{Error: NewInvalidParamsError("ch is required")}
	}
	outcome, hit := h.sess.Type(p.Ch)
	res := outcomeResult{Outcome: outcome, Candidates: len(h.sess.Candidates())}
	if hit != nil {
		res.Activated = &hit.Element
	}
	return Response{Result: res}
}

func (h *Hints) backspace(_ []byte) Response {
	outcome := h.sess.Backspace()
	return Response{Result: outcomeResult{Outcome: outcome, Candidates: len(h.sess.Candidates())}}
}

func (h *Hints) rotate(raw []byte) Response {
	p := rotateParams{Forward: true}
	if err := decodeParams(raw, &p); err != nil {
		return Response{Error: err}
	}
	h.sess.Rotate(p.Forward)
	return Response{Result: okResult{}}
}

func (h *Hints) reset(_ []byte) Response {
	h.sess.Reset()
	return Response{Result: okResult{}}
}

func (h *Hints) scroll(raw []byte) Response {
	var p scrollParams
	if err := decodeParams(raw, &p); err != nil {
		return Response{Error: err}
	}
	h.sess.Scroll(p.DX, p.DY)
	return Response{Result: okResult{}}
}

func (h *Hints) snapshot(_ []byte) Response {
	return Response{Result: h.sess}
}

func (h *Hints) stacks(_ []byte) Response {
	return Response{Result: stacksResult(h.sess.Stacks())}
}

func (h *Hints) render(_ []byte) Response {
	if h.cols == 0 {
		return Response{Error: NewNotLaidOutError()}
	}
	return Response{Result: renderResult{Text: h.canvas.Render(h.cols, h.rows)}}
}
