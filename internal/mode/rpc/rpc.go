// ABOUTME: RPC mode for external integrations such as a browser extension
// ABOUTME: JSONL-based protocol: one request per input line, one response per output line

package rpc

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jwriter"

	"github.com/mauromedda/hintmark/internal/dom"
	"github.com/mauromedda/hintmark/internal/log"
	"github.com/mauromedda/hintmark/internal/session"
	"github.com/mauromedda/hintmark/pkg/tui/canvas"
)

// Server handles RPC requests from an external client.
type Server struct {
	reader  *bufio.Scanner
	writer  io.Writer
	handler func(Request) Response
}

// NewServer creates an RPC server reading requests from r and writing
// responses to w.
func NewServer(r io.Reader, w io.Writer, handler func(Request) Response) *Server {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Server{
		reader:  scanner,
		writer:  w,
		handler: handler,
	}
}

// Run serves requests until the input ends.
func (s *Server) Run() error {
	for s.reader.Scan() {
		line := s.reader.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := easyjson.Unmarshal(line, &req); err != nil {
			if err := s.send(Response{Error: NewParseError(fmt.Sprintf("parse error: %v", err))}); err != nil {
				return err
			}
			continue
		}
		log.Debug("rpc %s %s", req.ID, req.Method)

		var resp Response
		if req.Method == "" {
			resp = Response{Error: NewInvalidRequestError("missing method")}
		} else {
			resp = s.handler(req)
		}
		resp.ID = req.ID
		if err := s.send(resp); err != nil {
			return err
		}
	}
	return s.reader.Err()
}

func (s *Server) send(resp Response) error {
	var out jwriter.Writer
	resp.MarshalEasyJSON(&out)
	out.RawByte('\n')
	if out.Error != nil {
		return fmt.Errorf("encoding response: %w", out.Error)
	}
	if _, err := out.DumpTo(s.writer); err != nil {
		return fmt.Errorf("writing response: %w", err)
	}
	return nil
}

// Serve runs hint mode over the JSONL protocol until r is exhausted. The
// overlay is kept on a headless canvas drawn with styles.
func Serve(r io.Reader, w io.Writer, elements []dom.Element, baseZ int, styles canvas.Styles) error {
	cv := canvas.New(styles)
	sess := session.New(elements, cv, baseZ)
	defer sess.Close()

	router := NewRouter()
	RegisterHandlers(router, NewHints(sess, cv))
	return NewServer(r, w, router.Handle).Run()
}
