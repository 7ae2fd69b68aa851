// ABOUTME: Headless hint mode: replays a key script against a session and prints the result
// ABOUTME: Text output is the composited overlay plus a status line; JSON is a marker snapshot

package print

import (
	"fmt"
	"io"

	"github.com/mauromedda/hintmark/internal/config"
	"github.com/mauromedda/hintmark/internal/dom"
	"github.com/mauromedda/hintmark/internal/keybindings"
	"github.com/mauromedda/hintmark/internal/log"
	"github.com/mauromedda/hintmark/internal/session"
	"github.com/mauromedda/hintmark/internal/theme"
	"github.com/mauromedda/hintmark/pkg/hint"
	"github.com/mauromedda/hintmark/pkg/tui/canvas"
	"github.com/mauromedda/hintmark/pkg/tui/key"
)

// Config configures a headless run.
type Config struct {
	Format string // "text" (default) or "json"
	Keys   string // raw key script, e.g. "d\x7fj"
	Cols   int
	Rows   int
	Zoom   float64
	BaseZ  int
	Styles theme.Styles
}

// Result is what the key script led to.
type Result struct {
	Outcome   session.Outcome
	Cancelled bool
	Rejected  int
	Activated *dom.Element
}

// Run builds a session for elements, feeds it cfg.Keys, and writes the
// final state to w in cfg.Format.
func Run(w io.Writer, cfg Config, keys *keybindings.Manager, elements []dom.Element) (*Result, error) {
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Format != "text" && cfg.Format != "json" {
		return nil, fmt.Errorf("unknown output format %q", cfg.Format)
	}
	if cfg.Cols <= 0 || cfg.Rows <= 0 {
		return nil, fmt.Errorf("invalid viewport %dx%d", cfg.Cols, cfg.Rows)
	}
	if cfg.Zoom <= 0 {
		cfg.Zoom = 1
	}

	cv := canvas.New(cfg.Styles.Canvas)
	sess := session.New(elements, cv, cfg.BaseZ)
	defer sess.Close()
	sess.Layout(viewport(cfg), cfg.Zoom)

	res := replay(sess, keys, key.Split(cfg.Keys))

	if cfg.Format == "json" {
		return res, writeJSON(w, sess, res)
	}
	return res, writeText(w, cv, cfg, res, len(sess.Candidates()))
}

// viewport is the page area covered by the overlay; zoom shrinks it.
func viewport(cfg Config) hint.Rect {
	return hint.Rect{
		Right:  float64(cfg.Cols) / cfg.Zoom,
		Bottom: float64(cfg.Rows) / cfg.Zoom,
	}
}

func replay(sess *session.Session, keys *keybindings.Manager, script []key.Key) *Result {
	res := &Result{Outcome: session.Pending}
	for _, k := range script {
		action := keys.ActionForKey(k)
		switch {
		case action == config.ActionCancel:
			res.Cancelled = true
			return res
		case action == config.ActionHelp:
			log.Debug("help is interactive only")
			continue
		case action != "":
			sess.Apply(action)
			res.Outcome = session.Pending
			continue
		}

		if k.Type != key.KeyRune || k.Alt {
			log.Debug("ignoring key %s", k)
			continue
		}
		outcome, hit := sess.Type(string(k.Rune))
		if outcome == session.Rejected {
			res.Rejected++
			continue
		}
		res.Outcome = outcome
		if outcome == session.Activated {
			res.Activated = &hit.Element
			return res
		}
	}
	return res
}

func writeText(w io.Writer, cv *canvas.Canvas, cfg Config, res *Result, candidates int) error {
	if _, err := io.WriteString(w, cv.Render(cfg.Cols, cfg.Rows)+"\n"); err != nil {
		return fmt.Errorf("writing overlay: %w", err)
	}
	if _, err := io.WriteString(w, cfg.Styles.Status.Render(status(res, candidates))+"\n"); err != nil {
		return fmt.Errorf("writing status: %w", err)
	}
	return nil
}

func status(res *Result, candidates int) string {
	switch {
	case res.Cancelled:
		return "cancelled"
	case res.Activated != nil:
		el := res.Activated
		return fmt.Sprintf("activated <%s> %q [%s]", el.Kind, el.Text, el.Hint)
	default:
		return fmt.Sprintf("pending: %d candidates", candidates)
	}
}
