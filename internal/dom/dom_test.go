// ABOUTME: Tests for HTML element extraction and geometry parsing
// ABOUTME: Covers clickable detection, hidden elements, iframe offsets, and malformed styles

package dom

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/mailru/easyjson"

	"github.com/mauromedda/hintmark/internal/log"
	"github.com/mauromedda/hintmark/pkg/hint"
)

const page = `<!doctype html>
<html><body>
  <a href="/home" data-hint="a" style="left:10px; top:4px; width:20px; height:2px">Home  page</a>
  <a data-hint="s" style="left:0;top:0;width:5;height:1">no href</a>
  <button data-hint="d" style="left: 40px; top: 4px; width: 8px; height: 1px" aria-label="Save it">S</button>
  <input type="hidden" data-hint="f" style="left:0;top:0;width:5px;height:1px">
  <input type="text" data-hint="g" placeholder="Search" style="left:0;top:8px;width:30px;height:1px">
  <div role="Button" data-hint="h" style="left:50px;top:8px;width:6px;height:1px">Go</div>
  <span onclick="x()" data-hint="j" style="left:60px;top:8px;width:3px;height:1px">x</span>
  <button disabled data-hint="k" style="left:0;top:0;width:5px;height:1px">off</button>
  <button data-hint="l" style="display:none;left:0;top:0;width:5px;height:1px">gone</button>
  <div hidden><button data-hint="m" style="left:0;top:0;width:5px;height:1px">gone</button></div>
  <button style="left:0;top:0;width:5px;height:1px">no hint</button>
  <button data-hint="n">no geometry</button>
  <button data-hint="o" style="left:0;top:0;width:0px;height:1px">zero</button>
  <div tabindex="-1" data-hint="p" style="left:0;top:0;width:5px;height:1px">unfocusable</div>
  <div tabindex="0" data-hint="q" style="left:70px;top:9px;width:4px;height:1px">focusable</div>
</body></html>`

func TestExtract_Clickables(t *testing.T) {
	t.Parallel()

	els, err := Extract(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	var hints []string
	for _, e := range els {
		hints = append(hints, e.Hint)
	}
	if got := strings.Join(hints, ","); got != "a,d,g,h,j,q" {
		t.Fatalf("hints = %s; want a,d,g,h,j,q", got)
	}

	kinds := map[string]string{}
	texts := map[string]string{}
	for _, e := range els {
		kinds[e.Hint] = e.Kind
		texts[e.Hint] = e.Text
	}
	if kinds["a"] != "a" || kinds["d"] != "button" || kinds["g"] != "input" || kinds["h"] != "button" || kinds["j"] != "span" {
		t.Errorf("kinds = %v", kinds)
	}
	if texts["a"] != "Home page" || texts["d"] != "Save it" || texts["g"] != "Search" {
		t.Errorf("texts = %v", texts)
	}
}

func TestExtract_Geometry(t *testing.T) {
	t.Parallel()

	els, err := Extract(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	a := els[0]
	if a.Rect != (hint.Rect{Left: 10, Top: 4, Right: 30, Bottom: 6}) {
		t.Errorf("Rect = %+v", a.Rect)
	}
	if a.Shape.Area != 40 {
		t.Errorf("Area = %v; want 40", a.Shape.Area)
	}
	want := hint.NonCoveredPoint{X: 10, Y: 5}
	if a.Shape.NonCoveredPoint != want {
		t.Errorf("NonCoveredPoint = %+v; want %+v", a.Shape.NonCoveredPoint, want)
	}
}

func TestExtract_IframeOffset(t *testing.T) {
	t.Parallel()

	doc := `<iframe style="left:100px;top:20px;width:50px;height:10px" srcdoc="
		<a href='#' data-hint='x' style='left:5px;top:2px;width:4px;height:2px'>in frame</a>
		<iframe style='left:10px;top:1px;width:20px;height:5px' srcdoc='&lt;button data-hint=&quot;y&quot; style=&quot;left:1px;top:1px;width:2px;height:1px&quot;&gt;b&lt;/button&gt;'></iframe>
	"></iframe>
	<iframe srcdoc="<button data-hint='z' style='left:0;top:0;width:1px;height:1px'>b</button>"></iframe>`

	els, err := Extract(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(els) != 2 {
		t.Fatalf("got %d elements; want 2 (frame without geometry skipped)", len(els))
	}

	x := els[0]
	if x.Shape.NonCoveredPoint.Offset != (hint.Offset{Left: 100, Top: 20}) {
		t.Errorf("x offset = %+v", x.Shape.NonCoveredPoint.Offset)
	}
	if x.Rect != (hint.Rect{Left: 105, Top: 22, Right: 109, Bottom: 24}) {
		t.Errorf("x rect = %+v", x.Rect)
	}

	y := els[1]
	if y.Hint != "y" || y.Shape.NonCoveredPoint.Offset != (hint.Offset{Left: 110, Top: 21}) {
		t.Errorf("y = %+v", y)
	}
}

func TestExtract_MalformedLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style string
		prop  string
	}{
		{"percentage", "left:10%;top:0;width:5px;height:1px", "left"},
		{"nan", "left:nan;top:0;width:5px;height:1px", "left"},
		{"inf", "left:0;top:inf;width:5px;height:1px", "top"},
		{"negative infinity", "left:0;top:0;width:-infinity;height:1px", "width"},
		{"nan px", "left:0;top:0;width:5px;height:NaNpx", "height"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `<button data-hint="e" style="` + tt.style + `">x</button>`
			els, err := Extract(strings.NewReader(doc))
			if err == nil {
				t.Fatalf("Extract = %+v; want error", els)
			}
			if !strings.Contains(err.Error(), `data-hint="e"`) || !strings.Contains(err.Error(), tt.prop) {
				t.Errorf("error %q should name element and %s", err, tt.prop)
			}
		})
	}
}

func TestHintCollisions(t *testing.T) {
	t.Parallel()

	els := func(hints ...string) []Element {
		out := make([]Element, len(hints))
		for i, h := range hints {
			out[i] = Element{Hint: h}
		}
		return out
	}

	tests := []struct {
		name  string
		hints []string
		want  [][2]string
	}{
		{"distinct", []string{"as", "ad", "f"}, nil},
		{"prefix", []string{"ab", "a", "s"}, [][2]string{{"a", "ab"}}},
		{"duplicate", []string{"d", "f", "d"}, [][2]string{{"d", "d"}}},
		{"chain", []string{"abc", "a", "ab"}, [][2]string{{"a", "ab"}, {"ab", "abc"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hintCollisions(els(tt.hints...))
			if !slices.Equal(got, tt.want) {
				t.Errorf("hintCollisions(%v) = %v; want %v", tt.hints, got, tt.want)
			}
		})
	}
}

// Not parallel: swaps the global log output.
func TestExtract_WarnsOnUnreachableHints(t *testing.T) {
	var buf bytes.Buffer
	prev := log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(prev) })

	doc := `<a href="#" data-hint="a" style="left:0;top:0;width:4;height:1">one</a>
<a href="#" data-hint="ab" style="left:10;top:0;width:4;height:1">two</a>`
	els, err := Extract(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(els) != 2 {
		t.Fatalf("got %d elements; want 2", len(els))
	}
	if got := buf.String(); !strings.Contains(got, `"a" is a prefix of "ab"`) {
		t.Errorf("log = %q; want prefix warning", got)
	}
}

func TestElement_MarshalEasyJSON(t *testing.T) {
	t.Parallel()

	el := Element{
		Kind: "button",
		Hint: "sd",
		Text: `Say "hi"`,
		Rect: hint.Rect{Left: 10, Top: 4, Right: 30.5, Bottom: 6},
	}
	data, err := easyjson.Marshal(el)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got struct {
		Kind string    `json:"kind"`
		Hint string    `json:"hint"`
		Text string    `json:"text"`
		Rect hint.Rect `json:"rect"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output %s is not JSON: %v", data, err)
	}
	if got.Kind != el.Kind || got.Hint != el.Hint || got.Text != el.Text {
		t.Errorf("decoded %+v from %s", got, data)
	}
	if got.Rect != el.Rect {
		t.Errorf("rect = %+v; want %+v", got.Rect, el.Rect)
	}
}

func TestParseStyle(t *testing.T) {
	t.Parallel()

	got := parseStyle(" Left : 4px;;TOP:2px; junk ; display: NONE")
	if got["left"] != "4px" || got["top"] != "2px" || got["display"] != "none" {
		t.Errorf("parseStyle = %v", got)
	}
	if _, ok := got["junk"]; ok {
		t.Error("declaration without colon kept")
	}
}
