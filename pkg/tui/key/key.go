// ABOUTME: Key type and parsers for terminal keyboard input and scripted key sequences
// ABOUTME: Name() yields the binding name used by keybinding configs ("space", "ctrl+r", "j")

package key

import (
	"strings"
	"unicode/utf8"
)

// Key represents a parsed keyboard input event.
type Key struct {
	Type  KeyType
	Rune  rune // For printable characters
	Alt   bool
	Ctrl  bool
	Shift bool
}

// KeyType enumerates the kinds of key events the hint overlay reacts to.
type KeyType int

const (
	KeyRune      KeyType = iota // Printable character
	KeyEnter                    // Enter / Return
	KeyTab                      // Tab
	KeyBackTab                  // Shift+Tab
	KeyBackspace                // Backspace / DEL (0x7F)
	KeyDelete                   // Delete key
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyEscape                   // Escape
	KeyCtrlC                    // Ctrl+C
	KeyCtrlR                    // Ctrl+R
	KeyUnknown                  // Unrecognized input
)

// ctrlKeys maps control byte values to their Key representations.
var ctrlKeys = map[byte]Key{
	0x03: {Type: KeyCtrlC, Ctrl: true},
	0x08: {Type: KeyBackspace},
	0x12: {Type: KeyCtrlR, Ctrl: true},
}

// ParseKey parses one raw terminal input event into a Key.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}
	if len(data) == 1 {
		return parseSingleByte(data[0])
	}
	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}
	r, _ := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

// Split parses a buffer that may hold several key events, such as a
// scripted key sequence, into individual keys. Escape sequences are
// recognised by longest known prefix; a lone ESC is an Escape key.
func Split(data string) []Key {
	var keys []Key
	for len(data) > 0 {
		if data[0] == 0x1b {
			n := escapeLen(data)
			keys = append(keys, ParseKey(data[:n]))
			data = data[n:]
			continue
		}
		_, size := utf8.DecodeRuneInString(data)
		keys = append(keys, ParseKey(data[:size]))
		data = data[size:]
	}
	return keys
}

// escapeLen returns the length of the escape sequence at the start of data.
func escapeLen(data string) int {
	for _, seq := range legacyOrder {
		if strings.HasPrefix(data, seq) {
			return len(seq)
		}
	}
	// Alt+letter
	if len(data) >= 2 && data[1] >= 0x20 && data[1] <= 0x7e && data[1] != '[' && data[1] != 'O' {
		return 2
	}
	return 1
}

func parseSingleByte(b byte) Key {
	switch {
	case b == 0x0d || b == 0x0a:
		return Key{Type: KeyEnter}
	case b == 0x09:
		return Key{Type: KeyTab}
	case b == 0x7f:
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return Key{Type: KeyEscape}
	case b >= 0x20 && b <= 0x7e:
		return Key{Type: KeyRune, Rune: rune(b)}
	}

	if k, ok := ctrlKeys[b]; ok {
		return k
	}
	return Key{Type: KeyUnknown}
}

func parseEscapeSequence(data string) Key {
	if k, ok := legacySequences[data]; ok {
		return k
	}
	if len(data) == 1 {
		return Key{Type: KeyEscape}
	}
	if len(data) == 2 && data[1] >= 0x20 && data[1] <= 0x7e {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}
	return Key{Type: KeyUnknown}
}

// keyTypeNames are the binding names for non-rune keys.
var keyTypeNames = map[KeyType]string{
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackTab:   "shift+tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyEscape:    "esc",
	KeyCtrlC:     "ctrl+c",
	KeyCtrlR:     "ctrl+r",
}

// Name returns the key in keybinding notation: "space" for the space bar,
// the rune itself for other printable keys, "alt+" prefixed when Alt is
// held, and fixed names such as "backspace" or "ctrl+r" otherwise.
func (k Key) Name() string {
	if k.Type != KeyRune {
		if name, ok := keyTypeNames[k.Type]; ok {
			return name
		}
		return ""
	}
	s := string(k.Rune)
	if k.Rune == ' ' {
		s = "space"
	}
	if k.Alt {
		s = "alt+" + s
	}
	return s
}

// String returns a human-readable representation of the Key.
func (k Key) String() string {
	if n := k.Name(); n != "" {
		return n
	}
	return "unknown"
}
