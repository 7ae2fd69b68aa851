// ABOUTME: Legacy CSI and SS3 escape sequences for arrows, delete, and backtab
// ABOUTME: legacyOrder lists the same sequences for prefix scanning in Split

package key

var legacySequences = map[string]Key{
	// CSI
	"\x1b[A":  {Type: KeyUp},
	"\x1b[B":  {Type: KeyDown},
	"\x1b[C":  {Type: KeyRight},
	"\x1b[D":  {Type: KeyLeft},
	"\x1b[3~": {Type: KeyDelete},
	"\x1b[Z":  {Type: KeyBackTab, Shift: true},

	// SS3 (application cursor mode)
	"\x1bOA": {Type: KeyUp},
	"\x1bOB": {Type: KeyDown},
	"\x1bOC": {Type: KeyRight},
	"\x1bOD": {Type: KeyLeft},
}

// legacyOrder is longest first so prefix scanning never stops early.
var legacyOrder = []string{
	"\x1b[3~",
	"\x1b[A", "\x1b[B", "\x1b[C", "\x1b[D", "\x1b[Z",
	"\x1bOA", "\x1bOB", "\x1bOC", "\x1bOD",
}
