package main

// Visibility holds the toggle state of the session. It is mutated only
// through Apply.
type Visibility struct {
	alphabet *Alphabet
	letters  []bool
	Lines    bool
	Text     bool
	Alpha    bool
}

// NewVisibility returns a state with every flag on.
func NewVisibility(alphabet *Alphabet) *Visibility {
	v := &Visibility{
		alphabet: alphabet,
		letters:  make([]bool, alphabet.Len()),
		Lines:    true,
		Text:     true,
		Alpha:    true,
	}
	v.setAll(true)
	return v
}

// Letter reports whether a row is switched on.
func (v *Visibility) Letter(row int) bool {
	if row < 0 || row >= len(v.letters) {
		return false
	}
	return v.letters[row]
}

// Apply runs one command. It reports whether any flag changed.
func (v *Visibility) Apply(cmd Command) bool {
	switch cmd.Kind {
	case CmdToggleLines:
		v.Lines = !v.Lines
	case CmdToggleText:
		v.Text = !v.Text
	case CmdToggleAlpha:
		v.Alpha = !v.Alpha
	case CmdAllOff:
		return v.setAll(false)
	case CmdAllOn:
		return v.setAll(true)
	case CmdToggleLetter:
		row, ok := v.alphabet.Lookup(cmd.Letter)
		if !ok {
			return false
		}
		v.letters[row] = !v.letters[row]
	default:
		return false
	}
	return true
}

func (v *Visibility) setAll(on bool) bool {
	changed := false
	for i := range v.letters {
		if v.letters[i] != on {
			v.letters[i] = on
			changed = true
		}
	}
	return changed
}

// EnabledLetters counts the rows switched on.
func (v *Visibility) EnabledLetters() int {
	n := 0
	for _, on := range v.letters {
		if on {
			n++
		}
	}
	return n
}
