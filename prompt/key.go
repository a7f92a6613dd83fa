package prompt

import "bufio"

// Named key events delivered to a prompt. Printable characters arrive
// with an empty Name and the Rune set.
const (
	KeyUp        = "up"
	KeyDown      = "down"
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyHome      = "home"
	KeyEnd       = "end"
	KeyTab       = "tab"
	KeySpace     = "space"
	KeyReturn    = "return"
	KeyEsc       = "esc"
	KeyCtrlC     = "ctrl+c"
	KeyBackspace = "backspace"
	KeyDelete    = "delete"
)

// Key is one decoded keyboard event.
type Key struct {
	Name string
	Rune rune
}

// readKey decodes the next key event from a raw-mode byte stream.
func readKey(br *bufio.Reader) (Key, error) {
	r, _, err := br.ReadRune()
	if err != nil {
		return Key{}, err
	}

	switch r {
	case 0x03:
		return Key{Name: KeyCtrlC}, nil
	case '\r', '\n':
		return Key{Name: KeyReturn}, nil
	case '\t':
		return Key{Name: KeyTab}, nil
	case ' ':
		return Key{Name: KeySpace}, nil
	case 0x08, 0x7f:
		return Key{Name: KeyBackspace}, nil
	case 0x1b:
		return readEscape(br)
	}
	return Key{Rune: r}, nil
}

// readEscape decodes the remainder of an escape sequence. A raw-mode
// terminal delivers a full sequence in one read, so a lone ESC with
// nothing buffered behind it is the escape key itself.
func readEscape(br *bufio.Reader) (Key, error) {
	if br.Buffered() == 0 {
		return Key{Name: KeyEsc}, nil
	}

	r, _, err := br.ReadRune()
	if err != nil {
		return Key{Name: KeyEsc}, nil
	}
	if r != '[' && r != 'O' {
		// Alt+key; not a binding we understand, report the key itself.
		return Key{Rune: r}, nil
	}

	r, _, err = br.ReadRune()
	if err != nil {
		return Key{Name: KeyEsc}, nil
	}
	switch r {
	case 'A':
		return Key{Name: KeyUp}, nil
	case 'B':
		return Key{Name: KeyDown}, nil
	case 'C':
		return Key{Name: KeyRight}, nil
	case 'D':
		return Key{Name: KeyLeft}, nil
	case 'H':
		return Key{Name: KeyHome}, nil
	case 'F':
		return Key{Name: KeyEnd}, nil
	case '1', '7':
		return consumeTilde(br, KeyHome), nil
	case '4', '8':
		return consumeTilde(br, KeyEnd), nil
	case '3':
		return consumeTilde(br, KeyDelete), nil
	}
	// Unknown sequence; swallow it rather than leak control bytes.
	return Key{}, nil
}

// consumeTilde eats the trailing '~' of vt-style sequences like ESC[1~.
func consumeTilde(br *bufio.Reader, name string) Key {
	if br.Buffered() > 0 {
		if r, _, _ := br.ReadRune(); r != '~' {
			br.UnreadRune()
		}
	}
	return Key{Name: name}
}
