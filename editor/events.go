package editor

// Button identifies a pointer button. Only the left button drives gestures;
// events for other buttons are ignored.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Key identifies the non-printable keys the editor reacts to. Printable
// characters arrive through TextInput, not KeyDown.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
)

// String returns the key name for display.
func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	default:
		return "None"
	}
}
