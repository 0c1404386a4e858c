package editor

import (
	"unicode"

	"nodepad/diagram"
)

// KeyDown handles a non-printable key press. Enter, Escape and Delete act
// once per physical press (repeats suppressed); Backspace honors repeats
// so held-down deletion keeps erasing.
func (e *Editor) KeyDown(key Key, repeat bool) {
	switch f := e.focus.(type) {
	case focusConnectorDraft:
		if key == KeyEscape && !repeat {
			e.focus = focusIdle{}
		}

	case focusShapeEditing:
		switch key {
		case KeyEnter:
			if !repeat {
				e.commitDraft(f)
			}
		case KeyEscape:
			// Discard the draft; the stored label is untouched.
			if !repeat {
				e.focus = focusShapeSelected{id: f.id}
			}
		case KeyBackspace:
			if len(f.draft) > 0 {
				f.draft = f.draft[:len(f.draft)-1]
				e.focus = f
			}
		case KeyDelete:
			// Deliberately inert while editing.
		}

	case focusShapeSelected:
		e.deleteShapeKey(f.id, key, repeat)

	case focusShapeDragging:
		// A dragged shape is still the selected shape; deleting it
		// mid-drag also ends the drag.
		e.deleteShapeKey(f.id, key, repeat)

	case focusConnectionSelected:
		if key == KeyDelete && !repeat {
			e.scene.RemoveConnection(f.id)
			e.focus = focusIdle{}
		}
	}
}

// deleteShapeKey removes a selected (or dragged) shape on Delete, or on
// Backspace when configured as a delete key.
func (e *Editor) deleteShapeKey(id diagram.ShapeID, key Key, repeat bool) {
	if repeat {
		return
	}
	if key == KeyDelete || (key == KeyBackspace && e.cfg.Interaction.BackspaceDeletesShape) {
		e.scene.RemoveShape(id)
		e.focus = focusIdle{}
		e.clearPendingClick()
	}
}

// TextInput appends a printable character to the draft. Outside of an
// edit, and for control characters, input is ignored.
func (e *Editor) TextInput(r rune) {
	f, ok := e.focus.(focusShapeEditing)
	if !ok || unicode.IsControl(r) {
		return
	}
	f.draft = append(f.draft, r)
	e.focus = f
}
