package editor

import (
	"nodepad/diagram"
	"nodepad/geometry"
)

// focus is the editor's single point of attention. Exactly one variant is
// active at any instant, so combinations like "dragging while editing"
// cannot be represented at all. Dragging and editing each imply selection
// of the same shape.
type focus interface {
	isFocus()
}

// focusIdle: nothing selected, dragged, edited or drafted.
type focusIdle struct{}

// focusShapeSelected: a shape is selected and at rest.
type focusShapeSelected struct {
	id diagram.ShapeID
}

// focusShapeDragging: the selected shape follows the pointer. offset is the
// vector from the press point to the shape center, captured at press time.
type focusShapeDragging struct {
	id     diagram.ShapeID
	offset geometry.Point
}

// focusShapeEditing: the selected shape's label is being edited in draft.
// The shape's stored label is untouched until the draft commits.
type focusShapeEditing struct {
	id    diagram.ShapeID
	draft []rune
}

// focusConnectionSelected: a connection is selected (mutually exclusive
// with shape selection).
type focusConnectionSelected struct {
	id diagram.ConnectionID
}

// focusConnectorDraft: a new connector is being dragged out of a port.
// preview is the live endpoint shown to the renderer, refreshed on Tick.
type focusConnectorDraft struct {
	from    diagram.ShapeID
	port    geometry.PortKind
	preview geometry.Point
}

func (focusIdle) isFocus()               {}
func (focusShapeSelected) isFocus()      {}
func (focusShapeDragging) isFocus()      {}
func (focusShapeEditing) isFocus()       {}
func (focusConnectionSelected) isFocus() {}
func (focusConnectorDraft) isFocus()     {}
