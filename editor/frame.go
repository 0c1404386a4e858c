package editor

import (
	"nodepad/diagram"
	"nodepad/geometry"
)

// ShapeFrame is the render view of one shape.
type ShapeFrame struct {
	ID     diagram.ShapeID
	Center geometry.Point
	Size   geometry.Size
	// Label is the display text: the draft with a trailing cursor marker
	// while this shape is being edited, otherwise the committed label.
	Label    string
	Selected bool
	Dragging bool
	Editing  bool

	OutPort      geometry.Point
	InPort       geometry.Point
	OutPortHover bool
	InPortHover  bool
}

// ConnectionFrame is the render view of one connection, resolved to its
// four curve-defining points.
type ConnectionFrame struct {
	ID       diagram.ConnectionID
	From     diagram.ShapeID
	To       diagram.ShapeID
	Curve    geometry.Curve
	Selected bool
}

// DraftFrame is the in-progress connector preview, present only while a
// draft is active.
type DraftFrame struct {
	From  diagram.ShapeID
	Start geometry.Point
	End   geometry.Point
}

// Frame is a read-only snapshot for the rendering collaborator. It is
// rebuilt on demand and must not be mutated or retained across ticks.
type Frame struct {
	Shapes      []ShapeFrame
	Connections []ConnectionFrame
	Draft       *DraftFrame
}

// Tick advances per-frame state. It runs once per render tick, strictly
// after all events pending for that frame, and its only mutation is
// refreshing the connector preview endpoint from the latest pointer
// position.
func (e *Editor) Tick() {
	if f, ok := e.focus.(focusConnectorDraft); ok {
		f.preview = e.pointer
		e.focus = f
	}
}

// Frame builds the current snapshot.
func (e *Editor) Frame() Frame {
	size := e.shapeSize()
	hover := e.cfg.Interaction.PortHoverRadius

	selectedShape, shapeSelected := e.SelectedShape()
	draggingShape, dragging := e.DraggingShape()
	editingShape, draftText, editing := e.EditingShape()
	selectedConn, connSelected := e.SelectedConnection()

	frame := Frame{}

	for _, shape := range e.scene.Shapes() {
		out := e.portPoint(shape, geometry.PortOutgoing)
		in := e.portPoint(shape, geometry.PortIncoming)

		view := ShapeFrame{
			ID:           shape.ID,
			Center:       shape.Center,
			Size:         size,
			Label:        shape.Label,
			Selected:     shapeSelected && shape.ID == selectedShape,
			Dragging:     dragging && shape.ID == draggingShape,
			Editing:      editing && shape.ID == editingShape,
			OutPort:      out,
			InPort:       in,
			OutPortHover: out.Distance(e.pointer) <= hover,
			InPortHover:  in.Distance(e.pointer) <= hover,
		}
		if view.Editing {
			view.Label = draftText + "|"
		}
		frame.Shapes = append(frame.Shapes, view)
	}

	for _, conn := range e.scene.Connections() {
		curve, ok := e.curveFor(conn)
		if !ok {
			continue
		}
		frame.Connections = append(frame.Connections, ConnectionFrame{
			ID:       conn.ID,
			From:     conn.From,
			To:       conn.To,
			Curve:    curve,
			Selected: connSelected && conn.ID == selectedConn,
		})
	}

	if f, ok := e.focus.(focusConnectorDraft); ok {
		start := f.preview
		if shape, ok := e.scene.Shape(f.from); ok {
			start = e.portPoint(shape, f.port)
		}
		frame.Draft = &DraftFrame{From: f.from, Start: start, End: f.preview}
	}

	return frame
}
