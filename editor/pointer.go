package editor

import (
	"nodepad/diagram"
	"nodepad/geometry"
)

// PointerDown resolves a press in strict priority order: an active
// connector draft consumes the click first, then shape bodies
// (topmost-first), then ports, then connection curves, then empty canvas.
// Each branch is exclusive; ambiguity never raises an error.
func (e *Editor) PointerDown(button Button, x, y float64) {
	if button != ButtonLeft {
		return
	}
	p := geometry.Point{X: x, Y: y}
	e.pointer = p

	if draft, ok := e.focus.(focusConnectorDraft); ok {
		e.completeConnector(draft, p)
		return
	}
	if shape, ok := e.shapeAt(p); ok {
		e.pressShape(shape, p)
		return
	}
	if id, kind, ok := e.portAt(p); ok {
		e.startConnector(id, kind, p)
		return
	}
	if id, ok := e.connectionAt(p); ok {
		e.pressConnection(id, p)
		return
	}
	e.pressEmpty(p)
}

// PointerMove tracks the live pointer. An active drag follows it
// unconditionally: no collision avoidance, no bounds clamping.
func (e *Editor) PointerMove(x, y float64) {
	e.pointer = geometry.Point{X: x, Y: y}
	if f, ok := e.focus.(focusShapeDragging); ok {
		e.scene.MoveShape(f.id, e.pointer.Add(f.offset))
	}
}

// PointerUp ends an active drag; the shape stays selected.
func (e *Editor) PointerUp(button Button, x, y float64) {
	if button != ButtonLeft {
		return
	}
	if f, ok := e.focus.(focusShapeDragging); ok {
		e.focus = focusShapeSelected{id: f.id}
	}
}

// shapeAt returns the topmost shape whose body contains p. Shapes are
// stored in creation order, so the scan runs in reverse.
func (e *Editor) shapeAt(p geometry.Point) (diagram.Shape, bool) {
	shapes := e.scene.Shapes()
	for i := len(shapes) - 1; i >= 0; i-- {
		if geometry.RectAround(shapes[i].Center, e.shapeSize()).Contains(p) {
			return shapes[i], true
		}
	}
	return diagram.Shape{}, false
}

// portAt returns the first port within click radius of p, testing each
// shape's outgoing port before its incoming port.
func (e *Editor) portAt(p geometry.Point) (diagram.ShapeID, geometry.PortKind, bool) {
	radius := e.cfg.Interaction.PortClickRadius
	for _, shape := range e.scene.Shapes() {
		if e.portPoint(shape, geometry.PortOutgoing).Distance(p) <= radius {
			return shape.ID, geometry.PortOutgoing, true
		}
		if e.portPoint(shape, geometry.PortIncoming).Distance(p) <= radius {
			return shape.ID, geometry.PortIncoming, true
		}
	}
	return 0, 0, false
}

// connectionAt returns the first connection whose sampled curve passes
// within the hit radius of p.
func (e *Editor) connectionAt(p geometry.Point) (diagram.ConnectionID, bool) {
	for _, conn := range e.scene.Connections() {
		curve, ok := e.curveFor(conn)
		if !ok {
			continue
		}
		if curve.Hit(p, e.cfg.Connector.HitRadius, e.cfg.Connector.CurveSamples) {
			return conn.ID, true
		}
	}
	return 0, false
}

// pressShape selects the shape and decides between edit (double click) and
// drag (single click). Any active text draft commits first: dragging and
// editing are mutually exclusive, so the press always ends the edit.
func (e *Editor) pressShape(shape diagram.Shape, p geometry.Point) {
	if f, ok := e.focus.(focusShapeEditing); ok {
		e.commitDraft(f)
	}

	if e.isDoubleClick(p) {
		current, _ := e.scene.Shape(shape.ID)
		e.focus = focusShapeEditing{id: shape.ID, draft: []rune(current.Label)}
		e.clearPendingClick()
		return
	}

	e.focus = focusShapeDragging{id: shape.ID, offset: shape.Center.Sub(p)}
	e.recordPendingClick(p)
}

// startConnector begins a connector draft from a port. Selection and any
// text draft give way to the new gesture.
func (e *Editor) startConnector(id diagram.ShapeID, kind geometry.PortKind, p geometry.Point) {
	if f, ok := e.focus.(focusShapeEditing); ok {
		e.commitDraft(f)
	}
	e.focus = focusConnectorDraft{from: id, port: kind, preview: p}
	e.clearPendingClick()
}

// completeConnector lands an active draft. The first other shape with a
// port within click radius (incoming tested before outgoing) becomes the
// target; no match is a silent cancel. Self-loops and duplicates are
// silently rejected by the scene either way, the draft is consumed.
func (e *Editor) completeConnector(draft focusConnectorDraft, p geometry.Point) {
	radius := e.cfg.Interaction.PortClickRadius
	for _, shape := range e.scene.Shapes() {
		if shape.ID == draft.from {
			continue
		}
		inHit := e.portPoint(shape, geometry.PortIncoming).Distance(p) <= radius
		outHit := e.portPoint(shape, geometry.PortOutgoing).Distance(p) <= radius
		if inHit || outHit {
			e.scene.AddConnection(draft.from, shape.ID)
			break
		}
	}
	e.focus = focusIdle{}
	e.clearPendingClick()
}

// pressConnection selects a connection, committing any text draft first.
func (e *Editor) pressConnection(id diagram.ConnectionID, p geometry.Point) {
	if f, ok := e.focus.(focusShapeEditing); ok {
		e.commitDraft(f)
	}
	e.focus = focusConnectionSelected{id: id}
	e.recordPendingClick(p)
}

// pressEmpty clears selection; a double click on empty canvas creates a
// shape and opens it for editing immediately.
func (e *Editor) pressEmpty(p geometry.Point) {
	if f, ok := e.focus.(focusShapeEditing); ok {
		e.commitDraft(f)
	}

	if e.isDoubleClick(p) {
		id := e.scene.AddShape(p)
		e.focus = focusShapeEditing{id: id, draft: nil}
		e.clearPendingClick()
		return
	}

	e.focus = focusIdle{}
	e.recordPendingClick(p)
}
