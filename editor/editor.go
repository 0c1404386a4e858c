// Package editor is the interaction core of nodepad. It resolves raw
// pointer and keyboard events into scene mutations and focus transitions,
// and exposes a read-only frame snapshot for whichever collaborator does
// the actual drawing. It is single-threaded by contract: one event is
// handled to completion before the next arrives.
package editor

import (
	"time"

	"nodepad/config"
	"nodepad/diagram"
	"nodepad/geometry"
)

// Editor owns one scene and the interaction state around it. Multiple
// independent editors can coexist; nothing here is process-global.
type Editor struct {
	scene *diagram.Scene
	cfg   config.Config

	focus   focus
	pointer geometry.Point

	// Pending click, used only for double-click detection.
	pendingClick    bool
	pendingClickAt  time.Time
	pendingClickPos geometry.Point

	now func() time.Time
}

// New creates an editor with an empty scene.
func New(cfg config.Config) *Editor {
	return &Editor{
		scene: diagram.NewScene(),
		cfg:   cfg,
		focus: focusIdle{},
		now:   time.Now,
	}
}

// SetClock replaces the time source used for double-click detection.
// Tests use this to make gesture timing deterministic.
func (e *Editor) SetClock(now func() time.Time) {
	e.now = now
}

// Scene returns the scene this editor mutates.
func (e *Editor) Scene() *diagram.Scene {
	return e.scene
}

// Config returns the editor's configuration.
func (e *Editor) Config() config.Config {
	return e.cfg
}

// Pointer returns the last known pointer position.
func (e *Editor) Pointer() geometry.Point {
	return e.pointer
}

// SelectedShape returns the shape that currently holds selection, whether
// at rest, mid-drag or mid-edit.
func (e *Editor) SelectedShape() (diagram.ShapeID, bool) {
	switch f := e.focus.(type) {
	case focusShapeSelected:
		return f.id, true
	case focusShapeDragging:
		return f.id, true
	case focusShapeEditing:
		return f.id, true
	}
	return 0, false
}

// DraggingShape returns the shape being dragged, if any.
func (e *Editor) DraggingShape() (diagram.ShapeID, bool) {
	if f, ok := e.focus.(focusShapeDragging); ok {
		return f.id, true
	}
	return 0, false
}

// EditingShape returns the shape being edited and its current draft text.
func (e *Editor) EditingShape() (diagram.ShapeID, string, bool) {
	if f, ok := e.focus.(focusShapeEditing); ok {
		return f.id, string(f.draft), true
	}
	return 0, "", false
}

// SelectedConnection returns the selected connection, if any.
func (e *Editor) SelectedConnection() (diagram.ConnectionID, bool) {
	if f, ok := e.focus.(focusConnectionSelected); ok {
		return f.id, true
	}
	return 0, false
}

// ConnectorDraft returns the in-progress connector draft, if any.
func (e *Editor) ConnectorDraft() (diagram.ShapeID, geometry.PortKind, bool) {
	if f, ok := e.focus.(focusConnectorDraft); ok {
		return f.from, f.port, true
	}
	return 0, 0, false
}

// shapeSize returns the global shape size from configuration.
func (e *Editor) shapeSize() geometry.Size {
	return geometry.Size{W: e.cfg.Shape.Width, H: e.cfg.Shape.Height}
}

// portPoint returns the given port of a shape.
func (e *Editor) portPoint(shape diagram.Shape, kind geometry.PortKind) geometry.Point {
	return geometry.PortPoint(shape.Center, e.shapeSize(), kind, e.cfg.Connector.PortOffset)
}

// curveFor reconstructs a connection's curve from its endpoint shapes:
// outgoing port of From to incoming port of To. Reports false if either
// shape is gone, which the deletion cascade should make impossible.
func (e *Editor) curveFor(conn diagram.Connection) (geometry.Curve, bool) {
	from, ok := e.scene.Shape(conn.From)
	if !ok {
		return geometry.Curve{}, false
	}
	to, ok := e.scene.Shape(conn.To)
	if !ok {
		return geometry.Curve{}, false
	}
	start := e.portPoint(from, geometry.PortOutgoing)
	end := e.portPoint(to, geometry.PortIncoming)
	return geometry.ConnectorCurve(start, end, e.cfg.Connector.CurveOffset), true
}

// commitDraft stores the draft text on the shape and returns focus to plain
// selection. An empty draft commits as "no label".
func (e *Editor) commitDraft(f focusShapeEditing) {
	e.scene.SetShapeLabel(f.id, string(f.draft))
	e.focus = focusShapeSelected{id: f.id}
}

// recordPendingClick remembers this click for double-click pairing.
func (e *Editor) recordPendingClick(p geometry.Point) {
	e.pendingClick = true
	e.pendingClickAt = e.now()
	e.pendingClickPos = p
}

// clearPendingClick forgets the pending click after a resolved gesture.
func (e *Editor) clearPendingClick() {
	e.pendingClick = false
}

// isDoubleClick reports whether a click at p pairs with the pending click:
// within the delay window and within the distance threshold, both required.
func (e *Editor) isDoubleClick(p geometry.Point) bool {
	if !e.pendingClick {
		return false
	}
	if e.now().Sub(e.pendingClickAt) > e.cfg.Interaction.DoubleClickDelay {
		return false
	}
	return p.Distance(e.pendingClickPos) <= e.cfg.Interaction.DoubleClickDistance
}
