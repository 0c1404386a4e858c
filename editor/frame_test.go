package editor

import (
	"testing"

	"nodepad/geometry"
)

func TestFrameShowsCursorMarkerWhileEditing(t *testing.T) {
	e, clock := newTestEditor()
	doubleClick(e, clock, 100, 100)
	e.TextInput('H')
	e.TextInput('i')

	frame := e.Frame()
	if len(frame.Shapes) != 1 {
		t.Fatalf("Expected 1 shape in frame, got %d", len(frame.Shapes))
	}
	shape := frame.Shapes[0]
	if shape.Label != "Hi|" {
		t.Errorf("Expected draft with cursor marker 'Hi|', got %q", shape.Label)
	}
	if !shape.Editing || !shape.Selected {
		t.Errorf("Expected editing+selected flags, got editing=%v selected=%v", shape.Editing, shape.Selected)
	}

	// After committing, the marker disappears.
	e.KeyDown(KeyEnter, false)
	frame = e.Frame()
	if frame.Shapes[0].Label != "Hi" {
		t.Errorf("Expected committed label 'Hi', got %q", frame.Shapes[0].Label)
	}
	if frame.Shapes[0].Editing {
		t.Error("Editing flag should clear after commit")
	}
}

func TestFrameFlagsDuringDrag(t *testing.T) {
	e, _ := newTestEditor()
	addShape(e, 100, 100)
	addShape(e, 500, 100)

	e.PointerDown(ButtonLeft, 100, 100)

	frame := e.Frame()
	if !frame.Shapes[0].Dragging || !frame.Shapes[0].Selected {
		t.Error("Pressed shape should be dragging and selected")
	}
	if frame.Shapes[1].Dragging || frame.Shapes[1].Selected {
		t.Error("Other shape should carry no flags")
	}
}

func TestFrameDraftPreviewFollowsPointerAfterTick(t *testing.T) {
	e, _ := newTestEditor()
	a := addShape(e, 100, 100)
	addShape(e, 300, 100)

	click(e, 55, 135)
	e.PointerMove(200, 200)
	e.Tick()

	frame := e.Frame()
	if frame.Draft == nil {
		t.Fatal("Expected a draft preview in the frame")
	}
	if frame.Draft.From != a {
		t.Errorf("Draft should originate from shape %d, got %d", a, frame.Draft.From)
	}
	if frame.Draft.Start != (geometry.Point{X: 55, Y: 135}) {
		t.Errorf("Draft start should pin to the port, got %v", frame.Draft.Start)
	}
	if frame.Draft.End != (geometry.Point{X: 200, Y: 200}) {
		t.Errorf("Draft end should follow the pointer, got %v", frame.Draft.End)
	}
}

func TestFrameHasNoDraftWhenIdle(t *testing.T) {
	e, _ := newTestEditor()
	addShape(e, 100, 100)

	if frame := e.Frame(); frame.Draft != nil {
		t.Error("Idle frame should carry no draft preview")
	}
}

func TestFramePortHover(t *testing.T) {
	e, _ := newTestEditor()
	addShape(e, 100, 100)

	e.PointerMove(55, 135) // on the outgoing port
	frame := e.Frame()

	shape := frame.Shapes[0]
	if !shape.OutPortHover {
		t.Error("Outgoing port should register hover")
	}
	if shape.InPortHover {
		t.Error("Incoming port is 70 units away and should not hover")
	}
	if shape.OutPort != (geometry.Point{X: 55, Y: 135}) {
		t.Errorf("Unexpected outgoing port position: %v", shape.OutPort)
	}
	if shape.InPort != (geometry.Point{X: 55, Y: 65}) {
		t.Errorf("Unexpected incoming port position: %v", shape.InPort)
	}
}

func TestFrameResolvesConnectionCurves(t *testing.T) {
	e, _ := newTestEditor()
	a := addShape(e, 100, 100)
	b := addShape(e, 500, 100)
	id, _ := e.Scene().AddConnection(a, b)

	frame := e.Frame()
	if len(frame.Connections) != 1 {
		t.Fatalf("Expected 1 connection in frame, got %d", len(frame.Connections))
	}
	conn := frame.Connections[0]
	if conn.ID != id || conn.From != a || conn.To != b {
		t.Errorf("Unexpected connection identity: %+v", conn)
	}
	if conn.Curve.P0 != (geometry.Point{X: 55, Y: 135}) {
		t.Errorf("Curve should anchor at A's outgoing port, got %v", conn.Curve.P0)
	}
	if conn.Curve.P3 != (geometry.Point{X: 455, Y: 65}) {
		t.Errorf("Curve should anchor at B's incoming port, got %v", conn.Curve.P3)
	}
	if conn.Selected {
		t.Error("Connection should not start selected")
	}

	// Select it and check the flag.
	e.PointerDown(ButtonLeft, 255, 100)
	frame = e.Frame()
	if !frame.Connections[0].Selected {
		t.Error("Selected flag should be set after clicking the curve")
	}
}

func TestTickWithoutDraftChangesNothing(t *testing.T) {
	e, _ := newTestEditor()
	id := addShape(e, 100, 100)
	click(e, 100, 100)

	e.PointerMove(400, 400)
	e.Tick()

	if shape, _ := e.Scene().Shape(id); shape.Center != (geometry.Point{X: 100, Y: 100}) {
		t.Errorf("Tick moved a shape: %v", shape.Center)
	}
	if got, ok := e.SelectedShape(); !ok || got != id {
		t.Error("Tick should not disturb selection")
	}
}
