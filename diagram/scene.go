package diagram

import (
	"slices"

	"nodepad/geometry"
)

// Scene holds the shapes and connections of one diagram. Shapes keep their
// creation order, which the editor relies on for topmost-first hit testing.
// All mutations are synchronous; Scene is not safe for concurrent use and
// assumes a single caller between event deliveries.
type Scene struct {
	shapes      []Shape
	connections []Connection

	nextShapeID      ShapeID
	nextConnectionID ConnectionID
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		nextShapeID:      1,
		nextConnectionID: 1,
	}
}

// AddShape appends a new unlabeled shape at the given center and returns
// its id.
func (s *Scene) AddShape(center geometry.Point) ShapeID {
	id := s.nextShapeID
	s.nextShapeID++
	s.shapes = append(s.shapes, Shape{ID: id, Center: center})
	return id
}

// Shape returns the shape with the given id.
func (s *Scene) Shape(id ShapeID) (Shape, bool) {
	for _, shape := range s.shapes {
		if shape.ID == id {
			return shape, true
		}
	}
	return Shape{}, false
}

// Shapes returns the shapes in creation order. The returned slice is the
// scene's own storage and must not be mutated by the caller.
func (s *Scene) Shapes() []Shape {
	return s.shapes
}

// RemoveShape deletes the shape and every connection that references it.
// Unknown ids are a no-op.
func (s *Scene) RemoveShape(id ShapeID) {
	for i, shape := range s.shapes {
		if shape.ID == id {
			s.shapes = slices.Delete(s.shapes, i, i+1)
			break
		}
	}

	kept := s.connections[:0]
	for _, conn := range s.connections {
		if conn.From != id && conn.To != id {
			kept = append(kept, conn)
		}
	}
	s.connections = kept
}

// MoveShape sets the shape's center. Unknown ids are a no-op; the editor
// clears drag references at deletion time, so this guard is defensive only.
func (s *Scene) MoveShape(id ShapeID, center geometry.Point) {
	for i := range s.shapes {
		if s.shapes[i].ID == id {
			s.shapes[i].Center = center
			return
		}
	}
}

// SetShapeLabel stores the shape's label. An empty string is the canonical
// "no label" value.
func (s *Scene) SetShapeLabel(id ShapeID, label string) {
	for i := range s.shapes {
		if s.shapes[i].ID == id {
			s.shapes[i].Label = label
			return
		}
	}
}

// AddConnection appends a directed connection between two shapes. Self
// loops, duplicate (from, to) pairs and ids that do not resolve to live
// shapes are silently rejected, reported by the second return value.
func (s *Scene) AddConnection(from, to ShapeID) (ConnectionID, bool) {
	if from == to {
		return 0, false
	}
	if s.HasConnection(from, to) {
		return 0, false
	}
	if _, ok := s.Shape(from); !ok {
		return 0, false
	}
	if _, ok := s.Shape(to); !ok {
		return 0, false
	}

	id := s.nextConnectionID
	s.nextConnectionID++
	s.connections = append(s.connections, Connection{ID: id, From: from, To: to})
	return id, true
}

// Connection returns the connection with the given id.
func (s *Scene) Connection(id ConnectionID) (Connection, bool) {
	for _, conn := range s.connections {
		if conn.ID == id {
			return conn, true
		}
	}
	return Connection{}, false
}

// Connections returns the connections in creation order. The returned slice
// is the scene's own storage and must not be mutated by the caller.
func (s *Scene) Connections() []Connection {
	return s.connections
}

// HasConnection reports whether a connection with exactly this direction
// already exists.
func (s *Scene) HasConnection(from, to ShapeID) bool {
	for _, conn := range s.connections {
		if conn.From == from && conn.To == to {
			return true
		}
	}
	return false
}

// RemoveConnection deletes the connection. Unknown ids are a no-op.
func (s *Scene) RemoveConnection(id ConnectionID) {
	for i, conn := range s.connections {
		if conn.ID == id {
			s.connections = slices.Delete(s.connections, i, i+1)
			return
		}
	}
}
