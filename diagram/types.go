// Package diagram owns the scene: the shapes on the canvas and the directed
// connections between them. It is the single source of truth for their
// lifecycle; the editor mutates it only through Scene methods.
package diagram

import "nodepad/geometry"

// ShapeID is the stable identifier of a shape. IDs are assigned at creation,
// are unique within a scene, and are never reused after deletion.
type ShapeID int

// ConnectionID is the stable identifier of a connection. Like shape IDs,
// connection IDs are never reused, so deleting one entity never requires
// renumbering another.
type ConnectionID int

// Shape is a rectangular node on the canvas. All shapes share a global size
// from configuration; only the center moves.
type Shape struct {
	ID     ShapeID
	Center geometry.Point
	Label  string // empty means no label
}

// Connection is a directed edge between two shapes. It holds identifiers
// only, never shape references, so it stays valid however shapes are stored.
type Connection struct {
	ID   ConnectionID
	From ShapeID
	To   ShapeID
}
