// Package config holds the construction-time configuration for the editor
// core and its renderers. Values are supplied once and never mutated by the
// core; loading them from disk is a collaborator's job, not ours.
package config

import "time"

// Color is an RGB triple. Kept renderer-agnostic so the core does not
// depend on any drawing library.
type Color struct {
	R, G, B uint8
}

// ShapeConfig describes the global appearance of shapes. All shapes share
// one size; there is no per-shape styling.
type ShapeConfig struct {
	Width                 float64
	Height                float64
	CornerRadius          float64
	Fill                  Color
	TextColor             Color
	TextPadding           float64
	SelectionOutline      Color
	SelectionOutlineWidth float64
}

// ConnectorConfig describes connector geometry and appearance. PortOffset
// is the horizontal inset of both ports from a shape's left edge;
// CurveOffset is the horizontal reach of the Bezier control points.
type ConnectorConfig struct {
	PortOffset   float64
	CurveOffset  float64
	StrokeWidth  float64
	PortRadius   float64
	Color        Color
	CurveSamples int     // sample count for hit-testing and dot rendering
	HitRadius    float64 // click tolerance around sampled curve points
}

// InteractionConfig holds gesture thresholds.
type InteractionConfig struct {
	DoubleClickDelay    time.Duration
	DoubleClickDistance float64
	PortClickRadius     float64 // click tolerance around a port point
	PortHoverRadius     float64 // pointer distance at which a port highlights
	// BackspaceDeletesShape makes Backspace an alternate shape-delete key
	// while a shape is selected. It never conflicts with text erasure:
	// editing and mere selection are mutually exclusive focus states.
	BackspaceDeletesShape bool
}

// WindowConfig describes the logical canvas the collaborator presents.
type WindowConfig struct {
	Width      float64
	Height     float64
	Title      string
	Background Color
	UIScale    float64
}

// Config is the full configuration consumed by the editor and renderers.
type Config struct {
	Window      WindowConfig
	Shape       ShapeConfig
	Connector   ConnectorConfig
	Interaction InteractionConfig
}

// Default returns the reference configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:      800,
			Height:     600,
			Title:      "nodepad",
			Background: Color{R: 30, G: 30, B: 40},
			UIScale:    1.0,
		},
		Shape: ShapeConfig{
			Width:                 120,
			Height:                70,
			CornerRadius:          10,
			Fill:                  Color{R: 100, G: 200, B: 255},
			TextColor:             Color{R: 0, G: 0, B: 0},
			TextPadding:           8,
			SelectionOutline:      Color{R: 255, G: 255, B: 0},
			SelectionOutlineWidth: 2,
		},
		Connector: ConnectorConfig{
			PortOffset:   15,
			CurveOffset:  40,
			StrokeWidth:  2,
			PortRadius:   4,
			Color:        Color{R: 255, G: 255, B: 255},
			CurveSamples: 11,
			HitRadius:    8, // 4x stroke width
		},
		Interaction: InteractionConfig{
			DoubleClickDelay:      500 * time.Millisecond,
			DoubleClickDistance:   10,
			PortClickRadius:       8,
			PortHoverRadius:       16,
			BackspaceDeletesShape: true,
		},
	}
}
