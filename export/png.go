// Package export rasterizes editor frame snapshots. It is a rendering
// collaborator: it only reads the snapshot and never touches editor state.
package export

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"nodepad/config"
	"nodepad/editor"
)

// PNGExporter draws a frame to a PNG image: connector curves behind
// shapes, rounded shape bodies, selection outlines, port circles and
// wrapped centered labels.
type PNGExporter struct {
	cfg  config.Config
	face font.Face
}

// NewPNGExporter creates an exporter using the bundled monospace face.
func NewPNGExporter(cfg config.Config) (*PNGExporter, error) {
	parsed, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(parsed, &truetype.Options{
		Size:    18,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return &PNGExporter{cfg: cfg, face: face}, nil
}

// GetFileExtension returns the recommended file extension.
func (e *PNGExporter) GetFileExtension() string {
	return ".png"
}

// GetFormatName returns the format name.
func (e *PNGExporter) GetFormatName() string {
	return "PNG image"
}

// Export renders the frame and writes PNG data to w.
func (e *PNGExporter) Export(frame editor.Frame, w io.Writer) error {
	dc := e.render(frame)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// ExportFile renders the frame into the named file.
func (e *PNGExporter) ExportFile(frame editor.Frame, filename string) error {
	dc := e.render(frame)
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}

func (e *PNGExporter) render(frame editor.Frame) *gg.Context {
	width := int(e.cfg.Window.Width * e.cfg.Window.UIScale)
	height := int(e.cfg.Window.Height * e.cfg.Window.UIScale)
	dc := gg.NewContext(width, height)
	dc.Scale(e.cfg.Window.UIScale, e.cfg.Window.UIScale)
	dc.SetFontFace(e.face)

	bg := e.cfg.Window.Background
	dc.SetRGB255(int(bg.R), int(bg.G), int(bg.B))
	dc.Clear()

	// Connectors first so shapes sit on top of the curve ends.
	for _, conn := range frame.Connections {
		e.drawCurve(dc, conn)
	}
	if frame.Draft != nil {
		e.drawDraft(dc, *frame.Draft)
	}
	for _, shape := range frame.Shapes {
		e.drawShape(dc, shape)
	}

	return dc
}

func (e *PNGExporter) drawCurve(dc *gg.Context, conn editor.ConnectionFrame) {
	cc := e.cfg.Connector
	line := cc.Color
	if conn.Selected {
		line = e.cfg.Shape.SelectionOutline
	}
	dc.SetRGB255(int(line.R), int(line.G), int(line.B))
	dc.SetLineWidth(cc.StrokeWidth)

	c := conn.Curve
	dc.MoveTo(c.P0.X, c.P0.Y)
	dc.CubicTo(c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y)
	dc.Stroke()

	dc.DrawCircle(c.P0.X, c.P0.Y, cc.PortRadius)
	dc.Fill()
	dc.DrawCircle(c.P3.X, c.P3.Y, cc.PortRadius)
	dc.Fill()
}

func (e *PNGExporter) drawDraft(dc *gg.Context, draft editor.DraftFrame) {
	cc := e.cfg.Connector
	dc.SetRGB255(int(cc.Color.R), int(cc.Color.G), int(cc.Color.B))
	dc.SetLineWidth(cc.StrokeWidth)
	dc.MoveTo(draft.Start.X, draft.Start.Y)
	dc.LineTo(draft.End.X, draft.End.Y)
	dc.Stroke()
	dc.DrawCircle(draft.Start.X, draft.Start.Y, cc.PortRadius)
	dc.Fill()
}

func (e *PNGExporter) drawShape(dc *gg.Context, shape editor.ShapeFrame) {
	sc := e.cfg.Shape
	x := shape.Center.X - shape.Size.W/2
	y := shape.Center.Y - shape.Size.H/2

	dc.SetRGB255(int(sc.Fill.R), int(sc.Fill.G), int(sc.Fill.B))
	dc.DrawRoundedRectangle(x, y, shape.Size.W, shape.Size.H, sc.CornerRadius)
	dc.Fill()

	// Selection outline, slightly larger than the body. Suppressed during
	// editing, where the cursor marker already signals focus.
	if shape.Selected && !shape.Editing {
		ow := shape.Size.W * 1.05
		oh := shape.Size.H * 1.05
		out := sc.SelectionOutline
		dc.SetRGB255(int(out.R), int(out.G), int(out.B))
		dc.SetLineWidth(sc.SelectionOutlineWidth)
		dc.DrawRoundedRectangle(shape.Center.X-ow/2, shape.Center.Y-oh/2, ow, oh, sc.CornerRadius*1.05)
		dc.Stroke()
	}

	cc := e.cfg.Connector
	dc.SetRGB255(int(cc.Color.R), int(cc.Color.G), int(cc.Color.B))
	dc.DrawCircle(shape.OutPort.X, shape.OutPort.Y, cc.PortRadius)
	dc.Fill()
	dc.DrawCircle(shape.InPort.X, shape.InPort.Y, cc.PortRadius)
	dc.Fill()

	if shape.Label != "" {
		wrapWidth := shape.Size.W - sc.TextPadding*2
		tc := sc.TextColor
		dc.SetRGB255(int(tc.R), int(tc.G), int(tc.B))
		dc.DrawStringWrapped(shape.Label, shape.Center.X, shape.Center.Y,
			0.5, 0.5, wrapWidth, 1.2, gg.AlignCenter)
	}
}
