// Package terminal is the interactive front end for nodepad. It owns the
// tcell screen, translates terminal mouse and key events into editor
// events, and paints the editor's frame snapshot onto the cell grid. The
// editor core never sees tcell types.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"nodepad/config"
	"nodepad/editor"
	"nodepad/export"
	"nodepad/geometry"
)

// Logical units per terminal cell. A cell is roughly half as wide as it is
// tall, so the aspect of the logical canvas survives the mapping.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
)

// UI runs one editor inside a terminal.
type UI struct {
	screen     tcell.Screen
	ed         *editor.Editor
	cfg        config.Config
	exportPath string

	buttons tcell.ButtonMask // previous mask, for press/release edges
	status  string
}

// NewUI creates the terminal UI. exportPath is where Ctrl+E writes a PNG
// snapshot of the current frame.
func NewUI(ed *editor.Editor, exportPath string) (*UI, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	return &UI{
		screen:     screen,
		ed:         ed,
		cfg:        ed.Config(),
		exportPath: exportPath,
	}, nil
}

// Run enters the event loop and blocks until the user quits (Ctrl+Q or
// Ctrl+C). The screen is restored even on panic.
func (u *UI) Run() error {
	if err := u.screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer u.screen.Fini()

	u.screen.EnableMouse(tcell.MouseButtonEvents, tcell.MouseDragEvents, tcell.MouseMotionEvents)
	u.screen.Clear()
	u.draw()

	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			if u.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			u.handleMouse(ev)
		}

		// One tick per processed batch, after events have been applied.
		u.ed.Tick()
		u.draw()
	}
}

// handleKey translates a key event; returns true when the user quits.
func (u *UI) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyCtrlC:
		return true
	case tcell.KeyCtrlE:
		u.exportPNG()
	case tcell.KeyEnter:
		u.ed.KeyDown(editor.KeyEnter, false)
	case tcell.KeyEscape:
		u.ed.KeyDown(editor.KeyEscape, false)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		u.ed.KeyDown(editor.KeyBackspace, false)
	case tcell.KeyDelete:
		u.ed.KeyDown(editor.KeyDelete, false)
	case tcell.KeyRune:
		u.ed.TextInput(ev.Rune())
	}
	return false
}

// handleMouse turns button-mask edges into pointer down/up and always
// reports the move, so drags and the connector preview stay live.
func (u *UI) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	x := (float64(cx) + 0.5) * cellWidth
	y := (float64(cy) + 0.5) * cellHeight

	pressed := ev.Buttons()&tcell.Button1 != 0
	wasPressed := u.buttons&tcell.Button1 != 0
	u.buttons = ev.Buttons()

	u.ed.PointerMove(x, y)
	if pressed && !wasPressed {
		u.ed.PointerDown(editor.ButtonLeft, x, y)
	} else if !pressed && wasPressed {
		u.ed.PointerUp(editor.ButtonLeft, x, y)
	}
}

func (u *UI) exportPNG() {
	exporter, err := export.NewPNGExporter(u.cfg)
	if err != nil {
		u.status = err.Error()
		return
	}
	if err := exporter.ExportFile(u.ed.Frame(), u.exportPath); err != nil {
		u.status = err.Error()
		return
	}
	u.status = "exported " + u.exportPath
}

// cell converts a logical point to a terminal cell.
func cell(p geometry.Point) (int, int) {
	return int(p.X / cellWidth), int(p.Y / cellHeight)
}

func (u *UI) draw() {
	u.screen.Clear()

	frame := u.ed.Frame()
	base := tcell.StyleDefault
	selected := base.Foreground(tcell.ColorYellow)

	for _, conn := range frame.Connections {
		style := base
		if conn.Selected {
			style = selected
		}
		u.drawCurve(conn.Curve, style)
	}
	if frame.Draft != nil {
		u.drawDraftLine(frame.Draft.Start, frame.Draft.End, base)
	}
	for _, shape := range frame.Shapes {
		u.drawShape(shape, base, selected)
	}

	u.drawStatus(frame)
	u.screen.Show()
}

// drawCurve plots sampled curve points as dots with filled endpoints. The
// sample count is denser than the hit-test count so the curve reads as a
// line on the grid.
func (u *UI) drawCurve(c geometry.Curve, style tcell.Style) {
	for _, p := range c.Sample(48) {
		x, y := cell(p)
		u.screen.SetContent(x, y, '·', nil, style)
	}
	x, y := cell(c.P0)
	u.screen.SetContent(x, y, '●', nil, style)
	x, y = cell(c.P3)
	u.screen.SetContent(x, y, '●', nil, style)
}

func (u *UI) drawDraftLine(start, end geometry.Point, style tcell.Style) {
	const steps = 32
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		p := geometry.Point{
			X: start.X + (end.X-start.X)*t,
			Y: start.Y + (end.Y-start.Y)*t,
		}
		x, y := cell(p)
		u.screen.SetContent(x, y, '·', nil, style)
	}
	x, y := cell(start)
	u.screen.SetContent(x, y, '●', nil, style)
}

func (u *UI) drawShape(shape editor.ShapeFrame, base, selected tcell.Style) {
	left, top := cell(geometry.Point{X: shape.Center.X - shape.Size.W/2, Y: shape.Center.Y - shape.Size.H/2})
	right, bottom := cell(geometry.Point{X: shape.Center.X + shape.Size.W/2, Y: shape.Center.Y + shape.Size.H/2})
	if right <= left+1 || bottom <= top {
		return
	}

	style := base
	if shape.Selected {
		style = selected
	}
	if shape.Dragging {
		style = style.Bold(true)
	}

	u.screen.SetContent(left, top, '╭', nil, style)
	u.screen.SetContent(right, top, '╮', nil, style)
	u.screen.SetContent(left, bottom, '╰', nil, style)
	u.screen.SetContent(right, bottom, '╯', nil, style)
	for x := left + 1; x < right; x++ {
		u.screen.SetContent(x, top, '─', nil, style)
		u.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		u.screen.SetContent(left, y, '│', nil, style)
		u.screen.SetContent(right, y, '│', nil, style)
		for x := left + 1; x < right; x++ {
			u.screen.SetContent(x, y, ' ', nil, style)
		}
	}

	if shape.Label != "" {
		inner := right - left - 1
		label := runewidth.Truncate(shape.Label, inner, "…")
		lx := left + 1 + (inner-runewidth.StringWidth(label))/2
		ly := (top + bottom) / 2
		for _, r := range label {
			u.screen.SetContent(lx, ly, r, nil, style)
			lx += runewidth.RuneWidth(r)
		}
	}

	u.drawPort(shape.OutPort, shape.OutPortHover, base, selected)
	u.drawPort(shape.InPort, shape.InPortHover, base, selected)
}

func (u *UI) drawPort(p geometry.Point, hover bool, base, hovered tcell.Style) {
	x, y := cell(p)
	r := '◦'
	style := base
	if hover {
		r = '●'
		style = hovered
	}
	u.screen.SetContent(x, y, r, nil, style)
}

func (u *UI) drawStatus(frame editor.Frame) {
	width, height := u.screen.Size()
	y := height - 1

	flags := ""
	if _, _, editing := u.ed.EditingShape(); editing {
		flags = " [EDITING]"
	} else if _, ok := u.ed.SelectedShape(); ok {
		flags = " [SELECTED]"
	}
	if _, _, ok := u.ed.ConnectorDraft(); ok {
		flags += " [CONNECTING]"
	}

	p := u.ed.Pointer()
	line := fmt.Sprintf("Mouse: %.0f, %.0f | Shapes: %d%s", p.X, p.Y, len(frame.Shapes), flags)
	if u.status != "" {
		line += " | " + u.status
	}
	line += " | dbl-click: new/edit  del: remove  ^E: png  ^Q: quit"

	style := tcell.StyleDefault.Reverse(true)
	x := 0
	for _, r := range line {
		if x >= width {
			break
		}
		u.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width; x++ {
		u.screen.SetContent(x, y, ' ', nil, style)
	}
}
