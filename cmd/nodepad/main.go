package main

import (
	"flag"
	"fmt"
	"os"

	"nodepad/config"
	"nodepad/editor"
	"nodepad/terminal"
)

func main() {
	var (
		shapeWidth  = flag.Float64("shape-width", 0, "Shape width in logical units (default from config)")
		shapeHeight = flag.Float64("shape-height", 0, "Shape height in logical units (default from config)")
		uiScale     = flag.Float64("scale", 0, "UI scale factor for PNG export")
		noBackspace = flag.Bool("no-backspace-delete", false, "Disable Backspace as a shape-delete key")
		exportPath  = flag.String("export", "nodepad.png", "Path for Ctrl+E PNG snapshots")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "An interactive node-and-connector diagram editor.\n\n")
		fmt.Fprintf(os.Stderr, "Double-click empty space to create a shape, double-click a shape to\n")
		fmt.Fprintf(os.Stderr, "edit its label, drag from a port to another shape's port to connect.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.Default()
	if *shapeWidth > 0 {
		cfg.Shape.Width = *shapeWidth
	}
	if *shapeHeight > 0 {
		cfg.Shape.Height = *shapeHeight
	}
	if *uiScale > 0 {
		cfg.Window.UIScale = *uiScale
	}
	if *noBackspace {
		cfg.Interaction.BackspaceDeletesShape = false
	}

	ed := editor.New(cfg)

	ui, err := terminal.NewUI(ed, *exportPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := ui.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
