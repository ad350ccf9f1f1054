// Command mandelzoom-term explores the Mandelbrot set in a terminal. Each
// character cell shows two pixels; drag with the left button to zoom,
// right-click or press r to reset.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tamjidrahman/mandelzoom/debuglog"
	"github.com/tamjidrahman/mandelzoom/fractal"
)

const frameInterval = 16 * time.Millisecond

var (
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	coloringFlag  = flag.String("coloring", "smooth", "Coloring: smooth, gray")
	debugFlag     = flag.Bool("debug", false, "Write debug log to "+debuglog.DefaultDir+"/"+debuglog.FileName)
)

func main() {
	flag.Parse()

	logFile, err := debuglog.Setup(debuglog.DefaultDir, *debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up debug log: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	coloring, err := fractal.ParseColoring(*coloringFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	switch *colorModeFlag {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nmandelzoom-term crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseDragEvents)
	screen.HideCursor()
	screen.Clear()

	log.Printf("term: color mode %s, %d colors", *colorModeFlag, screen.Colors())
	run(newApp(screen, coloring))
}

func run(a *app) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	a.frame()
	for {
		select {
		case ev := <-events:
			if !a.handle(ev) {
				return
			}
		case <-ticker.C:
			a.frame()
		}
	}
}
