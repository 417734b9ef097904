// Command paintdemo replays a scripted editing session through the
// paint input pipeline and rasterizes the result to PNG.
//
// The session is driven entirely by synthetic pointer and key events,
// exercising the same code paths a windowing layer would: mode
// switches, drag gestures, polygon clicks, selection and camera zoom.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/integration/ggpaint"
)

func main() {
	var (
		width   = flag.Int("width", 800, "canvas width")
		height  = flag.Int("height", 600, "canvas height")
		output  = flag.String("output", "paintdemo.png", "output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ed := paint.NewEditor(*width, *height)
	in := ed.Input()

	// A rectangle dragged near the upper left.
	ed.SetDrawColor(paint.Orange)
	in.Key(paint.KeyR, paint.Press)
	drag(in, 150, 120, 320, 240)

	// A constrained (perfect) circle beside it.
	ed.SetDrawColor(paint.Cyan)
	in.Key(paint.KeyC, paint.Press)
	in.Key(paint.KeyShift, paint.Press)
	drag(in, 480, 180, 560, 180)
	in.Key(paint.KeyShift, paint.Release)

	// A right triangle below.
	ed.SetDrawColor(paint.Yellow)
	in.Key(paint.KeyT, paint.Press)
	drag(in, 180, 360, 300, 480)

	// A polygon: three clicks, then a constrain-click to close it.
	ed.SetDrawColor(paint.Magenta)
	in.Key(paint.KeyP, paint.Press)
	click(in, 450, 350)
	click(in, 620, 380)
	click(in, 540, 500)
	in.Key(paint.KeyShift, paint.Press)
	click(in, 540, 500)
	in.Key(paint.KeyShift, paint.Release)

	// Select the rectangle and rotate it for a livelier composition.
	in.Key(paint.KeyS, paint.Press)
	click(in, 235, 180)
	ed.Selection().RotateSelected(20)

	// Zoom in slightly around the canvas center.
	in.Scroll(float64(*width)/2, float64(*height)/2, 1)

	dc := gg.NewContext(*width, *height)
	if err := ggpaint.Render(ed, dc); err != nil {
		log.Fatalf("render failed: %v", err)
	}
	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("failed to save: %v", err)
	}

	log.Printf("Session saved to %s (%d shapes)\n", *output, ed.Document().Len())
}

// drag simulates a press-drag-release primitive gesture.
func drag(in *paint.InputManager, x0, y0, x1, y1 float64) {
	in.PointerButton(paint.ButtonLeft, paint.Press, x0, y0)
	in.PointerMove((x0+x1)/2, (y0+y1)/2)
	in.PointerMove(x1, y1)
	in.PointerButton(paint.ButtonLeft, paint.Release, x1, y1)
}

// click simulates a press-release at one position.
func click(in *paint.InputManager, x, y float64) {
	in.PointerButton(paint.ButtonLeft, paint.Press, x, y)
	in.PointerButton(paint.ButtonLeft, paint.Release, x, y)
}
