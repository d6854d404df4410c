// Package dashboard is a Fyne front end that visualizes a commafree search
// as it runs: one colored cell per α, RED/BLUE/GREEN exactly as Algorithm
// C colors them, repainted from Search.ColorAt a few times a second; a
// commafree.Tracer supplies the current level and the count of codes
// found. It plays the
// same role the teacher's own dashboard module played for its CPU
// simulator (a Fyne window over live simulator state), generalized from
// register/memory cells to word colors.
package dashboard

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/wallberg/commafree/commafree"
)

var (
	redColor   = color.NRGBA{R: 0xc0, G: 0x30, B: 0x30, A: 0xff}
	blueColor  = color.NRGBA{R: 0x30, G: 0x50, B: 0xc0, A: 0xff}
	greenColor = color.NRGBA{R: 0x30, G: 0xa0, B: 0x40, A: 0xff}
)

func colorFor(c commafree.Color) color.Color {
	switch c {
	case commafree.Green:
		return greenColor
	case commafree.Blue:
		return blueColor
	default:
		return redColor
	}
}

// tracer forwards search events to the dashboard's UI state under a mutex,
// since Fyne widgets are updated from the UI goroutine while the search
// itself runs on a background goroutine (§5: the core stays
// single-threaded; only the dashboard wrapper is concurrent).
type tracer struct {
	mu      sync.Mutex
	visited int
	level   int
}

func (t *tracer) OnSelect(level int, x int32, c uint32) {
	t.mu.Lock()
	t.level = level
	t.mu.Unlock()
}

func (t *tracer) OnGreen(level int, x int32, c uint32) {}
func (t *tracer) OnRed(x int32, c uint32)              {}
func (t *tracer) OnRetry(level int, x int32, c uint32) {}
func (t *tracer) OnRetreat(level int)                  {}

func (t *tracer) OnVisit(level int, code commafree.Code) {
	t.mu.Lock()
	t.visited++
	t.mu.Unlock()
}

func (t *tracer) snapshot() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visited, t.level
}

// Run opens a window visualizing the commafree(m, g) search, stepping it
// on a background goroutine and repainting the color grid a few times a
// second. It blocks until the window is closed.
func Run(m, g int) error {
	s, err := commafree.NewSearch(m, g)
	if err != nil {
		return err
	}

	tr := &tracer{}
	s.AttachTracer(tr)

	m4 := m * m * m * m
	cells := make([]*canvas.Rectangle, m4)
	for i := range cells {
		r := canvas.NewRectangle(redColor)
		r.SetMinSize(fyne.NewSize(10, 10))
		cells[i] = r
	}

	grid := container.NewGridWrap(fyne.NewSize(10, 10))
	for _, r := range cells {
		grid.Add(r)
	}

	status := widget.NewLabel(fmt.Sprintf("m=%d g=%d", m, g))

	stop := make(chan struct{})
	go func() {
		defer close(stop)
		for {
			_, ok, err := s.Next()
			if err != nil || !ok {
				return
			}
		}
	}()

	a := app.New()
	w := a.NewWindow(fmt.Sprintf("commafree m=%d g=%d", m, g))
	w.SetContent(container.NewBorder(status, nil, nil, nil, grid))
	w.Resize(fyne.NewSize(640, 480))

	ticker := time.NewTicker(200 * time.Millisecond)
	go func() {
		for range ticker.C {
			red, blue, green := s.ColorCounts()
			visited, level := tr.snapshot()
			status.SetText(fmt.Sprintf("m=%d g=%d  level=%d  visited=%d  red=%d blue=%d green=%d",
				m, g, level, visited, red, blue, green))

			for alf, cell := range cells {
				cell.FillColor = colorFor(s.ColorAt(alf))
				cell.Refresh()
			}
		}
	}()
	defer ticker.Stop()

	w.ShowAndRun()
	return nil
}
