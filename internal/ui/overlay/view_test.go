package overlay

import (
	"image/color"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicount/internal/core/model"
	"aicount/internal/core/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
)

var (
	outline = color.NRGBA{A: 255}
	fill    = color.NRGBA{R: 255, G: 250, B: 250, A: 255}
)

func testFrame(label string) render.Frame {
	return render.Frame{
		Label: label,
		Commands: []render.Command{
			{Text: label, Position: model.Point{X: 98, Y: 88}, Color: outline, Size: 24, Outline: true},
			{Text: label, Position: model.Point{X: 100, Y: 90}, Color: fill, Size: 24},
		},
	}
}

func TestCounterViewDrawsCommands(t *testing.T) {
	test.NewTempApp(t)
	view := newCounterView(nil, nil, nil)
	view.SetFrame(testFrame("AI 1"))

	renderer := test.TempWidgetRenderer(t, view)
	objects := renderer.Objects()
	require.Len(t, objects, 2)

	last, ok := objects[1].(*canvas.Text)
	require.True(t, ok)
	assert.Equal(t, "AI 1", last.Text)
	assert.Equal(t, fill, last.Color)
	assert.Equal(t, float32(24), last.TextSize)
	assert.Equal(t, fyne.NewPos(100, 90), last.Position())
}

func TestCounterViewShrinksWithFrame(t *testing.T) {
	test.NewTempApp(t)
	view := newCounterView(nil, nil, nil)
	frame := testFrame("AI 2")
	frame.Commands = append(frame.Commands, frame.Commands...)
	view.SetFrame(frame)

	renderer := test.TempWidgetRenderer(t, view)
	require.Len(t, renderer.Objects(), 4)

	view.SetFrame(testFrame("AI 3"))
	renderer.Refresh()
	require.Len(t, renderer.Objects(), 2)
	assert.Equal(t, "AI 3", renderer.Objects()[0].(*canvas.Text).Text)
}

func TestCounterViewCallbacks(t *testing.T) {
	test.NewTempApp(t)
	var dragged []fyne.Delta
	ended := false
	var tapped fyne.Position
	view := newCounterView(
		func(event *fyne.DragEvent) { dragged = append(dragged, event.Dragged) },
		func() { ended = true },
		func(position fyne.Position) { tapped = position },
	)

	view.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(3, -2)})
	view.DragEnd()
	view.TappedSecondary(&fyne.PointEvent{AbsolutePosition: fyne.NewPos(10, 20)})

	assert.Equal(t, []fyne.Delta{fyne.NewDelta(3, -2)}, dragged)
	assert.True(t, ended)
	assert.Equal(t, fyne.NewPos(10, 20), tapped)
}

func newTestWindow(t *testing.T, position model.Point) *Window {
	t.Helper()
	app := test.NewTempApp(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(app, Config{Title: "test", Layout: model.DefaultLayout(), Position: position}, logger)
}

// dragPointer moves the screen pointer through points and sends the drag
// events a window-relative driver would, re-reading the window position
// before every step.
func dragPointer(overlay *Window, press model.Point, points []model.Point) {
	scale := overlay.window.Canvas().Scale()
	last := fyne.NewPos((press.X-overlay.Position().X)/scale, (press.Y-overlay.Position().Y)/scale)
	for _, point := range points {
		current := fyne.NewPos((point.X-overlay.Position().X)/scale, (point.Y-overlay.Position().Y)/scale)
		overlay.view.Dragged(&fyne.DragEvent{
			PointEvent: fyne.PointEvent{Position: current, AbsolutePosition: current},
			Dragged:    fyne.NewDelta(current.X-last.X, current.Y-last.Y),
		})
		last = current
	}
	overlay.view.DragEnd()
}

func TestWindowDragFollowsPointer(t *testing.T) {
	overlay := newTestWindow(t, model.Point{X: 100, Y: 100})
	overlay.movable = true

	var moved []model.Point
	overlay.SetOnMoved(func(position model.Point) { moved = append(moved, position) })

	press := model.Point{X: 120, Y: 120}
	var points []model.Point
	for step := 1; step <= 10; step++ {
		points = append(points, model.Point{X: press.X + float32(step)*10, Y: press.Y - float32(step)*3})
	}
	dragPointer(overlay, press, points)

	assert.InDelta(t, 200, overlay.Position().X, 0.01)
	assert.InDelta(t, 70, overlay.Position().Y, 0.01)
	require.Len(t, moved, 1)
	assert.Equal(t, overlay.Position(), moved[0])
	assert.False(t, overlay.dragging)
}

func TestWindowSecondDragStartsFresh(t *testing.T) {
	overlay := newTestWindow(t, model.Point{X: 0, Y: 0})
	overlay.movable = true

	dragPointer(overlay, model.Point{X: 10, Y: 10}, []model.Point{{X: 30, Y: 10}})
	dragPointer(overlay, model.Point{X: 50, Y: 40}, []model.Point{{X: 50, Y: 60}, {X: 45, Y: 60}})

	assert.InDelta(t, 15, overlay.Position().X, 0.01)
	assert.InDelta(t, 20, overlay.Position().Y, 0.01)
}

func TestWindowDragIgnoredWithoutNativeMove(t *testing.T) {
	overlay := newTestWindow(t, model.Point{X: 100, Y: 100})
	overlay.movable = false

	called := false
	overlay.SetOnMoved(func(model.Point) { called = true })

	dragPointer(overlay, model.Point{X: 120, Y: 120}, []model.Point{{X: 150, Y: 120}})

	assert.Equal(t, model.Point{X: 100, Y: 100}, overlay.Position())
	assert.False(t, called)
}

func TestTextMeasurerMatchesFyne(t *testing.T) {
	test.NewTempApp(t)
	width, height := TextMeasurer.MeasureText("AI 1", 24)
	size := fyne.MeasureText("AI 1", 24, textStyle)

	assert.Equal(t, size.Width, width)
	assert.Equal(t, size.Height, height)
	assert.Greater(t, width, float32(0))
}
