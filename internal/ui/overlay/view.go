package overlay

import (
	"image/color"

	"aicount/internal/core/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

var textStyle = fyne.TextStyle{}

// TextMeasurer measures text the way counterView draws it.
var TextMeasurer = render.MeasureFunc(func(text string, size float32) (float32, float32) {
	measured := fyne.MeasureText(text, size, textStyle)
	return measured.Width, measured.Height
})

// counterView rasterizes a render.Frame. Command positions are relative to
// the view, which fills the window.
type counterView struct {
	widget.BaseWidget

	frame          render.Frame
	onDrag         func(event *fyne.DragEvent)
	onDragEnd      func()
	onSecondaryTap func(position fyne.Position)
}

func newCounterView(onDrag func(*fyne.DragEvent), onDragEnd func(), onSecondaryTap func(fyne.Position)) *counterView {
	view := &counterView{
		onDrag:         onDrag,
		onDragEnd:      onDragEnd,
		onSecondaryTap: onSecondaryTap,
	}
	view.ExtendBaseWidget(view)
	return view
}

// SetFrame replaces the drawn frame.
func (view *counterView) SetFrame(frame render.Frame) {
	view.frame = frame
	view.Refresh()
}

func (view *counterView) CreateRenderer() fyne.WidgetRenderer {
	renderer := &counterViewRenderer{view: view}
	renderer.Refresh()
	return renderer
}

func (view *counterView) Dragged(event *fyne.DragEvent) {
	if view.onDrag != nil {
		view.onDrag(event)
	}
}

func (view *counterView) DragEnd() {
	if view.onDragEnd != nil {
		view.onDragEnd()
	}
}

func (view *counterView) TappedSecondary(event *fyne.PointEvent) {
	if view.onSecondaryTap != nil {
		view.onSecondaryTap(event.AbsolutePosition)
	}
}

type counterViewRenderer struct {
	view    *counterView
	texts   []*canvas.Text
	objects []fyne.CanvasObject
}

func (renderer *counterViewRenderer) Layout(fyne.Size) {}

func (renderer *counterViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (renderer *counterViewRenderer) Refresh() {
	commands := renderer.view.frame.Commands
	for len(renderer.texts) < len(commands) {
		text := canvas.NewText("", color.Transparent)
		text.TextStyle = textStyle
		renderer.texts = append(renderer.texts, text)
	}
	renderer.texts = renderer.texts[:len(commands)]

	objects := make([]fyne.CanvasObject, 0, len(commands))
	for i, command := range commands {
		text := renderer.texts[i]
		text.Text = command.Text
		text.Color = command.Color
		text.TextSize = command.Size
		text.Move(fyne.NewPos(command.Position.X, command.Position.Y))
		text.Resize(text.MinSize())
		text.Refresh()
		objects = append(objects, text)
	}
	renderer.objects = objects
}

func (renderer *counterViewRenderer) Objects() []fyne.CanvasObject {
	return renderer.objects
}

func (renderer *counterViewRenderer) Destroy() {}
