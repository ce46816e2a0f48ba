package overlay

import (
	"image/color"
	"log/slog"

	"aicount/internal/core/model"
	"aicount/internal/core/render"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	exitLabel   = "終了"
	cancelLabel = "戻る"
)

// colorKey paints the window background. On Windows every pixel of this
// color is made transparent and click-through.
var colorKey = color.NRGBA{R: 1, G: 1, B: 1, A: 255}

// Config defines overlay geometry.
type Config struct {
	Title    string
	Layout   model.Layout
	Position model.Point
}

// Window manages the overlay UI.
type Window struct {
	app      fyne.App
	window   fyne.Window
	config   Config
	view     *counterView
	logger   *slog.Logger
	position model.Point
	onExit   func()
	onMoved  func(model.Point)

	// movable is false where the native window cannot be placed, so drags
	// leave position untouched.
	movable    bool
	dragging   bool
	dragOffset model.Point
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates a new overlay window.
func New(app fyne.App, config Config, logger *slog.Logger) *Window {
	window := app.NewWindow(config.Title)
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	overlay := &Window{
		app:      app,
		window:   window,
		config:   config,
		logger:   logger,
		position: config.Position,
		movable:  nativeMoveSupported,
	}
	overlay.view = newCounterView(overlay.dragTo, overlay.dragEnded, overlay.showMenu)

	background := canvas.NewRectangle(colorKey)
	window.SetContent(container.NewStack(background, overlay.view))
	window.Resize(fyne.NewSize(config.Layout.WindowWidth, config.Layout.WindowHeight))
	window.SetFixedSize(true)

	return overlay
}

// Show displays the overlay.
func (overlay *Window) Show() {
	overlay.window.Show()
}

// ApplyNative makes the window topmost, transparent and positioned. It must
// run after the native window exists.
func (overlay *Window) ApplyNative() {
	overlay.applyNative(overlay.position)
}

// SetFrame repaints the counter. Call on the Fyne thread.
func (overlay *Window) SetFrame(frame render.Frame) {
	overlay.view.SetFrame(frame)
}

// SetOnExit sets the handler for the context menu exit item.
func (overlay *Window) SetOnExit(handler func()) {
	overlay.onExit = handler
}

// SetOnMoved sets the handler called when a drag finishes.
func (overlay *Window) SetOnMoved(handler func(model.Point)) {
	overlay.onMoved = handler
}

// Position returns the window position in screen pixels.
func (overlay *Window) Position() model.Point {
	return overlay.position
}

// dragTo keeps the pointer at the same spot of the window. Drag events are
// relative to the window, which moves under the pointer, so the screen
// pointer is rebuilt from the current position on every event.
func (overlay *Window) dragTo(event *fyne.DragEvent) {
	if !overlay.movable {
		return
	}
	scale := overlay.window.Canvas().Scale()
	if !overlay.dragging {
		// The first event already includes the movement since the press.
		overlay.dragging = true
		overlay.dragOffset = model.Point{
			X: (event.AbsolutePosition.X - event.Dragged.DX) * scale,
			Y: (event.AbsolutePosition.Y - event.Dragged.DY) * scale,
		}
	}
	pointer := model.Point{
		X: overlay.position.X + event.AbsolutePosition.X*scale,
		Y: overlay.position.Y + event.AbsolutePosition.Y*scale,
	}
	overlay.position = model.Point{
		X: pointer.X - overlay.dragOffset.X,
		Y: pointer.Y - overlay.dragOffset.Y,
	}
	overlay.moveNative(overlay.position)
}

func (overlay *Window) dragEnded() {
	if !overlay.dragging {
		return
	}
	overlay.dragging = false
	overlay.dragOffset = model.Point{}

	overlay.logger.Debug("overlay moved", "x", overlay.position.X, "y", overlay.position.Y)
	if overlay.onMoved != nil {
		overlay.onMoved(overlay.position)
	}
}

func (overlay *Window) showMenu(position fyne.Position) {
	menu := fyne.NewMenu("",
		fyne.NewMenuItem(exitLabel, func() {
			if overlay.onExit != nil {
				overlay.onExit()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(cancelLabel, func() {}),
	)
	widget.ShowPopUpMenuAtPosition(menu, overlay.window.Canvas(), position)
}
