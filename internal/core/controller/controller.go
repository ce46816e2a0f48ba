package controller

import (
	"fmt"

	"aicount/internal/core/counter"
	"aicount/internal/core/model"
	"aicount/internal/core/render"
)

// Controller owns the counter and the style snapshot and exposes the
// callbacks the hotkey listener and the overlay shell call into.
type Controller struct {
	counter  *counter.Counter
	style    model.StyleConfig
	layout   model.Layout
	measurer render.TextMeasurer
}

// New creates a Controller.
func New(counter *counter.Counter, style model.StyleConfig, layout model.Layout, measurer render.TextMeasurer) *Controller {
	return &Controller{
		counter:  counter,
		style:    style,
		layout:   layout,
		measurer: measurer,
	}
}

// OnCountHotkey handles the count key.
func (controller *Controller) OnCountHotkey() {
	controller.counter.Increment()
}

// OnModeHotkey handles the mode-switch key.
func (controller *Controller) OnModeHotkey() {
	controller.counter.ToggleMode()
}

// OnReset restarts the count in the current mode.
func (controller *Controller) OnReset() {
	controller.counter.Reset()
}

// BuildFrame returns the draw commands for the current state.
func (controller *Controller) BuildFrame() render.Frame {
	return render.Build(controller.counter.Snapshot(), controller.style, controller.layout, controller.measurer)
}

// Status describes the current state for the tray menu.
func (controller *Controller) Status() string {
	snapshot := controller.counter.Snapshot()
	mode := snapshot.IndicatorLabel()
	if mode == "" {
		mode = "?"
	}
	return fmt.Sprintf("Mode %s: %d/%d", mode, snapshot.Count, snapshot.ActiveLimit)
}

// Subscribe forwards to the counter.
func (controller *Controller) Subscribe(buffer int) <-chan counter.Event {
	return controller.counter.Subscribe(buffer)
}

// Layout returns the overlay geometry.
func (controller *Controller) Layout() model.Layout {
	return controller.layout
}

// Style returns the style snapshot.
func (controller *Controller) Style() model.StyleConfig {
	return controller.style
}
