// Package render turns counter state into text draw commands.
//
// Build is a pure function: the overlay rasterizes the returned Frame and
// nothing here depends on a rendering backend.
package render

import (
	"fmt"
	"image/color"

	"aicount/internal/core/counter"
	"aicount/internal/core/model"
)

const (
	labelOutlineSpread     = 2
	indicatorOutlineSpread = 1
)

// TextMeasurer reports the rendered size of a string at a font size.
type TextMeasurer interface {
	MeasureText(text string, size float32) (width, height float32)
}

// MeasureFunc adapts a function to TextMeasurer.
type MeasureFunc func(text string, size float32) (float32, float32)

// MeasureText calls fn.
func (fn MeasureFunc) MeasureText(text string, size float32) (float32, float32) {
	return fn(text, size)
}

// Command is a single text draw instruction. Position is the top-left corner
// of the text box in window pixels.
type Command struct {
	Text     string
	Position model.Point
	Color    color.NRGBA
	Size     float32
	Outline  bool
}

// Frame lists draw commands back to front.
type Frame struct {
	Label     string
	Indicator string
	Commands  []Command
}

// Build produces the frame for the given state and style.
func Build(snapshot counter.Snapshot, style model.StyleConfig, layout model.Layout, measurer TextMeasurer) Frame {
	rect := layout.Label
	label := fmt.Sprintf("%s %d", style.Prefix, snapshot.Count)
	labelWidth, labelHeight := measurer.MeasureText(label, style.FontSize)

	labelOrigin := model.Point{
		X: rect.X + (rect.Width-labelWidth)/2,
		Y: rect.Y + (rect.Height-labelHeight)/2,
	}

	mainColor := style.FontColor
	if snapshot.Mode == counter.ModeSecondary {
		mainColor = style.SwitchFontColor
	}

	frame := Frame{Label: label}
	frame.Commands = appendOutlined(frame.Commands, label, labelOrigin, style.FontSize, labelOutlineSpread, style.OutlineColor, mainColor)

	if !style.ShowIndicator {
		return frame
	}
	indicator := snapshot.IndicatorLabel()
	if indicator == "" {
		return frame
	}

	indicatorWidth, _ := measurer.MeasureText(indicator, style.IndicatorFontSize)
	indicatorOrigin := model.Point{
		X: rect.X + rect.Width - indicatorWidth - labelWidth + style.IndicatorOffset.X,
		Y: rect.Y + style.IndicatorOffset.Y,
	}

	frame.Indicator = indicator
	frame.Commands = appendOutlined(frame.Commands, indicator, indicatorOrigin, style.IndicatorFontSize, indicatorOutlineSpread, style.OutlineColor, style.IndicatorColor)
	return frame
}

// appendOutlined draws text at the eight neighbours of origin in the outline
// color, then once at origin in the text color.
func appendOutlined(commands []Command, text string, origin model.Point, size, spread float32, outline, fill color.NRGBA) []Command {
	for _, dx := range []float32{-spread, 0, spread} {
		for _, dy := range []float32{-spread, 0, spread} {
			if dx == 0 && dy == 0 {
				continue
			}
			commands = append(commands, Command{
				Text:     text,
				Position: model.Point{X: origin.X + dx, Y: origin.Y + dy},
				Color:    outline,
				Size:     size,
				Outline:  true,
			})
		}
	}
	return append(commands, Command{
		Text:     text,
		Position: origin,
		Color:    fill,
		Size:     size,
	})
}
