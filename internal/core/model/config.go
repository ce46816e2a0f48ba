package model

import "image/color"

// CounterConfig defines the two wraparound limits of the counter.
type CounterConfig struct {
	PrimaryLimit   int
	SecondaryLimit int
}

// Point is a position in window pixels.
type Point struct {
	X float32
	Y float32
}

// Rect is an axis-aligned rectangle in window pixels.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Layout places the counter label inside the overlay window.
type Layout struct {
	WindowWidth  float32
	WindowHeight float32
	Label        Rect
}

// DefaultLayout returns the fixed overlay geometry.
func DefaultLayout() Layout {
	return Layout{
		WindowWidth:  300,
		WindowHeight: 200,
		Label:        Rect{X: 50, Y: 50, Width: 200, Height: 100},
	}
}

// StyleConfig contains the display parameters of the overlay.
type StyleConfig struct {
	Prefix          string
	FontColor       color.NRGBA
	SwitchFontColor color.NRGBA
	OutlineColor    color.NRGBA
	IndicatorColor  color.NRGBA

	FontSize          float32
	IndicatorFontSize float32
	ShowIndicator     bool
	IndicatorOffset   Point

	WindowPosition Point
}
