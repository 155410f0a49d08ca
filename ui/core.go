package ui

import "image/color"

const (
	titleBarHeight = 20.0
	resizeArea     = 5.0
	closePadding   = 3.0
	panelAlpha     = 200
)

// Chrome holds the window decoration metrics.
type Chrome struct {
	BarHeight float64 // title bar height
	EdgeGrab  float64 // how far an edge grab reaches to either side of the border
	CloseSize float64 // side of the square close box, 0 means BarHeight
}

// DefaultChrome returns the stock metrics.
func DefaultChrome() Chrome {
	return Chrome{
		BarHeight: titleBarHeight,
		EdgeGrab:  resizeArea,
		CloseSize: titleBarHeight,
	}
}

func (c Chrome) closeSize() float64 {
	if c.CloseSize <= 0 {
		return c.BarHeight
	}
	return c.CloseSize
}

// Colors used for window chrome.
var (
	bodyColor   = color.RGBA{100, 100, 100, panelAlpha}
	titleColor  = color.RGBA{60, 60, 60, panelAlpha}
	borderColor = color.RGBA{30, 30, 30, 255}
)

// Titled is implemented by content that names its window.
type Titled interface {
	Title() string
}
