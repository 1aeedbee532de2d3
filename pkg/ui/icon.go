package ui

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Super Nintendo console palette, same as the rest of the app branding.
var (
	iconBody   = color.RGBA{207, 207, 207, 255} // light gray shell
	iconAccent = color.RGBA{127, 127, 127, 255} // dark gray strip
	iconBar    = color.RGBA{107, 76, 165, 255}  // purple
	iconBarAlt = color.RGBA{177, 156, 217, 255} // lavender
)

// GenerateIcon renders the application icon: a console-gray tile with an
// ascending stat-bar chart.
func GenerateIcon(filename string) error {
	const size = 512
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	draw.Draw(img, img.Bounds(), &image.Uniform{iconBody}, image.Point{}, draw.Src)

	// Header strip across the top.
	strip := image.Rect(0, 0, size, 96)
	draw.Draw(img, strip, &image.Uniform{iconAccent}, image.Point{}, draw.Src)

	// Four ascending bars, alternating purple and lavender.
	const (
		barWidth = 72
		spacing  = 28
		baseline = size - 72
		startX   = 72
	)
	heights := []int{140, 200, 260, 320}
	for i, h := range heights {
		x := startX + i*(barWidth+spacing)
		rect := image.Rect(x, baseline-h, x+barWidth, baseline)
		fill := iconBar
		if i%2 == 1 {
			fill = iconBarAlt
		}
		draw.Draw(img, rect, &image.Uniform{fill}, image.Point{}, draw.Src)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}
