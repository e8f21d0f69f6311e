package ui

import (
	"image"

	"github.com/qeesung/image2ascii/convert"
)

const (
	thumbWidth  = 32
	thumbHeight = 14
)

// thumbnailURL points at the catalog's reduced-size rendition of a meal image.
func thumbnailURL(thumb string) string {
	if thumb == "" {
		return ""
	}
	return thumb + "/preview"
}

// renderThumbnail converts a meal image to colored ASCII art sized for the detail view.
func renderThumbnail(img image.Image, targetWidth, targetHeight int) string {
	if img == nil {
		return ""
	}
	converter := convert.NewImageConverter()

	opts := convert.DefaultOptions
	opts.FixedWidth = targetWidth
	opts.FixedHeight = targetHeight
	opts.FitScreen = false
	opts.Colored = true
	opts.Ratio = 0.5 // terminal cells are about twice as tall as wide

	return converter.Image2ASCIIString(img, &opts)
}
