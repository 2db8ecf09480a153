// Package pixel implements the RGB565 color model and frame buffer used by SPI TFT panels.
//
// The types are compatible with Go's native [color.Color] and [image.Image] / [draw.Image]
// interfaces, so any of the standard drawing routines can target a panel frame buffer.
package pixel
