// Package panel renders the text buffer onto pixel displays.
//
// A [Panel] is a sink that draws every cell with a font face onto a [Device],
// which is any [draw.Image] that can push its pixels to hardware. [SSD1306]
// drives the common 128x64 I²C OLED module; [Snapshot] keeps the pixels in
// memory.
package panel
