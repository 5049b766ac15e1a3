// Package raster holds the RGB image buffer shared by the modulator and the
// histogram comparator.
//
// A [Buffer] is a row-major array of 8-bit samples with exactly three
// channels (R, G, B) per pixel. Conversion from [image.Image] always goes
// through non-premultiplied RGBA and discards alpha, so a translucent source
// keeps its straight color values.
//
// Decoding registers PNG, JPEG, GIF, BMP and WebP.
package raster
