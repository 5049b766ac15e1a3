// Package histogram compares the brightness distributions of an original
// and a modulated image.
//
// Brightness is luma (0.299 R + 0.587 G + 0.114 B). Each image yields a
// 256-bin density histogram over [0, 255] whose area is 1, so images with
// different pixel counts share a vertical scale. [Render] draws both
// histograms side by side into a PNG.
package histogram
