// Package render turns a sprite's pixels into terminal art.
//
// Two modes are supported. Half-block mode packs two vertically stacked
// pixels into one character cell: the upper pixel becomes the foreground of
// an upper half block (▀) and the lower pixel its background. Since a cell is
// roughly twice as tall as it is wide, this approximates square pixels.
// Full-color mode paints one pixel per cell as a space with a background
// colour.
//
// Fully transparent pixels (alpha 0) are never coloured, so the art sits on
// the terminal's own background. Colours use 24-bit SGR sequences and every
// coloured cell is closed with a reset.
package render
