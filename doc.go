// Package rascii converts images into ASCII art.
//
// An image is split into a grid of tiles, each tile is reduced to its mean
// color and the brightness of that color picks a glyph from a palette. The
// resulting Grid is written with Render, which calls optional color
// callbacks before every glyph so that any terminal library can color the
// output.
package rascii
