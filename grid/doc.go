// Package grid implements the pure cell-grid model for Quilt: cell text,
// drag selection, and merged spans.
//
// Coordinates are 0-based (Row, Col) cell positions.
// Rectangles are inclusive on all four edges.
// Operations never panic on bad input; they report a Result instead.
package grid
