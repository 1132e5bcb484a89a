// Package gridview provides a Bubble Tea grid component backed by the grid
// package.
//
// The package is responsible for mouse drag selection, hit-testing across
// merged spans, declarative rendering of grid.Layout, the toolbar and row
// buttons, inline cell editing, and host integration hooks (intents, change
// events, clipboard, render snapshots).
package gridview
