// Package xlsx exports a grid to an Excel workbook.
//
// Export is one-way: cell text becomes string values, merged spans become
// merged ranges. Covered cells are written empty.
package xlsx
