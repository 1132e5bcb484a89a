package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/iw2rmb/quilt/grid"
)

const defaultSheet = "Sheet1"

// Options configures an export.
type Options struct {
	// Sheet names the worksheet (default: "Sheet1").
	Sheet string
	// ColWidth sets every column's width in characters when positive.
	ColWidth float64
}

func (o Options) sheet() string {
	if o.Sheet == "" {
		return defaultSheet
	}
	return o.Sheet
}

// Build renders g into a new workbook. The caller owns the returned file and
// must Close it.
func Build(g *grid.Grid, opt Options) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := opt.sheet()
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("rename sheet: %w", err)
		}
	}

	if err := fill(f, sheet, g, opt); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func fill(f *excelize.File, sheet string, g *grid.Grid, opt Options) error {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell, _ := g.Cell(grid.Pos{Row: r, Col: c})
			if cell.Kind == grid.CellCovered || cell.Text == "" {
				continue
			}
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("cell name %d,%d: %w", r, c, err)
			}
			if err := f.SetCellStr(sheet, name, cell.Text); err != nil {
				return fmt.Errorf("set %s: %w", name, err)
			}
		}
	}

	for _, s := range g.Spans() {
		tl, err := excelize.CoordinatesToCellName(s.Left+1, s.Top+1)
		if err != nil {
			return fmt.Errorf("span start: %w", err)
		}
		br, err := excelize.CoordinatesToCellName(s.Right+1, s.Bottom+1)
		if err != nil {
			return fmt.Errorf("span end: %w", err)
		}
		if err := f.MergeCell(sheet, tl, br); err != nil {
			return fmt.Errorf("merge %s:%s: %w", tl, br, err)
		}
	}

	if opt.ColWidth > 0 && g.Cols() > 0 {
		last, err := excelize.ColumnNumberToName(g.Cols())
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheet, "A", last, opt.ColWidth); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}
	return nil
}

// Write exports g as an xlsx stream to w.
func Write(w io.Writer, g *grid.Grid, opt Options) error {
	f, err := Build(g, opt)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Save exports g to the file at path.
func Save(path string, g *grid.Grid, opt Options) error {
	f, err := Build(g, opt)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
