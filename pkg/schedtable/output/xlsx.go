package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/schedtable-go/pkg/schedtable/models"
)

// maxSheetName is the sheet name length limit of Excel.
const maxSheetName = 31

// Column widths in characters.
const (
	timeColumnWidth = 9
	roomColumnWidth = 24
)

// ToXLSX builds a workbook with one sheet per day. Spanning cells become
// merged ranges and cell content is reduced to its text.
func ToXLSX(tt *models.Timetable) (*excelize.File, error) {
	f := excelize.NewFile()

	cellStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Border: []excelize.Border{
			{Type: "left", Color: "999999", Style: 1},
			{Type: "top", Color: "999999", Style: 1},
			{Type: "right", Color: "999999", Style: 1},
			{Type: "bottom", Color: "999999", Style: 1},
		},
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	used := make(map[string]bool)
	for i, d := range tt.Days {
		name := sheetName(d, used)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetList()[0], name); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
		if err := writeSheet(f, name, d.Table, cellStyle, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("day %s: %w", d.Date, err)
		}
	}
	return f, nil
}

// WriteXLSX writes the workbook of a timetable to w.
func WriteXLSX(w io.Writer, tt *models.Timetable) error {
	f, err := ToXLSX(tt)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func writeSheet(f *excelize.File, sheet string, t *models.Table, cellStyle, headerStyle int) error {
	// offsets of the first grid row and column (1-based)
	rowOffset, colOffset := 1, 1
	if t.Header != nil {
		rowOffset++
	}
	if t.RowHeaders {
		colOffset++
		if err := f.SetColWidth(sheet, "A", "A", timeColumnWidth); err != nil {
			return err
		}
	}

	if t.Header != nil {
		for i, label := range t.Header.Labels {
			cell, _ := excelize.CoordinatesToCellName(colOffset+i, 1)
			if err := f.SetCellStr(sheet, cell, label); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
				return err
			}
		}
		first, _ := excelize.ColumnNumberToName(colOffset)
		last, _ := excelize.ColumnNumberToName(colOffset + len(t.Header.Labels) - 1)
		if err := f.SetColWidth(sheet, first, last, roomColumnWidth); err != nil {
			return err
		}
	}

	for _, row := range t.Rows {
		r := rowOffset + row.Index
		if t.RowHeaders {
			cell, _ := excelize.CoordinatesToCellName(1, r)
			if err := f.SetCellStr(sheet, cell, row.Header); err != nil {
				return err
			}
		}
		for _, c := range row.Cells {
			if c.IsEmpty() {
				continue
			}
			topLeft, _ := excelize.CoordinatesToCellName(colOffset+c.Col, r)
			bottomRight, _ := excelize.CoordinatesToCellName(colOffset+c.Col+c.ColSpan-1, r+c.RowSpan-1)
			if err := f.SetCellStr(sheet, topLeft, fragmentText(c.Content)); err != nil {
				return err
			}
			if topLeft != bottomRight {
				if err := f.MergeCell(sheet, topLeft, bottomRight); err != nil {
					return err
				}
			}
			if err := f.SetCellStyle(sheet, topLeft, bottomRight, cellStyle); err != nil {
				return err
			}
		}
	}
	return nil
}

// sheetName derives a unique, valid sheet name for a day.
func sheetName(d models.DayTable, used map[string]bool) string {
	base := d.Name
	if base == "" {
		base = d.Date
	}
	base = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '-'
		}
		return r
	}, base)
	base = truncateRunes(base, maxSheetName)
	name := base
	for i := 2; used[name]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		name = truncateRunes(base, maxSheetName-len(suffix)) + suffix
	}
	used[name] = true
	return name
}

// truncateRunes shortens s to at most n characters.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
