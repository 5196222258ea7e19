package spreadsheet

import (
	"errors"
	"io"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/campushub/campus-accounts/internal/models"
)

// ErrNoSheets is returned for a workbook without any worksheet.
var ErrNoSheets = errors.New("workbook has no sheets")

// ReadFirstSheet extracts the data rows of an OOXML (.xlsx) workbook's
// first sheet. Row 1 is treated as the header; each returned row maps
// header column names to cell values and carries its spreadsheet row
// number, so the first data row is numbered 2. A header-only sheet yields
// zero rows.
func ReadFirstSheet(r io.Reader) ([]models.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	return rowsFromRaw(raw), nil
}

// ReadLegacyFirstSheet is ReadFirstSheet for BIFF (.xls) workbooks, which
// excelize cannot open.
func ReadLegacyFirstSheet(r io.ReadSeeker) ([]models.ImportRow, error) {
	wb, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, err
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, ErrNoSheets
	}

	raw := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			raw = append(raw, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for j := row.FirstCol(); j < row.LastCol(); j++ {
			cells[j] = row.Col(j)
		}
		raw = append(raw, cells)
	}

	return rowsFromRaw(raw), nil
}

// rowsFromRaw maps raw sheet rows onto header-keyed import rows. Rows are
// numbered from 2; short rows pad missing cells with "".
func rowsFromRaw(raw [][]string) []models.ImportRow {
	if len(raw) == 0 {
		return nil
	}

	header := make([]string, len(raw[0]))
	for i, cell := range raw[0] {
		header[i] = strings.TrimSpace(cell)
	}

	rows := make([]models.ImportRow, 0, len(raw)-1)
	for i, cells := range raw[1:] {
		fields := make(map[string]string, len(header))
		for j, name := range header {
			if name == "" {
				continue
			}
			if j < len(cells) {
				fields[name] = cells[j]
			} else {
				fields[name] = ""
			}
		}
		rows = append(rows, models.ImportRow{Number: i + 2, Fields: fields})
	}

	return rows
}
