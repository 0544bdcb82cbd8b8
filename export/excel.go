package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"pipeflow/calculator"
	"pipeflow/model"
)

const (
	LengthColumn = "length"

	maxSheetName = 31
)

var ErrEmptySeries = errors.New("empty result series")

// Table is a worksheet read back into columns.
type Table struct {
	Sheet   string
	Headers []string
	Columns map[string][]float64
}

func WorkbookPath(root string, o model.Orientation, fluid string) string {
	return filepath.Join(root, "excel_sheets", o.String(), fmt.Sprintf("%s_%s.xlsx", fluid, o))
}

func SheetName(fluid string) string {
	name := "Values for Fluid " + fluid
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	return name
}

// WriteWorkbook writes one fluid: row 1 holds the headers (length first, then
// calculator.SeriesKeys), data starts at row 2 with one row per sweep point.
func WriteWorkbook(path, fluid string, lengths []float64, series calculator.Series) error {
	if len(series) == 0 {
		return ErrEmptySeries
	}
	headers := append([]string{LengthColumn}, calculator.SeriesKeys...)
	columns := make([][]float64, 0, len(headers))
	columns = append(columns, lengths)
	for _, k := range calculator.SeriesKeys {
		columns = append(columns, series[k])
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(fluid)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		for row, v := range columns[col] {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	log.WithFields(log.Fields{"fluid": fluid, "path": path}).Info("导出表格")
	return nil
}

// ReadWorkbook reads the first sheet of a workbook written by WriteWorkbook.
func ReadWorkbook(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return Table{}, err
	}
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("%s: %w", path, ErrEmptySeries)
	}

	t := Table{
		Sheet:   sheet,
		Headers: rows[0],
		Columns: make(map[string][]float64, len(rows[0])),
	}
	for _, row := range rows[1:] {
		for i, h := range t.Headers {
			if i >= len(row) || row[i] == "" {
				continue
			}
			v, err := strconv.ParseFloat(row[i], 64)
			if err != nil {
				return Table{}, fmt.Errorf("%s column %s: %w", path, h, err)
			}
			t.Columns[h] = append(t.Columns[h], v)
		}
	}
	return t, nil
}
