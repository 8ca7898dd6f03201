package dataset

import (
	"github.com/xuri/excelize/v2"
)

// readXLSX pulls rows from the first sheet of a workbook. Formatted cell
// values are used so numeric cells round-trip through the same parsing as
// CSV fields.
func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "open workbook", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &LoadError{Path: path, Reason: "workbook has no sheets"}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "read sheet " + sheets[0], Err: err}
	}
	return rows, nil
}
