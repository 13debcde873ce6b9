// Package report renders aggregation results as downloadable spreadsheets
// for analysts who want the numbers behind the charts.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"catastro-insights-go/internal/types"
)

// StatisticsWorkbook builds an xlsx file with one sheet per aggregate.
func StatisticsWorkbook(s types.StatisticsData) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "Temporal")

	if err := writeSheet(f, "Temporal", [2]string{"Periodo", "Anomalías"}, len(s.Temporal), func(i int) (string, int) {
		return s.Temporal[i].Period, s.Temporal[i].Value
	}); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet("Tipos"); err != nil {
		return nil, err
	}
	if err := writeSheet(f, "Tipos", [2]string{"Tipo", "Registros"}, len(s.ByType), func(i int) (string, int) {
		return s.ByType[i].Name, s.ByType[i].Count
	}); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet("Geografico"); err != nil {
		return nil, err
	}
	if err := writeSheet(f, "Geografico", [2]string{"Departamento", "Registros"}, len(s.Geographic), func(i int) (string, int) {
		return s.Geographic[i].Name, s.Geographic[i].Count
	}); err != nil {
		return nil, err
	}

	return f, nil
}

func writeSheet(f *excelize.File, sheet string, header [2]string, n int, at func(i int) (string, int)) error {
	if err := f.SetCellValue(sheet, "A1", header[0]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.SetCellValue(sheet, "B1", header[1]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < n; i++ {
		name, count := at(i)
		row := i + 2
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", row), name); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", row), count); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
	}
	return nil
}
