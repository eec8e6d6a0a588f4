// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domaincheck

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
)

// DefaultOutputFile is the file written by batch runs when no output
// path is given.
const DefaultOutputFile = "domain_check_results.csv"

// xlsxSheet is the sheet name used by the XLSX export.
const xlsxSheet = "Results"

// WriteCSV writes records as UTF-8 CSV with the fixed [Header] row and
// no index column. Sentinel strings are written verbatim, so the export
// schema is identical regardless of which checks ran.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec.Row()); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV writes records to a CSV file at path, creating or truncating it.
func SaveCSV(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteXLSX writes records as an XLSX workbook with a single sheet,
// same columns and cell contents as the CSV form.
func WriteXLSX(w io.Writer, records []Record) error {
	f, err := newWorkbook(records)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

// SaveXLSX writes records to an XLSX file at path.
func SaveXLSX(path string, records []Record) error {
	f, err := newWorkbook(records)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.SaveAs(path)
}

// newWorkbook builds the in-memory workbook shared by the XLSX writers.
func newWorkbook(records []Record) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		f.Close()
		return nil, err
	}

	if err := setRow(f, 1, Header); err != nil {
		f.Close()
		return nil, err
	}
	for i, rec := range records {
		if err := setRow(f, i+2, rec.Row()); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// setRow writes a full row of string cells at the given 1-based row index.
func setRow(f *excelize.File, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(xlsxSheet, cell, &cells)
}
