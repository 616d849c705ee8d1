package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tabstruct/tabstruct-go/pkg/tabstruct/models"
)

// WriteXLSX exports the metadata snapshot as an Excel workbook with
// Overview, Connections, Fields, and Colors sheets.
func WriteXLSX(path string, meta *models.WorkbookMeta) error {
	if meta == nil {
		return fmt.Errorf("xlsx export: no metadata")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Overview"); err != nil {
		return err
	}
	overview := [][]interface{}{
		{"Workbook", meta.BookName},
		{"Custom SQL queries", len(meta.CustomSQL)},
		{"File connections", len(meta.FileConnections)},
		{"Cloud connections", len(meta.CloudConnections)},
		{"Database connections", len(meta.DBConnections)},
		{"Fonts", len(meta.Fonts)},
		{"Color palettes", len(meta.ColorPalettes)},
		{"Images", len(meta.Images)},
		{"Shapes", len(meta.Shapes)},
		{"Fields", len(meta.Fields)},
		{"Active fields", len(meta.ActiveFields)},
		{"Hidden fields", len(meta.HiddenFields)},
	}
	if err := writeRows(f, "Overview", nil, overview); err != nil {
		return err
	}

	connections := make([][]interface{}, 0, len(meta.FileConnections)+len(meta.CloudConnections)+len(meta.DBConnections))
	for _, c := range meta.FileConnections {
		connections = append(connections, []interface{}{"file", c, ""})
	}
	for _, c := range meta.CloudConnections {
		connections = append(connections, []interface{}{"cloud", c, ""})
	}
	for _, c := range meta.DBConnections {
		connections = append(connections, []interface{}{"database", c.Name, c.Class})
	}
	if err := addSheet(f, "Connections", []interface{}{"Kind", "Target", "Class"}, connections); err != nil {
		return err
	}

	fields := make([][]interface{}, 0, len(meta.Fields))
	for _, fld := range meta.Fields {
		fields = append(fields, []interface{}{fld.Label, fld.Datasource, contains(meta.ActiveFields, fld), contains(meta.HiddenFields, fld)})
	}
	if err := addSheet(f, "Fields", []interface{}{"Label", "Datasource", "Active", "Hidden"}, fields); err != nil {
		return err
	}

	colors := make([][]interface{}, 0, len(meta.Colors))
	for _, c := range meta.Colors {
		colors = append(colors, []interface{}{c.Sheet, c.Element, c.Color})
	}
	if err := addSheet(f, "Colors", []interface{}{"Sheet", "Element", "Color"}, colors); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save xlsx %s: %w", path, err)
	}
	return nil
}

func addSheet(f *excelize.File, name string, header []interface{}, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	return writeRows(f, name, header, rows)
}

func writeRows(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	rowNum := 1
	if header != nil {
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return err
		}
		rowNum = 2
	}
	for _, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
		rowNum++
	}
	return nil
}

func contains(fields []models.Field, f models.Field) bool {
	for _, x := range fields {
		if x == f {
			return true
		}
	}
	return false
}
