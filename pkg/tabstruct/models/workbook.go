package models

// WorkbookMeta represents the metadata extracted from a single workbook.
type WorkbookMeta struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// CustomSQL contains distinct lower-cased custom SQL queries.
	CustomSQL []string `json:"custom_sql,omitempty"`
	// FileConnections contains distinct file-based connection paths
	// (Excel, CSV and similar), case preserved.
	FileConnections []string `json:"file_connections,omitempty"`
	// CloudConnections contains distinct cloud-provider connection paths.
	CloudConnections []string `json:"cloud_connections,omitempty"`
	// DBConnections contains distinct database connections.
	DBConnections []DBConnection `json:"db_connections,omitempty"`
	// Fonts contains distinct lower-cased font names.
	Fonts []string `json:"fonts,omitempty"`
	// Colors contains color assignments ordered by sheet, then element.
	Colors []StyleColor `json:"colors,omitempty"`
	// ColorPalettes contains distinct named color palettes.
	ColorPalettes []string `json:"color_palettes,omitempty"`
	// Images contains distinct lower-cased image paths placed on dashboards.
	Images []string `json:"images,omitempty"`
	// Shapes contains distinct lower-cased custom shape names.
	Shapes []string `json:"shapes,omitempty"`
	// Fields contains every declared field, sorted.
	Fields []Field `json:"fields,omitempty"`
	// ActiveFields contains the fields referenced by at least one view, sorted.
	ActiveFields []Field `json:"active_fields,omitempty"`
	// HiddenFields contains the declared fields carrying a hidden marker, sorted.
	HiddenFields []Field `json:"hidden_fields,omitempty"`
}
