package models

// Field represents a workbook field paired with its owning datasource.
type Field struct {
	// Label is the display caption when declared, otherwise the internal
	// name with its surrounding brackets stripped.
	Label string `json:"label"`
	// Datasource is the caption of the owning datasource.
	Datasource string `json:"datasource"`
}
