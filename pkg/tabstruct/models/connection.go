package models

// DBConnection represents a database connection declared in a workbook.
type DBConnection struct {
	// Name is the database name (the dbname attribute).
	Name string `json:"name"`
	// Class is the driver class identifier (postgres, sqlserver, ...).
	Class string `json:"class,omitempty"`
}
