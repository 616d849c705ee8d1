// Package output serializes extracted metadata for the CLI.
package output

import (
	"encoding/json"

	"github.com/tabstruct/tabstruct-go/pkg/tabstruct/models"
)

// ToJSON serializes a metadata snapshot to JSON.
func ToJSON(meta *models.WorkbookMeta, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(meta, "", "  ")
	}
	return json.Marshal(meta)
}
