package tabstruct

import (
	"path/filepath"

	"github.com/tiendc/go-deepcopy"

	"github.com/tabstruct/tabstruct-go/pkg/tabstruct/models"
	"github.com/tabstruct/tabstruct-go/pkg/tabstruct/parser"
)

// Extract runs every extractor over the document tree and returns the
// metadata snapshot. The snapshot is computed once and cached until a
// mutator touches the tree; callers receive a deep copy and cannot alias
// the cache.
func (wb *Workbook) Extract() (*models.WorkbookMeta, error) {
	if wb.meta == nil {
		active, err := parser.ActiveFields(wb.doc, wb.opts.SkipUnresolved)
		if err != nil {
			return nil, err
		}

		wb.meta = &models.WorkbookMeta{
			BookName:         filepath.Base(wb.path),
			CustomSQL:        parser.CustomSQL(wb.doc),
			FileConnections:  parser.FileConnections(wb.doc),
			CloudConnections: parser.CloudConnections(wb.doc, wb.opts.cloudProvider()),
			DBConnections:    parser.DBConnections(wb.doc),
			Fonts:            parser.Fonts(wb.doc),
			Colors:           parser.Colors(wb.doc),
			ColorPalettes:    parser.ColorPalettes(wb.doc),
			Images:           parser.Images(wb.doc),
			Shapes:           parser.Shapes(wb.doc),
			Fields:           parser.DeclaredFields(wb.doc),
			ActiveFields:     active,
			HiddenFields:     parser.HiddenFields(wb.doc),
		}
	}

	out := &models.WorkbookMeta{}
	if err := deepcopy.Copy(out, wb.meta); err != nil {
		return nil, err
	}
	return out, nil
}
