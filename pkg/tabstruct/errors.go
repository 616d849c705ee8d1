package tabstruct

import "errors"

// ErrInvalidFormat indicates the input path is not a .twb or .twbx workbook.
var ErrInvalidFormat = errors.New("not a valid .twb or .twbx workbook")

// ErrUnsupportedSave indicates a packaged save was requested for a workbook
// that was not loaded from a package.
var ErrUnsupportedSave = errors.New("workbook was not loaded from a package")
