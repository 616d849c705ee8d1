package tabstruct

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tabstruct/tabstruct-go/pkg/tabstruct/packager"
)

// Save serializes the (possibly mutated) document tree as a plain workbook
// file at path.
func (wb *Workbook) Save(path string) error {
	if err := wb.doc.WriteToFile(path); err != nil {
		return fmt.Errorf("write workbook %s: %w", path, err)
	}
	return nil
}

// SavePackaged re-creates a packaged workbook at dest: the auxiliary members
// of the original package are extracted into the files directory beside the
// source (skipped when it already exists), the mutated document is written
// there, and the directory contents are zipped into dest. The directory is
// left in place. Saving a non-package source this way is ErrUnsupportedSave.
func (wb *Workbook) SavePackaged(dest string) error {
	if wb.kind != KindPackage {
		return fmt.Errorf("save package %s: %w", dest, ErrUnsupportedSave)
	}

	filesDir := wb.FilesDir()
	if err := packager.ExtractMembers(wb.path, filesDir); err != nil {
		return err
	}

	docPath := filepath.Join(filesDir, filepath.Base(wb.member))
	if err := wb.Save(docPath); err != nil {
		return err
	}

	return packager.WritePackage(filesDir, dest)
}

// FilesDir returns the sibling directory that holds extracted package
// members during a packaged save.
func (wb *Workbook) FilesDir() string {
	stem := strings.TrimSuffix(filepath.Base(wb.path), filepath.Ext(wb.path))
	return filepath.Join(filepath.Dir(wb.path), stem+"_files")
}
