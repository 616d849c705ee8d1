// Package packager handles the packaged workbook variant: a zip archive
// bundling one workbook document with auxiliary extract members.
package packager

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
)

// DocumentToken identifies the workbook document member inside a package.
const DocumentToken = ".twb"

// ErrNoDocument indicates a package contains no workbook document member.
var ErrNoDocument = errors.New("package contains no workbook document")

// ReadDocument opens a packaged workbook and parses its document member.
// It returns the parsed tree and the member's name inside the archive.
func ReadDocument(path string) (*etree.Document, string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, "", fmt.Errorf("open package %s: %w", path, err)
	}
	defer r.Close()

	member := findDocumentMember(&r.Reader)
	if member == nil {
		return nil, "", fmt.Errorf("%s: %w", path, ErrNoDocument)
	}

	rc, err := member.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open member %s: %w", member.Name, err)
	}
	defer rc.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(rc); err != nil {
		return nil, "", fmt.Errorf("parse member %s: %w", member.Name, err)
	}
	return doc, member.Name, nil
}

// ExtractMembers unpacks every non-document member of the package at src
// into destDir, preserving member paths. Extraction is idempotent: when
// destDir already exists it is left untouched.
func ExtractMembers(src, destDir string) error {
	if _, err := os.Stat(destDir); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	r, err := zip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("open package %s: %w", src, err)
	}
	defer r.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return err
	}

	for _, f := range r.File {
		if strings.Contains(f.Name, DocumentToken) || f.FileInfo().IsDir() {
			continue
		}
		if err := extractMember(f, destDir); err != nil {
			return fmt.Errorf("extract member %s: %w", f.Name, err)
		}
	}
	return nil
}

func extractMember(f *zip.File, destDir string) error {
	// Member names are archive-relative; reject any that would escape.
	dest := filepath.Join(destDir, filepath.FromSlash(f.Name))
	if !strings.HasPrefix(dest, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return fmt.Errorf("member path escapes destination: %s", f.Name)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}

// WritePackage re-creates a package at dest from every file under srcDir,
// excluding nested package artifacts. Member names are srcDir-relative.
// The zip central directory is flushed on close, so close errors are write
// errors and must reach the caller.
func WritePackage(srcDir, dest string) error {
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create package %s: %w", dest, err)
	}

	zw := zip.NewWriter(out)
	walkErr := filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".twbx") {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()

		_, err = io.Copy(w, in)
		return err
	})

	if err := zw.Close(); walkErr == nil && err != nil {
		walkErr = fmt.Errorf("finalize package %s: %w", dest, err)
	}
	if err := out.Close(); walkErr == nil && err != nil {
		walkErr = fmt.Errorf("close package %s: %w", dest, err)
	}
	return walkErr
}

func findDocumentMember(r *zip.Reader) *zip.File {
	for _, f := range r.File {
		if strings.Contains(f.Name, DocumentToken) {
			return f
		}
	}
	return nil
}
