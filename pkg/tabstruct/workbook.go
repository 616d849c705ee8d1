package tabstruct

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"

	"github.com/tabstruct/tabstruct-go/pkg/tabstruct/models"
	"github.com/tabstruct/tabstruct-go/pkg/tabstruct/packager"
	"github.com/tabstruct/tabstruct-go/pkg/tabstruct/parser"
)

// Kind identifies the workbook file variant.
type Kind string

const (
	// KindDocument is a plain .twb workbook document.
	KindDocument Kind = "twb"
	// KindPackage is a packaged .twbx workbook.
	KindPackage Kind = "twbx"
)

// Workbook is an in-memory workbook session. It owns the parsed document
// tree and is not safe for concurrent use: one caller performs sequential
// read, mutate, and save calls.
type Workbook struct {
	path   string
	kind   Kind
	member string // document member name inside the package, if packaged
	doc    *etree.Document
	opts   Options

	meta *models.WorkbookMeta // extraction cache, cleared by mutators
}

// Open loads the workbook at path with default options.
func Open(path string) (*Workbook, error) {
	return OpenWithOptions(path, DefaultOptions())
}

// OpenWithOptions loads the workbook at path. The variant is determined by
// extension: .twb parses directly, .twbx locates and parses the document
// member of the package. Any other extension is ErrInvalidFormat.
func OpenWithOptions(path string, opts Options) (*Workbook, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".twb":
		doc := etree.NewDocument()
		if err := doc.ReadFromFile(path); err != nil {
			return nil, fmt.Errorf("parse workbook %s: %w", path, err)
		}
		return &Workbook{path: path, kind: KindDocument, doc: doc, opts: opts}, nil

	case ".twbx":
		doc, member, err := packager.ReadDocument(path)
		if err != nil {
			return nil, err
		}
		return &Workbook{path: path, kind: KindPackage, member: member, doc: doc, opts: opts}, nil

	default:
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidFormat)
	}
}

// Path returns the path the workbook was loaded from.
func (wb *Workbook) Path() string {
	return wb.path
}

// Kind returns the loaded workbook variant.
func (wb *Workbook) Kind() Kind {
	return wb.kind
}

// HiddenFields re-queries the tree, so the result reflects any hide or
// unhide mutation performed on this session.
func (wb *Workbook) HiddenFields() []models.Field {
	return parser.HiddenFields(wb.doc)
}
