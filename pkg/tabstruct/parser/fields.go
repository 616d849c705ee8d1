package parser

import (
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/tabstruct/tabstruct-go/pkg/tabstruct/models"
)

// parametersDatasource is the reserved pseudo-datasource holding workbook
// parameters. Its dependency blocks do not describe real fields.
const parametersDatasource = "Parameters"

// DeclaredFields returns every field declared by a captioned datasource,
// as sorted (label, datasource caption) pairs.
func DeclaredFields(doc *etree.Document) []models.Field {
	return collectDeclared(doc, false)
}

// HiddenFields returns the declared fields carrying a hidden='true' marker.
func HiddenFields(doc *etree.Document) []models.Field {
	return collectDeclared(doc, true)
}

func collectDeclared(doc *etree.Document, hiddenOnly bool) []models.Field {
	set := make(map[models.Field]struct{})
	for _, ds := range doc.FindElements("//datasource") {
		caption := ds.SelectAttrValue("caption", "")
		if caption == "" {
			continue
		}
		for _, col := range ds.FindElements("./column") {
			if hiddenOnly && col.SelectAttrValue("hidden", "") != "true" {
				continue
			}
			label, ok := columnLabel(col)
			if !ok {
				continue
			}
			set[models.Field{Label: label, Datasource: caption}] = struct{}{}
		}
	}
	return sortFields(set)
}

// ActiveFields returns the fields referenced by at least one view, resolved
// against the declaring datasource's caption. Dependency blocks name a
// datasource only by its coded identifier; when no captioned declaration
// matches, a ResolveError is returned unless skipUnresolved is set, in which
// case the block is dropped.
func ActiveFields(doc *etree.Document, skipUnresolved bool) ([]models.Field, error) {
	set := make(map[models.Field]struct{})
	for _, view := range doc.FindElements("//view") {
		for _, dep := range view.FindElements("./datasource-dependencies") {
			coded := dep.SelectAttrValue("datasource", "")
			if coded == "" || coded == parametersDatasource {
				continue
			}

			cols := dep.FindElements("./column")
			if len(cols) == 0 {
				continue
			}

			caption, ok := resolveDatasource(view, doc, coded)
			if !ok {
				if skipUnresolved {
					continue
				}
				return nil, &ResolveError{Datasource: coded}
			}

			for _, col := range cols {
				label, labelOK := columnLabel(col)
				if !labelOK {
					continue
				}
				set[models.Field{Label: label, Datasource: caption}] = struct{}{}
			}
		}
	}
	return sortFields(set), nil
}

// resolveDatasource maps a coded datasource identifier to its human caption,
// preferring declarations local to the view over document-wide ones.
func resolveDatasource(view *etree.Element, doc *etree.Document, coded string) (string, bool) {
	for _, scope := range [][]*etree.Element{
		view.FindElements(".//datasource"),
		doc.FindElements("//datasource"),
	} {
		for _, ds := range scope {
			if ds.SelectAttrValue("name", "") != coded {
				continue
			}
			if caption := ds.SelectAttrValue("caption", ""); caption != "" {
				return caption, true
			}
		}
	}
	return "", false
}

// columnLabel returns the display label for a column: the caption when one
// is declared alongside the internal name, otherwise the cleaned internal
// name. Columns without an internal name carry no label.
func columnLabel(col *etree.Element) (string, bool) {
	name := col.SelectAttr("name")
	if name == nil {
		return "", false
	}
	if caption := col.SelectAttrValue("caption", ""); caption != "" {
		return caption, true
	}
	return TrimBrackets(name.Value), true
}

// TrimBrackets strips one leading "[" and one trailing "]" from an internal
// field name.
func TrimBrackets(name string) string {
	name = strings.TrimPrefix(name, "[")
	return strings.TrimSuffix(name, "]")
}

func sortFields(set map[models.Field]struct{}) []models.Field {
	out := make([]models.Field, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Label != out[j].Label {
			return out[i].Label < out[j].Label
		}
		return out[i].Datasource < out[j].Datasource
	})
	return out
}
