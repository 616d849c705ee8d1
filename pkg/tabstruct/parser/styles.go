package parser

import (
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/tabstruct/tabstruct-go/pkg/tabstruct/models"
)

// Fonts returns the distinct font names used in the workbook, lower-cased.
// Fonts appear in two places: explicit font-family format overrides and
// per-run fontname overrides inside formatted text.
func Fonts(doc *etree.Document) []string {
	set := make(map[string]struct{})
	for _, format := range doc.FindElements("//format[@attr='font-family']") {
		if v := format.SelectAttrValue("value", ""); v != "" {
			set[strings.ToLower(v)] = struct{}{}
		}
	}
	for _, run := range doc.FindElements("//run") {
		if v := run.SelectAttrValue("fontname", ""); v != "" {
			set[strings.ToLower(v)] = struct{}{}
		}
	}
	return sortedSet(set)
}

// Colors returns every distinct color assignment in the workbook, tagged
// with the owning worksheet and the styled element ("tooltip" for text
// runs), ordered by sheet, then element, then color.
func Colors(doc *etree.Document) []models.StyleColor {
	set := make(map[models.StyleColor]struct{})

	for _, sheet := range doc.FindElements("//worksheet") {
		sheetName := sheet.SelectAttrValue("name", "")

		for _, rule := range sheet.FindElements(".//style-rule") {
			element := rule.SelectAttrValue("element", "")
			for _, format := range rule.FindElements(".//format") {
				value := format.SelectAttrValue("value", "")
				if !strings.Contains(value, "#") {
					continue
				}
				set[models.StyleColor{Sheet: sheetName, Element: element, Color: value}] = struct{}{}
			}
		}

		for _, text := range sheet.FindElements(".//formatted-text") {
			for _, run := range text.FindElements(".//run") {
				fontcolor := run.SelectAttrValue("fontcolor", "")
				if !strings.Contains(fontcolor, "#") {
					continue
				}
				set[models.StyleColor{Sheet: sheetName, Element: models.TooltipElement, Color: fontcolor}] = struct{}{}
			}
		}
	}

	out := make([]models.StyleColor, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sheet != out[j].Sheet {
			return out[i].Sheet < out[j].Sheet
		}
		if out[i].Element != out[j].Element {
			return out[i].Element < out[j].Element
		}
		return out[i].Color < out[j].Color
	})
	return out
}

// ColorPalettes returns the distinct named color palettes assigned to
// encodings in the workbook.
func ColorPalettes(doc *etree.Document) []string {
	set := make(map[string]struct{})
	for _, enc := range doc.FindElements("//encoding") {
		if palette := enc.SelectAttrValue("palette", ""); palette != "" {
			set[palette] = struct{}{}
		}
	}
	return sortedSet(set)
}
