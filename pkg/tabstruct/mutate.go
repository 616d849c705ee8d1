package tabstruct

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// DefaultFontKey is the mapping key whose value replaces fonts matching no
// explicit old name in MapFonts.
const DefaultFontKey = "Default"

// SetFieldHidden sets or clears the hidden marker on every column whose
// internal name or caption matches field. When datasource is non-empty the
// edit is scoped to datasources with that caption. It returns the number of
// columns touched; zero matches is a no-op, not an error.
func (wb *Workbook) SetFieldHidden(field, datasource string, hidden bool) int {
	wb.meta = nil

	// Internal names carry bracket delimiters; captions do not.
	wrapped := "[" + field + "]"

	var matched []*etree.Element
	for _, ds := range wb.doc.FindElements("//datasource") {
		if datasource != "" && ds.SelectAttrValue("caption", "") != datasource {
			continue
		}
		for _, col := range ds.FindElements("./column") {
			if col.SelectAttrValue("name", "") == wrapped || col.SelectAttrValue("caption", "") == field {
				matched = append(matched, col)
			}
		}
	}

	for _, col := range matched {
		col.CreateAttr("hidden", strconv.FormatBool(hidden))
	}
	return len(matched)
}

// SetFont replaces every font in the workbook with font: all explicit
// font-family format overrides, all text-run fontname overrides, and every
// style rule lacking a font-family override gets one injected.
func (wb *Workbook) SetFont(font string) {
	wb.meta = nil

	for _, format := range wb.doc.FindElements("//format[@attr='font-family']") {
		format.CreateAttr("value", font)
	}
	for _, run := range wb.doc.FindElements("//run") {
		if run.SelectAttr("fontname") != nil {
			run.CreateAttr("fontname", font)
		}
	}
	wb.injectStyleRuleFont(font)
}

// MapFonts substitutes fonts per an old-name to new-name table. Old names
// match case-insensitively. Every mapping carries an implicit "Default"
// entry equal to target: it is the fallback for text runs matching no
// explicit old name and drives the style-rule injection that SetFont
// performs. A caller-supplied "Default" entry overrides target.
func (wb *Workbook) MapFonts(target string, mapping map[string]string) {
	wb.meta = nil
	fallback := mapping[DefaultFontKey]
	if fallback == "" {
		fallback = target
	}

	for _, format := range wb.doc.FindElements("//format[@attr='font-family']") {
		if repl, ok := lookupFont(mapping, format.SelectAttrValue("value", "")); ok {
			format.CreateAttr("value", repl)
		}
	}

	for _, run := range wb.doc.FindElements("//run") {
		name := run.SelectAttr("fontname")
		if name == nil {
			continue
		}
		if repl, ok := lookupFont(mapping, name.Value); ok {
			run.CreateAttr("fontname", repl)
		} else if fallback != "" {
			run.CreateAttr("fontname", fallback)
		}
	}

	if fallback != "" {
		wb.injectStyleRuleFont(fallback)
	}
}

func lookupFont(mapping map[string]string, old string) (string, bool) {
	for k, v := range mapping {
		if k == DefaultFontKey {
			continue
		}
		if strings.EqualFold(k, old) {
			return v, true
		}
	}
	return "", false
}

func (wb *Workbook) injectStyleRuleFont(font string) {
	for _, rule := range wb.doc.FindElements("//style-rule") {
		if rule.FindElement("./format[@attr='font-family']") != nil {
			continue
		}
		format := rule.CreateElement("format")
		format.CreateAttr("attr", "font-family")
		format.CreateAttr("value", font)
	}
}
