package parser

import (
	"strings"

	"github.com/beevik/etree"
)

// zoneTypeAttr is the feature-flagged zone type attribute key as written
// by Tableau Desktop. The dotted key cannot appear in a path filter, so
// zones are matched in Go.
const zoneTypeAttr = "_.fcp.SetMembershipControl.false...type"

// Images returns the distinct image paths placed on dashboard zones,
// lower-cased.
func Images(doc *etree.Document) []string {
	set := make(map[string]struct{})
	for _, zone := range doc.FindElements("//zone") {
		if zone.SelectAttrValue(zoneTypeAttr, "") != "bitmap" {
			continue
		}
		if param := zone.SelectAttrValue("param", ""); param != "" {
			set[strings.ToLower(param)] = struct{}{}
		}
	}
	return sortedSet(set)
}

// Shapes returns the distinct custom shape names used in the workbook,
// lower-cased.
func Shapes(doc *etree.Document) []string {
	set := make(map[string]struct{})
	for _, shape := range doc.FindElements("//shape") {
		if name := shape.SelectAttrValue("name", ""); name != "" {
			set[strings.ToLower(name)] = struct{}{}
		}
	}
	return sortedSet(set)
}
