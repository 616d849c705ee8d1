// Package parser implements the read-only metadata queries over a parsed
// workbook document. Every extractor tolerates zero matches and returns an
// empty collection, never an error.
package parser

import (
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/tabstruct/tabstruct-go/pkg/tabstruct/models"
)

// DefaultCloudProvider is the cloud-provider marker matched by default.
const DefaultCloudProvider = "onedrive"

// CustomSQL returns the distinct custom SQL queries in the workbook,
// lower-cased.
func CustomSQL(doc *etree.Document) []string {
	set := make(map[string]struct{})
	for _, rel := range doc.FindElements("//relation[@type='text']") {
		set[strings.ToLower(rel.Text())] = struct{}{}
	}
	return sortedSet(set)
}

// FileConnections returns the distinct file-based connection paths
// (Excel, CSV, text extracts) in the workbook, case preserved.
func FileConnections(doc *etree.Document) []string {
	set := make(map[string]struct{})
	for _, conn := range doc.FindElements("//connection") {
		if filename := conn.SelectAttrValue("filename", ""); filename != "" {
			set[filename] = struct{}{}
		}
	}
	return sortedSet(set)
}

// CloudConnections returns the distinct connection paths carrying the given
// cloud-provider marker, case preserved.
func CloudConnections(doc *etree.Document, provider string) []string {
	set := make(map[string]struct{})
	for _, conn := range doc.FindElements("//connection") {
		if conn.SelectAttrValue("cloudFileProvider", "") != provider {
			continue
		}
		if filename := conn.SelectAttrValue("filename", ""); filename != "" {
			set[filename] = struct{}{}
		}
	}
	return sortedSet(set)
}

// DBConnections returns the distinct database connections in the workbook,
// each a (dbname, driver class) pair.
func DBConnections(doc *etree.Document) []models.DBConnection {
	set := make(map[models.DBConnection]struct{})
	for _, conn := range doc.FindElements("//connection") {
		name := conn.SelectAttr("dbname")
		if name == nil {
			continue
		}
		set[models.DBConnection{
			Name:  name.Value,
			Class: conn.SelectAttrValue("class", ""),
		}] = struct{}{}
	}

	out := make([]models.DBConnection, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Class < out[j].Class
	})
	return out
}
