// Package report renders extracted workbook metadata as a text report or an
// Excel export.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/tabstruct/tabstruct-go/pkg/tabstruct/models"
)

// Data holds the report inputs. Author and GeneratedAt are supplied by the
// caller rather than read from process globals, so reports are reproducible
// under test.
type Data struct {
	Title       string
	Author      string
	GeneratedAt time.Time
	Note        string
	Meta        *models.WorkbookMeta
}

const textTemplate = `{{.Title}}
{{repeat "=" (len .Title)}}

Workbook:  {{.Meta.BookName}}
Author:    {{.Author}}
Generated: {{.GeneratedAt.Format "2006-01-02 15:04:05"}}

Custom SQL queries: {{len .Meta.CustomSQL}}

File connections:
{{- range .Meta.FileConnections}}
  - {{.}}
{{- else}}
  (none)
{{- end}}

Cloud connections:
{{- range .Meta.CloudConnections}}
  - {{.}}
{{- else}}
  (none)
{{- end}}

Database connections:
{{- range .Meta.DBConnections}}
  - {{.Name}}{{if .Class}} ({{.Class}}){{end}}
{{- else}}
  (none)
{{- end}}
{{if .Note}}
{{.Note}}
{{end}}`

var tmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"repeat": strings.Repeat,
}).Parse(textTemplate))

// Write renders the text report to w.
func Write(w io.Writer, data Data) error {
	if data.Meta == nil {
		return fmt.Errorf("report: no metadata")
	}
	if data.Title == "" {
		data.Title = "Workbook Report: " + data.Meta.BookName
	}
	return tmpl.Execute(w, data)
}

// WriteFile renders the text report to the file at path.
func WriteFile(path string, data Data) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}
	if err := Write(f, data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report %s: %w", path, err)
	}
	return nil
}
