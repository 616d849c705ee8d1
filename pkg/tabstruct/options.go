// Package tabstruct provides workbook metadata extraction and light editing
// for Tableau .twb and .twbx files.
package tabstruct

import "github.com/tabstruct/tabstruct-go/pkg/tabstruct/parser"

// Options configures a workbook session.
type Options struct {
	// CloudProvider is the cloud-provider marker matched when extracting
	// cloud connections. Empty selects "onedrive".
	CloudProvider string
	// SkipUnresolved drops dependency blocks whose coded datasource
	// identifier has no captioned declaration instead of failing.
	SkipUnresolved bool
}

// DefaultOptions returns default session options.
func DefaultOptions() Options {
	return Options{
		CloudProvider: parser.DefaultCloudProvider,
	}
}

func (o Options) cloudProvider() string {
	if o.CloudProvider != "" {
		return o.CloudProvider
	}
	return parser.DefaultCloudProvider
}
