package parser

import (
	"errors"
	"fmt"
)

// ErrUnresolvedDatasource indicates a dependency block references a coded
// datasource identifier with no caption-bearing declaration.
var ErrUnresolvedDatasource = errors.New("unresolved datasource reference")

// ResolveError reports which coded identifier could not be resolved.
type ResolveError struct {
	Datasource string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("no captioned datasource declaration for %q", e.Datasource)
}

func (e *ResolveError) Unwrap() error {
	return ErrUnresolvedDatasource
}
