package ports

import (
	"cleantab/domain/table"
)

// TableSource reads an external tabular resource into a typed table
type TableSource interface {
	// Read ingests the resource, coercing raw cells into typed columns.
	Read() (*table.Table, error)

	// Name identifies the resource, typically a file path.
	Name() string
}
