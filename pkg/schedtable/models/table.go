package models

// HeaderRow is the column header block of a table.
type HeaderRow struct {
	// Corner is set when an empty placeholder precedes the labels
	// (the table has row headers).
	Corner bool `json:"corner,omitempty"`
	// Labels holds one label per column.
	Labels []string `json:"labels"`
}

// TableRow is one rendered grid row.
type TableRow struct {
	// Index is the grid row index (0-based).
	Index int `json:"index"`
	// Header is the row label; only meaningful when the table has row headers.
	Header string `json:"header,omitempty"`
	// Cells holds the emitted cells in column order.
	Cells []TableCell `json:"cells"`
}

// Table is the markup-free document produced by rendering a grid.
type Table struct {
	Caption string `json:"caption,omitempty"`
	// Class is an identity/category label passed through from the grid.
	Class string `json:"class,omitempty"`
	// RowHeaders reports whether each row carries a Header label.
	RowHeaders bool       `json:"row_headers,omitempty"`
	Header     *HeaderRow `json:"header,omitempty"`
	Rows       []TableRow `json:"rows"`
}
