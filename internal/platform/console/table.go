package console

// Column describes one projected table column.
type Column[T Record] struct {
	Header string
	Cell   func(T) string
}

// Row is one rendered table row. Actions name the row-level operations the
// console exposes; delete is immediate, view opens a read-only mirror with no
// mutation path.
type Row struct {
	ID      string   `json:"id"`
	Cells   []string `json:"cells"`
	Actions []string `json:"actions"`
}

// Table is the projection of a filtered store.
type Table struct {
	Headers []string `json:"headers"`
	Rows    []Row    `json:"rows"`
}

// DefaultRowActions are the actions every console row carries.
var DefaultRowActions = []string{"view", "edit", "delete"}

// Project renders records through the column set. It is a pure projection:
// the records are read, never mutated.
func Project[T Record](records []T, cols []Column[T], actions []string) Table {
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = c.Cell(rec)
		}
		rows = append(rows, Row{ID: rec.EntityID(), Cells: cells, Actions: actions})
	}
	return Table{Headers: headers, Rows: rows}
}
