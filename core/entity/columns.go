package entity

import (
	"strconv"

	"github.com/volatiletech/null/v8"
)

type (
	// Column describes one field of a tabular view. Format is explicit per
	// field; there is no blind to-string coercion.
	Column[T any] struct {
		Key    string
		Label  string
		Width  int // display width hint in characters; 0 = unconstrained
		Format func(T) string
	}

	// Table renders a collection as rows of named columns. It performs no
	// mutation itself; edit/delete actions are delegated by the caller.
	Table[T any] struct {
		Columns []Column[T]
		Key     func(T) string
	}

	Row struct {
		Key   string
		Cells []string
	}

	// TableView is the display-ready projection of a collection.
	TableView struct {
		Loading bool
		Empty   bool
		Headers []string
		Rows    []Row
	}
)

// Render projects records into a TableView. While loading, no rows are
// produced; an empty, loaded collection is flagged explicitly.
func (t Table[T]) Render(records []T, loading bool) TableView {
	view := TableView{Loading: loading, Headers: make([]string, 0, len(t.Columns))}
	for _, col := range t.Columns {
		view.Headers = append(view.Headers, col.Label)
	}
	if loading {
		return view
	}
	if len(records) == 0 {
		view.Empty = true
		return view
	}

	view.Rows = make([]Row, 0, len(records))
	for _, rec := range records {
		row := Row{Key: t.Key(rec), Cells: make([]string, 0, len(t.Columns))}
		for _, col := range t.Columns {
			row.Cells = append(row.Cells, col.Format(rec))
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

// Field formatters.

func FormatString[T any](get func(T) string) func(T) string {
	return get
}

// FormatNullString renders an unset value as empty, never as a literal "null".
func FormatNullString[T any](get func(T) null.String) func(T) string {
	return func(rec T) string {
		if v := get(rec); v.Valid {
			return v.String
		}
		return ""
	}
}

func FormatInt[T any](get func(T) int) func(T) string {
	return func(rec T) string {
		return strconv.Itoa(get(rec))
	}
}
